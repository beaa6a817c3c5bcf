package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results.
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewMockRoller creates a new mock dice roller
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// SetRolls sets the scripted roll results and resets the cursor
func (m *MockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all scripted rolls
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = nil
	m.rollIndex = 0
}

// Roll implements Roller using the scripted values. It errors when the script
// runs dry or a scripted value cannot come from a die of the given size.
func (m *MockRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if count < 1 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}

	result := &RollResult{
		Rolls: make([]int, count),
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}

	for i := 0; i < count; i++ {
		if m.rollIndex >= len(m.rolls) {
			return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
		}
		roll := m.rolls[m.rollIndex]
		m.rollIndex++

		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("predetermined roll %d is not possible on a d%d", roll, sides)
		}

		result.Rolls[i] = roll
		result.Total += roll
		if i == 0 || roll < result.Lowest {
			result.Lowest = roll
		}
		if roll > result.Highest {
			result.Highest = roll
		}
	}

	result.Total += bonus
	return result, nil
}
