// Package dice rolls pools of dice behind a small interface so simulations
// can swap in scripted rolls for testing.
package dice

import (
	"errors"
	"math/rand"
)

// RollResult holds the outcome of one throw of count dice.
type RollResult struct {
	Total   int
	Rolls   []int
	Bonus   int
	Count   int
	Sides   int
	Highest int
	Lowest  int
}

// AllShowing reports whether every die in the throw landed on face.
func (r *RollResult) AllShowing(face int) bool {
	if len(r.Rolls) == 0 {
		return false
	}
	for _, roll := range r.Rolls {
		if roll != face {
			return false
		}
	}
	return true
}

// Roller rolls dice. Implementations must be safe for concurrent use.
type Roller interface {
	// Roll throws count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

type randomRoller struct{}

// NewRandomRoller creates a Roller backed by math/rand.
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	result := &RollResult{
		Rolls: make([]int, count),
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}

	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
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
