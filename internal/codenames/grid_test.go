package codenames_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenight-tools/gamenight/internal/codenames"
)

func TestGenerator_CardCounts(t *testing.T) {
	gen := codenames.NewGenerator(nil)

	// Placement is random but the deck is fixed; every deal must balance.
	for i := 0; i < 50; i++ {
		grid := gen.Generate()
		counts := grid.Counts()

		assert.Equal(t, codenames.BlueCount, counts[codenames.MarkerBlue])
		assert.Equal(t, codenames.RedCount, counts[codenames.MarkerRed])
		assert.Equal(t, codenames.GreenCount, counts[codenames.MarkerGreen])
		assert.Equal(t, codenames.NeutralCount, counts[codenames.MarkerNeutral])
		assert.Equal(t, codenames.AssassinCount, counts[codenames.MarkerAssassin])
	}
}

func TestGenerator_SeededShuffleIsReproducible(t *testing.T) {
	first := codenames.NewGenerator(&codenames.GeneratorConfig{Rand: rand.New(rand.NewSource(42))}).Generate()
	second := codenames.NewGenerator(&codenames.GeneratorConfig{Rand: rand.New(rand.NewSource(42))}).Generate()

	assert.Equal(t, first.Cells, second.Cells)
	assert.NotEqual(t, first.ID, second.ID, "grid IDs are unique even for identical layouts")
}

func TestGrid_String(t *testing.T) {
	grid := codenames.NewGenerator(&codenames.GeneratorConfig{Rand: rand.New(rand.NewSource(7))}).Generate()

	rendered := grid.String()
	lines := strings.Split(rendered, "\n")

	require.Len(t, lines, codenames.Rows)
	for _, line := range lines {
		cells := strings.Split(line, " ")
		assert.Len(t, cells, codenames.Cols)
		for _, cell := range cells {
			assert.Contains(t, []string{"B", "R", "G", "N", "A"}, cell)
		}
	}
}

type sequenceIDs struct{ next int }

func (s *sequenceIDs) New() string {
	s.next++
	return fmt.Sprintf("grid-%d", s.next)
}

func TestGenerator_InjectedIDs(t *testing.T) {
	gen := codenames.NewGenerator(&codenames.GeneratorConfig{IDs: &sequenceIDs{}})

	assert.Equal(t, "grid-1", gen.Generate().ID)
	assert.Equal(t, "grid-2", gen.Generate().ID)
}

func TestGrid_IDsAreUnique(t *testing.T) {
	gen := codenames.NewGenerator(nil)
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		grid := gen.Generate()
		assert.False(t, seen[grid.ID])
		seen[grid.ID] = true
	}
}
