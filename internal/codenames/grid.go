// Package codenames generates the spymaster key grid for three-team
// codenames: thirty cards split across blue, red, green, a few neutrals, and
// the assassin.
package codenames

import (
	"math/rand"
	"strings"
	"time"

	"github.com/gamenight-tools/gamenight/internal/uuid"
)

// Marker is the team owning one card of the key grid.
type Marker string

const (
	MarkerBlue     Marker = "B"
	MarkerRed      Marker = "R"
	MarkerGreen    Marker = "G"
	MarkerNeutral  Marker = "N"
	MarkerAssassin Marker = "A"
)

// Grid dimensions and card counts. Blue goes first and gets the extra agent.
const (
	Rows = 6
	Cols = 5

	BlueCount     = 9
	RedCount      = 8
	GreenCount    = 8
	NeutralCount  = 4
	AssassinCount = 1
)

// Grid is one shuffled key grid, tagged with an ID so the spymasters can
// check they are looking at the same email.
type Grid struct {
	ID    string
	Cells [Rows][Cols]Marker
}

// String renders the grid as a text matrix, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		cells := make([]string, Cols)
		for c := 0; c < Cols; c++ {
			cells[c] = string(g.Cells[r][c])
		}
		sb.WriteString(strings.Join(cells, " "))
		if r < Rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Counts tallies the markers present in the grid.
func (g *Grid) Counts() map[Marker]int {
	counts := make(map[Marker]int)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			counts[g.Cells[r][c]]++
		}
	}
	return counts
}

// Generator produces shuffled grids.
type Generator struct {
	random *rand.Rand
	ids    uuid.Generator
}

// GeneratorConfig holds configuration for the generator.
type GeneratorConfig struct {
	// Rand is the shuffle source. Defaults to a time-seeded source; tests
	// inject a fixed seed.
	Rand *rand.Rand

	// IDs generates grid IDs. Defaults to random UUIDs.
	IDs uuid.Generator
}

// NewGenerator creates a Generator
func NewGenerator(cfg *GeneratorConfig) *Generator {
	g := &Generator{
		random: rand.New(rand.NewSource(time.Now().UnixNano())),
		ids:    uuid.NewGoogleGenerator(),
	}
	if cfg == nil {
		return g
	}
	if cfg.Rand != nil {
		g.random = cfg.Rand
	}
	if cfg.IDs != nil {
		g.ids = cfg.IDs
	}
	return g
}

// Generate deals a full deck into a fresh grid. Every grid holds exactly the
// fixed card counts; only the placement is random.
func (g *Generator) Generate() *Grid {
	deck := make([]Marker, 0, Rows*Cols)
	for i := 0; i < BlueCount; i++ {
		deck = append(deck, MarkerBlue)
	}
	for i := 0; i < RedCount; i++ {
		deck = append(deck, MarkerRed)
	}
	for i := 0; i < GreenCount; i++ {
		deck = append(deck, MarkerGreen)
	}
	for i := 0; i < NeutralCount; i++ {
		deck = append(deck, MarkerNeutral)
	}
	for i := 0; i < AssassinCount; i++ {
		deck = append(deck, MarkerAssassin)
	}

	g.random.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	grid := &Grid{ID: g.ids.New()}
	for i, marker := range deck {
		grid.Cells[i/Cols][i%Cols] = marker
	}
	return grid
}
