// Package streak estimates, by Monte Carlo simulation, how many throws it
// takes for a handful of d20s thrown together to all land on 20. The game
// night argument this settles: two dice come up double-20 every ~400 throws,
// four dice take around 160,000.
package streak

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gamenight-tools/gamenight/internal/dice"
	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

const (
	// DefaultTrials matches the original experiment size.
	DefaultTrials = 1000

	faces  = 20
	target = 20
)

// DefaultDiceCounts are the throw widths the dice command reports on.
var DefaultDiceCounts = []int{2, 3, 4}

// Result is the outcome of one simulated throw width.
type Result struct {
	// DiceCount is how many d20s were thrown together.
	DiceCount int

	// Trials is how many independent streaks were run.
	Trials int

	// TotalThrows is the summed throw count across all trials.
	TotalThrows int64

	// AverageThrows is TotalThrows / Trials.
	AverageThrows float64
}

// Config holds configuration for the simulator.
type Config struct {
	// Roller is the dice source. Defaults to the random roller.
	Roller dice.Roller

	// Trials per dice count. Defaults to DefaultTrials.
	Trials int

	// Workers bounds trial concurrency. Defaults to GOMAXPROCS.
	Workers int

	// OnTrial, when set, is called once per completed trial. The dice
	// command hooks a progress bar here. Must be safe for concurrent use.
	OnTrial func()
}

// Simulator runs all-twenties streak experiments.
type Simulator struct {
	roller  dice.Roller
	trials  int
	workers int
	onTrial func()
}

// New creates a Simulator
func New(cfg *Config) *Simulator {
	s := &Simulator{
		roller:  dice.NewRandomRoller(),
		trials:  DefaultTrials,
		workers: runtime.GOMAXPROCS(0),
	}
	if cfg == nil {
		return s
	}
	if cfg.Roller != nil {
		s.roller = cfg.Roller
	}
	if cfg.Trials > 0 {
		s.trials = cfg.Trials
	}
	if cfg.Workers > 0 {
		s.workers = cfg.Workers
	}
	s.onTrial = cfg.OnTrial
	return s
}

// Run simulates every dice count in order and returns one Result per count.
// Trials within a count fan out over the worker pool; ctx cancels the whole
// run between throws.
func (s *Simulator) Run(ctx context.Context, diceCounts []int) ([]Result, error) {
	if len(diceCounts) == 0 {
		diceCounts = DefaultDiceCounts
	}
	for _, count := range diceCounts {
		if count < 1 {
			return nil, gnerr.InvalidArgumentf("dice count %d is not positive", count)
		}
	}

	results := make([]Result, 0, len(diceCounts))
	for _, count := range diceCounts {
		result, err := s.runCount(ctx, count)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Simulator) runCount(ctx context.Context, diceCount int) (Result, error) {
	var totalThrows atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for trial := 0; trial < s.trials; trial++ {
		g.Go(func() error {
			throws, err := s.runTrial(ctx, diceCount)
			if err != nil {
				return err
			}
			totalThrows.Add(throws)
			if s.onTrial != nil {
				s.onTrial()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		DiceCount:     diceCount,
		Trials:        s.trials,
		TotalThrows:   totalThrows.Load(),
		AverageThrows: float64(totalThrows.Load()) / float64(s.trials),
	}, nil
}

// runTrial throws diceCount d20s until every die shows 20, returning the
// number of throws it took.
func (s *Simulator) runTrial(ctx context.Context, diceCount int) (int64, error) {
	var throws int64
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		result, err := s.roller.Roll(diceCount, faces, 0)
		if err != nil {
			return 0, gnerr.Wrap(err, "rolling streak throw")
		}
		throws++

		if result.AllShowing(target) {
			return throws, nil
		}
	}
}
