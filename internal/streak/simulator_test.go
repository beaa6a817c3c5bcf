package streak_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenight-tools/gamenight/internal/dice"
	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
	"github.com/gamenight-tools/gamenight/internal/streak"
)

func TestSimulator_ScriptedStreaks(t *testing.T) {
	roller := dice.NewMockRoller()
	// Two trials of two dice, one worker so the script plays in order:
	// trial 1 misses twice then hits (3 throws), trial 2 hits immediately.
	roller.SetRolls([]int{
		1, 2, // throw 1: miss
		20, 19, // throw 2: close miss
		20, 20, // throw 3: hit
		20, 20, // trial 2, throw 1: hit
	})

	sim := streak.New(&streak.Config{
		Roller:  roller,
		Trials:  2,
		Workers: 1,
	})

	results, err := sim.Run(context.Background(), []int{2})
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, 2, result.DiceCount)
	assert.Equal(t, 2, result.Trials)
	assert.Equal(t, int64(4), result.TotalThrows)
	assert.Equal(t, 2.0, result.AverageThrows)
}

func TestSimulator_SingleDie(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{5, 12, 20})

	sim := streak.New(&streak.Config{Roller: roller, Trials: 1, Workers: 1})

	results, err := sim.Run(context.Background(), []int{1})
	require.NoError(t, err)

	assert.Equal(t, 3.0, results[0].AverageThrows)
}

func TestSimulator_DefaultDiceCounts(t *testing.T) {
	roller := dice.NewMockRoller()
	// One trial per width, every throw an immediate hit: 2+3+4 scripted dice.
	roller.SetRolls([]int{20, 20, 20, 20, 20, 20, 20, 20, 20})

	sim := streak.New(&streak.Config{Roller: roller, Trials: 1, Workers: 1})

	results, err := sim.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, want := range []int{2, 3, 4} {
		assert.Equal(t, want, results[i].DiceCount)
		assert.Equal(t, 1.0, results[i].AverageThrows)
	}
}

func TestSimulator_OnTrialCallback(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{20, 20, 20, 20, 20, 20})

	var trials atomic.Int64
	sim := streak.New(&streak.Config{
		Roller:  roller,
		Trials:  3,
		Workers: 1,
		OnTrial: func() { trials.Add(1) },
	})

	_, err := sim.Run(context.Background(), []int{2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), trials.Load())
}

func TestSimulator_InvalidDiceCount(t *testing.T) {
	sim := streak.New(nil)

	_, err := sim.Run(context.Background(), []int{0})

	require.Error(t, err)
	assert.True(t, gnerr.IsInvalidArgument(err))
}

func TestSimulator_ExhaustedScriptSurfacesError(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{1, 1}) // one missing throw, then the script runs dry

	sim := streak.New(&streak.Config{Roller: roller, Trials: 1, Workers: 1})

	_, err := sim.Run(context.Background(), []int{2})
	assert.Error(t, err)
}

func TestSimulator_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The random roller would loop a long time for four dice; a canceled
	// context must stop it immediately.
	sim := streak.New(&streak.Config{Trials: 1, Workers: 1})

	_, err := sim.Run(ctx, []int{4})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulator_RandomRollerConverges(t *testing.T) {
	// A single d20 hits a 20 every ~20 throws. Even a small sample should
	// land well inside a generous band.
	sim := streak.New(&streak.Config{Trials: 200})

	results, err := sim.Run(context.Background(), []int{1})
	require.NoError(t, err)

	avg := results[0].AverageThrows
	assert.Greater(t, avg, 5.0)
	assert.Less(t, avg, 60.0)
}
