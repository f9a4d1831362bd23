package challenge

import (
	"math/rand/v2"
	"slices"

	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/progress"
	"github.com/limbo/rehabit/pkg/entity"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Rand is the randomness source used for pool sampling. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRand is safe for concurrent use.
var DefaultRand Rand = globalRand{}

// NewState draws an initial pool of PoolSize distinct challenges.
func (c *Catalog) NewState(rnd Rand) entity.ChallengeState {
	return entity.ChallengeState{
		ActiveChallenges:    c.Sample(rnd, PoolSize, nil),
		CompletedChallenges: []int{},
		ChallengeXP:         0,
		ChallengeLevel:      progress.Level(0),
	}
}

// Sample picks up to n distinct ids uniformly at random, skipping excluded ones.
func (c *Catalog) Sample(rnd Rand, n int, exclude []int) []int {
	available := make([]int, 0, len(c.entries))
	for _, ch := range c.entries {
		if !slices.Contains(exclude, ch.ID) {
			available = append(available, ch.ID)
		}
	}
	// Partial Fisher-Yates
	n = min(n, len(available))
	for i := 0; i < n; i++ {
		j := i + rnd.IntN(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}
	return available[:n]
}

// Evaluate returns active, not yet completed challenges whose predicate holds.
func (c *Catalog) Evaluate(state entity.ChallengeState, s Snapshot) []int {
	var ready []int
	for _, id := range state.ActiveChallenges {
		if slices.Contains(state.CompletedChallenges, id) {
			continue
		}
		ch, ok := c.byID[id]
		if !ok {
			continue
		}
		if ch.Predicate.Holds(s) {
			ready = append(ready, id)
		}
	}
	return ready
}

// Complete records id as completed and credits its reward to the challenge ledger.
// Completing an already completed id leaves the state unchanged.
func (c *Catalog) Complete(state entity.ChallengeState, id int) (entity.ChallengeState, bool, error) {
	ch, ok := c.byID[id]
	if !ok {
		return state, false, errorvalues.ErrChallengeNotFound
	}
	if slices.Contains(state.CompletedChallenges, id) {
		return state, false, nil
	}
	next := entity.ChallengeState{
		ActiveChallenges:    slices.Clone(state.ActiveChallenges),
		CompletedChallenges: append(slices.Clone(state.CompletedChallenges), id),
		ChallengeXP:         state.ChallengeXP + ch.XP,
	}
	next.ChallengeLevel = progress.Level(next.ChallengeXP)
	return next, true, nil
}

// Replace swaps a uniformly random active slot for an unused catalog entry.
func (c *Catalog) Replace(state entity.ChallengeState, rnd Rand) (entity.ChallengeState, int, error) {
	if len(state.ActiveChallenges) == 0 {
		return state, 0, errorvalues.ErrNoChallengesAvailable
	}
	exclude := append(slices.Clone(state.ActiveChallenges), state.CompletedChallenges...)
	picked := c.Sample(rnd, 1, exclude)
	if len(picked) == 0 {
		return state, 0, errorvalues.ErrNoChallengesAvailable
	}
	next := entity.ChallengeState{
		ActiveChallenges:    slices.Clone(state.ActiveChallenges),
		CompletedChallenges: slices.Clone(state.CompletedChallenges),
		ChallengeXP:         state.ChallengeXP,
		ChallengeLevel:      state.ChallengeLevel,
	}
	next.ActiveChallenges[rnd.IntN(len(next.ActiveChallenges))] = picked[0]
	return next, picked[0], nil
}

// Board renders the active pool for display.
func (c *Catalog) Board(state entity.ChallengeState, s Snapshot, justCompleted []int) entity.ChallengeBoard {
	views := make([]entity.ChallengeView, 0, len(state.ActiveChallenges))
	for _, id := range state.ActiveChallenges {
		ch, ok := c.byID[id]
		if !ok {
			continue
		}
		view := entity.ChallengeView{
			ID:         ch.ID,
			Title:      ch.Title,
			XP:         ch.XP,
			Icon:       ch.Icon,
			Difficulty: ch.Difficulty,
			Status:     StatusInProgress,
			Progress:   ch.Predicate.Progress(s),
		}
		if slices.Contains(state.CompletedChallenges, id) {
			view.Status = StatusCompleted
			view.Progress = 100
		}
		views = append(views, view)
	}
	_, toNext := progress.ProgressInLevel(state.ChallengeXP)
	if justCompleted == nil {
		justCompleted = []int{}
	}
	return entity.ChallengeBoard{
		Challenges:     views,
		ChallengeXP:    state.ChallengeXP,
		ChallengeLevel: progress.Level(state.ChallengeXP),
		XPToNextLevel:  toNext,
		JustCompleted:  justCompleted,
	}
}
