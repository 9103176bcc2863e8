package sap

import (
	"github.com/saptest/autopets/internal/config"
	"github.com/saptest/autopets/internal/rng"
	"github.com/saptest/autopets/internal/saperr"
)

// DefaultMaxSize is the standard roster size; spec.md's blowfish-wall
// scenario overrides it to 100 to stress-test the engine's loop bound.
const DefaultMaxSize = 5

// Team is the top-level mutable aggregate: roster, shop, history, and the
// per-team deterministic RNG stream. No mutex — single-threaded cooperative
// use per spec.md §5; callers running independent battles concurrently
// simply give each goroutine its own *Team pair.
type Team struct {
	Name     string
	Friends  []*Pet // length == MaxSize; nil entries are empty slots
	Fainted  []*Pet
	Sold     []*Pet
	Toys     []*Toy
	Shop     *Shop
	Counters map[string]int

	Gold      int
	Lives     int
	Turn      int
	MaxSize   int
	FreeRolls int

	RNG *rng.Source

	History *History

	storedFriends []*Pet // snapshot taken before each battle, for restore
	storedToys    []*Toy // toy-effect use counters at snapshot time
	battle        battleState

	queue      []Outcome
	queueNodes []int
	budget     int
}

// NewTeam constructs an empty team of maxSize slots, seeded deterministically.
func NewTeam(name string, maxSize int, seed int64) *Team {
	return &Team{
		Name:     name,
		Friends:  make([]*Pet, maxSize),
		MaxSize:  maxSize,
		Gold:     10,
		Lives:    5,
		Counters: map[string]int{},
		RNG:      rng.New(seed),
		budget:   config.DefaultEngine().RuntimeBudget,
	}
}

// WithBudget overrides the per-phase trigger-firing budget (default from
// config.EngineConfig.RuntimeBudget).
func (t *Team) WithBudget(n int) *Team {
	t.budget = n
	return t
}

// WithHistory attaches a causal-graph recorder; nil disables it (a no-op,
// per spec.md §4.6).
func (t *Team) WithHistory(h *History) *Team {
	t.History = h
	return t
}

// AddPet places pet in the first empty slot. Returns InvalidTeamAction if
// the team is full.
func (t *Team) AddPet(pet *Pet) error {
	for i, p := range t.Friends {
		if p == nil {
			pet.Pos = i
			t.Friends[i] = pet
			return nil
		}
	}
	return saperr.New(saperr.InvalidTeamAction, "team %q is full", t.Name)
}

func (t *Team) frontPet() *Pet {
	for _, p := range t.Friends {
		if isLive(p) {
			return p
		}
	}
	return nil
}

func (t *Team) backPet() *Pet {
	for i := len(t.Friends) - 1; i >= 0; i-- {
		if isLive(t.Friends[i]) {
			return t.Friends[i]
		}
	}
	return nil
}

func (t *Team) livePets() []*Pet {
	var out []*Pet
	for _, p := range t.Friends {
		if isLive(p) {
			out = append(out, p)
		}
	}
	return out
}

// alive reports whether the team has any live pet left (the combat
// terminal-check condition).
func (t *Team) alive() bool {
	return t.frontPet() != nil
}

func newSeededRNG(seed int64) *rng.Source { return rng.New(seed) }
