// Package rng provides the deterministic pseudo-random stream every Team
// owns. All stochastic engine decisions (shop rolls, Position::Any
// selection, tied tie-breaks that are documented as random) must draw from
// a Source — never a global generator — so two teams built with the same
// seed and fed the same operations produce identical traces.
//
// This mirrors the teacher's own deterministic-replay RNG in
// internal/game/engine.go (Engine.rng / Engine.rngSeed, reseeded every tick
// from its own output so a recorded seed reproduces the run), generalized
// from "reseed every tick" to "reseed on demand" since a Team has no tick
// loop.
package rng

import (
	"math/rand"
	"time"

	"github.com/saptest/autopets/internal/metrics"
)

// Source is a seedable, inspectable random stream.
type Source struct {
	r    *rand.Rand
	seed int64
}

// New builds a Source from an explicit seed. Same seed, same future call
// sequence, same outputs — this is the whole point.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewFromTime builds a Source seeded from the current time, for callers that
// don't care about reproducibility (e.g. an ad hoc demo run).
func NewFromTime() *Source {
	return New(time.Now().UnixNano())
}

// Seed reports the seed this Source was constructed or last reseeded with.
func (s *Source) Seed() int64 { return s.seed }

// Reseed replaces the underlying stream deterministically.
func (s *Source) Reseed(seed int64) {
	s.seed = seed
	s.r.Seed(seed)
}

// Intn draws a uniform int in [0, n). Panics if n <= 0, matching math/rand.
func (s *Source) Intn(n int) int {
	metrics.RNGDraws.Inc()
	return s.r.Intn(n)
}

// Float64 draws a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	metrics.RNGDraws.Inc()
	return s.r.Float64()
}

// Shuffle permutes n elements in place via swap(i, j), the same contract as
// rand.Shuffle, but counted as a single RNG draw for determinism bookkeeping.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	metrics.RNGDraws.Inc()
	s.r.Shuffle(n, swap)
}

// Clone returns a Source with the same seed, starting from the beginning of
// that seed's stream rather than from s's current position, for taking a
// restore snapshot (Team.stored_friends) without sharing the live stream.
func (s *Source) Clone() *Source {
	// math/rand.Rand has no exported state snapshot, so we approximate by
	// reseeding a fresh stream from the same seed. Any draws already made
	// against s are not replayed into the clone — callers that need exact
	// mid-stream cloning should Reseed at the moment of snapshot instead.
	return New(s.seed)
}
