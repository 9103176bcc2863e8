package sap

import (
	"sort"

	"github.com/saptest/autopets/internal/metrics"
	"github.com/saptest/autopets/internal/saperr"
)

// effectCtx is the working context an Action sees when it fires: which pet
// owns the firing Effect, that pet's team and the opposing team (nil during
// shop operations, which have no opponent), the Outcome that triggered the
// firing, and the engine driving the drain loop so actions can enqueue new
// Outcomes or report a budget overrun.
type effectCtx struct {
	origin  *Pet
	team    *Team
	enemy   *Team // nil outside combat
	outcome Outcome
	nodeID  int // history node ID of ctx.outcome, -1 if untracked
	engine  *engine
}

// enqueue pushes a new Outcome onto the appropriate team's queue, recording
// causation for the history recorder.
func (c *effectCtx) enqueue(team *Team, o Outcome) {
	c.engine.push(team, o, c.nodeID)
}

// firedPair is a (pet, effect) pair selected to fire for one outcome.
type firedPair struct {
	pet    *Pet
	team   *Team
	effect *Effect
}

// engine drives the trigger queue drain loop shared by combat phases and
// shop operations (spec.md §4.1). One engine instance exists per Fight call
// or per shop operation; it is not retained across calls.
type engine struct {
	self    *Team
	enemy   *Team // nil for shop-only drains
	budget  int
	fired   int
	history *History
}

func newEngine(self, enemy *Team, budget int, history *History) *engine {
	return &engine{self: self, enemy: enemy, budget: budget, history: history}
}

// push enqueues an outcome onto team's queue and records it in history,
// returning the new history node ID (-1 if history is disabled or the rate
// limiter dropped it).
func (e *engine) push(team *Team, o Outcome, parentNodeID int) int {
	o.AffectedTeam = team
	team.queue = append(team.queue, o)
	nodeID := -1
	if e.history != nil {
		nodeID = e.history.record(o, parentNodeID)
	}
	team.queueNodes = append(team.queueNodes, nodeID)
	return nodeID
}

// drain runs the matcher/fire loop until both queues are empty. teams is
// either {self} (shop) or {self, enemy} (combat) — both queues are drained
// together because an effect on one side can enqueue an outcome that fires
// an effect on the other.
func (e *engine) drain() error {
	for {
		team, idx := e.nextOutcome()
		if team == nil {
			return nil
		}
		outcome := team.queue[idx]
		nodeID := team.queueNodes[idx]
		team.queue = append(team.queue[:idx], team.queue[idx+1:]...)
		team.queueNodes = append(team.queueNodes[:idx], team.queueNodes[idx+1:]...)

		pairs := e.matchingPairs(outcome)
		for _, fp := range pairs {
			e.fired++
			if e.fired > e.budget {
				metrics.RuntimeBudgetExceeded.Inc()
				return saperr.New(saperr.RuntimeBudget, "exceeded %d trigger firings", e.budget)
			}
			if err := e.fire(fp, outcome, nodeID); err != nil {
				return err
			}
			metrics.TriggersFired.Inc()
		}
		e.compactFainted()
	}
}

// nextOutcome returns the team and index of the head of self's queue while
// it has anything pending, and only then the head of enemy's queue (both
// are empty is the terminal case, returned as nil).
func (e *engine) nextOutcome() (*Team, int) {
	if e.self != nil && len(e.self.queue) > 0 {
		return e.self, 0
	}
	if e.enemy != nil && len(e.enemy.queue) > 0 {
		return e.enemy, 0
	}
	return nil, -1
}

// matchingPairs finds every (pet, effect) that fires for outcome, sorted
// per the firing-order invariant in spec.md §4.1: higher attack first, then
// lower position, then affected-team-first, then pet ID ascending.
func (e *engine) matchingPairs(outcome Outcome) []firedPair {
	var pairs []firedPair
	sides := []*Team{e.self}
	if e.enemy != nil {
		sides = append(sides, e.enemy)
	}
	for _, side := range sides {
		if side == nil {
			continue
		}
		for _, pet := range side.Friends {
			// A pet that just fainted is still a placeholder in its slot
			// (spec.md §4.3's post-faint compaction rule) and must still be
			// considered here so its own Faint-triggered effect can fire;
			// only a nil (already-compacted or never-occupied) slot is
			// skipped. Position resolvers that target "other live pets"
			// (PosAny, PosAll, …) independently filter on isLive.
			if pet == nil {
				continue
			}
			for _, eff := range allEffects(pet) {
				if matches(eff, pet, side, outcome) {
					pairs = append(pairs, firedPair{pet: pet, team: side, effect: eff})
				}
			}
		}
		for _, toy := range side.Toys {
			for _, eff := range toy.Effects {
				if matchesToy(eff, side, outcome) {
					pairs = append(pairs, firedPair{pet: nil, team: side, effect: eff})
				}
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		aAtk, bAtk := petAttack(a.pet), petAttack(b.pet)
		if aAtk != bAtk {
			return aAtk > bAtk
		}
		aPos, bPos := petPos(a.pet), petPos(b.pet)
		if aPos != bPos {
			return aPos < bPos
		}
		aAffected := a.team == outcome.AffectedTeam
		bAffected := b.team == outcome.AffectedTeam
		if aAffected != bAffected {
			return aAffected
		}
		return petIDLess(a.pet, b.pet)
	})
	return pairs
}

func petAttack(p *Pet) int {
	if p == nil {
		return 0
	}
	return p.Stats.Attack
}

func petPos(p *Pet) int {
	if p == nil {
		return 1 << 30
	}
	return p.Pos
}

func petIDLess(a, b *Pet) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	return a.ID.String() < b.ID.String()
}

func allEffects(p *Pet) []*Effect {
	effs := append([]*Effect{}, p.Effects...)
	if p.Item != nil && p.Item.Food != nil && p.Item.Food.Effect != nil {
		effs = append(effs, p.Item.Food.Effect)
	}
	return effs
}

// matches implements the four matching conditions from spec.md §4.1.
func matches(e *Effect, owner *Pet, ownerTeam *Team, o Outcome) bool {
	if e.Trigger.Status != o.Status {
		return false
	}
	if !targetCompatible(e.Trigger.Target, ownerTeam, o) {
		return false
	}
	if !positionCompatible(e, owner, o) {
		return false
	}
	return e.usable()
}

func matchesToy(e *Effect, ownerTeam *Team, o Outcome) bool {
	if e.Trigger.Status != o.Status {
		return false
	}
	if !targetCompatible(e.Trigger.Target, ownerTeam, o) {
		return false
	}
	return e.usable()
}

func targetCompatible(t Target, ownerTeam *Team, o Outcome) bool {
	switch t {
	case TargetFriend:
		return ownerTeam == o.AffectedTeam
	case TargetEnemy:
		return ownerTeam != o.AffectedTeam
	case TargetEither, TargetShop, TargetNone:
		return true
	default:
		return true
	}
}

func positionCompatible(e *Effect, owner *Pet, o Outcome) bool {
	if e.Position.Kind == PosOnSelf {
		return o.AffectedPet != nil && owner != nil && o.AffectedPet.ID == owner.ID
	}
	if e.Position.Kind == PosSpecific && owner != nil {
		return true // resolved again at fire time against the live board
	}
	return true
}

// fire resolves the effect's position against the live board at this exact
// moment (not when it was enqueued, per spec.md §4.1) and applies its
// action to each resolved pet.
func (e *engine) fire(fp firedPair, outcome Outcome, nodeID int) error {
	team := fp.team
	var enemyTeam *Team
	if e.enemy == team {
		enemyTeam = e.self
	} else if e.self == team {
		enemyTeam = e.enemy
	}
	ctx := &effectCtx{origin: fp.pet, team: team, enemy: enemyTeam, outcome: outcome, nodeID: nodeID, engine: e}
	targets := resolveEffectTargets(fp, enemyTeam, outcome)
	for _, target := range targets {
		if err := fp.effect.Action.apply(ctx, target); err != nil {
			return err
		}
	}
	fp.effect.consume()
	return nil
}

// resolveEffectTargets resolves fp.effect.Position against whichever side(s)
// fp.effect.Target names: the firing pet's own team for Friend, the
// opposing team for Enemy, or the union of both for Either (Hedgehog's
// "damages all other pets, on both sides" is the canonical TargetEither
// case). Position itself stays single-team-shaped (spec.md §4.2's table is
// relative to one board); Target picks which board(s) feed it.
func resolveEffectTargets(fp firedPair, enemyTeam *Team, outcome Outcome) []*Pet {
	switch fp.effect.Target {
	case TargetEnemy:
		if enemyTeam == nil {
			return nil
		}
		return fp.effect.Position.resolve(fp.pet, enemyTeam, outcome)
	case TargetEither:
		targets := fp.effect.Position.resolve(fp.pet, fp.team, outcome)
		if enemyTeam != nil {
			targets = append(targets, fp.effect.Position.resolve(fp.pet, enemyTeam, outcome)...)
		}
		return targets
	default:
		return fp.effect.Position.resolve(fp.pet, fp.team, outcome)
	}
}

// compactFainted moves any slot with health==0 and no further queued
// outcomes referencing it into team.Fainted, per spec.md §4.3's faint
// cascade rule: a fainted pet stays in its slot as a placeholder until
// nothing in either queue still points at it.
func (e *engine) compactFainted() {
	for _, team := range []*Team{e.self, e.enemy} {
		if team == nil {
			continue
		}
		for i, pet := range team.Friends {
			if pet == nil || pet.Stats.Health > 0 {
				continue
			}
			if outcomeReferences(e.self, pet) || outcomeReferences(e.enemy, pet) {
				continue
			}
			team.Fainted = append(team.Fainted, pet)
			team.Friends[i] = nil
		}
	}
}

func outcomeReferences(team *Team, pet *Pet) bool {
	if team == nil {
		return false
	}
	for _, o := range team.queue {
		if o.AffectedPet == pet || o.AfflictingPet == pet {
			return true
		}
	}
	return false
}
