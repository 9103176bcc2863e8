package sap

import "github.com/saptest/autopets/internal/metrics"

// Result is the terminal state of a Fight call; None means the battle
// continues and the caller should call Fight again for the next phase.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
	ResultTie
)

// battleState tracks whether the StartBattle phase has already run for a
// given pair, so repeated Fight calls only take the snapshot once.
type battleState struct {
	started bool
}

// Fight performs exactly one combat phase between self and other and
// returns the terminal result, or ResultNone if the battle continues.
// Looping to completion is the caller's responsibility (spec.md §4.4) so
// observers can inspect team state between phases.
func (t *Team) Fight(other *Team) (Result, error) {
	if !t.battle.started {
		t.snapshot()
		other.snapshot()
		t.battle.started = true
		other.battle.started = true

		eng := newEngine(t, other, t.budget, t.History)
		eng.push(t, Outcome{Status: StatusStartBattle}, -1)
		eng.push(other, Outcome{Status: StatusStartBattle}, -1)
		if err := eng.drain(); err != nil {
			return ResultNone, err
		}
		eng.compactFainted()
		if r, done := terminal(t, other); done {
			return r, nil
		}
	}

	front, oFront := t.frontPet(), other.frontPet()
	eng := newEngine(t, other, t.budget, t.History)
	if front != nil && oFront != nil {
		eng.push(t, Outcome{Status: StatusAttack, AffectedPet: front, AfflictingPet: oFront, Position: Position{Kind: PosOnSelf}}, -1)
		eng.push(other, Outcome{Status: StatusAttack, AffectedPet: oFront, AfflictingPet: front, Position: Position{Kind: PosOnSelf}}, -1)

		frontBefore, oFrontBefore := front.Stats.Health, oFront.Stats.Health
		dmgToFront := mitigate(front, Statistics{Health: oFront.Stats.Attack})
		dmgToOFront := mitigate(oFront, Statistics{Health: front.Stats.Attack})
		front.Stats = front.Stats.Sub(dmgToFront)
		oFront.Stats = oFront.Stats.Sub(dmgToOFront)
		metrics.PhasesRun.Inc()

		if front.Stats.Health < frontBefore {
			eng.push(t, Outcome{Status: StatusHurt, AffectedPet: front, AfflictingPet: oFront, Position: Position{Kind: PosOnSelf}}, -1)
		}
		if oFront.Stats.Health < oFrontBefore {
			eng.push(other, Outcome{Status: StatusHurt, AffectedPet: oFront, AfflictingPet: front, Position: Position{Kind: PosOnSelf}}, -1)
		}
		if front.Stats.Health == 0 {
			eng.push(t, Outcome{Status: StatusFaint, AffectedPet: front, AfflictingPet: oFront, Position: Position{Kind: PosOnSelf}}, -1)
			eng.push(t, Outcome{Status: StatusAnyFaint, AffectedPet: front, Position: Position{Kind: PosOnSelf}}, -1)
			eng.push(other, Outcome{Status: StatusKnockOut, AffectedPet: oFront, AfflictingPet: front, Position: Position{Kind: PosOnSelf}}, -1)
		}
		if oFront.Stats.Health == 0 {
			eng.push(other, Outcome{Status: StatusFaint, AffectedPet: oFront, AfflictingPet: front, Position: Position{Kind: PosOnSelf}}, -1)
			eng.push(other, Outcome{Status: StatusAnyFaint, AffectedPet: oFront, Position: Position{Kind: PosOnSelf}}, -1)
			eng.push(t, Outcome{Status: StatusKnockOut, AffectedPet: front, AfflictingPet: oFront, Position: Position{Kind: PosOnSelf}}, -1)
		}
	}

	if err := eng.drain(); err != nil {
		return ResultNone, err
	}
	eng.compactFainted()

	r, _ := terminal(t, other)
	return r, nil
}

func terminal(self, other *Team) (Result, bool) {
	selfAlive, otherAlive := self.alive(), other.alive()
	switch {
	case !selfAlive && !otherAlive:
		return ResultTie, true
	case !otherAlive:
		return ResultWin, true
	case !selfAlive:
		return ResultLoss, true
	default:
		return ResultNone, false
	}
}

// snapshot takes the stored_friends and stored toys deep copies used by
// Restore.
func (t *Team) snapshot() {
	t.storedFriends = make([]*Pet, len(t.Friends))
	for i, p := range t.Friends {
		t.storedFriends[i] = p.Clone()
	}
	t.storedToys = make([]*Toy, len(t.Toys))
	for i, toy := range t.Toys {
		t.storedToys[i] = toy.Clone()
	}
	t.Fainted = nil
	t.battle = battleState{}
}
