package sap

import "github.com/saptest/autopets/internal/saperr"

// Restore swaps the current roster and auxiliary battle state back to the
// stored_friends snapshot taken at the start of the most recent Fight call
// (spec.md §4.4/§8 scenario 5): fainted list clears, toy and pet effect use
// counters revert to their pre-battle values, and positions match the
// snapshot exactly. Returns InvalidTeamAction if no snapshot exists yet
// (Fight was never called).
func (t *Team) Restore() error {
	if t.storedFriends == nil {
		return saperr.New(saperr.InvalidTeamAction, "team %q has no stored snapshot to restore", t.Name)
	}
	t.Friends = make([]*Pet, len(t.storedFriends))
	for i, p := range t.storedFriends {
		t.Friends[i] = p.Clone()
		if t.Friends[i] != nil {
			t.Friends[i].Pos = i
		}
	}
	t.Toys = make([]*Toy, len(t.storedToys))
	for i, toy := range t.storedToys {
		t.Toys[i] = toy.Clone()
	}
	t.Fainted = nil
	t.Sold = nil
	t.queue = nil
	t.queueNodes = nil
	t.battle = battleState{}
	return nil
}
