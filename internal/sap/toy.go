package sap

import "github.com/google/uuid"

// Toy is a team-level Effect bundle from the hard-mode subsystem: it fires
// through the same trigger queue as a pet's own effects but belongs to the
// Team rather than any one pet. Only the toys fully specified in the wiki
// are implemented here (Balloon, Tennis Ball, Garlic Press, Radio), per
// spec.md §9's note that the source's broader Toy subsystem is unfinished.
type Toy struct {
	ID      uuid.UUID
	Name    string
	Tier    int
	Effects []*Effect
}

// NewToy constructs a toy with fresh identity from a name/tier and the
// effect rows backing it; see petdb.ToyRecord for the static data and
// toys.go for the four implemented toys' effect definitions.
func NewToy(name string, tier int, effects []*Effect) *Toy {
	return &Toy{ID: uuid.New(), Name: name, Tier: tier, Effects: effects}
}

// Clone deep-copies a toy, including fresh Uses counters on its effects,
// for the stored_friends-equivalent snapshot Team.Restore rolls back to.
func (t *Toy) Clone() *Toy {
	if t == nil {
		return nil
	}
	cp := &Toy{ID: t.ID, Name: t.Name, Tier: t.Tier, Effects: make([]*Effect, len(t.Effects))}
	for i, e := range t.Effects {
		ecopy := *e
		if e.Uses != nil {
			u := *e.Uses
			ecopy.Uses = &u
		}
		cp.Effects[i] = &ecopy
	}
	return cp
}
