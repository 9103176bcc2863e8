package sap

import "github.com/google/uuid"

// Trigger is the pattern half of an Effect: which Outcome.Status it listens
// for and on which side of the outcome (Friend/Enemy/Either/Shop).
type Trigger struct {
	Status Status
	Target Target
}

// Effect is a declarative rule: trigger pattern plus the action it fires,
// expressed as data per spec.md §3/§9 rather than as a bespoke method per
// pet. Uses is nil for unbounded effects, non-nil (decremented to 0, then
// skipped) for finite ones.
type Effect struct {
	Trigger  Trigger
	Target   Target
	Position Position
	Action   Action
	Uses     *int
	Temp     bool // dropped on level-up (e.g. a temp-effect summoned token)
}

func (e *Effect) usable() bool { return e.Uses == nil || *e.Uses > 0 }

func (e *Effect) consume() {
	if e.Uses != nil {
		*e.Uses--
	}
}

// Food is an item's effect bundle, attachable to a Pet's ItemSlot or
// wielded directly from the shop (a consumable with no holder).
type Food struct {
	Name   string
	Effect *Effect
}

// ItemSlot is the optional food a pet holds.
type ItemSlot struct {
	Food  *Food
	Uses  int // -1 = infinite
	Temp  bool
}

func (s *ItemSlot) consumed() bool { return s != nil && s.Uses == 0 }

// Pet is the mutable, reference-shared unit on a team's roster. Shared by
// pointer rather than a Rc<RefCell<>>-style wrapper: the engine is
// single-threaded cooperative (spec.md §5), so a plain *Pet gives every
// queued Outcome and every other effect's target the same interior
// mutability spec.md's design notes ask for, without extra indirection.
type Pet struct {
	ID         uuid.UUID
	Name       string
	Tier       int
	Level      int
	Experience int
	Stats      Statistics
	Item       *ItemSlot
	Effects    []*Effect
	Seed       *int64 // optional per-pet RNG override
	Pos        int    // maintained by the owning Team, not by Pet itself
}

// NewPet constructs a pet with fresh identity. Callers normally go through
// petdb to populate Name/Tier/Stats/Effects from a PetRecord; NewPet itself
// is DB-agnostic so tests can build synthetic pets directly.
func NewPet(name string, tier int, stats Statistics) *Pet {
	return &Pet{ID: uuid.New(), Name: name, Tier: tier, Level: 1, Stats: stats}
}

func (p *Pet) fainted() bool { return p == nil || p.Stats.Health == 0 }

// Clone deep-copies a pet (new ID, same name/stats/item/effects) for the
// stored_friends restore snapshot and for Restore.
func (p *Pet) Clone() *Pet {
	if p == nil {
		return nil
	}
	cp := *p
	cp.ID = uuid.New()
	if p.Item != nil {
		item := *p.Item
		if p.Item.Food != nil {
			food := *p.Item.Food
			item.Food = &food
		}
		cp.Item = &item
	}
	cp.Effects = make([]*Effect, len(p.Effects))
	for i, e := range p.Effects {
		ecopy := *e
		if e.Uses != nil {
			u := *e.Uses
			ecopy.Uses = &u
		}
		cp.Effects[i] = &ecopy
	}
	return &cp
}
