package sap

import (
	"github.com/saptest/autopets/internal/metrics"
	"github.com/saptest/autopets/internal/petdb"
	"github.com/saptest/autopets/internal/saperr"
)

// ShopState is the two-state shop state machine from spec.md §4.5.
type ShopState int

const (
	ShopClosed ShopState = iota
	ShopOpen
)

// ShopSlot is one roll-able pet or food slot.
type ShopSlot struct {
	Kind   petdb.EntityKind
	Name   string
	Cost   int
	Frozen bool
}

// Shop is the per-team shop state: tier progression, slots, and the
// frozen/roll bookkeeping spec.md §4.5 describes.
type Shop struct {
	State ShopState
	Tier  int

	PetSlots  []ShopSlot
	FoodSlots []ShopSlot

	ExtraPetSlots  int
	ExtraFoodSlots int
	PetDiscount    int
}

// NewShop returns a closed shop at tier 1, ready for OpenShop.
func NewShop() *Shop {
	return &Shop{State: ShopClosed, Tier: 1}
}

// tierForTurn implements spec.md §4.5's documented tier formula:
// tier = min(6, 1 + floor(turn/2)).
func tierForTurn(turn int) int {
	tier := 1 + turn/2
	if tier > 6 {
		tier = 6
	}
	return tier
}

// petSlotCount and foodSlotCount give the shop-tier slot table: pet slots
// grow from 3 to 5 across tiers 1-6, food slots from 1 to 2.
func petSlotCount(tier int) int {
	switch {
	case tier <= 1:
		return 3
	case tier <= 3:
		return 4
	default:
		return 5
	}
}

func foodSlotCount(tier int) int {
	if tier >= 3 {
		return 2
	}
	return 1
}

// OpenShop transitions Closed -> Open, advances the turn, recomputes tier,
// and restocks every slot. Fails if the shop is already open.
func (t *Team) OpenShop() error {
	if t.Shop == nil {
		t.Shop = NewShop()
	}
	if t.Shop.State == ShopOpen {
		return saperr.New(saperr.InvalidTeamAction, "shop already open for team %q", t.Name)
	}
	t.Turn++
	t.Shop.Tier = tierForTurn(t.Turn)
	t.Shop.State = ShopOpen
	t.Shop.restock(t)
	metrics.ShopOperations.WithLabelValues("open").Inc()

	eng := newEngine(t, nil, t.budget, t.History)
	eng.push(t, Outcome{Status: StatusStartTurn}, -1)
	return eng.drain()
}

// CloseShop transitions Open -> Closed, firing EndTurn. Slot contents are
// left in place; the next OpenShop refills the unfrozen slots and keeps the
// frozen ones.
func (t *Team) CloseShop() error {
	if t.Shop == nil || t.Shop.State != ShopOpen {
		return saperr.New(saperr.InvalidTeamAction, "shop not open for team %q", t.Name)
	}
	eng := newEngine(t, nil, t.budget, t.History)
	eng.push(t, Outcome{Status: StatusEndTurn}, -1)
	if err := eng.drain(); err != nil {
		return err
	}
	t.Shop.State = ShopClosed
	metrics.ShopOperations.WithLabelValues("close").Inc()
	return nil
}

// restock refills every unfrozen slot from petdb, filtered to the shop's
// current tier and lower. Frozen slots, including ones frozen before the
// previous CloseShop, keep their contents.
func (s *Shop) restock(t *Team) {
	petCount := petSlotCount(s.Tier) + s.ExtraPetSlots
	foodCount := foodSlotCount(s.Tier) + s.ExtraFoodSlots

	s.PetSlots = resizeSlots(s.PetSlots, petCount)
	s.FoodSlots = resizeSlots(s.FoodSlots, foodCount)

	var pets []petdb.PetRecord
	for _, rec := range petdb.QueryPets(petdb.Filter{}) {
		if rec.Tier <= s.Tier {
			pets = append(pets, rec)
		}
	}
	var foods []petdb.FoodRecord
	for _, rec := range petdb.QueryFoods(petdb.Filter{}) {
		if rec.Tier <= s.Tier {
			foods = append(foods, rec)
		}
	}

	for i := range s.PetSlots {
		if s.PetSlots[i].Frozen {
			continue
		}
		if len(pets) == 0 {
			continue
		}
		rec := pets[t.RNG.Intn(len(pets))]
		s.PetSlots[i] = ShopSlot{Kind: petdb.EntityPet, Name: rec.Name, Cost: 3}
	}
	for i := range s.FoodSlots {
		if s.FoodSlots[i].Frozen {
			continue
		}
		if len(foods) == 0 {
			continue
		}
		rec := foods[t.RNG.Intn(len(foods))]
		s.FoodSlots[i] = ShopSlot{Kind: petdb.EntityFood, Name: rec.Name, Cost: rec.Cost}
	}
}

func resizeSlots(s []ShopSlot, n int) []ShopSlot {
	if len(s) == n {
		return s
	}
	out := make([]ShopSlot, n)
	copy(out, s)
	return out
}

// rerollUnfrozen re-rolls every unfrozen slot without checking state (used
// by ShopRoll's internal free-reroll action, as opposed to Team.Roll which
// is the gold-spending entrypoint).
func (s *Shop) rerollUnfrozen(t *Team) {
	s.restock(t)
}

// Roll spends 1 gold (or consumes a queued free roll) and re-rolls every
// unfrozen slot. Valid only while the shop is open.
func (t *Team) Roll() error {
	if t.Shop == nil || t.Shop.State != ShopOpen {
		return saperr.New(saperr.InvalidTeamAction, "shop not open for team %q", t.Name)
	}
	if t.FreeRolls > 0 {
		t.FreeRolls--
	} else {
		if t.Gold < 1 {
			return saperr.New(saperr.InvalidTeamAction, "insufficient gold to roll for team %q", t.Name)
		}
		t.Gold--
	}
	t.Shop.rerollUnfrozen(t)
	metrics.ShopOperations.WithLabelValues("roll").Inc()

	eng := newEngine(t, nil, t.budget, t.History)
	eng.push(t, Outcome{Status: StatusRoll}, -1)
	return eng.drain()
}

// Freeze toggles the frozen flag on a shop slot.
func (t *Team) Freeze(kind petdb.EntityKind, index int) error {
	if t.Shop == nil {
		return saperr.New(saperr.InvalidTeamAction, "no shop for team %q", t.Name)
	}
	slots := t.Shop.slotsFor(kind)
	if index < 0 || index >= len(slots) {
		return saperr.New(saperr.InvalidTeamAction, "shop slot %d out of range", index)
	}
	slots[index].Frozen = !slots[index].Frozen
	metrics.ShopOperations.WithLabelValues("freeze").Inc()
	return nil
}

func (s *Shop) slotsFor(kind petdb.EntityKind) []ShopSlot {
	if kind == petdb.EntityFood {
		return s.FoodSlots
	}
	return s.PetSlots
}
