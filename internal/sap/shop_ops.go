package sap

import (
	"github.com/saptest/autopets/internal/metrics"
	"github.com/saptest/autopets/internal/petdb"
	"github.com/saptest/autopets/internal/saperr"
)

// BuyPet deducts cost and places the shop pet at slot into targetSlot: an
// empty target places it directly, an occupied target of the same species
// levels it up (spec.md §4.5's exp 2 -> level 2, exp 5 -> level 3
// thresholds), any other occupant is a rejected purchase.
func (t *Team) BuyPet(slot, targetSlot int) error {
	if t.Shop == nil || t.Shop.State != ShopOpen {
		return saperr.New(saperr.InvalidTeamAction, "shop not open for team %q", t.Name)
	}
	if slot < 0 || slot >= len(t.Shop.PetSlots) || t.Shop.PetSlots[slot].Name == "" {
		return saperr.New(saperr.InvalidTeamAction, "empty shop pet slot %d", slot)
	}
	if targetSlot < 0 || targetSlot >= len(t.Friends) {
		return saperr.New(saperr.InvalidTeamAction, "target slot %d out of range", targetSlot)
	}
	slotData := t.Shop.PetSlots[slot]
	cost := slotData.Cost - t.Shop.PetDiscount
	if cost < 1 {
		cost = 1
	}
	if t.Gold < cost {
		return saperr.New(saperr.InvalidTeamAction, "insufficient gold to buy %q", slotData.Name)
	}

	rec, err := petdb.Pet(slotData.Name)
	if err != nil {
		return err
	}

	existing := t.Friends[targetSlot]
	if existing != nil && existing.Name != slotData.Name {
		return saperr.New(saperr.InvalidTeamAction, "target slot %d occupied by a different species", targetSlot)
	}

	t.Gold -= cost
	t.Shop.PetSlots[slot] = ShopSlot{}
	metrics.ShopOperations.WithLabelValues("buy_pet").Inc()

	eng := newEngine(t, nil, t.budget, t.History)

	if existing != nil {
		if err := (GainExperience{N: 1}).apply(&effectCtx{origin: existing, team: t, outcome: Outcome{}, nodeID: -1, engine: eng}, existing); err != nil {
			return err
		}
		eng.push(t, Outcome{Status: StatusBuyPet, AffectedPet: existing, Position: Position{Kind: PosSpecific, N: targetSlot}}, -1)
		return eng.drain()
	}

	pet := NewPetFromRecord(rec, 1)
	pet.Pos = targetSlot
	t.Friends[targetSlot] = pet
	eng.push(t, Outcome{Status: StatusBuyPet, AffectedPet: pet, Position: Position{Kind: PosSpecific, N: targetSlot}}, -1)
	eng.push(t, Outcome{Status: StatusSummoned, AffectedPet: pet, Position: Position{Kind: PosSpecific, N: targetSlot}}, -1)
	return eng.drain()
}

// Sell removes the pet at slot, refunding 1 gold, and enqueues a SellPet
// outcome so sell-triggered effects run through the normal effect engine.
// No pet built in factory.go has a sell effect, so the refund is 1 gold.
func (t *Team) Sell(slot int) error {
	if slot < 0 || slot >= len(t.Friends) || t.Friends[slot] == nil {
		return saperr.New(saperr.InvalidTeamAction, "no pet at slot %d to sell", slot)
	}
	pet := t.Friends[slot]
	t.Friends[slot] = nil
	t.Sold = append(t.Sold, pet)
	t.Gold++
	metrics.ShopOperations.WithLabelValues("sell").Inc()

	eng := newEngine(t, nil, t.budget, t.History)
	eng.push(t, Outcome{Status: StatusSellPet, AffectedPet: pet, Position: Position{Kind: PosSpecific, N: slot}}, -1)
	return eng.drain()
}

// BuyFood deducts cost and either attaches the food to target's item slot
// (holdable, empty slot) or applies its stats immediately (consumable, or
// a target that already holds an item, which it keeps).
func (t *Team) BuyFood(slot, target int) error {
	if t.Shop == nil || t.Shop.State != ShopOpen {
		return saperr.New(saperr.InvalidTeamAction, "shop not open for team %q", t.Name)
	}
	if slot < 0 || slot >= len(t.Shop.FoodSlots) || t.Shop.FoodSlots[slot].Name == "" {
		return saperr.New(saperr.InvalidTeamAction, "empty shop food slot %d", slot)
	}
	if target < 0 || target >= len(t.Friends) || t.Friends[target] == nil {
		return saperr.New(saperr.InvalidTeamAction, "no pet at target slot %d", target)
	}
	slotData := t.Shop.FoodSlots[slot]
	if t.Gold < slotData.Cost {
		return saperr.New(saperr.InvalidTeamAction, "insufficient gold to buy %q", slotData.Name)
	}
	rec, err := petdb.Food(slotData.Name)
	if err != nil {
		return err
	}
	t.Gold -= slotData.Cost
	t.Shop.FoodSlots[slot] = ShopSlot{}
	metrics.ShopOperations.WithLabelValues("buy_food").Inc()

	pet := t.Friends[target]
	eng := newEngine(t, nil, t.budget, t.History)
	eng.push(t, Outcome{Status: StatusBuyFood, AffectedPet: pet, Position: Position{Kind: PosSpecific, N: target}}, -1)

	if rec.Holdable && pet.Item == nil {
		uses := -1
		if rec.SingleUse {
			uses = 1
		}
		pet.Item = &ItemSlot{Food: &Food{Name: rec.Name, Effect: buildFoodEffect(rec.Name)}, Uses: uses}
	} else {
		pet.Stats = pet.Stats.Add(Statistics{Attack: rec.EffectAttack, Health: rec.EffectHealth})
		eng.push(t, Outcome{Status: StatusEatFood, AffectedPet: pet, Position: Position{Kind: PosSpecific, N: target}}, -1)
	}
	return eng.drain()
}

// shopJSON is the wire shape for Shop, used by Team's MarshalJSON.
type shopJSON struct {
	State     ShopState  `json:"state"`
	Tier      int        `json:"tier"`
	PetSlots  []ShopSlot `json:"pet_slots"`
	FoodSlots []ShopSlot `json:"food_slots"`
	ExtraPet  int        `json:"extra_pet_slots"`
	ExtraFood int        `json:"extra_food_slots"`
	Discount  int        `json:"pet_discount"`
}

func (s *Shop) toJSON() *shopJSON {
	return &shopJSON{
		State: s.State, Tier: s.Tier, PetSlots: s.PetSlots, FoodSlots: s.FoodSlots,
		ExtraPet: s.ExtraPetSlots, ExtraFood: s.ExtraFoodSlots, Discount: s.PetDiscount,
	}
}

func shopFromJSON(doc *shopJSON) (*Shop, error) {
	return &Shop{
		State: doc.State, Tier: doc.Tier, PetSlots: doc.PetSlots, FoodSlots: doc.FoodSlots,
		ExtraPetSlots: doc.ExtraPet, ExtraFoodSlots: doc.ExtraFood, PetDiscount: doc.Discount,
	}, nil
}
