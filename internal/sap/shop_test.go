package sap

import "testing"

func TestOpenShopAdvancesTurnAndTier(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 1)
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	if team.Turn != 1 {
		t.Fatalf("expected turn 1 after first OpenShop, got %d", team.Turn)
	}
	if team.Shop.Tier != tierForTurn(1) {
		t.Fatalf("expected tier %d for turn 1, got %d", tierForTurn(1), team.Shop.Tier)
	}
	if len(team.Shop.PetSlots) != petSlotCount(team.Shop.Tier) {
		t.Fatalf("expected %d pet slots at tier %d, got %d", petSlotCount(team.Shop.Tier), team.Shop.Tier, len(team.Shop.PetSlots))
	}
}

func TestOpenShopAlreadyOpenErrors(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 1)
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	if err := team.OpenShop(); err == nil {
		t.Fatal("expected error opening an already-open shop")
	}
}

func TestTierForTurnCapsAtSix(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 2, 9: 5, 10: 6, 50: 6}
	for turn, want := range cases {
		if got := tierForTurn(turn); got != want {
			t.Errorf("tierForTurn(%d) = %d, want %d", turn, got, want)
		}
	}
}

func TestCloseShopRequiresOpenShop(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 1)
	if err := team.CloseShop(); err == nil {
		t.Fatal("expected error closing a shop that was never opened")
	}
}

func TestRollSpendsGoldAndRerolls(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 1)
	team.Gold = 10
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	before := team.Gold
	if err := team.Roll(); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if team.Gold != before-1 {
		t.Fatalf("expected roll to cost 1 gold, went from %d to %d", before, team.Gold)
	}
}

func TestRollInsufficientGoldErrors(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 1)
	team.Gold = 0
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	if err := team.Roll(); err == nil {
		t.Fatal("expected insufficient-gold error on Roll with 0 gold")
	}
}

func TestFreeRollDoesNotSpendGold(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 1)
	team.Gold = 5
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	team.FreeRolls = 1
	if err := team.Roll(); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if team.Gold != 5 {
		t.Fatalf("expected a free roll to not spend gold, got %d", team.Gold)
	}
	if team.FreeRolls != 0 {
		t.Fatalf("expected free roll counter consumed, got %d", team.FreeRolls)
	}
}

func TestFreezePersistsAcrossRoll(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 1)
	team.Gold = 10
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	if len(team.Shop.PetSlots) == 0 {
		t.Fatal("expected at least one pet slot")
	}
	frozenName := team.Shop.PetSlots[0].Name
	if err := team.Freeze(team.Shop.PetSlots[0].Kind, 0); err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	if !team.Shop.PetSlots[0].Frozen {
		t.Fatal("expected slot 0 frozen after Freeze")
	}
	if err := team.Roll(); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if team.Shop.PetSlots[0].Name != frozenName {
		t.Fatalf("expected frozen slot to survive a roll unchanged, got %q want %q", team.Shop.PetSlots[0].Name, frozenName)
	}
}

func TestShopDeterminismSameSeedSameRolls(t *testing.T) {
	a := NewTeam("A", DefaultMaxSize, 777)
	b := NewTeam("B", DefaultMaxSize, 777)
	a.Gold, b.Gold = 20, 20

	for _, team := range []*Team{a, b} {
		if err := team.OpenShop(); err != nil {
			t.Fatalf("OpenShop: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := a.Roll(); err != nil {
			t.Fatalf("Roll: %v", err)
		}
		if err := b.Roll(); err != nil {
			t.Fatalf("Roll: %v", err)
		}
	}
	if len(a.Shop.PetSlots) != len(b.Shop.PetSlots) {
		t.Fatalf("slot count mismatch: %d vs %d", len(a.Shop.PetSlots), len(b.Shop.PetSlots))
	}
	for i := range a.Shop.PetSlots {
		if a.Shop.PetSlots[i].Name != b.Shop.PetSlots[i].Name {
			t.Fatalf("slot %d diverged under identical seed/ops: %q vs %q", i, a.Shop.PetSlots[i].Name, b.Shop.PetSlots[i].Name)
		}
	}
}

func TestBuyPetPlacesIntoEmptySlot(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	team.Gold = 10
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	slotName := team.Shop.PetSlots[0].Name
	if slotName == "" {
		t.Fatal("expected a populated pet slot after OpenShop")
	}
	before := team.Gold
	if err := team.BuyPet(0, 0); err != nil {
		t.Fatalf("BuyPet: %v", err)
	}
	if team.Friends[0] == nil || team.Friends[0].Name != slotName {
		t.Fatalf("expected bought pet %q placed at slot 0, got %+v", slotName, team.Friends[0])
	}
	if team.Gold >= before {
		t.Fatalf("expected gold spent on purchase, before=%d after=%d", before, team.Gold)
	}
	if team.Shop.PetSlots[0].Name != "" {
		t.Fatal("expected shop slot cleared after purchase")
	}
}

func TestBuyPetInsufficientGoldErrors(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	team.Gold = 0
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	if err := team.BuyPet(0, 0); err == nil {
		t.Fatal("expected insufficient-gold error")
	}
}

func TestBuyPetMergeLevelsUp(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	team.Gold = 100
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	name := team.Shop.PetSlots[0].Name
	if err := team.BuyPet(0, 0); err != nil {
		t.Fatalf("BuyPet: %v", err)
	}
	// Force another identical-species slot into position 1, then buy it
	// into position 0 to trigger a merge instead of a placement.
	team.Shop.PetSlots[1] = ShopSlot{Kind: team.Shop.PetSlots[0].Kind, Name: name, Cost: 3}
	if team.Friends[0].Experience != 0 {
		t.Fatalf("expected fresh purchase to start at 0 experience, got %d", team.Friends[0].Experience)
	}
	if err := team.BuyPet(1, 0); err != nil {
		t.Fatalf("BuyPet merge: %v", err)
	}
	if team.Friends[0].Experience != 1 {
		t.Fatalf("expected merge to grant 1 experience, got %d", team.Friends[0].Experience)
	}
}

func TestBuyPetDifferentSpeciesIntoOccupiedSlotFails(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	team.Gold = 100
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	first := team.Shop.PetSlots[0].Name
	if err := team.BuyPet(0, 0); err != nil {
		t.Fatalf("BuyPet: %v", err)
	}
	var other string
	for _, rec := range []string{"Ant", "Hedgehog", "Blowfish", "Deer"} {
		if rec != first {
			other = rec
			break
		}
	}
	team.Shop.PetSlots[1] = ShopSlot{Kind: team.Shop.PetSlots[0].Kind, Name: other, Cost: 3}
	if err := team.BuyPet(1, 0); err == nil {
		t.Fatal("expected buying a different species into an occupied slot to fail")
	}
}

func TestSellRefundsGoldAndMovesToSold(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	pet := NewPet("Ant", 1, Statistics{Attack: 2, Health: 1})
	team.Friends[0] = pet
	before := team.Gold
	if err := team.Sell(0); err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if team.Gold != before+1 {
		t.Fatalf("expected +1 gold refund, before=%d after=%d", before, team.Gold)
	}
	if team.Friends[0] != nil {
		t.Fatal("expected slot emptied after sell")
	}
	if len(team.Sold) != 1 || team.Sold[0] != pet {
		t.Fatalf("expected sold pet tracked in Sold, got %+v", team.Sold)
	}
}

func TestSellEmptySlotErrors(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	if err := team.Sell(0); err == nil {
		t.Fatal("expected error selling an empty slot")
	}
}

func TestBuyFoodAttachesHoldableItem(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	team.Gold = 10
	pet := NewPet("Ant", 1, Statistics{Attack: 2, Health: 1})
	team.Friends[0] = pet
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	team.Shop.FoodSlots[0] = ShopSlot{Name: "Garlic", Cost: 3}
	if err := team.BuyFood(0, 0); err != nil {
		t.Fatalf("BuyFood: %v", err)
	}
	if pet.Item == nil || pet.Item.Food.Name != "Garlic" {
		t.Fatalf("expected Garlic attached as a held item, got %+v", pet.Item)
	}
}

func TestBuyFoodConsumableAppliesImmediately(t *testing.T) {
	team := NewTeam("A", DefaultMaxSize, 5)
	team.Gold = 10
	pet := NewPet("Ant", 1, Statistics{Attack: 1, Health: 1})
	team.Friends[0] = pet
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	team.Shop.FoodSlots[0] = ShopSlot{Name: "Apple", Cost: 3}
	if err := team.BuyFood(0, 0); err != nil {
		t.Fatalf("BuyFood: %v", err)
	}
	if pet.Stats.Attack != 2 || pet.Stats.Health != 2 {
		t.Fatalf("expected Apple's +1/+1 applied immediately, got %+v", pet.Stats)
	}
	if pet.Item != nil {
		t.Fatal("expected a non-holdable food to not attach as an item")
	}
}
