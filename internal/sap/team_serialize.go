package sap

import (
	"github.com/goccy/go-json"

	"github.com/saptest/autopets/internal/config"
	"github.com/saptest/autopets/internal/saperr"
)

// petJSON is the wire shape for a Pet. Effects are never serialized
// directly (Action is a closed interface with no natural JSON encoding);
// they are rebuilt from (Name, Level) on unmarshal via RebuildEffects, per
// spec.md §3's "effect: list<Effect> derived from (name, level)" invariant.
// Pet identity need not round-trip (spec.md §6); positions must, and do,
// via the Friends array index.
type petJSON struct {
	Name       string     `json:"name"`
	Tier       int        `json:"tier"`
	Level      int        `json:"level"`
	Experience int        `json:"experience"`
	Stats      Statistics `json:"stats"`
	Item       *itemJSON  `json:"item,omitempty"`
}

type itemJSON struct {
	FoodName string `json:"food_name"`
	Uses     int    `json:"uses"`
	Temp     bool   `json:"temp"`
}

type toyJSON struct {
	Name string `json:"name"`
	Tier int    `json:"tier"`
}

type teamJSON struct {
	Name      string         `json:"name"`
	MaxSize   int            `json:"max_size"`
	Friends   []*petJSON     `json:"friends"`
	Toys      []*toyJSON     `json:"toys"`
	Counters  map[string]int `json:"counters"`
	Gold      int            `json:"gold"`
	Lives     int            `json:"lives"`
	Turn      int            `json:"turn"`
	FreeRolls int            `json:"free_rolls"`
	Seed      int64          `json:"seed"`
	Shop      *shopJSON      `json:"shop,omitempty"`
}

// MarshalJSON implements a round-trippable Team encoding covering shop
// state and counters, using goccy/go-json as the codec throughout the
// domain per the dependency-maximization policy.
func (t *Team) MarshalJSON() ([]byte, error) {
	doc := teamJSON{
		Name: t.Name, MaxSize: t.MaxSize, Counters: t.Counters,
		Gold: t.Gold, Lives: t.Lives, Turn: t.Turn, FreeRolls: t.FreeRolls,
		Seed: t.RNG.Seed(),
	}
	for _, p := range t.Friends {
		if p == nil {
			doc.Friends = append(doc.Friends, nil)
			continue
		}
		pj := &petJSON{Name: p.Name, Tier: p.Tier, Level: p.Level, Experience: p.Experience, Stats: p.Stats}
		if p.Item != nil && p.Item.Food != nil {
			pj.Item = &itemJSON{FoodName: p.Item.Food.Name, Uses: p.Item.Uses, Temp: p.Item.Temp}
		}
		doc.Friends = append(doc.Friends, pj)
	}
	for _, toy := range t.Toys {
		doc.Toys = append(doc.Toys, &toyJSON{Name: toy.Name, Tier: toy.Tier})
	}
	if t.Shop != nil {
		doc.Shop = t.Shop.toJSON()
	}
	return json.Marshal(doc)
}

// UnmarshalJSON rebuilds a Team from its wire shape, reconstructing pet
// effects from (name, level) and shop state via internal/petdb lookups.
func (t *Team) UnmarshalJSON(data []byte) error {
	var doc teamJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return saperr.Wrap(saperr.ParseFailure, err, "unmarshal team")
	}
	t.Name = doc.Name
	t.MaxSize = doc.MaxSize
	t.Counters = doc.Counters
	if t.Counters == nil {
		t.Counters = map[string]int{}
	}
	t.Gold, t.Lives, t.Turn, t.FreeRolls = doc.Gold, doc.Lives, doc.Turn, doc.FreeRolls
	t.RNG = newSeededRNG(doc.Seed)
	t.budget = config.DefaultEngine().RuntimeBudget

	t.Friends = make([]*Pet, len(doc.Friends))
	for i, pj := range doc.Friends {
		if pj == nil {
			continue
		}
		effects, err := RebuildEffects(pj.Name, pj.Level)
		if err != nil {
			return err
		}
		pet := NewPet(pj.Name, pj.Tier, pj.Stats)
		pet.Level, pet.Experience, pet.Pos = pj.Level, pj.Experience, i
		pet.Effects = effects
		if pj.Item != nil {
			pet.Item = &ItemSlot{Food: &Food{Name: pj.Item.FoodName, Effect: buildFoodEffect(pj.Item.FoodName)}, Uses: pj.Item.Uses, Temp: pj.Item.Temp}
		}
		t.Friends[i] = pet
	}

	for _, tj := range doc.Toys {
		effects, err := rebuildToyEffects(tj.Name)
		if err != nil {
			return err
		}
		t.Toys = append(t.Toys, NewToy(tj.Name, tj.Tier, effects))
	}

	if doc.Shop != nil {
		shop, err := shopFromJSON(doc.Shop)
		if err != nil {
			return err
		}
		t.Shop = shop
	}
	return nil
}
