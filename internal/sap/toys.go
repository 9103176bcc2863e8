package sap

import "github.com/saptest/autopets/internal/petdb"

// buildToyEffects maps a toy name to its hard-mode effect rows. Only the
// four toys fully specified in the wiki get real behavior here (spec.md §9
// keeps the rest of the source's unfinished Toy subsystem out of scope).
func buildToyEffects(name string) []*Effect {
	switch name {
	case "Balloon":
		return []*Effect{{
			Trigger: Trigger{Status: StatusStartTurn, Target: TargetShop}, Target: TargetFriend,
			Position: Position{Kind: PosAny}, Action: GainFood{FoodName: "Garlic"},
		}}
	case "Tennis Ball":
		return []*Effect{{
			Trigger: Trigger{Status: StatusStartBattle, Target: TargetFriend}, Target: TargetEnemy,
			Position: Position{Kind: PosAny}, Action: RemoveStats{Stats: Statistics{Health: 1}},
		}}
	case "Garlic Press":
		return []*Effect{{
			Trigger: Trigger{Status: StatusStartTurn, Target: TargetShop}, Target: TargetFriend,
			Position: Position{Kind: PosRange, Range: [2]int{0, 1}}, Action: GainFood{FoodName: "Garlic"},
		}}
	case "Radio":
		return []*Effect{{
			Trigger: Trigger{Status: StatusStartTurn, Target: TargetShop}, Target: TargetFriend,
			Position: Position{Kind: PosAll}, Action: AddStats{Stats: Statistics{Attack: 1}},
		}}
	default:
		return nil
	}
}

// NewToyByName looks up name in petdb and constructs a Toy with its wired
// effects, for callers adding a toy to a team (e.g. shop toy purchases).
func NewToyByName(name string) (*Toy, error) {
	rec, err := petdb.Toy(name)
	if err != nil {
		return nil, err
	}
	return NewToy(rec.Name, rec.Tier, buildToyEffects(rec.Name)), nil
}

func rebuildToyEffects(name string) ([]*Effect, error) {
	if _, err := petdb.Toy(name); err != nil {
		return nil, err
	}
	return buildToyEffects(name), nil
}
