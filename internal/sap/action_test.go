package sap

import "testing"

func newActionCtx(team *Team, origin *Pet, outcome Outcome) *effectCtx {
	eng := newEngine(team, nil, 1000, nil)
	return &effectCtx{origin: origin, team: team, outcome: outcome, nodeID: -1, engine: eng}
}

func TestAddStatsClamps(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Attack: MaxStat - 1, Health: 3}
	ctx := newActionCtx(team, pet, Outcome{})
	if err := (AddStats{Stats: Statistics{Attack: 5, Health: 1}}).apply(ctx, pet); err != nil {
		t.Fatalf("AddStats: %v", err)
	}
	if pet.Stats.Attack != MaxStat || pet.Stats.Health != 4 {
		t.Fatalf("expected clamped attack and +1 health, got %+v", pet.Stats)
	}
}

func TestAddStatsNilTargetNoop(t *testing.T) {
	ctx := newActionCtx(newTestTeam("A"), nil, Outcome{})
	if err := (AddStats{Stats: Statistics{Attack: 1}}).apply(ctx, nil); err != nil {
		t.Fatalf("AddStats on nil target should be a no-op, got %v", err)
	}
}

func TestRemoveStatsEnqueuesHurtThenFaint(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Attack: 1, Health: 5}
	ctx := newActionCtx(team, nil, Outcome{})

	if err := (RemoveStats{Stats: Statistics{Health: 2}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats: %v", err)
	}
	if pet.Stats.Health != 3 {
		t.Fatalf("expected health 3 after -2 damage, got %d", pet.Stats.Health)
	}
	if len(team.queue) != 1 || team.queue[0].Status != StatusHurt {
		t.Fatalf("expected one Hurt outcome queued, got %+v", team.queue)
	}

	team.queue = nil
	if err := (RemoveStats{Stats: Statistics{Health: 10}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats lethal: %v", err)
	}
	if pet.Stats.Health != 0 {
		t.Fatalf("expected health 0, got %d", pet.Stats.Health)
	}
	var sawHurt, sawFaint bool
	for _, o := range team.queue {
		if o.Status == StatusHurt {
			sawHurt = true
		}
		if o.Status == StatusFaint {
			sawFaint = true
		}
	}
	if !sawHurt || !sawFaint {
		t.Fatalf("expected both Hurt and Faint queued on lethal damage, got %+v", team.queue)
	}
}

func TestRemoveStatsOnDeadTargetIsNoop(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Health: 0}
	ctx := newActionCtx(team, nil, Outcome{})
	if err := (RemoveStats{Stats: Statistics{Health: 5}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats on dead pet: %v", err)
	}
	if len(team.queue) != 0 {
		t.Fatalf("expected no outcomes queued for an already-dead target, got %+v", team.queue)
	}
}

func TestMelonAbsorbsOnceThenDiscards(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Health: 10}
	pet.Item = &ItemSlot{Food: &Food{Name: "Melon"}, Uses: 1}
	ctx := newActionCtx(team, nil, Outcome{})

	if err := (RemoveStats{Stats: Statistics{Health: 8}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats: %v", err)
	}
	if pet.Stats.Health != 10 {
		t.Fatalf("expected melon to fully absorb the hit, got health %d", pet.Stats.Health)
	}
	if pet.Item != nil {
		t.Fatalf("expected melon to be discarded after absorbing, got %+v", pet.Item)
	}

	// Second hit with no item left should go through normally.
	if err := (RemoveStats{Stats: Statistics{Health: 4}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats: %v", err)
	}
	if pet.Stats.Health != 6 {
		t.Fatalf("expected unmitigated damage after melon discarded, got health %d", pet.Stats.Health)
	}
}

func TestCoconutAbsorbsFullyThenDiscards(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Health: 10}
	pet.Item = &ItemSlot{Food: &Food{Name: "Coconut"}, Uses: 1}
	ctx := newActionCtx(team, nil, Outcome{})

	if err := (RemoveStats{Stats: Statistics{Health: 50}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats: %v", err)
	}
	if pet.Stats.Health != 10 {
		t.Fatalf("expected coconut to absorb any amount of damage, got health %d", pet.Stats.Health)
	}
	if pet.Item != nil {
		t.Fatalf("expected coconut to be discarded after absorbing")
	}
}

func TestGarlicReducesNonLethalDamage(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Health: 10}
	pet.Item = &ItemSlot{Food: &Food{Name: "Garlic"}}
	ctx := newActionCtx(team, nil, Outcome{})

	if err := (RemoveStats{Stats: Statistics{Health: 5}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats: %v", err)
	}
	if pet.Stats.Health != 7 {
		t.Fatalf("expected garlic to cut 5 damage to 3 (10-3=7), got health %d", pet.Stats.Health)
	}
	if pet.Item == nil {
		t.Fatalf("expected garlic to remain equipped after a non-lethal hit")
	}
}

func TestGarlicStillKillsOnLethalHit(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Health: 3}
	pet.Item = &ItemSlot{Food: &Food{Name: "Garlic"}}
	ctx := newActionCtx(team, nil, Outcome{})

	if err := (RemoveStats{Stats: Statistics{Health: 10}}).apply(ctx, pet); err != nil {
		t.Fatalf("RemoveStats: %v", err)
	}
	if pet.Stats.Health != 0 {
		t.Fatalf("expected garlic's floor-1 reduction to still kill on a big enough hit, got health %d", pet.Stats.Health)
	}
}

func TestSetStats(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	ctx := newActionCtx(team, nil, Outcome{})
	if err := (SetStats{Stats: Statistics{Attack: 99, Health: -5}}).apply(ctx, pet); err != nil {
		t.Fatalf("SetStats: %v", err)
	}
	if pet.Stats.Attack != MaxStat || pet.Stats.Health != 0 {
		t.Fatalf("expected SetStats to clamp both bounds, got %+v", pet.Stats)
	}
}

func TestMultiplyStats(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Attack: 3, Health: 4}
	ctx := newActionCtx(team, nil, Outcome{})
	if err := (MultiplyStats{Factor: 2}).apply(ctx, pet); err != nil {
		t.Fatalf("MultiplyStats: %v", err)
	}
	if pet.Stats.Attack != 6 || pet.Stats.Health != 8 {
		t.Fatalf("expected doubled stats, got %+v", pet.Stats)
	}
}

func TestKillEnqueuesFaint(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Health: 5}
	ctx := newActionCtx(team, nil, Outcome{})
	if err := (Kill{}).apply(ctx, pet); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	if pet.Stats.Health != 0 {
		t.Fatalf("expected health 0 after Kill, got %d", pet.Stats.Health)
	}
	if len(team.queue) != 2 || team.queue[0].Status != StatusFaint {
		t.Fatalf("expected Faint (and AnyFaint) queued after Kill, got %+v", team.queue)
	}
}

func TestKillOnAlreadyDeadIsNoop(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Stats = Statistics{Health: 0}
	ctx := newActionCtx(team, nil, Outcome{})
	if err := (Kill{}).apply(ctx, pet); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	if len(team.queue) != 0 {
		t.Fatalf("expected no new outcomes for already-dead pet, got %+v", team.queue)
	}
}

func TestPushSlotMovesTowardBack(t *testing.T) {
	team := newTestTeam("A", "B", "C")
	target := team.Friends[0]
	ctx := newActionCtx(team, nil, Outcome{})
	if err := (PushSlot{N: 2}).apply(ctx, target); err != nil {
		t.Fatalf("PushSlot: %v", err)
	}
	if team.Friends[2] != target || target.Pos != 2 {
		t.Fatalf("expected A pushed to slot 2, got Friends=%v pos=%d", names(team.Friends), target.Pos)
	}
	for i, p := range team.Friends {
		if p != nil && p.Pos != i {
			t.Fatalf("Pos must match slot index after push, slot %d has Pos %d", i, p.Pos)
		}
	}
}

func names(pets []*Pet) []string {
	out := make([]string, len(pets))
	for i, p := range pets {
		if p != nil {
			out[i] = p.Name
		}
	}
	return out
}

func TestGainExperienceLevelsUp(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Level = 1
	ctx := newActionCtx(team, nil, Outcome{})

	if err := (GainExperience{N: 1}).apply(ctx, pet); err != nil {
		t.Fatalf("GainExperience: %v", err)
	}
	if pet.Level != 1 {
		t.Fatalf("1 experience should not yet level up, got level %d", pet.Level)
	}

	if err := (GainExperience{N: 1}).apply(ctx, pet); err != nil {
		t.Fatalf("GainExperience: %v", err)
	}
	if pet.Level != 2 {
		t.Fatalf("2 experience should reach level 2, got level %d", pet.Level)
	}
	var sawLevelled bool
	for _, o := range team.queue {
		if o.Status == StatusLevelled {
			sawLevelled = true
		}
	}
	if !sawLevelled {
		t.Fatalf("expected Levelled outcome queued on level-up, got %+v", team.queue)
	}

	team.queue = nil
	if err := (GainExperience{N: 3}).apply(ctx, pet); err != nil {
		t.Fatalf("GainExperience: %v", err)
	}
	if pet.Level != 3 {
		t.Fatalf("5 total experience should reach level 3, got level %d", pet.Level)
	}
}

func TestSwapPosition(t *testing.T) {
	team := newTestTeam("A", "B", "C")
	a, c := team.Friends[0], team.Friends[2]
	ctx := newActionCtx(team, a, Outcome{})
	if err := (SwapPosition{Other: Position{Kind: PosSpecific, N: 2}}).apply(ctx, a); err != nil {
		t.Fatalf("SwapPosition: %v", err)
	}
	if team.Friends[0] != c || team.Friends[2] != a {
		t.Fatalf("expected A and C to swap slots, got %v", names(team.Friends))
	}
	if a.Pos != 2 || c.Pos != 0 {
		t.Fatalf("expected swapped Pos fields, got a.Pos=%d c.Pos=%d", a.Pos, c.Pos)
	}
}

func TestCopyFieldStats(t *testing.T) {
	team := newTestTeam("A", "B")
	src, dst := team.Friends[0], team.Friends[1]
	src.Stats = Statistics{Attack: 9, Health: 9}
	ctx := newActionCtx(team, nil, Outcome{})
	action := CopyField{Field: "stats", Source: Position{Kind: PosSpecific, N: 0}}
	if err := action.apply(ctx, dst); err != nil {
		t.Fatalf("CopyField: %v", err)
	}
	if !dst.Stats.Equal(src.Stats) {
		t.Fatalf("expected dst stats copied from src, got %+v", dst.Stats)
	}
}

func TestTransformPetPreservesLevelAndPosition(t *testing.T) {
	team := newTestTeam("A")
	pet := team.Friends[0]
	pet.Level = 2
	pet.Experience = 3
	pet.Pos = 0
	ctx := newActionCtx(team, nil, Outcome{})
	if err := (TransformPet{Name: "Ant"}).apply(ctx, pet); err != nil {
		t.Fatalf("TransformPet: %v", err)
	}
	if pet.Name != "Ant" {
		t.Fatalf("expected pet transformed to Ant, got %q", pet.Name)
	}
	if pet.Level != 2 || pet.Experience != 3 || pet.Pos != 0 {
		t.Fatalf("expected level/experience/position preserved, got level=%d exp=%d pos=%d", pet.Level, pet.Experience, pet.Pos)
	}
}

func TestLynxDamageSumsFriendLevels(t *testing.T) {
	team := newTestTeam("A", "B")
	team.Friends[0].Level = 2
	team.Friends[1].Level = 3
	enemyTeam := newTestTeam("E")
	target := enemyTeam.Friends[0]
	target.Stats = Statistics{Health: 20}

	eng := newEngine(team, enemyTeam, 1000, nil)
	ctx := &effectCtx{origin: team.Friends[0], team: team, enemy: enemyTeam, engine: eng}
	if err := (LynxDamage{}).apply(ctx, target); err != nil {
		t.Fatalf("LynxDamage: %v", err)
	}
	if target.Stats.Health != 15 {
		t.Fatalf("expected 20 - (2+3) = 15 health remaining, got %d", target.Stats.Health)
	}
}

func TestSummonPetFailsSilentlyWhenFull(t *testing.T) {
	team := newTestTeam("A", "B")
	ctx := newActionCtx(team, team.Friends[0], Outcome{})
	if err := (SummonPet{Name: "Ant"}).apply(ctx, nil); err != nil {
		t.Fatalf("SummonPet on full team should be a silent no-op, got error %v", err)
	}
	if team.Friends[0].Name != "A" || team.Friends[1].Name != "B" {
		t.Fatalf("full team roster should be untouched, got %v", names(team.Friends))
	}
}

func TestSummonPetFillsFirstEmptySlot(t *testing.T) {
	team := newTestTeam("A", "", "")
	ctx := newActionCtx(team, team.Friends[0], Outcome{})
	if err := (SummonPet{Name: "Ant"}).apply(ctx, nil); err != nil {
		t.Fatalf("SummonPet: %v", err)
	}
	if team.Friends[1] == nil || team.Friends[1].Name != "Ant" {
		t.Fatalf("expected Ant summoned into first empty slot, got %v", names(team.Friends))
	}
	var sawSummoned bool
	for _, o := range team.queue {
		if o.Status == StatusSummoned {
			sawSummoned = true
		}
	}
	if !sawSummoned {
		t.Fatalf("expected Summoned outcome queued, got %+v", team.queue)
	}
}

func TestSummonPetFillsSlotAdjacentToOrigin(t *testing.T) {
	// Empty slots on both sides of the origin: a naive global left-to-right
	// scan would always land in slot 1 regardless of where the summon fired
	// from. Summoning near C (slot 2) must land in the adjacent slot 3, not
	// the leftmost empty slot 1.
	team := newTestTeam("A", "", "C", "", "E")
	origin := team.Friends[2]
	ctx := newActionCtx(team, origin, Outcome{})
	if err := (SummonPet{Name: "Ant"}).apply(ctx, origin); err != nil {
		t.Fatalf("SummonPet: %v", err)
	}
	if team.Friends[3] == nil || team.Friends[3].Name != "Ant" {
		t.Fatalf("expected Ant summoned into slot 3 (adjacent to origin at slot 2), got %v", names(team.Friends))
	}
	if team.Friends[1] != nil {
		t.Fatalf("slot 1 should remain empty, got %v", names(team.Friends))
	}
}

func TestSummonPetFillsOriginsOwnSlotWhenVacant(t *testing.T) {
	// The origin is no longer on the board (its slot is nil, as after
	// compaction), so the summon lands right back in the origin's own slot.
	// During a faint cascade the uncompacted corpse still fills that slot.
	team := newTestTeam("A", "", "C")
	faintee := NewPet("Deer", 1, Statistics{Attack: 1, Health: 1})
	faintee.Pos = 1
	ctx := newActionCtx(team, faintee, Outcome{})
	if err := (SummonPet{Name: "Ant"}).apply(ctx, faintee); err != nil {
		t.Fatalf("SummonPet: %v", err)
	}
	if team.Friends[1] == nil || team.Friends[1].Name != "Ant" {
		t.Fatalf("expected Ant summoned into the faintee's own vacant slot 1, got %v", names(team.Friends))
	}
}
