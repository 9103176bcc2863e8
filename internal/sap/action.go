package sap

import (
	"github.com/saptest/autopets/internal/petdb"
)

// Action is the closed, tagged-variant mutation an Effect performs. One
// concrete struct per spec.md §3 variant, each implementing apply against
// a single resolved target pet — no closures, no plug-in host, per the
// "effects as data, not code" design note in spec.md §9.
type Action interface {
	apply(ctx *effectCtx, target *Pet) error
}

// AddStats adds Stats to the target, clamped.
type AddStats struct{ Stats Statistics }

func (a AddStats) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	target.Stats = target.Stats.Add(a.Stats)
	return nil
}

// RemoveStats subtracts Stats from the target (damage), honoring item
// mitigation, and enqueues Hurt/Faint per spec.md §4.3.
type RemoveStats struct{ Stats Statistics }

func (a RemoveStats) apply(ctx *effectCtx, target *Pet) error {
	if target == nil || target.Stats.Health == 0 {
		return nil
	}
	dmg := a.Stats
	dmg = mitigate(target, dmg)
	before := target.Stats.Health
	target.Stats = target.Stats.Sub(dmg)
	if target.Stats.Health < before {
		ctx.enqueue(ownerOf(ctx, target), Outcome{
			Status: StatusHurt, AffectedPet: target, AfflictingPet: ctx.origin, Position: Position{Kind: PosOnSelf},
		})
	}
	if target.Stats.Health == 0 {
		ctx.enqueue(ownerOf(ctx, target), Outcome{
			Status: StatusFaint, AffectedPet: target, AfflictingPet: ctx.origin, Position: Position{Kind: PosOnSelf},
		})
		ctx.enqueue(ownerOf(ctx, target), Outcome{Status: StatusAnyFaint, AffectedPet: target, Position: Position{Kind: PosOnSelf}})
		if ctx.origin != nil {
			ctx.enqueue(ctx.team, Outcome{Status: StatusKnockOut, AffectedPet: ctx.origin, AfflictingPet: target, Position: Position{Kind: PosOnSelf}})
		}
	}
	return nil
}

// RemovePercent removes a percentage of the target's current health.
type RemovePercent struct{ Percent int }

func (a RemovePercent) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	dmg := Statistics{Health: target.Stats.Health * a.Percent / 100}
	return RemoveStats{Stats: dmg}.apply(ctx, target)
}

// mitigate applies item-level damage reduction: garlic reduces incoming
// damage by a flat amount with a floor of 1 (a big enough hit still kills),
// melon absorbs up to melonAbsorption damage of one hit and coconut absorbs
// one whole hit; both are then discarded (spec.md §4.3).
func mitigate(target *Pet, dmg Statistics) Statistics {
	if target.Item == nil || target.Item.Food == nil {
		return dmg
	}
	switch target.Item.Food.Name {
	case "Garlic":
		dmg.Health = maxInt(dmg.Health-garlicReduction, 1)
	case "Melon":
		dmg.Health = maxInt(dmg.Health-melonAbsorption, 0)
		target.Item = nil
	case "Coconut":
		dmg = Statistics{}
		target.Item = nil
	}
	return dmg
}

// garlicReduction is the flat damage reduction Garlic grants, matching
// petdb's own Garlic record ("reduces damage taken by 2").
const garlicReduction = 2

// melonAbsorption is the damage Melon absorbs, matching petdb's own Melon
// record ("absorbs the next 20 damage").
const melonAbsorption = 20

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SetStats overwrites the target's stats outright.
type SetStats struct{ Stats Statistics }

func (a SetStats) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	target.Stats = Statistics{Attack: clamp(a.Stats.Attack), Health: clamp(a.Stats.Health)}
	return nil
}

// MultiplyStats scales the target's stats by a factor.
type MultiplyStats struct{ Factor int }

func (a MultiplyStats) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	target.Stats = target.Stats.Mul(a.Factor)
	return nil
}

// GainFood attaches a food to the target's item slot, replacing whatever
// was there, and enqueues EatFood.
type GainFood struct {
	FoodName  string
	SingleUse bool
}

func (a GainFood) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	rec, err := petdb.Food(a.FoodName)
	if err != nil {
		return err
	}
	uses := -1
	if rec.SingleUse {
		uses = 1
	}
	target.Item = &ItemSlot{Food: &Food{Name: rec.Name, Effect: buildFoodEffect(rec.Name)}, Uses: uses}
	ctx.enqueue(ownerOf(ctx, target), Outcome{Status: StatusEatFood, AffectedPet: target, Position: Position{Kind: PosOnSelf}})
	return nil
}

// SummonPet inserts a new pet (by name, or origin's own species if Name is
// empty) into the first empty slot adjacent to the trigger origin. Fails
// silently (no error, no mutation) if the team is full, per spec.md §4.3.
type SummonPet struct {
	Name  string
	Stats *Statistics // override stats; nil = use petdb base stats
}

func (a SummonPet) apply(ctx *effectCtx, target *Pet) error {
	team := ownerOf(ctx, target)
	if team == nil {
		team = ctx.team
	}
	near := target
	if near == nil {
		near = ctx.origin
	}
	slot := firstEmptySlotNear(team, near)
	if slot < 0 {
		return nil
	}
	name := a.Name
	if name == "" && ctx.origin != nil {
		name = ctx.origin.Name
	}
	rec, err := petdb.Pet(name)
	if err != nil {
		return err
	}
	stats := Statistics{Attack: rec.Attack, Health: rec.Health}
	if a.Stats != nil {
		stats = *a.Stats
	}
	pet := NewPet(rec.Name, rec.Tier, stats)
	pet.Pos = slot
	team.Friends[slot] = pet
	ctx.enqueue(team, Outcome{Status: StatusSummoned, AffectedPet: pet, Position: Position{Kind: PosSpecific, N: slot}})
	ctx.enqueue(team, Outcome{Status: StatusFriendSummoned, AffectedPet: pet, Position: Position{Kind: PosSpecific, N: slot}})
	return nil
}

// firstEmptySlotNear finds the empty (nil) slot closest to near's board
// position: near's own slot if it is nil, then outward by increasing
// distance, checking the slot behind (higher index) before the slot ahead.
// A fainted pet that compaction has not yet removed still occupies its own
// slot, so a summon fired by its faint lands in the nearest empty slot
// around it, not in that slot. Falls back to a left-to-right scan when near
// is nil or already off the board.
func firstEmptySlotNear(team *Team, near *Pet) int {
	if near == nil {
		return firstEmptySlot(team)
	}
	origin := near.Pos
	n := len(team.Friends)
	if origin < 0 || origin >= n {
		return firstEmptySlot(team)
	}
	if team.Friends[origin] == nil {
		return origin
	}
	for dist := 1; dist < n; dist++ {
		if idx := origin + dist; idx < n && team.Friends[idx] == nil {
			return idx
		}
		if idx := origin - dist; idx >= 0 && team.Friends[idx] == nil {
			return idx
		}
	}
	return -1
}

func firstEmptySlot(team *Team) int {
	for i, p := range team.Friends {
		if p == nil {
			return i
		}
	}
	return -1
}

// CopyField deep-copies a named field (stats or item) from the resolved
// source position to the target.
type CopyField struct {
	Field  string // "stats" or "item"
	Source Position
}

func (a CopyField) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	srcs := a.Source.resolve(ctx.origin, ctx.team, ctx.outcome)
	if len(srcs) == 0 {
		return nil
	}
	src := srcs[0]
	switch a.Field {
	case "stats":
		target.Stats = src.Stats
	case "item":
		if src.Item != nil {
			item := *src.Item
			target.Item = &item
		}
	}
	return nil
}

// SwapPosition exchanges the target's slot with the resolved other position.
type SwapPosition struct{ Other Position }

func (a SwapPosition) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	team := ownerOf(ctx, target)
	others := a.Other.resolve(ctx.origin, team, ctx.outcome)
	if len(others) == 0 {
		return nil
	}
	other := others[0]
	i, j := target.Pos, other.Pos
	team.Friends[i], team.Friends[j] = team.Friends[j], team.Friends[i]
	target.Pos, other.Pos = j, i
	return nil
}

// Kill sets the target's health to 0 and enqueues Faint.
type Kill struct{}

func (a Kill) apply(ctx *effectCtx, target *Pet) error {
	if target == nil || target.Stats.Health == 0 {
		return nil
	}
	target.Stats.Health = 0
	team := ownerOf(ctx, target)
	ctx.enqueue(team, Outcome{Status: StatusFaint, AffectedPet: target, AfflictingPet: ctx.origin, Position: Position{Kind: PosOnSelf}})
	ctx.enqueue(team, Outcome{Status: StatusAnyFaint, AffectedPet: target, Position: Position{Kind: PosOnSelf}})
	return nil
}

// PushSlot moves the target n slots toward the back (negative = forward).
type PushSlot struct{ N int }

func (a PushSlot) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	team := ownerOf(ctx, target)
	from := target.Pos
	to := clampSlot(from+a.N, len(team.Friends)-1)
	if to == from {
		return nil
	}
	team.Friends = append(team.Friends[:0:0], team.Friends...)
	moveSlot(team.Friends, from, to)
	for i, p := range team.Friends {
		if p != nil {
			p.Pos = i
		}
	}
	ctx.enqueue(team, Outcome{Status: StatusPushed, AffectedPet: target, Position: Position{Kind: PosSpecific, N: to}})
	return nil
}

func clampSlot(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func moveSlot(s []*Pet, from, to int) {
	p := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = p
}

// TransformPet replaces the target pet in-place with a new species,
// preserving position and (unless told otherwise) level/experience.
type TransformPet struct{ Name string }

func (a TransformPet) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	rec, err := petdb.Pet(a.Name)
	if err != nil {
		return err
	}
	pos, level, exp := target.Pos, target.Level, target.Experience
	*target = *NewPet(rec.Name, rec.Tier, Statistics{Attack: rec.Attack, Health: rec.Health})
	target.Pos, target.Level, target.Experience = pos, level, exp
	return nil
}

// GainExperience adds experience to the target, leveling it up at the
// thresholds the shop subsystem documents (2 -> level 2, 5 -> level 3).
type GainExperience struct{ N int }

func (a GainExperience) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	target.Experience += a.N
	newLevel := levelForExperience(target.Experience)
	if newLevel > target.Level {
		target.Level = newLevel
		ctx.enqueue(ownerOf(ctx, target), Outcome{Status: StatusLevelled, AffectedPet: target, Position: Position{Kind: PosOnSelf}})
	}
	return nil
}

func levelForExperience(exp int) int {
	switch {
	case exp >= 5:
		return 3
	case exp >= 2:
		return 2
	default:
		return 1
	}
}

// ShuffleTeam randomly reorders the acting team's live pets using its RNG.
type ShuffleTeam struct{}

func (a ShuffleTeam) apply(ctx *effectCtx, target *Pet) error {
	team := ctx.team
	live := team.livePets()
	team.RNG.Shuffle(len(live), func(i, j int) { live[i], live[j] = live[j], live[i] })
	idx := 0
	for i, p := range team.Friends {
		if p != nil {
			team.Friends[i] = live[idx]
			live[idx].Pos = i
			idx++
		}
	}
	return nil
}

// ShopRoll re-rolls unfrozen shop slots without spending gold (used by
// FreeRoll-granting effects; Shop.Roll is the gold-spending entrypoint).
type ShopRoll struct{}

func (a ShopRoll) apply(ctx *effectCtx, target *Pet) error {
	if ctx.team.Shop != nil {
		ctx.team.Shop.rerollUnfrozen(ctx.team)
	}
	return nil
}

// ShopFreeRoll queues a free roll, consumed by the next Shop.Roll call.
type ShopFreeRoll struct{}

func (a ShopFreeRoll) apply(ctx *effectCtx, target *Pet) error {
	ctx.team.FreeRolls++
	return nil
}

// AddGold grants gold to the acting team.
type AddGold struct{ N int }

func (a AddGold) apply(ctx *effectCtx, target *Pet) error {
	ctx.team.Gold += a.N
	return nil
}

// AddShopSlot permanently grows the shop's pet (or food) slot count.
type AddShopSlot struct {
	Food bool
	N    int
}

func (a AddShopSlot) apply(ctx *effectCtx, target *Pet) error {
	if ctx.team.Shop == nil {
		return nil
	}
	if a.Food {
		ctx.team.Shop.ExtraFoodSlots += a.N
	} else {
		ctx.team.Shop.ExtraPetSlots += a.N
	}
	return nil
}

// DiscountShopPet reduces the cost of shop pets by N gold (floor 1).
type DiscountShopPet struct{ N int }

func (a DiscountShopPet) apply(ctx *effectCtx, target *Pet) error {
	if ctx.team.Shop == nil {
		return nil
	}
	ctx.team.Shop.PetDiscount += a.N
	return nil
}

// ApplySubEffect attaches another Effect to the target pet directly (used
// by effects that grant an effect rather than a stat change, e.g. a food
// that makes a pet "act like" another pet for the rest of the battle).
type ApplySubEffect struct{ Effect *Effect }

func (a ApplySubEffect) apply(ctx *effectCtx, target *Pet) error {
	if target == nil {
		return nil
	}
	target.Effects = append(target.Effects, a.Effect)
	return nil
}

// Conditional evaluates Cond against the target and applies Then or Else.
type Conditional struct {
	Cond Condition
	Then Action
	Else Action
}

func (a Conditional) apply(ctx *effectCtx, target *Pet) error {
	if eval(a.Cond, target, ctx.team) {
		if a.Then != nil {
			return a.Then.apply(ctx, target)
		}
		return nil
	}
	if a.Else != nil {
		return a.Else.apply(ctx, target)
	}
	return nil
}

// ForEachCount applies Inner once per unit of Count (e.g. once per friend
// satisfying a condition), expanding to simpler actions at fire time per
// spec.md §4.3.
type ForEachCount struct {
	Count CountExpr
	Inner Action
}

// CountExpr is a closed description of "how many times", evaluated against
// the acting team at fire time.
type CountExpr struct {
	Kind CountKind
	Cond Condition
	N    int
}

type CountKind int

const (
	CountLiteral CountKind = iota
	CountMatching
)

func (c CountExpr) eval(team *Team) int {
	switch c.Kind {
	case CountLiteral:
		return c.N
	case CountMatching:
		n := 0
		for _, p := range team.livePets() {
			if eval(c.Cond, p, team) {
				n++
			}
		}
		return n
	default:
		return 0
	}
}

func (a ForEachCount) apply(ctx *effectCtx, target *Pet) error {
	n := a.Count.eval(ctx.team)
	for i := 0; i < n; i++ {
		if err := a.Inner.apply(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// LynxDamage deals damage to the target equal to the sum of the acting
// team's friend levels (the "Lynx" rule spec.md §3 names explicitly).
type LynxDamage struct{}

func (a LynxDamage) apply(ctx *effectCtx, target *Pet) error {
	sum := 0
	for _, p := range ctx.team.livePets() {
		sum += p.Level
	}
	return RemoveStats{Stats: Statistics{Health: sum}}.apply(ctx, target)
}

// ownerOf finds which side (ctx.team or ctx.enemy) currently holds target.
func ownerOf(ctx *effectCtx, target *Pet) *Team {
	if ctx.team != nil {
		for _, p := range ctx.team.Friends {
			if p == target {
				return ctx.team
			}
		}
	}
	if ctx.enemy != nil {
		for _, p := range ctx.enemy.Friends {
			if p == target {
				return ctx.enemy
			}
		}
	}
	return ctx.team
}
