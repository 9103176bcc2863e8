package sap

// PositionKind enumerates the closed set of position resolvers from
// spec.md §4.2. Each fires against a snapshot of the relevant team taken at
// the moment the effect fires, never at enqueue time.
type PositionKind int

const (
	PosOnSelf PositionKind = iota
	PosAny
	PosAll
	PosFirst
	PosLast
	PosSpecific
	PosRange
	PosAdjacent
	PosAhead
	PosBehind
	PosStrongest
	PosWeakest
	PosTriggerAffected
	PosTriggerAfflicting
	PosN
	PosMultiple
)

// Position is the closed, data-driven position descriptor. Only the fields
// relevant to Kind are meaningful; this mirrors spec.md §3's variant list
// as one struct with a discriminant instead of fifteen Go types, which
// keeps matching/serialization centralized while the set stays enumerable.
type Position struct {
	Kind     PositionKind
	N        int        // Specific index, Ahead/Behind distance, or N(cond, n) count
	Range    [2]int     // Range(l, r), inclusive
	Cond     *Condition // N(cond, n)
	Multiple []Position // Multiple(list)
}

// resolve returns the live pets Position picks out of team for the pet
// firing the effect (origin) in response to outcome. The returned slice is
// ordered front-to-back except where the rule itself is unordered (Any,
// Strongest/Weakest tie-break aside).
func (p Position) resolve(origin *Pet, team *Team, outcome Outcome) []*Pet {
	switch p.Kind {
	case PosOnSelf:
		// origin may have health==0 here: a pet reacting to its own Faint
		// is still a valid PosOnSelf target (e.g. Mushroom's respawn), per
		// spec.md §4.3's faint-cascade ordering.
		if origin != nil {
			return []*Pet{origin}
		}
		return nil
	case PosFirst:
		if pet := team.frontPet(); pet != nil {
			return []*Pet{pet}
		}
		return nil
	case PosLast:
		if pet := team.backPet(); pet != nil {
			return []*Pet{pet}
		}
		return nil
	case PosSpecific:
		if p.N >= 0 && p.N < len(team.Friends) && isLive(team.Friends[p.N]) {
			return []*Pet{team.Friends[p.N]}
		}
		return nil
	case PosRange:
		var out []*Pet
		lo, hi := p.Range[0], p.Range[1]
		for i := lo; i <= hi && i < len(team.Friends); i++ {
			if i < 0 {
				continue
			}
			if isLive(team.Friends[i]) {
				out = append(out, team.Friends[i])
			}
		}
		return out
	case PosAdjacent:
		if origin == nil {
			return nil
		}
		var out []*Pet
		idx := origin.Pos
		if idx-1 >= 0 && idx-1 < len(team.Friends) && isLive(team.Friends[idx-1]) {
			out = append(out, team.Friends[idx-1])
		}
		if idx+1 < len(team.Friends) && isLive(team.Friends[idx+1]) {
			out = append(out, team.Friends[idx+1])
		}
		return out
	case PosAhead:
		if origin == nil {
			return nil
		}
		return livePetsInDirection(team, origin.Pos-1, -1, p.N)
	case PosBehind:
		if origin == nil {
			return nil
		}
		return livePetsInDirection(team, origin.Pos+1, 1, p.N)
	case PosAll:
		return team.livePets()
	case PosStrongest:
		return []*Pet{extremeByAttack(team.livePets(), true)}
	case PosWeakest:
		return []*Pet{extremeByAttack(team.livePets(), false)}
	case PosTriggerAffected:
		if outcome.AffectedPet != nil {
			return []*Pet{outcome.AffectedPet}
		}
		return nil
	case PosTriggerAfflicting:
		if outcome.AfflictingPet != nil {
			return []*Pet{outcome.AfflictingPet}
		}
		return nil
	case PosAny:
		live := team.livePets()
		if len(live) == 0 {
			return nil
		}
		idx := team.RNG.Intn(len(live))
		return []*Pet{live[idx]}
	case PosN:
		var out []*Pet
		cond := Condition{Kind: CondAlways}
		if p.Cond != nil {
			cond = *p.Cond
		}
		for _, pet := range team.livePets() {
			if len(out) >= p.N {
				break
			}
			if eval(cond, pet, team) {
				out = append(out, pet)
			}
		}
		return out
	case PosMultiple:
		var out []*Pet
		seen := map[*Pet]bool{}
		for _, sub := range p.Multiple {
			for _, pet := range sub.resolve(origin, team, outcome) {
				if !seen[pet] {
					seen[pet] = true
					out = append(out, pet)
				}
			}
		}
		return out
	default:
		return nil
	}
}

func isLive(p *Pet) bool { return p != nil && p.Stats.Health > 0 }

func livePetsInDirection(team *Team, start, step, n int) []*Pet {
	var out []*Pet
	for i := start; i >= 0 && i < len(team.Friends) && len(out) < n; i += step {
		if isLive(team.Friends[i]) {
			out = append(out, team.Friends[i])
		}
	}
	return out
}

func extremeByAttack(pets []*Pet, wantMax bool) *Pet {
	if len(pets) == 0 {
		return nil
	}
	best := pets[0]
	for _, p := range pets[1:] {
		if wantMax && p.Stats.Attack > best.Stats.Attack {
			best = p
		} else if !wantMax && p.Stats.Attack < best.Stats.Attack {
			best = p
		}
	}
	return best
}
