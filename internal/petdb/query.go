package petdb

import (
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/saptest/autopets/internal/saperr"
)

// overrides holds records merged in from a JSON file via LoadOverrides,
// taking priority over the embedded tables. Guarded by mu since LoadOverrides
// may run after the first queries have already started (hot reload).
var (
	mu            sync.RWMutex
	petOverrides  = map[string]PetRecord{}
	foodOverrides = map[string]FoodRecord{}
	toyOverrides  = map[string]ToyRecord{}
)

// overrideFile is the shape of the JSON document DatabaseConfig.Filename
// points at: a sparse set of records keyed by name, replacing or adding to
// the embedded tables. This mirrors the teacher's config pattern of layering
// environment-driven overrides onto compiled-in defaults.
type overrideFile struct {
	Pets  []PetRecord  `json:"pets"`
	Foods []FoodRecord `json:"foods"`
	Toys  []ToyRecord  `json:"toys"`
}

// LoadOverrides reads a JSON override file and merges it over the embedded
// tables. Safe to call multiple times; later calls replace earlier ones for
// any name they redefine. path == "" is a no-op, matching an unset
// DatabaseConfig.Filename.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return saperr.Wrap(saperr.LookupFailure, err, "read database override file %q", path)
	}
	var doc overrideFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return saperr.Wrap(saperr.ParseFailure, err, "parse database override file %q", path)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, p := range doc.Pets {
		petOverrides[p.Name] = p
	}
	for _, f := range doc.Foods {
		foodOverrides[f.Name] = f
	}
	for _, t := range doc.Toys {
		toyOverrides[t.Name] = t
	}
	return nil
}

// ResetOverrides clears all loaded overrides, restoring pure embedded-table
// lookups. Exercised by tests that don't want state leaking across cases.
func ResetOverrides() {
	mu.Lock()
	defer mu.Unlock()
	petOverrides = map[string]PetRecord{}
	foodOverrides = map[string]FoodRecord{}
	toyOverrides = map[string]ToyRecord{}
}

// Pet looks up a pet by exact name.
func Pet(name string) (PetRecord, error) {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := petOverrides[name]; ok {
		return p, nil
	}
	if p, ok := pets[name]; ok {
		return p, nil
	}
	return PetRecord{}, saperr.New(saperr.LookupFailure, "unknown pet %q", name)
}

// Food looks up a food by exact name.
func Food(name string) (FoodRecord, error) {
	mu.RLock()
	defer mu.RUnlock()
	if f, ok := foodOverrides[name]; ok {
		return f, nil
	}
	if f, ok := foods[name]; ok {
		return f, nil
	}
	return FoodRecord{}, saperr.New(saperr.LookupFailure, "unknown food %q", name)
}

// Toy looks up a toy by exact name.
func Toy(name string) (ToyRecord, error) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := toyOverrides[name]; ok {
		return t, nil
	}
	if t, ok := toys[name]; ok {
		return t, nil
	}
	return ToyRecord{}, saperr.New(saperr.LookupFailure, "unknown toy %q", name)
}

// Filter narrows a Query by tier and/or pack. A zero Tier or PackUnknown
// field means "don't filter on this dimension".
type Filter struct {
	Tier int
	Pack Pack
}

func (f Filter) matchesTier(tier int) bool { return f.Tier == 0 || f.Tier == tier }
func (f Filter) matchesPack(p Pack) bool   { return f.Pack == PackUnknown || f.Pack == p }

// QueryPets returns every pet matching the filter, sorted by name for
// deterministic iteration order (map iteration in Go is randomized, and the
// shop roll depends on a stable pool ordering before it applies RNG).
func QueryPets(f Filter) []PetRecord {
	mu.RLock()
	defer mu.RUnlock()
	merged := make(map[string]PetRecord, len(pets))
	for k, v := range pets {
		merged[k] = v
	}
	for k, v := range petOverrides {
		merged[k] = v
	}
	out := make([]PetRecord, 0, len(merged))
	for _, p := range merged {
		if f.matchesTier(p.Tier) && f.matchesPack(p.Pack) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// QueryFoods returns every food matching the filter, sorted by name.
func QueryFoods(f Filter) []FoodRecord {
	mu.RLock()
	defer mu.RUnlock()
	merged := make(map[string]FoodRecord, len(foods))
	for k, v := range foods {
		merged[k] = v
	}
	for k, v := range foodOverrides {
		merged[k] = v
	}
	out := make([]FoodRecord, 0, len(merged))
	for _, rec := range merged {
		if f.matchesTier(rec.Tier) && f.matchesPack(rec.Pack) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// QueryToys returns every toy matching the filter's Tier (toys have no Pack).
func QueryToys(f Filter) []ToyRecord {
	mu.RLock()
	defer mu.RUnlock()
	merged := make(map[string]ToyRecord, len(toys))
	for k, v := range toys {
		merged[k] = v
	}
	for k, v := range toyOverrides {
		merged[k] = v
	}
	out := make([]ToyRecord, 0, len(merged))
	for _, rec := range merged {
		if f.matchesTier(rec.Tier) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
