package craft

import "math/rand"

// Request describes one crafting attempt.
type Request struct {
	Ingredients []Ingredient
	Discipline  Discipline
	Catalog     []Recipe
	// Mode defaults to ModeDeterministic when empty.
	Mode Mode
	// Seed drives the random-mode roll. Ignored in deterministic mode.
	Seed int64
}

// Result is the full outcome of one crafting attempt. Ownership passes to
// the caller, which decides how to display or persist it.
type Result struct {
	Selection
	Totals   Totals    `json:"totals"`
	Dominant Attribute `json:"dominantAttribute"`
	Mode     Mode      `json:"mode"`
}

// Resolve runs one crafting attempt: aggregate totals, resolve the dominant
// attribute for the discipline, then select a recipe slot from the catalog.
//
// # Determinism
//
// With ModeDeterministic (or an unset Mode), Resolve is a pure function of
// its inputs: two calls with identical arguments produce identical Results.
// With ModeRandom the roll is deterministic with respect to Seed, so replays
// of a logged attempt reproduce its outcome.
func Resolve(request Request) Result {
	var rng *rand.Rand
	if request.Mode == ModeRandom {
		rng = rand.New(rand.NewSource(request.Seed))
	}
	return ResolveWithRng(rng, request)
}

// ResolveWithRng runs one crafting attempt using a provided random source.
// This is useful when the caller wants to control the RNG directly; the rng
// is only consulted in ModeRandom.
func ResolveWithRng(rng *rand.Rand, request Request) Result {
	mode := request.Mode
	if mode == "" {
		mode = ModeDeterministic
	}

	totals := Aggregate(request.Ingredients)
	dominant := ResolveDominant(totals, request.Discipline)
	selection := SelectRecipe(request.Catalog, dominant, totals, mode, rng)

	return Result{
		Selection: selection,
		Totals:    totals,
		Dominant:  dominant,
		Mode:      mode,
	}
}
