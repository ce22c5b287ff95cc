package craft

import "math/rand"

// SlotsPerQuality is the intended pool size per quality group, aligned with a
// 1-15 roll. Hand-authored catalogs may hold fewer entries; selection then
// compresses the roll space and flags the result as a fallback.
const SlotsPerQuality = 15

// Selection is the outcome of picking one recipe slot from a catalog.
type Selection struct {
	// Recipe is nil when the catalog holds nothing to select.
	Recipe *Recipe `json:"recipe"`
	// TierIndex is the canonical position of the dominant attribute.
	TierIndex int `json:"tierIndex"`
	// Roll is the zero-indexed 1-of-15 slot.
	Roll int `json:"roll"`
	// IdealIndex is the position the recipe would occupy in a flat 45-entry
	// catalog ordered potency, resonance, entropy.
	IdealIndex int `json:"idealIndex"`
	// UsedFallback reports that the pick was not drawn from a full
	// quality-matched 15-entry pool.
	UsedFallback bool `json:"usedFallback"`
}

// SelectRecipe picks one recipe slot for the dominant attribute.
//
// In ModeDeterministic the roll is the dominant attribute's total clamped
// into [1,15] minus one, so stronger totals reproducibly bias toward later
// slots. In ModeRandom the roll is uniform in [0,14] from rng; a nil rng
// degrades to the deterministic roll so the selector stays total.
//
// Catalogs are hand-authored game content and may be incomplete,
// miscategorized, or short of fifteen entries per group. Selection therefore
// layers lookups: the quality-matched pool first, then the flat 45-entry
// position, then any entry at all. Whenever the catalog holds at least one
// recipe, something playable comes back; UsedFallback signals that the
// choice was not from the intended pool. SelectRecipe never fails and never
// mutates the catalog; the worst case is a nil Recipe for an empty catalog.
func SelectRecipe(catalog []Recipe, dominant Attribute, totals Totals, mode Mode, rng *rand.Rand) Selection {
	tierIndex := TierIndex(dominant)
	if len(catalog) == 0 {
		return Selection{TierIndex: tierIndex}
	}

	roll := deterministicRoll(totals.Get(dominant))
	if mode == ModeRandom && rng != nil {
		roll = rng.Intn(SlotsPerQuality)
	}

	selection := Selection{
		TierIndex:  tierIndex,
		Roll:       roll,
		IdealIndex: tierIndex*SlotsPerQuality + roll,
	}

	quality := QualityForAttribute(dominant)
	var pool []int
	for i, recipe := range catalog {
		if recipe.Quality == quality {
			pool = append(pool, i)
		}
	}

	if len(pool) > 0 {
		picked := catalog[pool[roll%len(pool)]]
		selection.Recipe = &picked
		selection.UsedFallback = len(pool) < SlotsPerQuality
		return selection
	}

	// Ungrouped catalog: treat it as the flat 45-entry layout.
	if selection.IdealIndex < len(catalog) {
		picked := catalog[selection.IdealIndex]
		selection.Recipe = &picked
		return selection
	}

	// Last resort: any entry beats no entry.
	picked := catalog[roll%len(catalog)]
	selection.Recipe = &picked
	selection.UsedFallback = true
	return selection
}

// deterministicRoll clamps a dominant-attribute total into [1,15] and shifts
// it to the zero-indexed slot range.
func deterministicRoll(total int) int {
	if total < 1 {
		total = 1
	}
	if total > SlotsPerQuality {
		total = SlotsPerQuality
	}
	return total - 1
}
