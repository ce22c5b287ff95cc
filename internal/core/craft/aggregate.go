package craft

// Aggregate sums the three attributes across the provided ingredients.
//
// Any sequence is accepted, including an empty or nil one; an absent value is
// already the zero value, so missing data simply contributes nothing. The
// result is never an error: no ingredients yields all-zero totals.
func Aggregate(ingredients []Ingredient) Totals {
	var totals Totals
	for _, ingredient := range ingredients {
		totals.Potency += ingredient.Potency
		totals.Resonance += ingredient.Resonance
		totals.Entropy += ingredient.Entropy
	}
	return totals
}
