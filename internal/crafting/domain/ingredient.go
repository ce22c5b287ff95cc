package domain

import "github.com/sablewood/cauldron/internal/core/craft"

// Ingredient is a stored crafting component with its on-hand quantity.
type Ingredient struct {
	Name      string `json:"name"`
	Potency   int    `json:"potency"`
	Resonance int    `json:"resonance"`
	Entropy   int    `json:"entropy"`
	Quantity  int    `json:"quantity"`
}

// Core strips the inventory bookkeeping down to an engine input.
func (i Ingredient) Core() craft.Ingredient {
	return craft.Ingredient{
		Name:      i.Name,
		Potency:   i.Potency,
		Resonance: i.Resonance,
		Entropy:   i.Entropy,
	}
}

// CountNames tallies how many times each name appears in the selection.
// Selecting the same ingredient more than once is allowed; the count decides
// how much inventory the craft consumes.
func CountNames(names []string) map[string]int {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}
	return counts
}
