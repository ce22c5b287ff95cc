// Package craft implements the crafting resolution engine.
//
// The engine turns three selected ingredients and a chosen discipline into
// one recipe from a fixed catalog. It is pure and total: every operation is
// defined for all inputs, never returns an error, and never mutates its
// arguments. Callers own validation (ingredient counts, inventory) and
// persistence (marking recipes discovered); the engine only computes.
//
// The mechanics layer three steps: attribute aggregation, dominant-attribute
// resolution with per-discipline tie-breaking, and slot selection over a
// 3x15 recipe catalog.
package craft

import "strings"

// Attribute identifies one of the three ingredient attributes.
type Attribute string

const (
	AttributePotency   Attribute = "potency"
	AttributeResonance Attribute = "resonance"
	AttributeEntropy   Attribute = "entropy"
)

// canonicalOrder fixes the attribute order used for tier indexing and as the
// tie-break fallback for unrecognized disciplines.
var canonicalOrder = [3]Attribute{AttributePotency, AttributeResonance, AttributeEntropy}

// CanonicalAttributes returns the attributes in canonical order.
func CanonicalAttributes() [3]Attribute {
	return canonicalOrder
}

// TierIndex returns the fixed position of attr in the canonical order, or 0
// when attr is unrecognized.
func TierIndex(attr Attribute) int {
	for i, candidate := range canonicalOrder {
		if candidate == attr {
			return i
		}
	}
	return 0
}

// Quality is the catalog grouping key that partitions a discipline's recipes
// into three pools of up to fifteen entries.
type Quality string

const (
	QualityPotency   Quality = "Potency"
	QualityResonance Quality = "Resonance"
	QualityEntropy   Quality = "Entropy"
)

// QualityForAttribute maps an attribute to its catalog quality group.
func QualityForAttribute(attr Attribute) Quality {
	switch attr {
	case AttributeResonance:
		return QualityResonance
	case AttributeEntropy:
		return QualityEntropy
	default:
		return QualityPotency
	}
}

// ParseQuality normalizes a raw catalog tag into a Quality. It accepts any
// casing and the hand-authored content synonyms Clarity (resonance) and
// Chaos (entropy). The second return is false when the tag is unknown.
//
// Normalization belongs to data loading; the selector itself only compares
// already-normalized Quality values.
func ParseQuality(raw string) (Quality, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "potency":
		return QualityPotency, true
	case "resonance", "clarity":
		return QualityResonance, true
	case "entropy", "chaos":
		return QualityEntropy, true
	default:
		return "", false
	}
}

// Discipline selects which tie-break priority and recipe catalog applies.
// The set is closed: adding a discipline means adding its priority ordering.
type Discipline string

const (
	DisciplineHerbalism Discipline = "Herbalism"
	DisciplineAlchemy   Discipline = "Alchemy"
	DisciplinePoison    Discipline = "Poison"
)

// ParseDiscipline normalizes a raw discipline name. The second return is
// false when the name is not one of the fixed set.
func ParseDiscipline(raw string) (Discipline, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "herbalism":
		return DisciplineHerbalism, true
	case "alchemy":
		return DisciplineAlchemy, true
	case "poison":
		return DisciplinePoison, true
	default:
		return "", false
	}
}

// Disciplines returns the closed discipline set.
func Disciplines() []Discipline {
	return []Discipline{DisciplineHerbalism, DisciplineAlchemy, DisciplinePoison}
}

// Mode selects how the recipe slot roll is produced.
type Mode string

const (
	// ModeDeterministic derives the roll from the dominant attribute total,
	// reproducibly tying outcome strength to ingredient strength.
	ModeDeterministic Mode = "deterministic"
	// ModeRandom draws a uniform slot, for "roll for it" table play.
	ModeRandom Mode = "random"
)

// Ingredient is one crafting component. Absent attribute values are simply
// zero; the engine performs no further coercion or range checks.
type Ingredient struct {
	Name      string `json:"name"`
	Potency   int    `json:"potency"`
	Resonance int    `json:"resonance"`
	Entropy   int    `json:"entropy"`
}

// Recipe is one catalog entry belonging to a discipline's catalog.
type Recipe struct {
	Number     int     `json:"recipeNo"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quality    Quality `json:"quality"`
	Rarity     string  `json:"rarity"`
	Effect     string  `json:"effect"`
	Discovered bool    `json:"discovered"`
}

// Totals holds the per-attribute sums for one crafting attempt.
type Totals struct {
	Potency   int `json:"potency"`
	Resonance int `json:"resonance"`
	Entropy   int `json:"entropy"`
}

// Get returns the total for attr, or 0 when attr is unrecognized.
func (t Totals) Get(attr Attribute) int {
	switch attr {
	case AttributePotency:
		return t.Potency
	case AttributeResonance:
		return t.Resonance
	case AttributeEntropy:
		return t.Entropy
	default:
		return 0
	}
}

// Add returns the element-wise sum of t and other.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Potency:   t.Potency + other.Potency,
		Resonance: t.Resonance + other.Resonance,
		Entropy:   t.Entropy + other.Entropy,
	}
}

// Max returns the maximum value among the three totals.
func (t Totals) Max() int {
	max := t.Potency
	if t.Resonance > max {
		max = t.Resonance
	}
	if t.Entropy > max {
		max = t.Entropy
	}
	return max
}
