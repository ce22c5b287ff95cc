package craft

// disciplinePriorities fixes the tie-break ordering per discipline, highest
// priority first. The table is compile-time configuration, not loaded data.
var disciplinePriorities = map[Discipline][3]Attribute{
	DisciplineHerbalism: {AttributeResonance, AttributeEntropy, AttributePotency},
	DisciplineAlchemy:   {AttributePotency, AttributeResonance, AttributeEntropy},
	DisciplinePoison:    {AttributeEntropy, AttributePotency, AttributeResonance},
}

// Priority returns the tie-break ordering for discipline, falling back to the
// canonical attribute order when the discipline is not recognized.
func Priority(discipline Discipline) [3]Attribute {
	if priority, ok := disciplinePriorities[discipline]; ok {
		return priority
	}
	return canonicalOrder
}

// ResolveDominant picks the attribute with the maximum total, breaking ties
// with the discipline's priority ordering.
//
// When all totals are zero (an empty ingredient list, say) the three-way tie
// resolves through the priority table like any other tie; the resolver never
// requires a non-zero total to produce an answer.
func ResolveDominant(totals Totals, discipline Discipline) Attribute {
	max := totals.Max()

	tied := make(map[Attribute]bool, 3)
	var winner Attribute
	count := 0
	for _, attr := range canonicalOrder {
		if totals.Get(attr) == max {
			tied[attr] = true
			winner = attr
			count++
		}
	}
	if count == 1 {
		return winner
	}

	for _, attr := range Priority(discipline) {
		if tied[attr] {
			return attr
		}
	}
	// Unreachable: the priority ordering covers all three attributes.
	return canonicalOrder[0]
}
