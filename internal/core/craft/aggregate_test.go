package craft

import "testing"

func TestAggregate(t *testing.T) {
	tcs := []struct {
		name        string
		ingredients []Ingredient
		want        Totals
	}{
		{
			name:        "nil ingredients",
			ingredients: nil,
			want:        Totals{},
		},
		{
			name:        "empty ingredients",
			ingredients: []Ingredient{},
			want:        Totals{},
		},
		{
			name:        "no numeric fields defaults to zero",
			ingredients: []Ingredient{{Name: "X"}},
			want:        Totals{Potency: 0, Resonance: 0, Entropy: 0},
		},
		{
			name: "sums across ingredients",
			ingredients: []Ingredient{
				{Name: "nightcap", Potency: 2, Resonance: 1},
				{Name: "emberroot", Potency: 1},
				{Name: "hollow thorn", Potency: 2, Entropy: 1},
			},
			want: Totals{Potency: 5, Resonance: 1, Entropy: 1},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.ingredients)
			if got != tc.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAggregateAdditivity(t *testing.T) {
	a := []Ingredient{
		{Name: "a1", Potency: 1, Resonance: 4},
		{Name: "a2", Entropy: 3},
	}
	b := []Ingredient{
		{Name: "b1", Potency: 2, Resonance: 1, Entropy: 5},
	}

	combined := Aggregate(append(append([]Ingredient{}, a...), b...))
	split := Aggregate(a).Add(Aggregate(b))
	if combined != split {
		t.Errorf("Aggregate(a++b) = %+v, want %+v", combined, split)
	}
}
