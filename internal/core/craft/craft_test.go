package craft

import "testing"

func TestParseQuality(t *testing.T) {
	tcs := []struct {
		raw    string
		want   Quality
		wantOK bool
	}{
		{raw: "Potency", want: QualityPotency, wantOK: true},
		{raw: "potency", want: QualityPotency, wantOK: true},
		{raw: "RESONANCE", want: QualityResonance, wantOK: true},
		{raw: "Clarity", want: QualityResonance, wantOK: true},
		{raw: "chaos", want: QualityEntropy, wantOK: true},
		{raw: " entropy ", want: QualityEntropy, wantOK: true},
		{raw: "luck", want: "", wantOK: false},
		{raw: "", want: "", wantOK: false},
	}

	for _, tc := range tcs {
		got, ok := ParseQuality(tc.raw)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseQuality(%q) = (%q, %t), want (%q, %t)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseDiscipline(t *testing.T) {
	tcs := []struct {
		raw    string
		want   Discipline
		wantOK bool
	}{
		{raw: "Herbalism", want: DisciplineHerbalism, wantOK: true},
		{raw: "alchemy", want: DisciplineAlchemy, wantOK: true},
		{raw: "POISON", want: DisciplinePoison, wantOK: true},
		{raw: "smithing", want: "", wantOK: false},
	}

	for _, tc := range tcs {
		got, ok := ParseDiscipline(tc.raw)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseDiscipline(%q) = (%q, %t), want (%q, %t)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTierIndex(t *testing.T) {
	tcs := []struct {
		attr Attribute
		want int
	}{
		{attr: AttributePotency, want: 0},
		{attr: AttributeResonance, want: 1},
		{attr: AttributeEntropy, want: 2},
		{attr: Attribute("luck"), want: 0},
	}

	for _, tc := range tcs {
		if got := TierIndex(tc.attr); got != tc.want {
			t.Errorf("TierIndex(%q) = %d, want %d", tc.attr, got, tc.want)
		}
	}
}

func TestTotalsGet(t *testing.T) {
	totals := Totals{Potency: 1, Resonance: 2, Entropy: 3}
	if got := totals.Get(AttributeResonance); got != 2 {
		t.Errorf("Get(resonance) = %d, want 2", got)
	}
	if got := totals.Get(Attribute("luck")); got != 0 {
		t.Errorf("Get(unknown) = %d, want 0", got)
	}
}
