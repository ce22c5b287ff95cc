package domain

import (
	"testing"

	"github.com/sablewood/cauldron/internal/core/craft"
)

func TestIngredientCore(t *testing.T) {
	stored := Ingredient{Name: "emberroot", Potency: 3, Resonance: 1, Entropy: 2, Quantity: 9}
	want := craft.Ingredient{Name: "emberroot", Potency: 3, Resonance: 1, Entropy: 2}
	if got := stored.Core(); got != want {
		t.Errorf("Core() = %+v, want %+v", got, want)
	}
}

func TestCountNames(t *testing.T) {
	counts := CountNames([]string{"emberroot", "nightcap", "emberroot"})
	if counts["emberroot"] != 2 || counts["nightcap"] != 1 {
		t.Errorf("CountNames = %v, want emberroot:2 nightcap:1", counts)
	}
	if len(counts) != 2 {
		t.Errorf("CountNames returned %d entries, want 2", len(counts))
	}
}
