package content

import (
	"strings"
	"testing"

	"github.com/sablewood/cauldron/internal/core/craft"
)

const samplePack = `
ingredients:
  - name: emberroot
    potency: 3
    resonance: 1
    quantity: 5
  - name: widow's veil
    entropy: 4
    quantity: 2
disciplines:
  - name: herbalism
    recipes:
      - name: Vigor Tonic
        quality: Potency
        rarity: common
        effect: restores vigor
      - name: Whisper Salve
        quality: clarity
      - name: Grave Chill
        quality: Chaos
        recipeNo: 7
  - name: Poison
    recipes:
      - name: Widow's Kiss
        quality: entropy
        category: Toxins
        discovered: true
`

func TestLoadNormalizesPack(t *testing.T) {
	pack, err := Load(strings.NewReader(samplePack))
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}

	if len(pack.Ingredients) != 2 {
		t.Fatalf("got %d ingredients, want 2", len(pack.Ingredients))
	}
	if pack.Ingredients[0].Potency != 3 || pack.Ingredients[0].Entropy != 0 {
		t.Errorf("emberroot = %+v, want potency 3 and defaulted entropy 0", pack.Ingredients[0])
	}

	herbal, ok := pack.Catalogs[craft.DisciplineHerbalism]
	if !ok {
		t.Fatal("missing herbalism catalog")
	}
	if len(herbal) != 3 {
		t.Fatalf("got %d herbalism recipes, want 3", len(herbal))
	}

	// Synonyms map to canonical qualities.
	if herbal[1].Quality != craft.QualityResonance {
		t.Errorf("clarity mapped to %q, want %q", herbal[1].Quality, craft.QualityResonance)
	}
	if herbal[2].Quality != craft.QualityEntropy {
		t.Errorf("chaos mapped to %q, want %q", herbal[2].Quality, craft.QualityEntropy)
	}

	// Numbers default to position within the quality group; explicit numbers
	// are kept.
	if herbal[0].Number != 1 || herbal[1].Number != 1 {
		t.Errorf("defaulted numbers = %d, %d, want 1, 1", herbal[0].Number, herbal[1].Number)
	}
	if herbal[2].Number != 7 {
		t.Errorf("explicit number = %d, want 7", herbal[2].Number)
	}

	// Category defaults to the discipline name.
	if herbal[0].Category != "Herbalism" {
		t.Errorf("category = %q, want Herbalism", herbal[0].Category)
	}

	poison := pack.Catalogs[craft.DisciplinePoison]
	if len(poison) != 1 || poison[0].Category != "Toxins" || !poison[0].Discovered {
		t.Errorf("poison catalog = %+v, want explicit category and discovered flag kept", poison)
	}
}

func TestLoadRejectsUnknownQuality(t *testing.T) {
	bad := `
disciplines:
  - name: Alchemy
    recipes:
      - name: Mystery Brew
        quality: luck
`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for unknown quality")
	}
}

func TestLoadRejectsUnknownDiscipline(t *testing.T) {
	bad := `
disciplines:
  - name: Smithing
    recipes: []
`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for unknown discipline")
	}
}

func TestLoadRejectsDuplicateDiscipline(t *testing.T) {
	bad := `
disciplines:
  - name: Alchemy
    recipes: []
  - name: alchemy
    recipes: []
`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for duplicate discipline")
	}
}

func TestLoadRejectsNamelessIngredient(t *testing.T) {
	bad := `
ingredients:
  - potency: 2
`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for nameless ingredient")
	}
}
