// Package content loads hand-authored crafting content packs.
//
// Packs are YAML files describing inventory ingredients and per-discipline
// recipe catalogs. Loading is where raw game data gets normalized for the
// engine: quality tags are case-folded and the Clarity/Chaos synonyms mapped
// to their canonical attributes, absent numeric fields stay zero, and recipe
// numbers default to the entry's position within its quality group. The
// engine downstream assumes this normalization already happened.
package content

import (
	"fmt"
	"io"
	"os"

	"github.com/sablewood/cauldron/internal/core/craft"
	"github.com/sablewood/cauldron/internal/crafting/domain"
	"gopkg.in/yaml.v3"
)

// Pack is one parsed content pack.
type Pack struct {
	Ingredients []domain.Ingredient
	Catalogs    map[craft.Discipline][]craft.Recipe
}

type packFile struct {
	Ingredients []ingredientEntry `yaml:"ingredients"`
	Disciplines []disciplineEntry `yaml:"disciplines"`
}

type ingredientEntry struct {
	Name      string `yaml:"name"`
	Potency   int    `yaml:"potency"`
	Resonance int    `yaml:"resonance"`
	Entropy   int    `yaml:"entropy"`
	Quantity  int    `yaml:"quantity"`
}

type disciplineEntry struct {
	Name    string        `yaml:"name"`
	Recipes []recipeEntry `yaml:"recipes"`
}

type recipeEntry struct {
	Number     int    `yaml:"recipeNo"`
	Name       string `yaml:"name"`
	Category   string `yaml:"category"`
	Quality    string `yaml:"quality"`
	Rarity     string `yaml:"rarity"`
	Effect     string `yaml:"effect"`
	Discovered bool   `yaml:"discovered"`
}

// LoadFile reads and parses a content pack from disk.
func LoadFile(path string) (*Pack, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content pack: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Load parses a content pack from r.
func Load(r io.Reader) (*Pack, error) {
	var parsed packFile
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode content pack: %w", err)
	}

	pack := &Pack{
		Catalogs: make(map[craft.Discipline][]craft.Recipe, len(parsed.Disciplines)),
	}

	for i, entry := range parsed.Ingredients {
		if entry.Name == "" {
			return nil, fmt.Errorf("ingredient %d: name is required", i+1)
		}
		pack.Ingredients = append(pack.Ingredients, domain.Ingredient{
			Name:      entry.Name,
			Potency:   entry.Potency,
			Resonance: entry.Resonance,
			Entropy:   entry.Entropy,
			Quantity:  entry.Quantity,
		})
	}

	for _, group := range parsed.Disciplines {
		discipline, ok := craft.ParseDiscipline(group.Name)
		if !ok {
			return nil, fmt.Errorf("discipline %q is not one of the fixed set", group.Name)
		}
		if _, exists := pack.Catalogs[discipline]; exists {
			return nil, fmt.Errorf("discipline %q appears twice", group.Name)
		}

		catalog, err := normalizeCatalog(discipline, group.Recipes)
		if err != nil {
			return nil, err
		}
		pack.Catalogs[discipline] = catalog
	}

	return pack, nil
}

func normalizeCatalog(discipline craft.Discipline, entries []recipeEntry) ([]craft.Recipe, error) {
	catalog := make([]craft.Recipe, 0, len(entries))
	perQuality := make(map[craft.Quality]int, 3)

	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("%s recipe %d: name is required", discipline, i+1)
		}
		quality, ok := craft.ParseQuality(entry.Quality)
		if !ok {
			return nil, fmt.Errorf("%s recipe %q: unknown quality %q", discipline, entry.Name, entry.Quality)
		}
		perQuality[quality]++

		number := entry.Number
		if number <= 0 {
			number = perQuality[quality]
		}
		category := entry.Category
		if category == "" {
			category = string(discipline)
		}

		catalog = append(catalog, craft.Recipe{
			Number:     number,
			Name:       entry.Name,
			Category:   category,
			Quality:    quality,
			Rarity:     entry.Rarity,
			Effect:     entry.Effect,
			Discovered: entry.Discovered,
		})
	}
	return catalog, nil
}
