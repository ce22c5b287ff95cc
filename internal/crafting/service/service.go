// Package service orchestrates crafting attempts around the pure resolution
// engine: input validation, inventory checks, catalog loading, discovery
// bookkeeping, and result broadcasting. Every user-visible failure
// originates here; the engine itself never fails.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sablewood/cauldron/internal/core/craft"
	"github.com/sablewood/cauldron/internal/crafting/domain"
	"github.com/sablewood/cauldron/internal/storage"
)

// IngredientsPerCraft is the number of ingredients a crafting attempt
// consumes.
const IngredientsPerCraft = 3

// ErrUnknownDiscipline indicates the request named a discipline outside the
// fixed set.
var ErrUnknownDiscipline = errors.New("unknown discipline")

// ErrUnknownMode indicates the request named a resolution mode other than
// deterministic or random.
var ErrUnknownMode = errors.New("unknown crafting mode")

// ErrIngredientCount indicates the request did not select exactly three
// ingredients.
var ErrIngredientCount = errors.New("select three ingredients")

// ErrUnknownIngredient indicates a selected ingredient is not in inventory.
var ErrUnknownIngredient = errors.New("unknown ingredient")

// ErrInsufficientQuantity indicates the inventory cannot cover the
// selection.
var ErrInsufficientQuantity = errors.New("not enough ingredient in inventory")

// SeedFunc produces the seed for random-mode rolls.
type SeedFunc func() (int64, error)

// Broadcaster fans a finished crafting outcome out to live listeners. A nil
// broadcaster is allowed; outcomes are then simply not published.
type Broadcaster interface {
	BroadcastOutcome(outcome Outcome)
}

// Request describes one crafting attempt as received from the transport
// layer, raw strings and all.
type Request struct {
	Discipline  string   `json:"discipline"`
	Ingredients []string `json:"ingredients"`
	Mode        string   `json:"mode,omitempty"`
}

// Outcome is a resolved crafting attempt plus the context the table needs to
// display it.
type Outcome struct {
	Discipline craft.Discipline `json:"discipline"`
	craft.Result
}

// Service runs crafting attempts against persistent inventory and catalogs.
type Service struct {
	ingredients storage.IngredientStore
	recipes     storage.RecipeStore
	newSeed     SeedFunc
	broadcaster Broadcaster
}

// New creates a crafting service. newSeed may be nil, in which case random
// mode is refused; broadcaster may be nil.
func New(ingredients storage.IngredientStore, recipes storage.RecipeStore, newSeed SeedFunc, broadcaster Broadcaster) *Service {
	return &Service{
		ingredients: ingredients,
		recipes:     recipes,
		newSeed:     newSeed,
		broadcaster: broadcaster,
	}
}

// Craft validates the request, resolves it through the engine, and persists
// the consequences: the chosen recipe is marked discovered and one of each
// selected ingredient is deducted from inventory. A nil recipe in the
// outcome means the catalog had nothing to offer; that is a valid result,
// not an error, and consumes nothing.
func (s *Service) Craft(ctx context.Context, request Request) (Outcome, error) {
	discipline, ok := craft.ParseDiscipline(request.Discipline)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownDiscipline, request.Discipline)
	}

	mode, err := parseMode(request.Mode)
	if err != nil {
		return Outcome{}, err
	}

	if len(request.Ingredients) != IngredientsPerCraft {
		return Outcome{}, fmt.Errorf("%w: got %d", ErrIngredientCount, len(request.Ingredients))
	}

	selected, err := s.loadSelection(ctx, request.Ingredients)
	if err != nil {
		return Outcome{}, err
	}

	catalog, err := s.recipes.ListRecipes(ctx, discipline)
	if err != nil {
		return Outcome{}, fmt.Errorf("load catalog: %w", err)
	}

	var seed int64
	if mode == craft.ModeRandom {
		if s.newSeed == nil {
			return Outcome{}, fmt.Errorf("%w: no random source configured", ErrUnknownMode)
		}
		seed, err = s.newSeed()
		if err != nil {
			return Outcome{}, fmt.Errorf("seed random roll: %w", err)
		}
	}

	result := craft.Resolve(craft.Request{
		Ingredients: selected,
		Discipline:  discipline,
		Catalog:     catalog,
		Mode:        mode,
		Seed:        seed,
	})

	outcome := Outcome{Discipline: discipline, Result: result}

	if result.Recipe != nil {
		if err := s.recipes.MarkDiscovered(ctx, discipline, result.Recipe.Quality, result.Recipe.Number); err != nil {
			return Outcome{}, fmt.Errorf("mark recipe discovered: %w", err)
		}
		outcome.Recipe.Discovered = true

		for name, count := range domain.CountNames(request.Ingredients) {
			if err := s.ingredients.AdjustQuantity(ctx, name, -count); err != nil {
				return Outcome{}, fmt.Errorf("deduct %s: %w", name, err)
			}
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastOutcome(outcome)
	}
	return outcome, nil
}

// loadSelection resolves each selected name to its stored record, verifying
// the inventory covers duplicates, and returns the engine inputs in
// selection order.
func (s *Service) loadSelection(ctx context.Context, names []string) ([]craft.Ingredient, error) {
	records := make(map[string]domain.Ingredient, len(names))
	for name, count := range domain.CountNames(names) {
		record, err := s.ingredients.GetIngredient(ctx, name)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
		}
		if err != nil {
			return nil, fmt.Errorf("load ingredient %q: %w", name, err)
		}
		if record.Quantity < count {
			return nil, fmt.Errorf("%w: %q (%d on hand, %d selected)", ErrInsufficientQuantity, name, record.Quantity, count)
		}
		records[name] = record
	}

	selected := make([]craft.Ingredient, 0, len(names))
	for _, name := range names {
		selected = append(selected, records[name].Core())
	}
	return selected, nil
}

func parseMode(raw string) (craft.Mode, error) {
	switch craft.Mode(raw) {
	case "", craft.ModeDeterministic:
		return craft.ModeDeterministic, nil
	case craft.ModeRandom:
		return craft.ModeRandom, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}
