// Package storage defines the persistence interfaces consumed by the
// crafting service. Implementations live in subpackages; errors cross the
// boundary as the sentinels below.
package storage

import (
	"context"
	"errors"

	"github.com/sablewood/cauldron/internal/core/craft"
	"github.com/sablewood/cauldron/internal/crafting/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientQuantity indicates an inventory deduction would go negative.
var ErrInsufficientQuantity = errors.New("insufficient ingredient quantity")

// IngredientStore persists inventory-tracked ingredients.
type IngredientStore interface {
	PutIngredient(ctx context.Context, ingredient domain.Ingredient) error
	GetIngredient(ctx context.Context, name string) (domain.Ingredient, error)
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	// AdjustQuantity changes an ingredient's on-hand quantity by delta.
	AdjustQuantity(ctx context.Context, name string, delta int) error
}

// RecipeStore persists per-discipline recipe catalogs.
type RecipeStore interface {
	PutRecipe(ctx context.Context, discipline craft.Discipline, recipe craft.Recipe) error
	// ListRecipes returns a discipline's catalog ordered by quality group
	// (canonical attribute order) and recipe number, the layout the slot
	// selector expects.
	ListRecipes(ctx context.Context, discipline craft.Discipline) ([]craft.Recipe, error)
	MarkDiscovered(ctx context.Context, discipline craft.Discipline, quality craft.Quality, number int) error
}
