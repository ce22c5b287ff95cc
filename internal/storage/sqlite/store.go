// Package sqlite provides a SQLite-backed crafting storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sablewood/cauldron/internal/core/craft"
	"github.com/sablewood/cauldron/internal/crafting/domain"
	"github.com/sablewood/cauldron/internal/platform/storage/sqlitemigrate"
	"github.com/sablewood/cauldron/internal/storage"
	"github.com/sablewood/cauldron/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists crafting state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite crafting store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutIngredient inserts or replaces one ingredient record.
func (s *Store) PutIngredient(ctx context.Context, ingredient domain.Ingredient) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(ingredient.Name)
	if name == "" {
		return fmt.Errorf("ingredient name is required")
	}
	now := toMillis(time.Now())

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO ingredients (name, potency, resonance, entropy, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   potency = excluded.potency,
		   resonance = excluded.resonance,
		   entropy = excluded.entropy,
		   quantity = excluded.quantity,
		   updated_at = excluded.updated_at`,
		name,
		ingredient.Potency,
		ingredient.Resonance,
		ingredient.Entropy,
		ingredient.Quantity,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("put ingredient: %w", err)
	}
	return nil
}

// GetIngredient returns one ingredient by name.
func (s *Store) GetIngredient(ctx context.Context, name string) (domain.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return domain.Ingredient{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Ingredient{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Ingredient{}, fmt.Errorf("ingredient name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT name, potency, resonance, entropy, quantity FROM ingredients WHERE name = ?`,
		name,
	)
	var ingredient domain.Ingredient
	err := row.Scan(
		&ingredient.Name,
		&ingredient.Potency,
		&ingredient.Resonance,
		&ingredient.Entropy,
		&ingredient.Quantity,
	)
	if err == sql.ErrNoRows {
		return domain.Ingredient{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("get ingredient: %w", err)
	}
	return ingredient, nil
}

// ListIngredients returns every ingredient ordered by name.
func (s *Store) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT name, potency, resonance, entropy, quantity FROM ingredients ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ingredient domain.Ingredient
		if err := rows.Scan(
			&ingredient.Name,
			&ingredient.Potency,
			&ingredient.Resonance,
			&ingredient.Entropy,
			&ingredient.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return ingredients, nil
}

// AdjustQuantity changes an ingredient quantity by delta, refusing to let
// the on-hand amount go negative.
func (s *Store) AdjustQuantity(ctx context.Context, name string, delta int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("ingredient name is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE ingredients
		 SET quantity = quantity + ?, updated_at = ?
		 WHERE name = ? AND quantity + ? >= 0`,
		delta,
		toMillis(time.Now()),
		name,
		delta,
	)
	if err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust quantity rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := s.GetIngredient(ctx, name); err != nil {
		return err
	}
	return storage.ErrInsufficientQuantity
}

// PutRecipe inserts or replaces one catalog entry.
func (s *Store) PutRecipe(ctx context.Context, discipline craft.Discipline, recipe craft.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(recipe.Name)
	if name == "" {
		return fmt.Errorf("recipe name is required")
	}
	if recipe.Number <= 0 {
		return fmt.Errorf("recipe number must be greater than zero")
	}
	now := toMillis(time.Now())

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO recipes (discipline, quality, recipe_no, name, category, rarity, effect, discovered, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(discipline, quality, recipe_no) DO UPDATE SET
		   name = excluded.name,
		   category = excluded.category,
		   rarity = excluded.rarity,
		   effect = excluded.effect,
		   discovered = excluded.discovered,
		   updated_at = excluded.updated_at`,
		string(discipline),
		string(recipe.Quality),
		recipe.Number,
		name,
		strings.TrimSpace(recipe.Category),
		strings.TrimSpace(recipe.Rarity),
		recipe.Effect,
		boolToInt(recipe.Discovered),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("put recipe: %w", err)
	}
	return nil
}

// ListRecipes returns a discipline's catalog in quality-group order.
func (s *Store) ListRecipes(ctx context.Context, discipline craft.Discipline) ([]craft.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT recipe_no, name, category, quality, rarity, effect, discovered
		 FROM recipes
		 WHERE discipline = ?
		 ORDER BY CASE quality
		   WHEN 'Potency' THEN 0
		   WHEN 'Resonance' THEN 1
		   WHEN 'Entropy' THEN 2
		   ELSE 3
		 END, recipe_no`,
		string(discipline),
	)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var catalog []craft.Recipe
	for rows.Next() {
		var recipe craft.Recipe
		var quality string
		var discovered int
		if err := rows.Scan(
			&recipe.Number,
			&recipe.Name,
			&recipe.Category,
			&quality,
			&recipe.Rarity,
			&recipe.Effect,
			&discovered,
		); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipe.Quality = craft.Quality(quality)
		recipe.Discovered = discovered != 0
		catalog = append(catalog, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return catalog, nil
}

// MarkDiscovered flags one catalog entry as revealed to the players.
func (s *Store) MarkDiscovered(ctx context.Context, discipline craft.Discipline, quality craft.Quality, number int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE recipes SET discovered = 1, updated_at = ?
		 WHERE discipline = ? AND quality = ? AND recipe_no = ?`,
		toMillis(time.Now()),
		string(discipline),
		string(quality),
		number,
	)
	if err != nil {
		return fmt.Errorf("mark discovered: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark discovered rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
