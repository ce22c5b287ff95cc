// Package seed parses seed command flags and loads content packs into
// storage.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sablewood/cauldron/internal/content"
	entrypoint "github.com/sablewood/cauldron/internal/platform/cmd"
	"github.com/sablewood/cauldron/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath   string `env:"CAULDRON_DB_PATH" envDefault:"data/cauldron.db"`
	PackPath string `env:"CAULDRON_CONTENT_PACK" envDefault:"content/pack.yaml"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	fs.StringVar(&cfg.PackPath, "pack", cfg.PackPath, "Path to the YAML content pack")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the content pack into the store.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(context.Context) error {
		return seed(ctx, cfg)
	})
}

func seed(ctx context.Context, cfg Config) error {
	pack, err := content.LoadFile(cfg.PackPath)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, ingredient := range pack.Ingredients {
		if err := store.PutIngredient(ctx, ingredient); err != nil {
			return fmt.Errorf("seed ingredient %q: %w", ingredient.Name, err)
		}
	}

	recipeCount := 0
	for discipline, catalog := range pack.Catalogs {
		for _, recipe := range catalog {
			if err := store.PutRecipe(ctx, discipline, recipe); err != nil {
				return fmt.Errorf("seed %s recipe %q: %w", discipline, recipe.Name, err)
			}
			recipeCount++
		}
	}

	log.Printf("seeded %d ingredients and %d recipes from %s", len(pack.Ingredients), recipeCount, cfg.PackPath)
	return nil
}
