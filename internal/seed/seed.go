// Package seed loads recipe seed data from JSON, either the embedded default
// set or a user-provided file.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/crumbwork/ladle/internal/recipe"
)

//go:embed recipes.json
var defaultSeed []byte

// Default returns the embedded default recipe set.
func Default() ([]recipe.Recipe, error) {
	return parse(defaultSeed)
}

// LoadFile reads recipes from a JSON seed file.
func LoadFile(path string) ([]recipe.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	recipes, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return recipes, nil
}

// parse decodes and validates a JSON recipe array. Validation matches the
// catalog invariants so a bad seed fails at load time, not at query time.
func parse(data []byte) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("invalid seed JSON: %w", err)
	}

	seen := make(map[int64]bool, len(recipes))
	for _, r := range recipes {
		if r.ID <= 0 {
			return nil, fmt.Errorf("recipe %q: id must be positive, got %d", r.Label, r.ID)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate recipe id %d", r.ID)
		}
		if r.Label == "" {
			return nil, fmt.Errorf("recipe %d: label must not be empty", r.ID)
		}
		seen[r.ID] = true
	}

	return recipes, nil
}
