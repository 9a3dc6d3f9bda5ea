// Package catalog loads the item list shown by the tracker, either the
// embedded seed list or a user supplied TOML/JSON file.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"valuetracker/internal/domain"
)

// SourceEmbedded is reported as the source of the built-in seed list
const SourceEmbedded = "embedded"

var (
	// ErrEmptyName is returned when an item has no name
	ErrEmptyName = errors.New("item name is empty")
	// ErrDuplicateName is returned when two items share a name
	ErrDuplicateName = errors.New("duplicate item name")
	// ErrUnsupportedFormat is returned for files that are neither TOML nor JSON
	ErrUnsupportedFormat = errors.New("unsupported items file format")
)

//go:embed items.toml
var seedTOML []byte

// itemsFile is the on-disk layout of an items file
type itemsFile struct {
	Items []domain.Item `toml:"items" json:"items"`
}

// Seed returns the built-in item list
func Seed() []domain.Item {
	items, err := parseTOML(seedTOML)
	if err != nil {
		// The embedded file is part of the binary; failing here is a build defect
		panic(fmt.Sprintf("catalog: invalid embedded seed list: %v", err))
	}
	return items
}

// Load returns the seed list when path is empty and the file contents otherwise,
// together with a description of where the items came from.
func Load(path string) ([]domain.Item, string, error) {
	if path == "" {
		return Seed(), SourceEmbedded, nil
	}
	items, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return items, path, nil
}

// LoadFile reads an items file. The format is chosen by extension:
// .toml or .json.
func LoadFile(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		items, err := parseTOML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return items, nil
	case ".json":
		items, err := parseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func parseTOML(data []byte) ([]domain.Item, error) {
	var f itemsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	return f.Items, Validate(f.Items)
}

func parseJSON(data []byte) ([]domain.Item, error) {
	var f itemsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	return f.Items, Validate(f.Items)
}

// Validate checks that every item has a non-empty, unique name
func Validate(items []domain.Item) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item %d: %w", i+1, ErrEmptyName)
		}
		if first, ok := seen[item.Name]; ok {
			return fmt.Errorf("items %d and %d: %w %q", first+1, i+1, ErrDuplicateName, item.Name)
		}
		seen[item.Name] = i
	}
	return nil
}
