package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuetracker/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSeed(t *testing.T) {
	items := Seed()

	require.Len(t, items, 10)
	assert.Equal(t, domain.Item{Name: "Shadow Of Afton", Value: "4k"}, items[0])
	assert.Equal(t, domain.Item{Name: "Exotic Butters", Value: "250k-300k"}, items[9])
	assert.NoError(t, Validate(items))
}

func TestLoadEmptyPathUsesSeed(t *testing.T) {
	items, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, Seed(), items)
}

func TestLoadTOMLFile(t *testing.T) {
	path := writeFile(t, "items.toml", `
[[items]]
name = "Golden Freddy"
value = "12k"

[[items]]
name = "Toy Chica"
value = "900"
`)

	items, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, []domain.Item{
		{Name: "Golden Freddy", Value: "12k"},
		{Name: "Toy Chica", Value: "900"},
	}, items)
}

func TestLoadJSONFile(t *testing.T) {
	path := writeFile(t, "items.JSON", `{"items": [{"name": "Foxy", "value": "3k+"}]}`)

	items, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{{Name: "Foxy", Value: "3k+"}}, items)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "items.yaml", "items: []")
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("duplicate name", func(t *testing.T) {
		path := writeFile(t, "items.json", `{"items": [{"name": "Foxy", "value": "1k"}, {"name": "Foxy", "value": "2k"}]}`)
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("empty name", func(t *testing.T) {
		path := writeFile(t, "items.toml", "[[items]]\nname = \"  \"\nvalue = \"1k\"\n")
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "items.toml", "[[items]\nname = ")
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestValidateAllowsEmptyList(t *testing.T) {
	assert.NoError(t, Validate(nil))
}
