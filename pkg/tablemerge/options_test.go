package tablemerge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
	assert.True(t, opts.ShouldDetectTables())
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablemerge.yaml")
	content := `sheet: Summary
anchor: B2
name_column: Product
max_distance: 2
detect_tables: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "Summary", opts.SheetName)
	assert.Equal(t, "B2", opts.Anchor)
	assert.Equal(t, DefaultTableName, opts.TableName)
	assert.Equal(t, "Product", opts.NameColumn)
	assert.Equal(t, ColumnValue, opts.ValueColumn)
	assert.Equal(t, 2, opts.MaxDistance)
	assert.False(t, opts.ShouldDetectTables())
}

func TestLoadOptionsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheet: [unterminated"), 0644))

	_, err := LoadOptions(path)
	assert.Error(t, err)
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{SheetName: "Out", MaxDistance: -4}.withDefaults()
	assert.Equal(t, "Out", opts.SheetName)
	assert.Equal(t, DefaultAnchor, opts.Anchor)
	assert.Equal(t, ColumnName, opts.NameColumn)
	assert.Zero(t, opts.MaxDistance)
}
