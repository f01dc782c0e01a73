package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/config"
	"github.com/dulina20231254-glitch/urbannest/internal/query"
	"github.com/dulina20231254-glitch/urbannest/internal/testutil"
)

// setupViper resets the global viper to defaults pointing at a temp database.
func setupViper(t *testing.T) string {
	t.Helper()

	viper.Reset()
	config.SetDefaults(viper.GetViper())
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	viper.Set("database.path", dbPath)
	t.Cleanup(viper.Reset)
	return dbPath
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeIDs(t *testing.T, out string) []string {
	t.Helper()

	var listings []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listings))

	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}

func TestListCommand_CatalogFile(t *testing.T) {
	setupViper(t)
	viper.Set("catalog.path", testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON))

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no filters keeps file order",
			args: []string{"--format", "json"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "postcode is case-insensitive",
			args: []string{"--format", "json", "--postcode", "br1"},
			want: []string{"1", "3"},
		},
		{
			name: "price ascending",
			args: []string{"--format", "json", "--sort", "price-asc"},
			want: []string{"2", "3", "1"},
		},
		{
			name: "invalid filter value is ignored",
			args: []string{"--format", "json", "--min-price", "lots"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "future date leaves nothing",
			args: []string{"--format", "json", "--added-since", "2030-01-01"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, listCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decodeIDs(t, out))
		})
	}
}

func TestListCommand_Table(t *testing.T) {
	setupViper(t)
	viper.Set("catalog.path", testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON))

	out, err := execute(t, listCmd(), "--type", "flat")
	require.NoError(t, err)
	assert.Contains(t, out, "SE1 9XY")
	assert.Contains(t, out, "£250,000")
	assert.NotContains(t, out, "BR1 2AB")
	assert.Contains(t, out, "1 of 3 listings, 1 filter(s), No sorting")
}

func TestListCommand_RejectsUnknownSort(t *testing.T) {
	setupViper(t)
	viper.Set("catalog.path", testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON))

	_, err := execute(t, listCmd(), "--sort", "cheapest")
	require.Error(t, err)
	assert.Equal(t, "Invalid --sort value", common.UserMessage(err))
}

func TestListCommand_EmptyDatabase(t *testing.T) {
	setupViper(t)

	_, err := execute(t, listCmd())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestShowCommand_RejectsUnknownFormat(t *testing.T) {
	setupViper(t)

	// Rejected before the empty database is read.
	_, err := execute(t, showCmd(), "--format", "xml", "1")
	require.Error(t, err)
	assert.Equal(t, "Invalid --format value", common.UserMessage(err))
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.NotErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestShowCommand_JSON(t *testing.T) {
	setupViper(t)
	viper.Set("catalog.path", testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON))

	out, err := execute(t, showCmd(), "--format", "json", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"images/3a.jpg"`)
	assert.NotContains(t, out, "Listing 3")
}

func TestImportThenShow(t *testing.T) {
	setupViper(t)
	jsonPath := testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON)
	yamlPath := testutil.WriteFile(t, "more.yaml", testutil.CatalogYAML)

	out, err := execute(t, importCmd(), jsonPath, yamlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 5 new and 0 updated listings (5 in catalog)")

	// Re-importing updates in place.
	out, err = execute(t, importCmd(), jsonPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 new and 3 updated listings (5 in catalog)")

	out, err = execute(t, listCmd(), "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "10", "11"}, decodeIDs(t, out))

	out, err = execute(t, showCmd(), "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Listing 3")
	assert.Contains(t, out, "images/3a.jpg")

	_, err = execute(t, showCmd(), "99")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	out, err = execute(t, importCmd(), "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog.json, more.yaml")
}

func TestImportCommand_Replace(t *testing.T) {
	setupViper(t)

	_, err := execute(t, importCmd(), testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON))
	require.NoError(t, err)

	out, err := execute(t, importCmd(), "--replace", testutil.WriteFile(t, "more.yaml", testutil.CatalogYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "(2 in catalog)")
}

func TestImportCommand_DryRunWritesNothing(t *testing.T) {
	setupViper(t)

	out, err := execute(t, importCmd(), "--dry-run", testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON))
	require.NoError(t, err)
	assert.Contains(t, out, "3 listings from 1 file(s) are valid.")

	_, err = execute(t, listCmd())
	assert.ErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestImportCommand_DuplicateAcrossFiles(t *testing.T) {
	setupViper(t)
	path := testutil.WriteFile(t, "catalog.json", testutil.CatalogJSON)

	_, err := execute(t, importCmd(), path, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateListing)
}

func TestImportCommand_RequiresFiles(t *testing.T) {
	setupViper(t)

	_, err := execute(t, importCmd())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestFilterInput(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addFilterFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--type", "Flat", "--bedrooms", "2", "--postcode", "se1"}))

	in := filterInput(cmd)
	assert.Equal(t, query.Input{Type: "Flat", MinBedrooms: "2", Postcode: "se1"}, in)

	mode, err := sortFlag(cmd, query.SortDateNewest)
	require.NoError(t, err)
	assert.Equal(t, query.SortDateNewest, mode)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "a.json, b.yaml", sourceName([]string{"/tmp/x/a.json", "b.yaml"}))
}
