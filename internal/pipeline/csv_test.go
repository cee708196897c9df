package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsCSV = `item_id,type,date,country,device,user_id,price_in_usd
1,view,2024-01-01 09:00:00,DE,desktop,u1,
1,purchase,2024-01-01 10:00:00,DE,desktop,u1,25.50
2,add_to_cart,2024-01-02 11:00:00,,mobile,u2,
1,purchase,2024-01-02 12:00:00,US,mobile,u2,12
7,view,2024-01-02 13:00:00,FR,desktop,u3,
`

const itemsCSV = `id,category,brand,variant
1,shirt,X,red
2,hat,Y,blue
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	events := writeFile(t, dir, "events.csv", eventsCSV)
	items := writeFile(t, dir, "items.csv", itemsCSV)
	output := filepath.Join(dir, "out", "prepared.csv")

	stats, err := New(zerolog.Nop()).Run(events, items, output)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.EventsRead)
	assert.Equal(t, 1, stats.UnmatchedDropped)
	assert.Equal(t, 1, stats.CountriesDefaulted)
	require.NotNil(t, stats.Cutoff)
	assert.Equal(t, "2024-01-01", stats.Cutoff.String())
	assert.Equal(t, 2, stats.RowsWritten)

	rows, err := ReadFlatEvents(output)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "2024-01-02", row.DateDay.String())
	}
	// Cleaned country sentinel survives the round trip.
	assert.Equal(t, "UNK", rows[0].Country)
	assert.Equal(t, "hat", rows[0].Category)
	// The Jan 2 purchase keeps its price.
	require.True(t, rows[1].PriceInUSD.Valid)
	assert.Equal(t, "12", rows[1].PriceInUSD.Decimal.String())
}

func TestRunFailsOnMissingInputWithoutArtifact(t *testing.T) {
	dir := t.TempDir()
	items := writeFile(t, dir, "items.csv", itemsCSV)
	output := filepath.Join(dir, "prepared.csv")

	_, err := New(zerolog.Nop()).Run(filepath.Join(dir, "missing.csv"), items, output)
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "failed run must not leave an artifact")
}

func TestRunFailsOnDuplicateCatalogIDs(t *testing.T) {
	dir := t.TempDir()
	events := writeFile(t, dir, "events.csv", eventsCSV)
	items := writeFile(t, dir, "items.csv", itemsCSV+"1,shirt,Z,green\n")
	output := filepath.Join(dir, "prepared.csv")

	_, err := New(zerolog.Nop()).Run(events, items, output)
	require.ErrorIs(t, err, ErrDuplicateCatalogID)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}
