package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCSVCatalogLoadAll(t *testing.T) {
	path := writeDataset(t, `ID Match,Match,Home,Away,Tanggal,Jam,Stadion,Lokasi,Jumlah Tiket Terjual
1,Persib vs PSBS Biak,Persib ,PSBS Biak,2024-08-10,20:00:00,GBLA,Bandung,25000
7,Persebaya vs PSS Sleman,Persebaya,PSS Sleman,2024-08-12,20:00:00,GBT,Surabaya,18000
9,Arema vs Persija,Arema,Persija,2024-08-15,19:30:00,Kanjuruhan,Malang,
`)

	matches, err := NewCSVCatalog(path).LoadAll()
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Row order is preserved.
	assert.Equal(t, uint(1), matches[0].ID)
	assert.Equal(t, uint(7), matches[1].ID)
	assert.Equal(t, uint(9), matches[2].ID)

	// Fields are trimmed and the kickoff loses its seconds.
	assert.Equal(t, "Persib", matches[0].HomeTeam)
	assert.Equal(t, "20:00", matches[0].Kickoff)
	assert.Equal(t, 25000, matches[0].TicketsSold)

	// Missing sold count defaults to zero.
	assert.Equal(t, 0, matches[2].TicketsSold)
}

func TestCSVCatalogSkipsMalformedRows(t *testing.T) {
	path := writeDataset(t, `ID Match,Home,Away
not-a-number,Persib,PSBS Biak
2,,PSS Sleman
3,Arema,Persija
`)

	matches, err := NewCSVCatalog(path).LoadAll()
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uint(3), matches[0].ID)
}

func TestCSVCatalogMissingColumnFails(t *testing.T) {
	path := writeDataset(t, `ID Match,Home
1,Persib
`)

	_, err := NewCSVCatalog(path).LoadAll()
	assert.Error(t, err)
}

func TestCSVCatalogMissingFileFails(t *testing.T) {
	_, err := NewCSVCatalog("/nonexistent/dataset.csv").LoadAll()
	assert.Error(t, err)
}
