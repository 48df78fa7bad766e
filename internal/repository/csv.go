package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tiketbola/matchrec/internal/domain"
)

// Dataset column headers, as exported by the catalog pipeline.
const (
	colMatchID     = "ID Match"
	colHome        = "Home"
	colAway        = "Away"
	colDate        = "Tanggal"
	colKickoff     = "Jam"
	colVenue       = "Stadion"
	colCity        = "Lokasi"
	colTicketsSold = "Jumlah Tiket Terjual"
)

// CSVCatalog loads the match catalog from a dataset file. Used by
// deployments that ship the catalog as a file instead of a database
// table; either way the catalog is read once and held in memory.
type CSVCatalog struct {
	path string
}

func NewCSVCatalog(path string) *CSVCatalog {
	return &CSVCatalog{
		path: path,
	}
}

// LoadAll parses the dataset preserving row order. Rows that fail to
// parse are skipped and counted; a missing required header fails the
// whole load.
func (c *CSVCatalog) LoadAll() ([]domain.Match, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open -> %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reader.Read header -> %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colMatchID, colHome, colAway} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset %v is missing column %q", c.path, required)
		}
	}

	var (
		matches []domain.Match
		skipped int
	)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		match, ok := rowToMatch(row, cols)
		if !ok {
			skipped++
			continue
		}

		matches = append(matches, match)
	}

	if skipped > 0 {
		zap.L().Warn("skipped malformed dataset rows",
			zap.String("path", c.path),
			zap.Int("skipped", skipped),
			zap.Int("loaded", len(matches)),
		)
	}

	return matches, nil
}

func rowToMatch(row []string, cols map[string]int) (domain.Match, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	id, err := strconv.ParseUint(field(colMatchID), 10, 32)
	if err != nil {
		return domain.Match{}, false
	}

	home := field(colHome)
	away := field(colAway)
	if home == "" || away == "" {
		return domain.Match{}, false
	}

	// Sold count is optional in older exports.
	sold := 0
	if raw := field(colTicketsSold); raw != "" {
		sold, err = strconv.Atoi(raw)
		if err != nil || sold < 0 {
			return domain.Match{}, false
		}
	}

	return domain.Match{
		ID:          uint(id),
		HomeTeam:    home,
		AwayTeam:    away,
		Venue:       field(colVenue),
		City:        field(colCity),
		Date:        field(colDate),
		Kickoff:     trimSeconds(field(colKickoff)),
		TicketsSold: sold,
	}, true
}

// trimSeconds normalizes "20:00:00" to "20:00"; values without seconds
// pass through unchanged.
func trimSeconds(kickoff string) string {
	if i := strings.LastIndex(kickoff, ":"); i > 0 && strings.Count(kickoff, ":") == 2 {
		return kickoff[:i]
	}
	return kickoff
}
