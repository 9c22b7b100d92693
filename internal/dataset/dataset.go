// package dataset reads the offline track dataset backing the hex scheme
// and matches hex bytes to tracks by fixed-position id characters.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"playcrypt/internal/models"
)

// trackURLPrefix builds the public track URL for dataset records, which
// carry no URL of their own.
const trackURLPrefix = "https://open.spotify.com/track/"

// Source supplies the dataset records.
type Source interface {
	Records(ctx context.Context) ([]models.Song, error)
}

// CSVSource reads records from a CSV file with at least track_id and
// track_name columns. The file is read once on first use and kept in
// memory; the dataset is treated as immutable for the process lifetime.
type CSVSource struct {
	path    string
	records []models.Song
	loaded  bool
}

// NewCSVSource creates a CSVSource for the file at path. The file is not
// opened until the first Records call.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Records returns all dataset records in file order.
func (s *CSVSource) Records(ctx context.Context) ([]models.Song, error) {
	if s.loaded {
		return s.records, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", s.path, err)
	}

	s.records = records
	s.loaded = true
	return s.records, nil
}

// parseCSV decodes dataset rows, locating the track_id and track_name
// columns by header name.
func parseCSV(r io.Reader) ([]models.Song, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case "track_id":
			idCol = i
		case "track_name":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("dataset must have track_id and track_name columns, got %v", header)
	}

	var songs []models.Song
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if idCol >= len(row) || nameCol >= len(row) {
			continue
		}

		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}

		songs = append(songs, models.Song{
			TrackID:     id,
			Name:        row[nameCol],
			ExternalURL: trackURLPrefix + id,
		})
	}

	return songs, nil
}
