// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"playcrypt/internal/models"
)

// MockService is a configurable test double for [services.Service].
// Zero-value fields return empty results; set the fields to script
// behavior per test.
type MockService struct {
	SearchResults map[string][]models.Song
	SearchErr     error
	Playlists     []models.Playlist
	PlaylistsErr  error
	Tracks        []models.Song
	TracksErr     error
	ReplacedID    string
	ReplacedSongs []models.Song
	ReplaceErr    error
	SearchQueries []string
	ReplaceCalls  int
}

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	return nil
}

func (m *MockService) SearchTracks(ctx context.Context, query string, limit int) ([]models.Song, error) {
	m.SearchQueries = append(m.SearchQueries, query)
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.SearchResults[query], nil
}

func (m *MockService) GetPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return m.Playlists, m.PlaylistsErr
}

func (m *MockService) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	for i := range m.Playlists {
		if m.Playlists[i].ID == playlistID {
			return &m.Playlists[i], nil
		}
	}
	return nil, m.PlaylistsErr
}

func (m *MockService) PlaylistTracks(ctx context.Context, playlistID string) ([]models.Song, error) {
	return m.Tracks, m.TracksErr
}

func (m *MockService) ReplaceTracks(ctx context.Context, playlistID string, songs []models.Song) error {
	m.ReplaceCalls++
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.ReplacedID = playlistID
	m.ReplacedSongs = songs
	return nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
