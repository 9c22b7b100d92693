package repositories

import (
	"database/sql"
	"fmt"

	"playcrypt/internal/models"
	"playcrypt/internal/shared"
)

// WordCacheRepository stores word → candidate-track lists in SQLite.
//
// Implements the resolver's CacheStore. Candidate order within a word is
// preserved via the position column so a cached word always replays the
// same candidate set.
type WordCacheRepository struct {
	db *sql.DB
}

// NewWordCacheRepository creates a new WordCacheRepository with the given database connection
func NewWordCacheRepository(db *sql.DB) *WordCacheRepository {
	return &WordCacheRepository{db: db}
}

// Get retrieves the candidate list stored for a normalized word, in insert
// order. A word that has never been stored yields an empty list and no
// error.
func (r *WordCacheRepository) Get(word string) ([]models.Song, error) {
	query := `
		SELECT track_id, name, external_url
		FROM word_cache
		WHERE word = ?
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query, word)
	if err != nil {
		return nil, fmt.Errorf("failed to query word cache: %w", err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(&song.TrackID, &song.Name, &song.ExternalURL); err != nil {
			return nil, fmt.Errorf("failed to scan cached song: %w", err)
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// Put stores the full candidate list for a word in one transaction. The
// word must not already be populated; cache entries are never rewritten.
func (r *WordCacheRepository) Put(word string, songs []models.Song) error {
	if word == "" {
		return fmt.Errorf("empty cache key")
	}
	if len(songs) == 0 {
		return fmt.Errorf("refusing to cache empty candidate list for %q", word)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO word_cache (id, word, position, track_id, name, external_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for i, song := range songs {
		if _, err := tx.Exec(query, shared.GenerateID(), word, i, song.TrackID, song.Name, song.ExternalURL); err != nil {
			return fmt.Errorf("failed to insert cache entry for %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache entry: %w", err)
	}

	return nil
}

// Words lists all cached normalized words in alphabetical order.
func (r *WordCacheRepository) Words() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT word FROM word_cache ORDER BY word ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query cached words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return words, nil
}

// Count returns the number of distinct cached words.
func (r *WordCacheRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(DISTINCT word) FROM word_cache").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cached words: %w", err)
	}
	return count, nil
}

// Clear removes every cache entry.
func (r *WordCacheRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM word_cache"); err != nil {
		return fmt.Errorf("failed to clear word cache: %w", err)
	}
	return nil
}
