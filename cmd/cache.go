package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"playcrypt/internal/repositories"
)

// CacheWords lists every cached word with its candidate count.
func (r *Runner) CacheWords(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewWordCacheRepository(db)

	words, err := repo.Words()
	if err != nil {
		return fmt.Errorf("failed to list cached words: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(words, true)
	}

	if len(words) == 0 {
		r.writePlain("Word cache is empty.\n")
		return nil
	}

	r.writePlain("Cached words (%d):\n\n", len(words))
	for _, word := range words {
		candidates, err := repo.Get(word)
		if err != nil {
			return fmt.Errorf("failed to read candidates for %q: %w", word, err)
		}
		r.writePlain("  %s (%d candidates)\n", word, len(candidates))
	}

	return nil
}

// CacheClear removes every cached word.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewWordCacheRepository(db)

	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count cached words: %w", err)
	}

	if err := repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.logger.Info("word cache cleared", "words", count)
	r.writePlain("✓ Cleared %d cached words\n", count)

	return nil
}
