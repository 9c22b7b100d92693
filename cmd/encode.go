package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"playcrypt/internal/codec"
	"playcrypt/internal/dataset"
	"playcrypt/internal/models"
	"playcrypt/internal/repositories"
	"playcrypt/internal/resolver"
	"playcrypt/internal/services"
	"playcrypt/internal/shared"
)

// codecOptions builds codec options from flags, falling back to the
// configured default character positions.
func (r *Runner) codecOptions(cmd *cli.Command) (codec.Options, error) {
	scheme, err := codec.ParseScheme(cmd.String("scheme"))
	if err != nil {
		return codec.Options{}, err
	}

	opts := codec.DefaultOptions(scheme)
	if r.config.Encoding.FirstIndex > 0 || r.config.Encoding.SecondIndex > 0 {
		opts.FirstIndex = r.config.Encoding.FirstIndex
		opts.SecondIndex = r.config.Encoding.SecondIndex
	}

	if first := cmd.Int("first"); first >= 0 {
		opts.FirstIndex = int(first)
	}
	if second := cmd.Int("second"); second >= 0 {
		opts.SecondIndex = int(second)
	}

	if err := opts.Validate(); err != nil {
		return codec.Options{}, err
	}

	return opts, nil
}

// Encode resolves a message into an ordered track list and writes it to
// the target playlist, or prints it with --dry-run.
func (r *Runner) Encode(ctx context.Context, cmd *cli.Command) error {
	message := cmd.StringArg("message")
	if message == "" {
		return fmt.Errorf("%w: message argument is required", shared.ErrMissingArgument)
	}

	opts, err := r.codecOptions(cmd)
	if err != nil {
		return err
	}

	dryRun := cmd.Bool("dry-run")
	playlistRef := cmd.String("playlist")
	if !dryRun && playlistRef == "" {
		return fmt.Errorf("%w: --playlist is required unless --dry-run is set", shared.ErrMissingArgument)
	}

	var wordResolver codec.SongResolver
	var matcher codec.TrackMatcher

	switch opts.Scheme {
	case codec.FirstWord:
		srv, err := r.authenticatedService(ctx)
		if err != nil {
			return err
		}

		db, err := r.openCache()
		if err != nil {
			return err
		}
		defer db.Close()

		wordResolver = resolver.New(srv, repositories.NewWordCacheRepository(db), resolver.Opts{
			Logger: r.logger,
		})

	case codec.Hex:
		matcher = dataset.NewMatcher(dataset.NewCSVSource(r.config.Dataset.Path), dataset.MatcherOpts{})
	}

	r.logger.Info("encoding message", "scheme", opts.Scheme, "length", len(message))

	songs, err := codec.New(wordResolver, matcher).Encode(ctx, message, opts)
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}

	if dryRun {
		return r.printEncoded(cmd, songs)
	}

	playlistID, err := services.ParsePlaylistRef(playlistRef)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	srv, err := r.authenticatedService(ctx)
	if err != nil {
		return err
	}

	if err := srv.ReplaceTracks(ctx, playlistID, songs); err != nil {
		if retry, authErr := r.handleAuthError(ctx, err); retry {
			if authErr != nil {
				return authErr
			}
			if err = srv.ReplaceTracks(ctx, playlistID, songs); err != nil {
				return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
			}
		} else {
			return fmt.Errorf("failed to write playlist: %w", err)
		}
	}

	r.logger.Info("playlist written", "playlist", playlistID, "tracks", len(songs))

	r.writePlain("✓ Message hidden in playlist %s\n", playlistID)
	r.writePlain("  Scheme: %s\n", opts.Scheme)
	r.writePlain("  Tracks: %d\n", len(songs))

	return nil
}

// printEncoded writes the encoded track list without any playlist write.
func (r *Runner) printEncoded(cmd *cli.Command, songs []models.Song) error {
	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writePlain("Encoded track list (%d tracks):\n\n", len(songs))
	for i, song := range songs {
		r.writePlain("%d. %s\n", i+1, song.Name)
		r.writePlain("   ID: %s\n", song.TrackID)
		if song.ExternalURL != "" {
			r.writePlain("   URL: %s\n", song.ExternalURL)
		}
	}

	return nil
}
