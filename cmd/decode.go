package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"playcrypt/internal/codec"
	"playcrypt/internal/services"
	"playcrypt/internal/shared"
)

// Decode reads a playlist's ordered tracks and recovers the hidden
// message.
func (r *Runner) Decode(ctx context.Context, cmd *cli.Command) error {
	opts, err := r.codecOptions(cmd)
	if err != nil {
		return err
	}

	playlistID, err := services.ParsePlaylistRef(cmd.String("playlist"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	srv, err := r.authenticatedService(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("reading playlist", "playlist", playlistID)

	songs, err := srv.PlaylistTracks(ctx, playlistID)
	if err != nil {
		if retry, authErr := r.handleAuthError(ctx, err); retry {
			if authErr != nil {
				return authErr
			}
			if songs, err = srv.PlaylistTracks(ctx, playlistID); err != nil {
				return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
			}
		} else {
			return fmt.Errorf("failed to read playlist: %w", err)
		}
	}

	message, err := codec.New(nil, nil).Decode(songs, opts)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(decodeResult{
			Playlist: playlistID,
			Scheme:   opts.Scheme.String(),
			Tracks:   len(songs),
			Message:  message,
		}, cmd.Bool("pretty"))
	}

	r.writePlain("Playlist: %s\n", playlistID)
	r.writePlain("Scheme: %s\n", opts.Scheme)
	r.writePlain("Tracks: %d\n\n", len(songs))
	r.writePlain("%s\n", message)

	return nil
}

// decodeResult is the JSON shape of a decode run.
type decodeResult struct {
	Playlist string `json:"playlist"`
	Scheme   string `json:"scheme"`
	Tracks   int    `json:"tracks"`
	Message  string `json:"message"`
}
