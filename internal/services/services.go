// package services defines interface Service for interacting with the
// streaming catalog over HTTP.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"playcrypt/internal/models"
)

// Service defines the catalog operations the encoder and decoder depend
// on: track search, playlist reads and ordered playlist writes.
type Service interface {
	// Authenticate performs OAuth authentication with the service.
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// SearchTracks searches the catalog and returns up to limit tracks.
	SearchTracks(ctx context.Context, query string, limit int) ([]models.Song, error)

	// GetPlaylists retrieves all playlists for the authenticated user.
	GetPlaylists(ctx context.Context) ([]models.Playlist, error)

	// GetPlaylist retrieves a specific playlist by ID.
	GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error)

	// PlaylistTracks retrieves a playlist's tracks in playlist order.
	PlaylistTracks(ctx context.Context, playlistID string) ([]models.Song, error)

	// ReplaceTracks replaces a playlist's contents with songs, preserving
	// their order exactly.
	ReplaceTracks(ctx context.Context, playlistID string, songs []models.Song) error

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// OAuthService extends [Service] for providers authenticated through a
// server-side OAuth authorization code flow.
type OAuthService interface {
	Service

	// GetAuthURL returns the authorization URL for user login.
	GetAuthURL(state string) string

	// GetOAuthConfig exposes the OAuth2 config for callback handling.
	GetOAuthConfig() *oauth2.Config

	// OAuthenticate resumes a session from a previously issued token.
	OAuthenticate(ctx context.Context, token *oauth2.Token) error

	// SetTokenRefreshCallback registers a hook invoked when a new token is
	// issued, so callers can persist it.
	SetTokenRefreshCallback(callback func(*oauth2.Token))
}

// ParsePlaylistRef extracts a playlist ID from a bare ID, a share URL
// (https://open.spotify.com/playlist/<id>?si=...) or a spotify:playlist:
// URI.
func ParsePlaylistRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty playlist reference")
	}

	if id, ok := strings.CutPrefix(ref, "spotify:playlist:"); ok {
		if id == "" {
			return "", fmt.Errorf("playlist URI has no id: %s", ref)
		}
		return id, nil
	}

	if strings.Contains(ref, "://") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("invalid playlist URL: %w", err)
		}

		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) < 2 || parts[len(parts)-2] != "playlist" || parts[len(parts)-1] == "" {
			return "", fmt.Errorf("URL does not reference a playlist: %s", ref)
		}
		return parts[len(parts)-1], nil
	}

	return ref, nil
}
