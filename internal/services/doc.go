// Package services implements the [Service] interface for the streaming
// catalog that playlists are read from and written to.
//
// # Spotify Implementation
//
// [SpotifyService] uses OAuth2 for authentication with automatic token
// refresh. The [oauth2.Config] client refreshes expired tokens using the
// refresh token; a refresh callback lets callers persist new tokens.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrTokenExpired] : OAuth token expired, reauthorization needed
//   - [shared.ErrAPIRequest] : HTTP request failed
//   - [shared.ErrPlaylistNotFound] : Playlist ID not found
//
// # API Mappings
//
// Provider JSON responses are converted to [models.Song] and
// [models.Playlist]. Playlist items whose track is missing an id or name
// are skipped.
package services
