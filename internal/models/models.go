package models

// Song is a single catalog track. TrackID is the opaque Spotify-assigned
// identifier (the carrier for hex-encoded bytes), Name is the display title
// (its leading word carries data for the first-word scheme) and ExternalURL
// is informational only.
//
// Songs are values and are never mutated after construction.
type Song struct {
	TrackID     string `json:"track_id"`
	Name        string `json:"name"`
	ExternalURL string `json:"external_url"`
}

// Playlist holds playlist metadata from the Spotify API.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TrackCount  int    `json:"track_count"`
	Public      bool   `json:"public"`
}
