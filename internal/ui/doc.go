// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for reading hidden playlist messages:
//  1. [PlaylistListView] : Browse and select the user's playlists
//  2. [TrackListView] : Preview the playlist's tracks in order
//  3. [SchemeView] : Choose the decoding scheme
//  4. [ResultView] : Display the decoded message or the failure
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Playlist and track fetches run as commands so the interface stays responsive.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
