// Package models defines the value types shared by the encoding engine and
// the Spotify collaborators.
//
//   - [Song] : a single track whose id and name carry the hidden data
//   - [Playlist] : playlist metadata as returned by the Spotify API
//
// A message is never persisted; it exists only within one encode or decode
// call. The ordered []Song slice produced by an encode (or consumed by a
// decode) is the sole information channel beyond each Song's own fields.
package models
