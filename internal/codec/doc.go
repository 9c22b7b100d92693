// Package codec implements the message ⇄ track-list transcoding engine.
//
// Two reversible schemes are supported:
//
//  1. First-word: one track per word of the message; each track's title
//     begins with the word it encodes. Decoding reads the leading word of
//     every title in playlist order.
//
//  2. Hex: one track per byte of the message's UTF-8 encoding; each track's
//     id carries the byte's two hex digits at a pair of fixed character
//     positions. Decoding reads those two characters per track.
//
// [Codec] dispatches between the schemes and validates the hex character
// positions. Encoding depends on two collaborators supplied by the caller:
// a [SongResolver] that maps a word to a concrete track and a
// [TrackMatcher] that maps a hex byte to a track with matching id
// characters. Decoding is a pure function of the song list.
//
// Both directions process fragments strictly in source order; the resulting
// (or consumed) song sequence preserves that order and must never be
// reordered or deduplicated.
package codec
