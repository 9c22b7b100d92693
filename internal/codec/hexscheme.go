package codec

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"playcrypt/internal/models"
)

// HexScheme hides one byte of the message's UTF-8 encoding per track: the
// byte's two hex digits appear at two fixed positions of the track id.
type HexScheme struct{}

// Encode splits the UTF-8 hex representation of message into 2-character
// bytes and matches each one to a track in order. A byte with no matching
// track aborts the encode with a [ResolutionError].
func (HexScheme) Encode(ctx context.Context, message string, matcher TrackMatcher, first, second int) ([]models.Song, error) {
	if matcher == nil {
		return nil, fmt.Errorf("hex encode: nil matcher")
	}

	hexMessage := hex.EncodeToString([]byte(message))
	songs := make([]models.Song, 0, len(hexMessage)/2)

	for i := 0; i < len(hexMessage); i += 2 {
		hexByte := hexMessage[i : i+2]

		song, err := matcher.Match(ctx, hexByte, first, second)
		if err != nil {
			if isNoCandidates(err) {
				return nil, &ResolutionError{Fragment: hexByte}
			}
			return nil, err
		}
		songs = append(songs, *song)
	}

	return songs, nil
}

// Decode reads the id characters at first and second from each song,
// accumulates them into a hex string and interprets it as UTF-8 text.
// A track id shorter than the larger position fails with
// [TruncatedIDError]; an unparseable or non-UTF-8 payload fails with
// [MalformedPayloadError].
func (HexScheme) Decode(songs []models.Song, first, second int) (string, error) {
	need := max(first, second)

	var sb strings.Builder
	sb.Grow(len(songs) * 2)

	for _, song := range songs {
		// Guards against playlists modified after encoding.
		if len(song.TrackID) <= need {
			return "", &TruncatedIDError{TrackID: song.TrackID, First: first, Second: second}
		}
		sb.WriteByte(song.TrackID[first])
		sb.WriteByte(song.TrackID[second])
	}

	hexMessage := sb.String()

	decoded, err := hex.DecodeString(hexMessage)
	if err != nil {
		return "", &MalformedPayloadError{Hex: hexMessage, Err: err}
	}
	if !utf8.Valid(decoded) {
		return "", &MalformedPayloadError{Hex: hexMessage, Err: fmt.Errorf("invalid UTF-8 sequence")}
	}

	return string(decoded), nil
}
