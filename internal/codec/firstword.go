package codec

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"playcrypt/internal/models"
)

// FirstWordScheme hides one message word per track: each encoded track's
// title begins with the word it stands for.
type FirstWordScheme struct{}

// Encode resolves every whitespace-separated word of message to a track in
// source order. A word with no resolvable track aborts the encode with a
// [ResolutionError]; collaborator failures other than [ErrNoCandidates]
// propagate unchanged.
func (FirstWordScheme) Encode(ctx context.Context, message string, resolver SongResolver) ([]models.Song, error) {
	if resolver == nil {
		return nil, fmt.Errorf("first-word encode: nil resolver")
	}

	words := strings.Fields(message)
	songs := make([]models.Song, 0, len(words))

	for _, word := range words {
		song, err := resolver.Resolve(ctx, word)
		if err != nil {
			if isNoCandidates(err) {
				return nil, &ResolutionError{Fragment: word}
			}
			return nil, err
		}
		songs = append(songs, *song)
	}

	return songs, nil
}

// Decode reads the leading word of each song title in order and joins them
// with single spaces. Total: empty titles are skipped and an empty list
// yields an empty string. Casing is whatever the chosen tracks carry.
func (FirstWordScheme) Decode(songs []models.Song) string {
	words := make([]string, 0, len(songs))

	for _, song := range songs {
		fields := strings.Fields(song.Name)
		if len(fields) == 0 {
			continue
		}
		if word := TrimWord(fields[0]); word != "" {
			words = append(words, word)
		}
	}

	return strings.Join(words, " ")
}

func isNoCandidates(err error) bool {
	return errors.Is(err, ErrNoCandidates)
}
