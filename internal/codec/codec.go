package codec

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"playcrypt/internal/models"
)

// wordPunctuation is the fixed set of leading/trailing characters stripped
// when normalizing a word for matching and cache keys.
const wordPunctuation = `.,!?;"'`

const (
	// MinIndex and MaxIndex bound the hex character positions. Spotify track
	// ids are 22 characters long, so any position in [0, 21] is addressable.
	MinIndex = 0
	MaxIndex = 21

	// DefaultFirstIndex and DefaultSecondIndex are used when the caller does
	// not choose positions explicitly.
	DefaultFirstIndex  = 5
	DefaultSecondIndex = 8
)

// Scheme selects one of the two encoding strategies.
type Scheme int

const (
	FirstWord Scheme = iota
	Hex
)

func (s Scheme) String() string {
	switch s {
	case FirstWord:
		return "word"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme validates a user-supplied scheme selector. The boundary layer
// calls this before any selector reaches [Codec].
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word", "first-word", "firstword", "1":
		return FirstWord, nil
	case "hex", "2":
		return Hex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidScheme, s)
	}
}

// SongResolver maps a message word to a concrete track.
//
// Implementations return [ErrNoCandidates] (possibly wrapped) when no track
// starts with the word; transport failures propagate unchanged.
type SongResolver interface {
	Resolve(ctx context.Context, word string) (*models.Song, error)
}

// TrackMatcher maps a two-hex-character byte to a track whose id carries
// those characters at the given positions.
type TrackMatcher interface {
	Match(ctx context.Context, hexByte string, first, second int) (*models.Song, error)
}

// Picker chooses one index in [0, n) among n equally valid candidates.
// The default picks uniformly at random; tests substitute a deterministic
// policy. n is always >= 1.
type Picker func(n int) int

// UniformPicker picks uniformly at random.
func UniformPicker(n int) int { return rand.IntN(n) }

// FirstPicker always picks the first candidate. Useful for deterministic
// tests and reproducible encodes.
func FirstPicker(int) int { return 0 }

// Options selects the scheme and, for [Hex], the two id character
// positions. Equal positions are permitted but rarely encodable: the same
// id character would have to equal both hex digits at once.
type Options struct {
	Scheme      Scheme
	FirstIndex  int
	SecondIndex int
}

// DefaultOptions returns hex options with the default positions.
func DefaultOptions(scheme Scheme) Options {
	return Options{Scheme: scheme, FirstIndex: DefaultFirstIndex, SecondIndex: DefaultSecondIndex}
}

// Validate checks scheme-specific parameters.
func (o Options) Validate() error {
	switch o.Scheme {
	case FirstWord:
		return nil
	case Hex:
		for _, idx := range []int{o.FirstIndex, o.SecondIndex} {
			if idx < MinIndex || idx > MaxIndex {
				return fmt.Errorf("%w: %d not in [%d, %d]", ErrIndexOutOfRange, idx, MinIndex, MaxIndex)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrInvalidScheme, o.Scheme)
	}
}

// Codec dispatches encode and decode calls to the selected scheme.
type Codec struct {
	resolver SongResolver
	matcher  TrackMatcher
}

// New creates a Codec. Either collaborator may be nil if the corresponding
// scheme is never encoded with; decoding needs neither.
func New(resolver SongResolver, matcher TrackMatcher) *Codec {
	return &Codec{resolver: resolver, matcher: matcher}
}

// Encode transcodes message into an ordered song list under opts. The
// operation is all-or-nothing: the first unresolvable fragment aborts it
// with a [ResolutionError] and no partial playlist is returned.
func (c *Codec) Encode(ctx context.Context, message string, opts Options) ([]models.Song, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	switch opts.Scheme {
	case FirstWord:
		return FirstWordScheme{}.Encode(ctx, message, c.resolver)
	case Hex:
		return HexScheme{}.Encode(ctx, message, c.matcher, opts.FirstIndex, opts.SecondIndex)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidScheme, opts.Scheme)
	}
}

// Decode recovers the message hidden in an ordered song list under opts.
func (c *Codec) Decode(songs []models.Song, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	switch opts.Scheme {
	case FirstWord:
		return FirstWordScheme{}.Decode(songs), nil
	case Hex:
		return HexScheme{}.Decode(songs, opts.FirstIndex, opts.SecondIndex)
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidScheme, opts.Scheme)
	}
}

// NormalizeWord strips the fixed punctuation set from both ends of a word
// and lowercases it. Normalized words are the cache and matching keys;
// display casing is preserved in the stored Song itself.
func NormalizeWord(word string) string {
	return strings.ToLower(TrimWord(word))
}

// TrimWord strips the fixed punctuation set but preserves case.
func TrimWord(word string) string {
	return strings.Trim(word, wordPunctuation)
}

// LeadingWord extracts the normalized first whitespace-separated token of a
// track title. Returns "" for empty or all-whitespace titles.
func LeadingWord(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return NormalizeWord(fields[0])
}
