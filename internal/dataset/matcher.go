package dataset

import (
	"context"
	"fmt"

	"playcrypt/internal/codec"
	"playcrypt/internal/models"
)

// Matcher implements [codec.TrackMatcher] over a dataset Source. A track
// matches a hex byte when the characters of its id at the two configured
// positions equal the byte's two hex digits.
//
// Candidate lists are indexed lazily per position pair, so switching
// indices between calls only costs one extra pass over the records.
type Matcher struct {
	source  Source
	pick    codec.Picker
	records []models.Song
	indexes map[[2]int]map[string][]int
}

// MatcherOpts configures optional Matcher behavior.
type MatcherOpts struct {
	Picker codec.Picker // candidate tie-break, defaults to uniform random
}

// NewMatcher creates a Matcher over the given source.
func NewMatcher(source Source, opts MatcherOpts) *Matcher {
	if opts.Picker == nil {
		opts.Picker = codec.UniformPicker
	}

	return &Matcher{
		source:  source,
		pick:    opts.Picker,
		indexes: map[[2]int]map[string][]int{},
	}
}

// Match returns one track whose id characters at positions first and
// second equal the two digits of hexByte. Both positions must match, even
// when first and second are equal. No matching track yields
// [codec.ErrNoCandidates].
func (m *Matcher) Match(ctx context.Context, hexByte string, first, second int) (*models.Song, error) {
	if len(hexByte) != 2 {
		return nil, fmt.Errorf("hex byte must be two digits, got %q", hexByte)
	}

	index, err := m.indexFor(ctx, first, second)
	if err != nil {
		return nil, err
	}

	candidates := index[hexByte]
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for hex byte %q at positions %d/%d", codec.ErrNoCandidates, hexByte, first, second)
	}

	song := m.records[candidates[m.pick(len(candidates))]]
	return &song, nil
}

// indexFor returns the digit-pair index for a position pair, building it
// on first use. Tracks whose ids are too short for either position are
// excluded.
func (m *Matcher) indexFor(ctx context.Context, first, second int) (map[string][]int, error) {
	key := [2]int{first, second}
	if index, ok := m.indexes[key]; ok {
		return index, nil
	}

	if m.records == nil {
		records, err := m.source.Records(ctx)
		if err != nil {
			return nil, err
		}
		m.records = records
	}

	need := max(first, second)
	index := map[string][]int{}
	for i, song := range m.records {
		if len(song.TrackID) <= need {
			continue
		}
		digits := string([]byte{song.TrackID[first], song.TrackID[second]})
		index[digits] = append(index[digits], i)
	}

	m.indexes[key] = index
	return index, nil
}
