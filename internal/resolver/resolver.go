// package resolver maps message words to concrete tracks.
//
// Resolution consults a durable word cache before the search collaborator:
// a word is searched at most once per cache lifetime, after which its
// candidate list is authoritative. Repeated resolutions of a cached word
// may still return different tracks, since one candidate is picked per
// call (uniformly at random by default).
package resolver

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"playcrypt/internal/codec"
	"playcrypt/internal/models"
)

// defaultSearchLimit caps how many search results are considered per word.
const defaultSearchLimit = 10

// CacheStore is the durable word → candidate-list mapping. An absent word
// yields an empty list, not an error.
type CacheStore interface {
	Get(word string) ([]models.Song, error)
	Put(word string, songs []models.Song) error
}

// Searcher is the catalog search collaborator.
type Searcher interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]models.Song, error)
}

// Opts configures optional Resolver behavior.
type Opts struct {
	Picker      codec.Picker // candidate tie-break, defaults to uniform random
	SearchLimit int          // results requested per search, defaults to 10
	Logger      *log.Logger
}

// Resolver implements [codec.SongResolver] against a search collaborator
// and a persistent cache.
type Resolver struct {
	search Searcher
	cache  CacheStore
	pick   codec.Picker
	limit  int
	logger *log.Logger
}

// New creates a Resolver.
func New(search Searcher, cache CacheStore, opts Opts) *Resolver {
	if opts.Picker == nil {
		opts.Picker = codec.UniformPicker
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = defaultSearchLimit
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Resolver{
		search: search,
		cache:  cache,
		pick:   opts.Picker,
		limit:  opts.SearchLimit,
		logger: opts.Logger,
	}
}

// Resolve returns one track whose title starts with word.
//
// The word is normalized (lowercased, fixed punctuation set stripped) to
// form the cache key. On a cache hit one stored candidate is picked; on a
// miss the search collaborator is queried, matching candidates are stored
// under the key, and one is picked. No matches anywhere yields
// [codec.ErrNoCandidates]; the codec converts that into a resolution
// failure naming the word.
func (r *Resolver) Resolve(ctx context.Context, word string) (*models.Song, error) {
	key := codec.NormalizeWord(word)
	if key == "" {
		return nil, fmt.Errorf("%w: %q normalizes to nothing", codec.ErrNoCandidates, word)
	}

	cached, err := r.cache.Get(key)
	if err != nil {
		return nil, fmt.Errorf("cache lookup for %q: %w", key, err)
	}

	if len(cached) > 0 {
		r.logger.Debug("word served from cache", "word", key, "candidates", len(cached))
		song := cached[r.pick(len(cached))]
		return &song, nil
	}

	r.logger.Debug("searching catalog", "word", key)

	// Quoting the word biases the search toward exact title matches.
	results, err := r.search.SearchTracks(ctx, fmt.Sprintf("%q", key), r.limit)
	if err != nil {
		return nil, fmt.Errorf("search for %q: %w", key, err)
	}

	candidates := filterByLeadingWord(results, key)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for word %q", codec.ErrNoCandidates, key)
	}

	if err := r.cache.Put(key, candidates); err != nil {
		return nil, fmt.Errorf("cache store for %q: %w", key, err)
	}

	song := candidates[r.pick(len(candidates))]
	return &song, nil
}

// filterByLeadingWord keeps the tracks whose title's normalized first word
// equals key, preserving result order.
func filterByLeadingWord(songs []models.Song, key string) []models.Song {
	var matched []models.Song
	for _, song := range songs {
		if codec.LeadingWord(song.Name) == key {
			matched = append(matched, song)
		}
	}
	return matched
}
