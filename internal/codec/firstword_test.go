package codec

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"playcrypt/internal/models"
)

// titleResolver resolves a word to a track whose title starts with it,
// mimicking a well-behaved search collaborator.
type titleResolver struct {
	titles map[string]string
	calls  []string
}

func (r *titleResolver) Resolve(ctx context.Context, word string) (*models.Song, error) {
	r.calls = append(r.calls, word)
	key := NormalizeWord(word)
	title, ok := r.titles[key]
	if !ok {
		return nil, ErrNoCandidates
	}
	return &models.Song{TrackID: "id_" + key, Name: title}, nil
}

type failingResolver struct{ err error }

func (r *failingResolver) Resolve(context.Context, string) (*models.Song, error) {
	return nil, r.err
}

func TestFirstWordScheme(t *testing.T) {
	ctx := context.Background()

	t.Run("Encode", func(t *testing.T) {
		t.Run("resolves words in order", func(t *testing.T) {
			resolver := &titleResolver{titles: map[string]string{
				"go":  "Go Get It",
				"now": "Now or Never",
			}}

			songs, err := FirstWordScheme{}.Encode(ctx, "go now", resolver)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(songs) != 2 {
				t.Fatalf("expected 2 songs, got %d", len(songs))
			}
			if songs[0].Name != "Go Get It" || songs[1].Name != "Now or Never" {
				t.Errorf("songs out of order: %v", songs)
			}
			if len(resolver.calls) != 2 || resolver.calls[0] != "go" || resolver.calls[1] != "now" {
				t.Errorf("unexpected resolver calls: %v", resolver.calls)
			}
		})

		t.Run("unresolvable word fails the whole encode", func(t *testing.T) {
			resolver := &titleResolver{titles: map[string]string{"go": "Go Get It"}}

			songs, err := FirstWordScheme{}.Encode(ctx, "go nowhere", resolver)
			if songs != nil {
				t.Error("expected no partial playlist")
			}

			var resErr *ResolutionError
			if !errors.As(err, &resErr) {
				t.Fatalf("expected ResolutionError, got %v", err)
			}
			if resErr.Fragment != "nowhere" {
				t.Errorf("expected fragment 'nowhere', got %q", resErr.Fragment)
			}
			if !errors.Is(err, ErrNoCandidates) {
				t.Error("ResolutionError should wrap ErrNoCandidates")
			}
		})

		t.Run("collaborator failure propagates as-is", func(t *testing.T) {
			boom := fmt.Errorf("search: connection refused")
			_, err := FirstWordScheme{}.Encode(ctx, "go", &failingResolver{err: boom})
			if !errors.Is(err, boom) {
				t.Errorf("expected propagated error, got %v", err)
			}

			var resErr *ResolutionError
			if errors.As(err, &resErr) {
				t.Error("transport failure must not become a ResolutionError")
			}
		})

		t.Run("empty message yields empty playlist", func(t *testing.T) {
			songs, err := FirstWordScheme{}.Encode(ctx, "   ", &titleResolver{})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(songs) != 0 {
				t.Errorf("expected no songs, got %d", len(songs))
			}
		})
	})

	t.Run("Decode", func(t *testing.T) {
		t.Run("joins leading words", func(t *testing.T) {
			songs := []models.Song{
				{TrackID: "a", Name: "Go Get It"},
				{TrackID: "b", Name: "Now or Never"},
			}

			got := FirstWordScheme{}.Decode(songs)
			if got != "Go Now" {
				t.Errorf("expected 'Go Now', got %q", got)
			}
		})

		t.Run("strips punctuation from leading words", func(t *testing.T) {
			songs := []models.Song{
				{TrackID: "a", Name: `"Hello," she said`},
				{TrackID: "b", Name: "world!"},
			}

			got := FirstWordScheme{}.Decode(songs)
			if got != "Hello world" {
				t.Errorf("expected 'Hello world', got %q", got)
			}
		})

		t.Run("skips empty titles", func(t *testing.T) {
			songs := []models.Song{
				{TrackID: "a", Name: "one"},
				{TrackID: "b", Name: ""},
				{TrackID: "c", Name: "   "},
				{TrackID: "d", Name: "two"},
			}

			got := FirstWordScheme{}.Decode(songs)
			if got != "one two" {
				t.Errorf("expected 'one two', got %q", got)
			}
		})

		t.Run("empty list decodes to empty string", func(t *testing.T) {
			if got := (FirstWordScheme{}).Decode(nil); got != "" {
				t.Errorf("expected empty string, got %q", got)
			}
		})
	})

	t.Run("round trip preserves word sequence", func(t *testing.T) {
		message := "meet me at the usual place tonight"

		titles := map[string]string{}
		for _, w := range strings.Fields(message) {
			titles[NormalizeWord(w)] = w + " (Extended Mix)"
		}
		resolver := &titleResolver{titles: titles}

		songs, err := FirstWordScheme{}.Encode(ctx, message, resolver)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}

		got := FirstWordScheme{}.Decode(songs)
		if got != message {
			t.Errorf("round trip mismatch: got %q, want %q", got, message)
		}
	})
}

func TestNormalizeWord(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello,", "hello"},
		{"hello", "hello"},
		{`"quoted"`, "quoted"},
		{"don't", "don't"},
		{"end?!", "end"},
		{"'round", "round"},
	}

	for _, tc := range cases {
		if got := NormalizeWord(tc.in); got != tc.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLeadingWord(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Go Get It", "go"},
		{"  Now or Never", "now"},
		{"", ""},
		{"   ", ""},
		{"Hello, World", "hello"},
	}

	for _, tc := range cases {
		if got := LeadingWord(tc.title); got != tc.want {
			t.Errorf("LeadingWord(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
