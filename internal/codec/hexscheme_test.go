package codec

import (
	"context"
	"errors"
	"strings"
	"testing"

	"playcrypt/internal/models"
)

// syntheticMatcher fabricates a 22-character id carrying the byte's digits
// at the requested positions, like an inexhaustible dataset.
type syntheticMatcher struct {
	calls []string
}

func (m *syntheticMatcher) Match(ctx context.Context, hexByte string, first, second int) (*models.Song, error) {
	m.calls = append(m.calls, hexByte)

	id := []byte(strings.Repeat("x", 22))
	id[first] = hexByte[0]
	id[second] = hexByte[1]

	return &models.Song{
		TrackID:     string(id),
		Name:        "Track " + hexByte,
		ExternalURL: "https://open.spotify.com/track/" + string(id),
	}, nil
}

type emptyMatcher struct{}

func (emptyMatcher) Match(context.Context, string, int, int) (*models.Song, error) {
	return nil, ErrNoCandidates
}

func TestHexScheme(t *testing.T) {
	ctx := context.Background()

	t.Run("Encode", func(t *testing.T) {
		t.Run("one track per UTF-8 byte in order", func(t *testing.T) {
			matcher := &syntheticMatcher{}

			songs, err := HexScheme{}.Encode(ctx, "Hi", matcher, 5, 8)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(songs) != 2 {
				t.Fatalf("expected 2 songs, got %d", len(songs))
			}

			// "Hi" is 0x48 0x69.
			if matcher.calls[0] != "48" || matcher.calls[1] != "69" {
				t.Errorf("unexpected byte sequence: %v", matcher.calls)
			}
			if songs[0].TrackID[5] != '4' || songs[0].TrackID[8] != '8' {
				t.Errorf("first id does not carry 0x48: %q", songs[0].TrackID)
			}
			if songs[1].TrackID[5] != '6' || songs[1].TrackID[8] != '9' {
				t.Errorf("second id does not carry 0x69: %q", songs[1].TrackID)
			}
		})

		t.Run("multibyte text encodes every byte", func(t *testing.T) {
			matcher := &syntheticMatcher{}

			songs, err := HexScheme{}.Encode(ctx, "héllo", matcher, 0, 1)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(songs) != len([]byte("héllo")) {
				t.Errorf("expected %d songs, got %d", len([]byte("héllo")), len(songs))
			}
		})

		t.Run("unmatched byte fails the whole encode", func(t *testing.T) {
			songs, err := HexScheme{}.Encode(ctx, "Hi", emptyMatcher{}, 5, 8)
			if songs != nil {
				t.Error("expected no partial playlist")
			}

			var resErr *ResolutionError
			if !errors.As(err, &resErr) {
				t.Fatalf("expected ResolutionError, got %v", err)
			}
			if resErr.Fragment != "48" {
				t.Errorf("expected fragment '48', got %q", resErr.Fragment)
			}
		})

		t.Run("empty message yields empty playlist", func(t *testing.T) {
			songs, err := HexScheme{}.Encode(ctx, "", &syntheticMatcher{}, 5, 8)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(songs) != 0 {
				t.Errorf("expected no songs, got %d", len(songs))
			}
		})
	})

	t.Run("Decode", func(t *testing.T) {
		t.Run("reads id characters at the chosen positions", func(t *testing.T) {
			// Ids carrying 0x48 ('H') and 0x69 ('i') at positions 5 and 8.
			songs := []models.Song{
				{TrackID: "xxxxx4xx8xxxxxxxxxxxxx", Name: "first"},
				{TrackID: "xxxxx6xx9xxxxxxxxxxxxx", Name: "second"},
			}

			got, err := HexScheme{}.Decode(songs, 5, 8)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != "Hi" {
				t.Errorf("expected 'Hi', got %q", got)
			}
		})

		t.Run("empty list decodes to empty string", func(t *testing.T) {
			got, err := HexScheme{}.Decode(nil, 5, 8)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != "" {
				t.Errorf("expected empty string, got %q", got)
			}
		})

		t.Run("short id fails with TruncatedIDError", func(t *testing.T) {
			songs := []models.Song{{TrackID: "short", Name: "x"}}

			_, err := HexScheme{}.Decode(songs, 5, 8)

			var truncErr *TruncatedIDError
			if !errors.As(err, &truncErr) {
				t.Fatalf("expected TruncatedIDError, got %v", err)
			}
			if truncErr.TrackID != "short" {
				t.Errorf("expected offending id 'short', got %q", truncErr.TrackID)
			}
		})

		t.Run("id length equal to max index is still too short", func(t *testing.T) {
			songs := []models.Song{{TrackID: strings.Repeat("a", 8), Name: "x"}}

			var truncErr *TruncatedIDError
			if _, err := (HexScheme{}).Decode(songs, 5, 8); !errors.As(err, &truncErr) {
				t.Fatalf("expected TruncatedIDError, got %v", err)
			}
		})

		t.Run("non-hex characters fail with MalformedPayloadError", func(t *testing.T) {
			songs := []models.Song{{TrackID: "xxxxxZxxZxxxxxxxxxxxxx", Name: "x"}}

			_, err := HexScheme{}.Decode(songs, 5, 8)

			var malErr *MalformedPayloadError
			if !errors.As(err, &malErr) {
				t.Fatalf("expected MalformedPayloadError, got %v", err)
			}
			if malErr.Hex != "ZZ" {
				t.Errorf("expected offending hex 'ZZ', got %q", malErr.Hex)
			}
		})

		t.Run("invalid UTF-8 payload fails with MalformedPayloadError", func(t *testing.T) {
			// 0xFF is never valid UTF-8.
			songs := []models.Song{{TrackID: "xxxxxfxxfxxxxxxxxxxxxx", Name: "x"}}

			var malErr *MalformedPayloadError
			if _, err := (HexScheme{}).Decode(songs, 5, 8); !errors.As(err, &malErr) {
				t.Fatalf("expected MalformedPayloadError, got %v", err)
			}
		})
	})

	t.Run("round trip equals original message", func(t *testing.T) {
		messages := []string{"Hi", "meet at 9", "π ≈ 3.14159", "multi\nline"}

		for _, message := range messages {
			for _, pair := range [][2]int{{5, 8}, {0, 21}, {8, 5}} {
				matcher := &syntheticMatcher{}

				songs, err := HexScheme{}.Encode(ctx, message, matcher, pair[0], pair[1])
				if err != nil {
					t.Fatalf("encode %q at %v failed: %v", message, pair, err)
				}

				got, err := HexScheme{}.Decode(songs, pair[0], pair[1])
				if err != nil {
					t.Fatalf("decode %q at %v failed: %v", message, pair, err)
				}
				if got != message {
					t.Errorf("round trip at %v: got %q, want %q", pair, got, message)
				}
			}
		}
	})
}
