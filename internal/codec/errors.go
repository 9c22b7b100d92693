package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates is returned by resolvers and matchers when no track
	// exists for a fragment. The codec converts it into a [ResolutionError]
	// naming the fragment; any other collaborator error propagates as-is.
	ErrNoCandidates = errors.New("no candidate tracks")

	// ErrInvalidScheme reports an unrecognized scheme selector reaching the
	// dispatcher. The boundary layer validates user input first, so hitting
	// this is a programming error, not bad user input.
	ErrInvalidScheme = errors.New("invalid encoding scheme")

	// ErrIndexOutOfRange reports a hex character position outside [0, 21].
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ResolutionError reports a message fragment (a word or a hex byte) for
// which no track could be found during encoding. The whole encode halts;
// no partial playlist is produced.
type ResolutionError struct {
	Fragment string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no track found for %q", e.Fragment)
}

func (e *ResolutionError) Unwrap() error { return ErrNoCandidates }

// TruncatedIDError reports a track id too short to hold both hex character
// positions during decoding.
type TruncatedIDError struct {
	TrackID string
	First   int
	Second  int
}

func (e *TruncatedIDError) Error() string {
	return fmt.Sprintf("track id %q is too short for positions %d and %d", e.TrackID, e.First, e.Second)
}

// MalformedPayloadError reports an accumulated hex payload that failed to
// parse as hex or to decode as UTF-8 text.
type MalformedPayloadError struct {
	Hex string
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload %q: %v", e.Hex, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }
