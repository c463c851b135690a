package cms

import "errors"

// Sentinel errors returned by the sketch engine. Callers match them with
// errors.Is; the returned errors carry additional detail about the failure.
var (
	// ErrInvalidParameter indicates a bad width, depth, error rate or
	// confidence at construction time.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTableTooLarge indicates the requested counter table cannot be
	// allocated because width*depth exceeds the supported table size.
	ErrTableTooLarge = errors.New("counter table too large")

	// ErrInsufficientHashes indicates a caller-supplied hash sequence with
	// fewer entries than the sketch depth.
	ErrInsufficientHashes = errors.New("insufficient hashes")

	// ErrIncompatibleSketches indicates a merge between sketches that differ
	// in width, depth or hash strategy.
	ErrIncompatibleSketches = errors.New("incompatible sketches")

	// ErrCorruptData indicates an imported stream holding fewer counters
	// than its trailer promises, or a stream too short to hold a trailer.
	ErrCorruptData = errors.New("corrupt sketch data")
)
