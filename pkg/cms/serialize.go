package cms

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Binary layout: width*depth little-endian int32 counters in row-major
// order, then a fixed 16-byte trailer of width (uint32), depth (uint32) and
// elementsAdded (int64). The trailer-last layout lets Import size the table
// before reading it.
const trailerSize = 4 + 4 + 8

// Export writes the sketch to w in the binary format above.
func (s *Sketch) Export(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, s.counters); err != nil {
		return fmt.Errorf("failed to write counter table: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.width); err != nil {
		return fmt.Errorf("failed to write trailer: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.depth); err != nil {
		return fmt.Errorf("failed to write trailer: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.elementsAdded); err != nil {
		return fmt.Errorf("failed to write trailer: %w", err)
	}
	return nil
}

// Import reads a sketch exported by Export. It seeks to the trailer to
// recover the dimensions, recomputes confidence and error rate from them,
// then rewinds and reads the full counter table. A nil strategy selects
// DefaultHash. Short or truncated streams fail with ErrCorruptData.
func Import(r io.ReadSeeker, strategy HashStrategy) (*Sketch, error) {
	if _, err := r.Seek(-trailerSize, io.SeekEnd); err != nil {
		return nil, fmt.Errorf("%w: stream too short to hold a trailer: %v", ErrCorruptData, err)
	}

	var width, depth uint32
	var elements int64
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: failed to read width: %v", ErrCorruptData, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &depth); err != nil {
		return nil, fmt.Errorf("%w: failed to read depth: %v", ErrCorruptData, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &elements); err != nil {
		return nil, fmt.Errorf("%w: failed to read elements added: %v", ErrCorruptData, err)
	}

	s, err := New(width, depth, strategy)
	if err != nil {
		return nil, err
	}
	s.elementsAdded = elements

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind stream: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, s.counters); err != nil {
		return nil, fmt.Errorf("%w: counter table shorter than %d entries: %v", ErrCorruptData, len(s.counters), err)
	}
	return s, nil
}
