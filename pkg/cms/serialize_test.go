package cms

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := New(200, 5, nil)
	s.Add("first", 12)
	s.Add("second", 3)
	s.Remove("second", 1)

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	wantLen := 200*5*4 + trailerSize
	if buf.Len() != wantLen {
		t.Fatalf("expected %d exported bytes, got %d", wantLen, buf.Len())
	}

	restored, err := Import(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if restored.Width() != s.Width() || restored.Depth() != s.Depth() {
		t.Errorf("dimensions diverge: %dx%d vs %dx%d", restored.Width(), restored.Depth(), s.Width(), s.Depth())
	}
	if restored.ElementsAdded() != s.ElementsAdded() {
		t.Errorf("elements added diverge: %d vs %d", restored.ElementsAdded(), s.ElementsAdded())
	}
	if restored.ErrorRate() != s.ErrorRate() || restored.Confidence() != s.Confidence() {
		t.Errorf("recomputed rates diverge: %g/%g vs %g/%g",
			restored.ErrorRate(), restored.Confidence(), s.ErrorRate(), s.Confidence())
	}
	for bin, v := range s.counters {
		if restored.counters[bin] != v {
			t.Fatalf("counter %d diverges: %d vs %d", bin, restored.counters[bin], v)
		}
	}
	if got := restored.Check("first"); got != 12 {
		t.Errorf("restored sketch estimates %d for 'first', want 12", got)
	}
}

func TestImportAttachesGivenStrategy(t *testing.T) {
	strategy := &fnvStrategy{}
	s, _ := New(100, 3, strategy)
	s.Add("key", 1)

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	restored, err := Import(bytes.NewReader(buf.Bytes()), strategy)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if restored.Strategy() != HashStrategy(strategy) {
		t.Errorf("imported sketch does not hold the supplied strategy instance")
	}
	// Same instance means the restored sketch is merge-compatible.
	if _, err := Merge(s, restored); err != nil {
		t.Errorf("merge with restored sketch failed: %v", err)
	}
}

func TestImportRejectsTruncatedStream(t *testing.T) {
	s, _ := New(100, 3, nil)
	s.Add("key", 1)

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Drop part of the counter table but keep the trailer intact.
	full := buf.Bytes()
	truncated := append([]byte{}, full[:100]...)
	truncated = append(truncated, full[len(full)-trailerSize:]...)
	if _, err := Import(bytes.NewReader(truncated), nil); !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData for short counter table, got %v", err)
	}

	// A stream shorter than the trailer cannot be imported at all.
	if _, err := Import(bytes.NewReader(full[:8]), nil); !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData for short stream, got %v", err)
	}
}

func TestExportSurfacesWriteErrors(t *testing.T) {
	s, _ := New(100, 3, nil)
	if err := s.Export(failingWriter{}); err == nil {
		t.Fatal("expected an error from a failing writer")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }
