// Package plate holds the canonical plate parameter set. Parameters are
// stored in base units (inches) and every mutation goes through the same
// clamp pipeline, so a snapshot read from the store never violates the
// geometric bounds.
package plate

import (
	"strconv"

	"github.com/platecad/platecad/pkg/units"
)

// Parameter bounds in base units. The slot upper bound depends on the
// clamped width and is recomputed on every update.
const (
	MinWidth     = 2.0
	MaxWidth     = 36.0
	MinThickness = 0.1
	MaxThickness = 10.0
	MinSlotWidth = 0.1

	// SlotWidthRatio caps the slot at a fraction of the plate width.
	SlotWidthRatio = 0.9
)

// Field identifies one of the plate parameters.
type Field int

const (
	FieldWidth Field = iota
	FieldThickness
	FieldSlotWidth
)

func (f Field) String() string {
	switch f {
	case FieldWidth:
		return "width"
	case FieldThickness:
		return "thickness"
	case FieldSlotWidth:
		return "slot_width"
	}
	return "unknown"
}

// Parameters describes the plate in base units.
type Parameters struct {
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
	SlotWidth float64 `json:"slot_width"`
}

// Defaults returns the initial parameter set.
func Defaults() Parameters {
	return Parameters{Width: 10, Thickness: 2.5, SlotWidth: 2.5}
}

// Clamped returns a copy with all bounds applied. Width is clamped
// first; the slot bound uses the already-clamped width.
func (p Parameters) Clamped() Parameters {
	p.Width = clamp(p.Width, MinWidth, MaxWidth)
	p.Thickness = clamp(p.Thickness, MinThickness, MaxThickness)
	p.SlotWidth = clamp(p.SlotWidth, MinSlotWidth, SlotWidthRatio*p.Width)
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p Parameters) field(f Field) float64 {
	switch f {
	case FieldThickness:
		return p.Thickness
	case FieldSlotWidth:
		return p.SlotWidth
	}
	return p.Width
}

func (p Parameters) withField(f Field, v float64) Parameters {
	switch f {
	case FieldWidth:
		p.Width = v
	case FieldThickness:
		p.Thickness = v
	case FieldSlotWidth:
		p.SlotWidth = v
	}
	return p
}

// Store owns the current parameter snapshot. Snapshots are immutable
// values; Update and Set replace the whole snapshot rather than
// mutating it, so callers may hold old snapshots for comparison.
// A Store expects a single writer (the UI event loop).
type Store struct {
	current Parameters
}

// NewStore creates a store holding the default parameters.
func NewStore() *Store {
	return &Store{current: Defaults()}
}

// Current returns the latest snapshot.
func (s *Store) Current() Parameters {
	return s.current
}

// Update parses raw input in the given display unit, merges it into the
// named field, and re-applies all bounds. Invalid input is not an
// error: the field keeps its previous value. The new snapshot is
// stored and returned.
func (s *Store) Update(f Field, raw string, u units.Unit) Parameters {
	base := s.current.field(f)
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		base = units.FromDisplay(v, u, base)
	} else if v, err := units.ParseMeasurement(raw, u); err == nil {
		base = v
	}
	s.current = s.current.withField(f, base).Clamped()
	return s.current
}

// Set replaces the named field with an already-converted base-unit
// value and re-applies all bounds. Used by slider input, which works in
// base units directly.
func (s *Store) Set(f Field, base float64) Parameters {
	s.current = s.current.withField(f, base).Clamped()
	return s.current
}

// Replace swaps in a whole parameter set (e.g. loaded from a file),
// clamped through the same pipeline as every other write.
func (s *Store) Replace(p Parameters) Parameters {
	s.current = p.Clamped()
	return s.current
}
