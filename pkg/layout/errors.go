package layout

import (
	"fmt"
	"strings"
)

// UnknownLayoutTypeError is returned by Registry.Lookup when a layout type has
// no entry. The engine recovers via the vertical-split fallback; the registry
// itself never substitutes silently.
type UnknownLayoutTypeError struct {
	LayoutType string
}

func (e *UnknownLayoutTypeError) Error() string {
	return fmt.Sprintf("unknown layout type: %q", e.LayoutType)
}

// ValidationError is returned in strict mode when required zones are missing.
// It carries the full error list; no partial result accompanies it.
type ValidationError struct {
	LayoutID string
	Errors   []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("layout %q failed validation: %s", e.LayoutID, strings.Join(e.Errors, "; "))
}

// GeometryError indicates degenerate numeric input or an internal invariant
// violation in a calculator. It is fatal: geometry cannot be produced.
type GeometryError struct {
	LayoutType string
	Reason     string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry for %q: %s", e.LayoutType, e.Reason)
}
