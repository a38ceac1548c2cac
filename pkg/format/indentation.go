package format

import "strings"

// Indentation tracks the nesting depth of the line being written.
// The depth never goes below zero.
type Indentation struct {
	unit  string
	depth int
}

// NewIndentation creates an Indentation that indents by unit per level.
func NewIndentation(unit string) *Indentation {
	return &Indentation{unit: unit}
}

// Push opens one level.
func (in *Indentation) Push() {
	in.depth++
}

// Pop closes one level. It reports false, and does nothing, at depth zero.
func (in *Indentation) Pop() bool {
	if in.depth == 0 {
		return false
	}
	in.depth--
	return true
}

// Depth returns the current level.
func (in *Indentation) Depth() int {
	return in.depth
}

// Indent returns the unit repeated once per level.
func (in *Indentation) Indent() string {
	return strings.Repeat(in.unit, in.depth)
}

// SingleIndent returns one unit, whatever the depth.
func (in *Indentation) SingleIndent() string {
	return in.unit
}

// Reset returns to depth zero.
func (in *Indentation) Reset() {
	in.depth = 0
}
