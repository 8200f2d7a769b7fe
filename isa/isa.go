// Package isa defines the architectural context shared by the encoding
// table and the encode/decode engine: instruction-set layouts,
// architecture versions, optional extensions, condition codes, and the
// operand value model.
//
// Everything in this package is immutable value data. A Profile selects
// which encodings are in play for a given target; it carries no state
// beyond the version, the extension set, and the layout preference
// order used when encoding.
package isa

import "fmt"

// Layout identifies one of the fixed-width instruction-set encodings an
// instruction variant can target.
type Layout uint8

// Instruction-set layouts.
const (
	LayoutUnknown Layout = iota
	T16                  // compact 16-bit Thumb
	T32                  // 32-bit Thumb-2
	A32                  // 32-bit ARM
)

// Width returns the instruction word size in bits for the layout.
func (l Layout) Width() uint8 {
	if l == T16 {
		return 16
	}
	return 32
}

func (l Layout) String() string {
	switch l {
	case T16:
		return "T16"
	case T32:
		return "T32"
	case A32:
		return "A32"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout converts a table layout tag into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "T16":
		return T16, nil
	case "T32":
		return T32, nil
	case "A32":
		return A32, nil
	default:
		return LayoutUnknown, fmt.Errorf("unknown layout tag %q", s)
	}
}
