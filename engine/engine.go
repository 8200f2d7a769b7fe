// Package engine owns the compiled encoding registry and performs
// ambiguity-resolved encode and decode over it.
//
// A Registry is built once from the raw table and is immutable
// afterwards; all of its methods are pure functions over the registry
// and their arguments, so a single Registry is safely shared across
// any number of concurrent callers without locking.
package engine

import (
	"fmt"

	"github.com/sarchlab/armtab/isa"
)

// Word is one binary instruction word together with the layout that
// gives its bits meaning.
type Word struct {
	Value  uint32
	Layout isa.Layout
}

func (w Word) String() string {
	if w.Layout.Width() == 16 {
		return fmt.Sprintf("%s:%04X", w.Layout, w.Value)
	}
	return fmt.Sprintf("%s:%08X", w.Layout, w.Value)
}

// Inst is a decoded instruction: the canonical mnemonic and its
// operands in syntax order.
type Inst struct {
	Mnemonic string
	Operands []isa.Operand
}

func (i *Inst) String() string {
	s := i.Mnemonic
	for n, op := range i.Operands {
		if n == 0 {
			s += " " + op.String()
		} else {
			s += ", " + op.String()
		}
	}
	return s
}
