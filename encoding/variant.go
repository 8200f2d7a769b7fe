package encoding

import "github.com/sarchlab/armtab/isa"

// Variant is one raw record of the instruction table: a mnemonic, an
// operand-syntax string, the layout the encoding targets, the
// bit-pattern string, and free-form metadata. Records come from an
// external, load-time-only source and are never consulted again after
// compilation.
type Variant struct {
	Mnemonic string
	Operands string
	Layout   isa.Layout
	Pattern  string
	Meta     string
}
