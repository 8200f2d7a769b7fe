package encoding

import (
	"errors"
	"fmt"

	"github.com/sarchlab/armtab/isa"
)

// ErrMisalignedImmediate reports an immediate or offset value that is
// not an exact multiple of its field's scale.
var ErrMisalignedImmediate = errors.New("value is not a multiple of the operand scale")

// CompileError wraps a defect found while compiling a table record.
// Compile errors indicate a bug in the source table; table loading
// must abort on the first one rather than skip the record.
type CompileError struct {
	Mnemonic string
	Layout   isa.Layout
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling %s (%s): %v", e.Mnemonic, e.Layout, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// ConstraintError reports an operand value that violates one of its
// field's declared constraints.
type ConstraintError struct {
	Field string
	Rule  string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Rule)
}

// RangeError reports an operand value outside its field's numeric
// range, either a declared bound or the bits available to encode it.
type RangeError struct {
	Field string
	Value int64
	Lo    int64
	Hi    int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %d outside range [%d, %d]", e.Field, e.Value, e.Lo, e.Hi)
}
