package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sarchlab/armtab/encoding"
	"github.com/sarchlab/armtab/isa"
)

// ErrNoStructuralMatch reports a word whose fixed bits match no
// encoding available for the requested layout and profile.
var ErrNoStructuralMatch = errors.New("word matches no known encoding")

// Rejection records why one encode candidate was not used. A nil
// Reason marks a candidate that would have been accepted.
type Rejection struct {
	Encoding *encoding.Encoding
	Reason   error
}

func (r Rejection) String() string {
	if r.Reason == nil {
		return fmt.Sprintf("%s %s: ok", r.Encoding.Layout, r.Encoding.Mnemonic)
	}
	return fmt.Sprintf("%s %s: %v", r.Encoding.Layout, r.Encoding.Mnemonic, r.Reason)
}

// NoMatchError reports that no encoding variant accepted an encode
// request. It carries every candidate attempted and the specific
// reason each was rejected.
type NoMatchError struct {
	Mnemonic   string
	Rejections []Rejection
}

func (e *NoMatchError) Error() string {
	if len(e.Rejections) == 0 {
		return fmt.Sprintf("no encoding variant for mnemonic %q", e.Mnemonic)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "no matching variant for %s:", e.Mnemonic)
	for _, r := range e.Rejections {
		b.WriteString("\n  ")
		b.WriteString(r.String())
	}
	return b.String()
}

// AmbiguousError reports a word that decodes, with all constraints
// satisfied, under two or more encodings of equal precedence. This is
// surfaced rather than arbitrarily resolved: it signals either an
// alias missing its explicit relation or a table defect.
type AmbiguousError struct {
	Word      Word
	Mnemonics []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("word %s decodes ambiguously: %s",
		e.Word, strings.Join(e.Mnemonics, ", "))
}

// operandMismatchError reports an operand list that does not fit a
// candidate's shape.
type operandMismatchError struct {
	index int
	want  encoding.FieldKind
	got   *isa.Operand // nil when the operand is missing
}

func (e *operandMismatchError) Error() string {
	if e.got == nil {
		return fmt.Sprintf("operand %d: missing %s", e.index+1, e.want)
	}
	return fmt.Sprintf("operand %d: want %s, got %s",
		e.index+1, e.want, e.got.Kind)
}
