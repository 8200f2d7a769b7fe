package engine

import (
	"github.com/sarchlab/armtab/encoding"
	"github.com/sarchlab/armtab/isa"
)

// Decode identifies the instruction a word encodes under the given
// layout and profile. Eligibility is filtered first, so a word whose
// bits only mean something on a newer architecture fails with
// ErrNoStructuralMatch rather than leaking a future encoding.
//
// Among structurally matching candidates, constraint derivation runs
// in table order; a candidate whose derived operands are inconsistent
// is skipped, not fatal. If more than one candidate survives with
// equal precedence (declared priority, then literal-bit specificity),
// the word is ambiguous and the error says so: overlaps must be
// resolved in the table, never silently.
func (r *Registry) Decode(word uint32, layout isa.Layout, profile isa.Profile) (*Inst, error) {
	type candidate struct {
		enc    *encoding.Encoding
		values map[string]int64
	}

	var valid []candidate
	var firstReject error

	for _, e := range r.byLayout[layout] {
		if !e.EligibleFor(profile) {
			continue
		}
		if !e.Matches(word) {
			continue
		}
		values := e.Unpack(word)
		if err := e.DeriveOperands(values); err != nil {
			if firstReject == nil {
				firstReject = err
			}
			continue
		}
		valid = append(valid, candidate{enc: e, values: values})
	}

	switch len(valid) {
	case 0:
		if firstReject != nil {
			return nil, firstReject
		}
		return nil, ErrNoStructuralMatch
	case 1:
		return buildInst(valid[0].enc, valid[0].values), nil
	}

	// Precedence: declared priority first, then strictly more fixed
	// bits.
	best, tied := 0, false
	for i := 1; i < len(valid); i++ {
		a, b := valid[best].enc, valid[i].enc
		switch {
		case b.Priority > a.Priority:
			best, tied = i, false
		case b.Priority < a.Priority:
		case b.LiteralBitCount() > a.LiteralBitCount():
			best, tied = i, false
		case b.LiteralBitCount() < a.LiteralBitCount():
		default:
			tied = true
		}
	}
	if tied {
		names := make([]string, len(valid))
		for i, c := range valid {
			names[i] = c.enc.Mnemonic
		}
		return nil, &AmbiguousError{
			Word:      Word{Value: word, Layout: layout},
			Mnemonics: names,
		}
	}
	return buildInst(valid[best].enc, valid[best].values), nil
}

func buildInst(e *encoding.Encoding, values map[string]int64) *Inst {
	fields := e.Operands()
	inst := &Inst{
		Mnemonic: e.Mnemonic,
		Operands: make([]isa.Operand, 0, len(fields)),
	}
	for _, f := range fields {
		inst.Operands = append(inst.Operands, isa.Operand{
			Kind:  f.Kind.OperandKind(),
			Value: values[f.Name],
		})
	}
	return inst
}
