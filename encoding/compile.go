package encoding

import (
	"fmt"

	"github.com/sarchlab/armtab/isa"
)

// Compile turns one raw table record into an immutable Encoding
// descriptor. Any defect in the record is a *CompileError: a
// malformed token, a pattern that does not cover the layout's word
// exactly, or a field named in the pattern but absent from the operand
// syntax (or the reverse). These are bugs in the source table, and the
// caller must abort loading rather than skip the record.
func Compile(v Variant) (*Encoding, error) {
	e, err := compile(v)
	if err != nil {
		return nil, &CompileError{Mnemonic: v.Mnemonic, Layout: v.Layout, Err: err}
	}
	return e, nil
}

func compile(v Variant) (*Encoding, error) {
	if v.Mnemonic == "" {
		return nil, fmt.Errorf("record has no mnemonic")
	}
	if v.Layout != isa.T16 && v.Layout != isa.T32 && v.Layout != isa.A32 {
		return nil, fmt.Errorf("record has no valid layout")
	}
	width := v.Layout.Width()

	slots, fieldWidths, err := parsePattern(v.Pattern, width)
	if err != nil {
		return nil, err
	}
	fields, err := parseOperands(v.Operands)
	if err != nil {
		return nil, err
	}

	e := &Encoding{
		Mnemonic: v.Mnemonic,
		Layout:   v.Layout,
		Width:    width,
		Slots:    slots,
		Fields:   fields,
	}
	if err := crossCheck(e, fieldWidths); err != nil {
		return nil, err
	}
	if err := parseMeta(v.Meta, e); err != nil {
		return nil, err
	}
	return e, nil
}

// crossCheck reconciles the pattern's fields with the operand
// declarations. Every pattern field needs an operand (a fixed Cond
// slot is the one structural exception), and every operand needs
// pattern bits unless its value comes from elsewhere: fixed-identity
// registers and equality-derived fields occupy no bits.
func crossCheck(e *Encoding, fieldWidths map[string]uint8) error {
	for name, width := range fieldWidths {
		f := e.Field(name)
		if f == nil {
			if name != "Cond" {
				return fmt.Errorf("pattern field %s has no operand declaration", name)
			}
			// A fixed condition slot with no operand role.
			e.Fields = append(e.Fields, OperandField{
				Name:       name,
				Kind:       FieldCond,
				Index:      -1,
				Width:      width,
				Scale:      1,
				Structural: true,
			})
			continue
		}
		f.Width = width
	}

	for i := range e.Fields {
		f := &e.Fields[i]
		for _, c := range f.Constraints {
			if c.Kind == ConstraintEqualTo && e.Field(c.Other) == nil {
				return fmt.Errorf("operand %s is tied to unknown field %s", f.Name, c.Other)
			}
		}
		if f.Width > 0 || f.IsFixed || f.Structural {
			continue
		}
		if !hasEqualityConstraint(f) {
			return fmt.Errorf("operand %s has no bits in the pattern", f.Name)
		}
	}
	return nil
}

func hasEqualityConstraint(f *OperandField) bool {
	for _, c := range f.Constraints {
		if c.Kind == ConstraintEqualTo {
			return true
		}
	}
	return false
}
