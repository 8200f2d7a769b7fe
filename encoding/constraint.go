package encoding

import (
	"fmt"

	"github.com/sarchlab/armtab/isa"
)

// ConstraintKind tags a Constraint.
type ConstraintKind uint8

// Constraint kinds.
const (
	// ConstraintExclude forbids specific values.
	ConstraintExclude ConstraintKind = iota
	// ConstraintMax bounds the value to [0, Bound).
	ConstraintMax
	// ConstraintEqualTo ties the value to another field plus an
	// offset.
	ConstraintEqualTo
)

// Constraint is one predicate on an operand field's value. Constraints
// are built by the compiler and carry a pre-rendered rule string for
// error messages.
type Constraint struct {
	Kind ConstraintKind

	// Values holds the forbidden values for ConstraintExclude.
	Values []int64

	// Bound is the exclusive upper bound for ConstraintMax.
	Bound int64

	// Other and Offset define the target of ConstraintEqualTo:
	// the value must equal the Other field's value plus Offset.
	Other  string
	Offset int64

	rule string
}

// Rule returns the human-readable form of the constraint, e.g.
// "must not be PC" or "must equal Rt+1".
func (c Constraint) Rule() string { return c.rule }

func (c Constraint) String() string { return c.rule }

// check validates v against the constraint. values supplies the other
// fields for equality constraints.
func (c Constraint) check(field string, v int64, values map[string]int64) error {
	switch c.Kind {
	case ConstraintExclude:
		for _, bad := range c.Values {
			if v == bad {
				return &ConstraintError{Field: field, Rule: c.rule}
			}
		}
	case ConstraintMax:
		if v < 0 || v >= c.Bound {
			return &RangeError{Field: field, Value: v, Lo: 0, Hi: c.Bound - 1}
		}
	case ConstraintEqualTo:
		other, ok := values[c.Other]
		if !ok {
			return fmt.Errorf("%s: equality target %s has no value", field, c.Other)
		}
		if v != other+c.Offset {
			return &ConstraintError{Field: field, Rule: c.rule}
		}
	}
	return nil
}

// CheckOperands validates a full set of field values against the
// encoding's constraints. It is the encode-side gate: a single
// violation fails the whole request with the offending field and rule,
// and no word is produced.
func (e *Encoding) CheckOperands(values map[string]int64) error {
	for i := range e.Fields {
		f := &e.Fields[i]
		v, ok := values[f.Name]
		if !ok {
			if f.Structural {
				continue
			}
			return fmt.Errorf("missing value for operand %s", f.Name)
		}
		if f.IsFixed && v != f.Fixed {
			rule := "must be " + isa.RegisterName(uint8(f.Fixed))
			return &ConstraintError{Field: f.Name, Rule: rule}
		}
		for _, c := range f.Constraints {
			if err := c.check(f.Name, v, values); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeriveOperands completes and validates a decoded value set. Fields
// that occupy no bits get their values computed here: fixed-identity
// registers take their fixed value and equality-tied registers are
// derived from their target field. Every constraint is then checked;
// an error means the word is internally inconsistent with this
// encoding and the decoder should try the next candidate.
func (e *Encoding) DeriveOperands(values map[string]int64) error {
	for i := range e.Fields {
		f := &e.Fields[i]
		if f.Width != 0 {
			continue
		}
		if f.IsFixed {
			values[f.Name] = f.Fixed
			continue
		}
		for _, c := range f.Constraints {
			if c.Kind != ConstraintEqualTo {
				continue
			}
			other, ok := values[c.Other]
			if !ok {
				return fmt.Errorf("%s: equality target %s has no value", f.Name, c.Other)
			}
			values[f.Name] = other + c.Offset
			break
		}
	}
	return e.CheckOperands(values)
}
