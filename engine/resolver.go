package engine

import (
	"fmt"

	"github.com/sarchlab/armtab/encoding"
	"github.com/sarchlab/armtab/isa"
)

var defaultLayoutOrder = []isa.Layout{isa.T16, isa.T32, isa.A32}

// Encode selects the encoding variant for a mnemonic and operand list
// under the given profile and assembles the instruction word. Variants
// are tried most-preferred layout first (per the profile's layout
// order) and in table order within a layout; the first candidate that
// is eligible, fits the operand shape, and satisfies every constraint
// wins. If none does, the returned error lists each candidate with its
// specific rejection reason.
func (r *Registry) Encode(mnemonic string, operands []isa.Operand, profile isa.Profile) (Word, error) {
	word, _, err := r.resolveEncode(mnemonic, operands, profile, true)
	return word, err
}

// Explain runs the full encode resolution without stopping at the
// first acceptable candidate and reports the outcome for every
// variant of the mnemonic. Candidates that would be accepted carry a
// nil reason. This is the diagnostics surface behind encode failures
// in tooling and test output.
func (r *Registry) Explain(mnemonic string, operands []isa.Operand, profile isa.Profile) []Rejection {
	_, rejections, _ := r.resolveEncode(mnemonic, operands, profile, false)
	return rejections
}

func (r *Registry) resolveEncode(
	mnemonic string,
	operands []isa.Operand,
	profile isa.Profile,
	stopAtFirst bool,
) (Word, []Rejection, error) {
	candidates := r.byMnemonic[mnemonic]
	if len(candidates) == 0 {
		return Word{}, nil, &NoMatchError{Mnemonic: mnemonic}
	}

	order := profile.LayoutOrder
	if len(order) == 0 {
		order = defaultLayoutOrder
	}

	var rejections []Rejection
	won := false
	var word Word

	tryCandidate := func(e *encoding.Encoding) error {
		if err := eligibilityError(e, profile); err != nil {
			return err
		}
		values, err := bindOperands(e, operands)
		if err != nil {
			return err
		}
		if err := e.CheckOperands(values); err != nil {
			return err
		}
		v, err := e.Pack(values)
		if err != nil {
			return err
		}
		if !won {
			won = true
			word = Word{Value: v, Layout: e.Layout}
		}
		return nil
	}

	for _, layout := range order {
		for _, e := range candidates {
			if e.Layout != layout {
				continue
			}
			err := tryCandidate(e)
			if err == nil && stopAtFirst {
				return word, rejections, nil
			}
			rejections = append(rejections, Rejection{Encoding: e, Reason: err})
		}
	}
	for _, e := range candidates {
		if !layoutListed(e.Layout, order) {
			rejections = append(rejections, Rejection{
				Encoding: e,
				Reason:   fmt.Errorf("layout %s not enabled by profile", e.Layout),
			})
		}
	}

	if won {
		return word, rejections, nil
	}
	return Word{}, rejections, &NoMatchError{Mnemonic: mnemonic, Rejections: rejections}
}

func layoutListed(l isa.Layout, order []isa.Layout) bool {
	for _, o := range order {
		if o == l {
			return true
		}
	}
	return false
}

// eligibilityError explains why the profile rules an encoding out, or
// returns nil.
func eligibilityError(e *encoding.Encoding, p isa.Profile) error {
	if e.MinVersion != isa.VersionNone && p.Version < e.MinVersion {
		return fmt.Errorf("requires %s, profile is %s", e.MinVersion, p.Version)
	}
	if e.MaxVersion != isa.VersionNone && p.Version >= e.MaxVersion {
		return fmt.Errorf("removed in %s, profile is %s", e.MaxVersion, p.Version)
	}
	for _, req := range e.Features {
		if req.Since != isa.VersionNone && p.Version < req.Since {
			continue
		}
		if !p.Has(req.Name) {
			return fmt.Errorf("requires the %s extension", req.Name)
		}
	}
	return nil
}

// bindOperands matches a positional operand list against an encoding's
// operand fields. Optional fields absorb an omitted operand by taking
// their default; everything else must line up by kind.
func bindOperands(e *encoding.Encoding, operands []isa.Operand) (map[string]int64, error) {
	fields := e.Operands()
	values := make(map[string]int64, len(fields))
	oi := 0
	for _, f := range fields {
		if oi < len(operands) && operands[oi].Kind == f.Kind.OperandKind() {
			values[f.Name] = operands[oi].Value
			oi++
			continue
		}
		if f.Optional {
			values[f.Name] = f.Default()
			continue
		}
		var got *isa.Operand
		if oi < len(operands) {
			got = &operands[oi]
		}
		return nil, &operandMismatchError{index: oi, want: f.Kind, got: got}
	}
	if oi != len(operands) {
		return nil, fmt.Errorf("too many operands: %d given, %d consumed",
			len(operands), oi)
	}
	return values, nil
}
