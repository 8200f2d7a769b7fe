package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/armtab/isa"
)

// The operand-syntax mini-language. Operands are comma-separated at
// the top level; brackets group addressing-mode sub-operands and
// braces mark an operand optional:
//
//	Rd, Rn, Rm               three registers
//	Rt, [Rn, Imm5*4]         register plus a based, scaled offset
//	{Cond<15}, Rd, Imm12     optional leading condition
//
// Each element is a field name followed by constraint suffixes:
//
//	Rm!PC          exclusion (repeatable): the value must not be PC
//	Rt2=Rt+1       equality: tied to another field plus an offset
//	Imm5<32        exclusive bound (<=N for inclusive)
//	Imm8*4         scale
//	+/-Rel11*2     sign marker for immediates (offsets are always
//	               signed)
//	SP             a bare alias is a fixed-identity register, checked
//	               but not encoded
//
// The field kind follows from the name: R* registers, Rlist* register
// lists, Imm* immediates, Rel* relative offsets, Cond* condition
// codes. Single-letter names are one-bit immediate flags.

// splitTopLevel splits on commas that are not nested inside brackets
// or braces.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// parseOperands compiles an operand-syntax string into operand fields
// in positional order.
func parseOperands(syntax string) ([]OperandField, error) {
	var fields []OperandField
	syntax = strings.TrimSpace(syntax)
	if syntax == "" {
		return fields, nil
	}
	if err := parseOperandList(syntax, false, &fields); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(fields))
	for i := range fields {
		fields[i].Index = i
		if seen[fields[i].Name] {
			return nil, fmt.Errorf("duplicate operand %s", fields[i].Name)
		}
		seen[fields[i].Name] = true
	}
	return fields, nil
}

func parseOperandList(s string, optional bool, out *[]OperandField) error {
	for _, elem := range splitTopLevel(s) {
		if err := parseOperandElement(elem, optional, out); err != nil {
			return err
		}
	}
	return nil
}

func parseOperandElement(elem string, optional bool, out *[]OperandField) error {
	elem = strings.TrimSpace(elem)
	switch {
	case elem == "":
		return fmt.Errorf("empty operand element")

	case elem[0] == '{':
		if !strings.HasSuffix(elem, "}") {
			return fmt.Errorf("unterminated optional group %q", elem)
		}
		return parseOperandList(elem[1:len(elem)-1], true, out)

	case elem[0] == '[':
		if !strings.HasSuffix(elem, "]") {
			return fmt.Errorf("unterminated address group %q", elem)
		}
		return parseOperandList(elem[1:len(elem)-1], optional, out)
	}

	f := OperandField{Scale: 1, Optional: optional, Index: -1}

	if strings.HasPrefix(elem, "+/-") {
		f.Signed = true
		elem = elem[3:]
	}

	cut := strings.IndexAny(elem, "!=<*")
	name, suffixes := elem, ""
	if cut >= 0 {
		name, suffixes = elem[:cut], elem[cut:]
	}
	if !isFieldName(name) {
		return fmt.Errorf("bad operand name %q", name)
	}
	f.Name = name

	// A bare register alias is a fixed-identity operand: it has no
	// bits of its own and only needs validating.
	if suffixes == "" && !f.Signed {
		if reg, ok := isa.RegisterByName(name); ok && name[0] != 'R' {
			f.Kind = FieldRegister
			f.IsFixed = true
			f.Fixed = int64(reg)
			*out = append(*out, f)
			return nil
		}
	}

	kind, signedKind, err := fieldKindForName(name)
	if err != nil {
		return err
	}
	f.Kind = kind
	f.Signed = f.Signed || signedKind

	if err := parseOperandSuffixes(&f, suffixes); err != nil {
		return err
	}

	*out = append(*out, f)
	return nil
}

// fieldKindForName infers an operand field's kind from its name.
func fieldKindForName(name string) (kind FieldKind, signed bool, err error) {
	switch {
	case len(name) == 1:
		// Single-letter flag bits (S, U, W, R, ...).
		return FieldImmediate, false, nil
	case strings.HasPrefix(name, "Rlist"):
		return FieldRegList, false, nil
	case strings.HasPrefix(name, "Rel"):
		return FieldOffset, true, nil
	case strings.HasPrefix(name, "Cond"):
		return FieldCond, false, nil
	case strings.HasPrefix(name, "Imm"), strings.HasPrefix(name, "Stype"):
		return FieldImmediate, false, nil
	case name[0] == 'R':
		return FieldRegister, false, nil
	default:
		return 0, false, fmt.Errorf("cannot infer operand kind for %q", name)
	}
}

func parseOperandSuffixes(f *OperandField, s string) error {
	for s != "" {
		op := s[0]
		rest := s[1:]

		inclusive := false
		if op == '<' && strings.HasPrefix(rest, "=") {
			inclusive = true
			rest = rest[1:]
		}

		arg := rest
		if end := strings.IndexAny(rest, "!<*"); end >= 0 {
			arg, s = rest[:end], rest[end:]
		} else {
			s = ""
		}
		if arg == "" {
			return fmt.Errorf("%s: empty %q suffix", f.Name, string(op))
		}

		switch op {
		case '!':
			v, display, err := parseExcludedValue(arg)
			if err != nil {
				return fmt.Errorf("%s: %v", f.Name, err)
			}
			f.Constraints = append(f.Constraints, Constraint{
				Kind:   ConstraintExclude,
				Values: []int64{v},
				rule:   "must not be " + display,
			})

		case '=':
			c, err := parseEqualityExpr(arg)
			if err != nil {
				return fmt.Errorf("%s: %v", f.Name, err)
			}
			f.Constraints = append(f.Constraints, c)

		case '<':
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil || n <= 0 {
				return fmt.Errorf("%s: bad bound %q", f.Name, arg)
			}
			bound := n
			rule := "must be < " + arg
			if inclusive {
				bound = n + 1
				rule = "must be <= " + arg
			}
			f.Constraints = append(f.Constraints, Constraint{
				Kind:  ConstraintMax,
				Bound: bound,
				rule:  rule,
			})

		case '*':
			k, err := strconv.ParseInt(arg, 10, 64)
			if err != nil || k < 1 {
				return fmt.Errorf("%s: bad scale %q", f.Name, arg)
			}
			f.Scale = k

		default:
			return fmt.Errorf("%s: unexpected suffix %q", f.Name, string(op))
		}
	}
	return nil
}

// parseExcludedValue resolves an exclusion argument: a register alias
// such as PC, or a plain number.
func parseExcludedValue(arg string) (int64, string, error) {
	if reg, ok := isa.RegisterByName(arg); ok {
		return int64(reg), isa.RegisterName(reg), nil
	}
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("bad exclusion %q", arg)
	}
	return n, arg, nil
}

// parseEqualityExpr parses "Name", "Name+K", or "Name-K".
func parseEqualityExpr(arg string) (Constraint, error) {
	name := arg
	var offset int64
	if i := strings.IndexAny(arg, "+-"); i > 0 {
		n, err := strconv.ParseInt(arg[i:], 10, 64)
		if err != nil {
			return Constraint{}, fmt.Errorf("bad equality expression %q", arg)
		}
		name, offset = arg[:i], n
	}
	if !isFieldName(name) {
		return Constraint{}, fmt.Errorf("bad equality target %q", name)
	}
	return Constraint{
		Kind:   ConstraintEqualTo,
		Other:  name,
		Offset: offset,
		rule:   "must equal " + arg,
	}, nil
}
