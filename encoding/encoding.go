// Package encoding compiles raw instruction-table records into
// structured encoding descriptors and provides the bit-level codec
// over them.
//
// A table record carries three mini-languages: a bit-pattern string
// describing how the instruction word is laid out, an operand-syntax
// string describing the logical operands and their constraints, and a
// metadata string with version, extension, and behavioral annotations.
// Compile parses all three once, at table-load time; nothing in the
// encode or decode path ever re-reads the raw strings.
package encoding

import (
	"github.com/sarchlab/armtab/isa"
)

// FieldKind classifies the value an operand field carries.
type FieldKind uint8

// Operand field kinds.
const (
	FieldRegister FieldKind = iota
	FieldRegList
	FieldImmediate
	FieldOffset
	FieldCond
)

func (k FieldKind) String() string {
	switch k {
	case FieldRegister:
		return "register"
	case FieldRegList:
		return "register list"
	case FieldImmediate:
		return "immediate"
	case FieldOffset:
		return "offset"
	case FieldCond:
		return "condition"
	default:
		return "unknown"
	}
}

// OperandKind returns the isa operand kind that binds to this field
// kind during encoding.
func (k FieldKind) OperandKind() isa.OperandKind {
	switch k {
	case FieldRegister:
		return isa.OperandRegister
	case FieldRegList:
		return isa.OperandRegList
	case FieldOffset:
		return isa.OperandOffset
	case FieldCond:
		return isa.OperandCond
	default:
		return isa.OperandImmediate
	}
}

// BitSlot is one contiguous run of bits in the instruction word:
// either fixed literal bits or one chunk of a named field. A split
// field owns several slots; ChunkHi/ChunkLo identify which bits of the
// field's value the slot carries.
type BitSlot struct {
	// Field is the owning field name; empty for literal slots.
	Field string

	// Literal is the fixed bit value for literal slots.
	Literal uint32

	// Width is the slot width in bits.
	Width uint8

	// Shift is the position of the slot's least significant bit
	// within the instruction word.
	Shift uint8

	// ChunkHi and ChunkLo bound the field-value bits this slot
	// carries, for field slots.
	ChunkHi uint8
	ChunkLo uint8
}

// IsLiteral reports whether the slot holds fixed bits.
func (s BitSlot) IsLiteral() bool { return s.Field == "" }

// OperandField describes one logical operand of an encoding: its kind,
// its total encoded width across all slots, scale and sign handling,
// and the constraints its value must satisfy.
type OperandField struct {
	Name string
	Kind FieldKind

	// Index is the operand's position in the syntax string. -1 for
	// purely structural fields that take no operand.
	Index int

	// Width is the total encoded width in bits, summed over the
	// field's slots. Zero for fields that occupy no bits of their own
	// (fixed-identity registers and equality-derived registers).
	Width uint8

	// Scale multiplies the raw field value after decoding; supplied
	// values must divide by it exactly before encoding. Always >= 1.
	Scale int64

	// Signed marks two's-complement fields.
	Signed bool

	// Optional marks brace-delimited operands that may be omitted
	// when encoding.
	Optional bool

	// Structural marks fields with no operand role; they are packed
	// with their default value and never surface as operands.
	Structural bool

	// IsFixed marks operands whose value is fixed by the encoding
	// itself, such as a mandatory SP; Fixed holds the value. Fixed
	// operands are validated, never packed.
	IsFixed bool
	Fixed   int64

	Constraints []Constraint
}

// Default is the value packed or assumed when an optional or
// structural field has no supplied operand: AL for condition fields,
// zero otherwise.
func (f *OperandField) Default() int64 {
	if f.Kind == FieldCond {
		return int64(isa.CondAL)
	}
	return 0
}

// FeatureReq names an extension an encoding requires. A non-zero
// Since restricts the requirement to targets at or above that
// version; older targets encode the instruction without the
// extension.
type FeatureReq struct {
	Name  isa.Feature
	Since isa.Version
}

// ITMode describes how the encoding interacts with conditional
// execution blocks.
type ITMode uint8

// Conditional execution modes.
const (
	ITAny   ITMode = iota // usable inside or outside a block
	ITNever               // never inside a block
	ITOnly                // only inside a block
)

// Encoding is the compiled descriptor for one instruction variant.
// Encodings are built once at table-load time and never mutated; they
// are safe for concurrent use.
type Encoding struct {
	Mnemonic string
	Layout   isa.Layout

	// Width is the instruction word size in bits. The compiler
	// guarantees the slots partition exactly this many bits.
	Width uint8

	// Slots lists the word's bit slots, most significant first.
	Slots []BitSlot

	// Fields lists the operand fields in syntax order, structural
	// fields last.
	Fields []OperandField

	// MinVersion and MaxVersion bound the architecture versions the
	// encoding is valid for: inclusive lower, exclusive upper. Zero
	// values mean unbounded.
	MinVersion isa.Version
	MaxVersion isa.Version

	// VersionUnknown flags records whose version metadata is an
	// unresolved placeholder. Such encodings carry no version
	// restriction but are surfaced for table curation.
	VersionUnknown bool

	// Features lists required extensions.
	Features []FeatureReq

	// ITMode is the conditional execution behavior.
	ITMode ITMode

	// FlagEffects names the condition flags the instruction writes,
	// as a subset of "NZCVQ".
	FlagEffects string

	// AliasOf names the canonical mnemonic when this encoding is a
	// notational alias. Aliases encode normally but never compete
	// during decoding; the canonical encoding owns the bit pattern.
	AliasOf string

	// Priority breaks decode ties between deliberately overlapping
	// encodings; higher wins. Zero for almost every record.
	Priority int

	// Opaque preserves metadata tokens the compiler does not
	// recognize, for forward compatibility.
	Opaque []string
}

// Field returns the named operand field, or nil.
func (e *Encoding) Field(name string) *OperandField {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}

// Operands returns the fields that take operands, in syntax order.
func (e *Encoding) Operands() []*OperandField {
	ops := make([]*OperandField, 0, len(e.Fields))
	for i := range e.Fields {
		if !e.Fields[i].Structural {
			ops = append(ops, &e.Fields[i])
		}
	}
	return ops
}

// Matches reports whether every literal slot of the encoding agrees
// with the given word. It is the structural-match test used by the
// decoder; operand constraints are checked separately.
func (e *Encoding) Matches(word uint32) bool {
	for _, s := range e.Slots {
		if !s.IsLiteral() {
			continue
		}
		if (word>>s.Shift)&mask32(s.Width) != s.Literal {
			return false
		}
	}
	return true
}

// LiteralBitCount returns how many bits of the word the encoding
// fixes. More literal bits means a more specific encoding; the decoder
// uses this to resolve overlaps.
func (e *Encoding) LiteralBitCount() int {
	n := 0
	for _, s := range e.Slots {
		if s.IsLiteral() {
			n += int(s.Width)
		}
	}
	return n
}

// EligibleFor reports whether the encoding may be used at all under
// the given profile: the profile version must fall in the encoding's
// version range and every required extension must be present.
func (e *Encoding) EligibleFor(p isa.Profile) bool {
	if !p.Permits(e.MinVersion, e.MaxVersion) {
		return false
	}
	for _, req := range e.Features {
		if req.Since != isa.VersionNone && p.Version < req.Since {
			// The requirement only applies from req.Since onward.
			continue
		}
		if !p.Has(req.Name) {
			return false
		}
	}
	return true
}

func mask32(width uint8) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<width - 1
}
