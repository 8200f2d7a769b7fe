package encoding

import "fmt"

// Pack assembles an instruction word from logical field values. The
// values map is keyed by field name and holds post-scale, sign-aware
// logical values; Pack divides by the field scale (failing with
// ErrMisalignedImmediate on a remainder), range-checks the result
// against the field's width and signedness, and scatters the encoded
// bits across the field's slots. Literal bits come from the encoding
// itself; fixed-identity fields are validated by CheckOperands and
// contribute no bits.
func (e *Encoding) Pack(values map[string]int64) (uint32, error) {
	var word uint32
	for _, s := range e.Slots {
		if s.IsLiteral() {
			word |= s.Literal << s.Shift
		}
	}

	for i := range e.Fields {
		f := &e.Fields[i]
		if f.Width == 0 {
			continue
		}
		v, ok := values[f.Name]
		if !ok {
			if !f.Structural {
				return 0, fmt.Errorf("missing value for field %s", f.Name)
			}
			v = f.Default()
		}
		enc, err := encodeFieldValue(f, v)
		if err != nil {
			return 0, err
		}
		for _, s := range e.Slots {
			if s.Field != f.Name {
				continue
			}
			chunk := (enc >> s.ChunkLo) & mask32(s.Width)
			word |= chunk << s.Shift
		}
	}
	return word, nil
}

// encodeFieldValue converts a logical value to the field's raw bit
// representation: scale division first, then a two's-complement or
// unsigned range check against the field width.
func encodeFieldValue(f *OperandField, v int64) (uint32, error) {
	if f.Scale > 1 {
		if v%f.Scale != 0 {
			return 0, fmt.Errorf("%s: value %d: %w", f.Name, v, ErrMisalignedImmediate)
		}
		v /= f.Scale
	}

	if f.Signed {
		lo := -(int64(1) << (f.Width - 1))
		hi := int64(1)<<(f.Width-1) - 1
		if v < lo || v > hi {
			return 0, &RangeError{
				Field: f.Name, Value: v * f.Scale,
				Lo: lo * f.Scale, Hi: hi * f.Scale,
			}
		}
		return uint32(v) & mask32(f.Width), nil
	}

	hi := int64(mask32(f.Width))
	if v < 0 || v > hi {
		return 0, &RangeError{
			Field: f.Name, Value: v * f.Scale,
			Lo: 0, Hi: hi * f.Scale,
		}
	}
	return uint32(v), nil
}

// Unpack extracts logical field values from an instruction word: each
// field's slot chunks are gathered into a raw value, sign-extended if
// the field is signed, then multiplied by the field scale. Fields that
// occupy no bits are left to DeriveOperands. Unpack does not check
// literal bits; use Matches first.
func (e *Encoding) Unpack(word uint32) map[string]int64 {
	values := make(map[string]int64, len(e.Fields))
	for i := range e.Fields {
		f := &e.Fields[i]
		if f.Width == 0 {
			continue
		}
		var raw uint32
		for _, s := range e.Slots {
			if s.Field != f.Name {
				continue
			}
			chunk := (word >> s.Shift) & mask32(s.Width)
			raw |= chunk << s.ChunkLo
		}
		v := int64(raw)
		if f.Signed && raw&(1<<(f.Width-1)) != 0 {
			v -= int64(1) << f.Width
		}
		values[f.Name] = v * f.Scale
	}
	return values
}
