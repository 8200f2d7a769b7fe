package encoding

import (
	"fmt"
	"strconv"
	"strings"
)

// The bit-pattern mini-language. A pattern is a sequence of
// space-separated tokens describing the instruction word from its most
// significant bit down:
//
//	0110          a run of literal bits
//	Rd:3          a 3-bit field slot
//	Imm8[7:4]     bits 7..4 of a (possibly split) field
//	Rdn[3]        bit 3 of a field
//	S             a one-bit field
//
// A field named by several tokens is split: its value is reassembled
// by placing each slot's chunk at the bit range the token declares.
// When the tokens carry no explicit ranges, chunks are assigned in
// token order, most significant first.

const implicitChunk = 0xFF

// fieldBits tracks one field's slots during pattern parsing.
type fieldBits struct {
	name     string
	slots    []int // indexes into the slot list, in token order
	explicit bool
	implicit bool
}

// parsePattern compiles a bit-pattern string into bit slots, returning
// the slots and the total width of each named field. The slots are
// guaranteed to partition exactly wordWidth bits.
func parsePattern(pattern string, wordWidth uint8) ([]BitSlot, map[string]uint8, error) {
	var slots []BitSlot
	var order []*fieldBits
	byName := make(map[string]*fieldBits)

	for _, tok := range strings.Fields(pattern) {
		slot, err := parsePatternToken(tok)
		if err != nil {
			return nil, nil, err
		}
		slots = append(slots, slot)
		if slot.IsLiteral() {
			continue
		}

		fb := byName[slot.Field]
		if fb == nil {
			fb = &fieldBits{name: slot.Field}
			byName[slot.Field] = fb
			order = append(order, fb)
		}
		fb.slots = append(fb.slots, len(slots)-1)
		if slot.ChunkHi == implicitChunk {
			fb.implicit = true
		} else {
			fb.explicit = true
		}
	}

	// The slots must tile the word exactly; assign bit positions from
	// the most significant bit down.
	total := 0
	for i := range slots {
		total += int(slots[i].Width)
	}
	if total != int(wordWidth) {
		return nil, nil, fmt.Errorf(
			"pattern %q covers %d bits, layout word is %d",
			pattern, total, wordWidth)
	}
	pos := int(wordWidth)
	for i := range slots {
		pos -= int(slots[i].Width)
		slots[i].Shift = uint8(pos)
	}

	widths := make(map[string]uint8, len(order))
	for _, fb := range order {
		width, err := resolveFieldChunks(slots, fb)
		if err != nil {
			return nil, nil, err
		}
		widths[fb.name] = width
	}

	return slots, widths, nil
}

// resolveFieldChunks fixes up the chunk ranges of one field's slots
// and returns the field's total width.
func resolveFieldChunks(slots []BitSlot, fb *fieldBits) (uint8, error) {
	if fb.explicit && fb.implicit {
		return 0, fmt.Errorf(
			"field %s mixes explicit bit ranges with plain slots", fb.name)
	}

	total := 0
	for _, si := range fb.slots {
		total += int(slots[si].Width)
	}
	if total > 32 {
		return 0, fmt.Errorf("field %s is %d bits wide, limit is 32", fb.name, total)
	}

	if fb.implicit {
		// Token order is most-significant-chunk first.
		cur := total
		for _, si := range fb.slots {
			w := int(slots[si].Width)
			slots[si].ChunkHi = uint8(cur - 1)
			slots[si].ChunkLo = uint8(cur - w)
			cur -= w
		}
		return uint8(total), nil
	}

	// Explicit ranges must tile [0, total) with no gaps or overlaps.
	var seen uint32
	for _, si := range fb.slots {
		s := slots[si]
		if int(s.ChunkHi) >= total {
			return 0, fmt.Errorf(
				"field %s: bit %d out of range for a %d-bit field",
				fb.name, s.ChunkHi, total)
		}
		chunk := mask32(s.Width) << s.ChunkLo
		if seen&chunk != 0 {
			return 0, fmt.Errorf("field %s: overlapping bit ranges", fb.name)
		}
		seen |= chunk
	}
	if seen != mask32(uint8(total)) {
		return 0, fmt.Errorf("field %s: bit ranges leave gaps", fb.name)
	}
	return uint8(total), nil
}

// parsePatternToken parses one token into a provisional slot. Field
// slots without an explicit range get the implicitChunk sentinel.
func parsePatternToken(tok string) (BitSlot, error) {
	if isBitRun(tok) {
		if len(tok) > 32 {
			return BitSlot{}, fmt.Errorf("literal run %q longer than 32 bits", tok)
		}
		v, err := strconv.ParseUint(tok, 2, 32)
		if err != nil {
			return BitSlot{}, fmt.Errorf("bad literal run %q: %v", tok, err)
		}
		return BitSlot{Literal: uint32(v), Width: uint8(len(tok))}, nil
	}

	name := tok
	rest := ""
	if i := strings.IndexAny(tok, ":["); i >= 0 {
		name, rest = tok[:i], tok[i:]
	}
	if !isFieldName(name) {
		return BitSlot{}, fmt.Errorf("bad pattern token %q", tok)
	}

	switch {
	case rest == "":
		return BitSlot{Field: name, Width: 1, ChunkHi: implicitChunk, ChunkLo: implicitChunk}, nil

	case rest[0] == ':':
		w, err := strconv.ParseUint(rest[1:], 10, 8)
		if err != nil || w == 0 || w > 32 {
			return BitSlot{}, fmt.Errorf("bad field width in %q", tok)
		}
		return BitSlot{Field: name, Width: uint8(w), ChunkHi: implicitChunk, ChunkLo: implicitChunk}, nil

	default: // '['
		if !strings.HasSuffix(rest, "]") {
			return BitSlot{}, fmt.Errorf("unterminated bit range in %q", tok)
		}
		body := rest[1 : len(rest)-1]
		hiStr, loStr, split := strings.Cut(body, ":")
		if !split {
			loStr = hiStr
		}
		hi, err := strconv.ParseUint(hiStr, 10, 8)
		if err != nil || hi > 31 {
			return BitSlot{}, fmt.Errorf("bad bit range in %q", tok)
		}
		lo, err := strconv.ParseUint(loStr, 10, 8)
		if err != nil || lo > hi {
			return BitSlot{}, fmt.Errorf("bad bit range in %q", tok)
		}
		return BitSlot{
			Field:   name,
			Width:   uint8(hi - lo + 1),
			ChunkHi: uint8(hi),
			ChunkLo: uint8(lo),
		}, nil
	}
}

func isBitRun(s string) bool {
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}
	return len(s) > 0
}

func isFieldName(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
