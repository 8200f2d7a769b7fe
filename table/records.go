// Package table ships the curated instruction record set and the
// process-wide registry built from it.
//
// The records are the engine's external data source, inlined as Go
// literals. Each record is a mnemonic, an operand-syntax string, a
// layout tag, a bit-pattern string, and metadata; the grammars are
// documented in the encoding package. The set is curated to cover
// every feature the engine implements rather than the full
// architecture: full coverage is table work, not engine work.
package table

import (
	"github.com/sarchlab/armtab/encoding"
	"github.com/sarchlab/armtab/isa"
)

var records = []encoding.Variant{
	// 16-bit Thumb.
	{Mnemonic: "ADD", Operands: "Rd<8, Rn<8, Rm<8", Layout: isa.T16,
		Pattern: "0001100 Rm:3 Rn:3 Rd:3", Meta: "v4T+ flags=NZCV it:any"},
	{Mnemonic: "SUB", Operands: "Rd<8, Rn<8, Rm<8", Layout: isa.T16,
		Pattern: "0001101 Rm:3 Rn:3 Rd:3", Meta: "v4T+ flags=NZCV it:any"},
	{Mnemonic: "ADD", Operands: "Rd<8, Rn<8, Imm3<8", Layout: isa.T16,
		Pattern: "0001110 Imm3:3 Rn:3 Rd:3", Meta: "v4T+ flags=NZCV it:any"},
	{Mnemonic: "MOV", Operands: "Rd<8, Imm8<=255", Layout: isa.T16,
		Pattern: "00100 Rd:3 Imm8:8", Meta: "v4T+ flags=NZ it:any"},
	{Mnemonic: "LSL", Operands: "Rd<8, Rm<8, Imm5<32", Layout: isa.T16,
		Pattern: "00000 Imm5:5 Rm:3 Rd:3", Meta: "v4T+ flags=NZC it:any"},
	// High-register add; Rdn is split across the word.
	{Mnemonic: "ADD", Operands: "Rdn, Rm", Layout: isa.T16,
		Pattern: "01000100 Rdn[3] Rm:4 Rdn[2:0]", Meta: "v4T+ it:any"},
	{Mnemonic: "ADD", Operands: "Rd<8, SP, Imm8*4", Layout: isa.T16,
		Pattern: "10101 Rd:3 Imm8:8", Meta: "v4T+ it:any"},
	{Mnemonic: "ADD", Operands: "SP, Imm7*4", Layout: isa.T16,
		Pattern: "101100000 Imm7:7", Meta: "v4T+ it:any"},
	{Mnemonic: "SUB", Operands: "SP, Imm7*4", Layout: isa.T16,
		Pattern: "101100001 Imm7:7", Meta: "v4T+ it:any"},
	{Mnemonic: "LDR", Operands: "Rt<8, [Rn<8, Imm5*4]", Layout: isa.T16,
		Pattern: "01101 Imm5:5 Rn:3 Rt:3", Meta: "v4T+ it:any"},
	{Mnemonic: "STR", Operands: "Rt<8, [Rn<8, Imm5*4]", Layout: isa.T16,
		Pattern: "01100 Imm5:5 Rn:3 Rt:3", Meta: "v4T+ it:any"},
	{Mnemonic: "STM", Operands: "Rn<8, Rlist8", Layout: isa.T16,
		Pattern: "11000 Rn:3 Rlist8:8", Meta: "v4T+ it:any"},
	{Mnemonic: "LDM", Operands: "Rn<8, Rlist8", Layout: isa.T16,
		Pattern: "11001 Rn:3 Rlist8:8", Meta: "v4T+ it:any"},
	// Condition 0b1110 and 0b1111 are the UDF and SVC coding space,
	// so a conditional branch requires Cond < 14.
	{Mnemonic: "B", Operands: "Cond<14, Rel8*2", Layout: isa.T16,
		Pattern: "1101 Cond:4 Rel8:8", Meta: "v4T+ it:never"},
	{Mnemonic: "UDF", Operands: "Imm8<=255", Layout: isa.T16,
		Pattern: "11011110 Imm8:8", Meta: "v?"},
	{Mnemonic: "SVC", Operands: "Imm8<=255", Layout: isa.T16,
		Pattern: "11011111 Imm8:8", Meta: "v4T+ it:any"},
	{Mnemonic: "B", Operands: "Rel11*2", Layout: isa.T16,
		Pattern: "11100 Rel11:11", Meta: "v4T+ it:never"},
	{Mnemonic: "BX", Operands: "Rm", Layout: isa.T16,
		Pattern: "010001110 Rm:4 000", Meta: "v4T+ it:never"},
	{Mnemonic: "BLX", Operands: "Rm!PC", Layout: isa.T16,
		Pattern: "010001111 Rm:4 000", Meta: "v5+ it:never"},
	{Mnemonic: "NOP", Operands: "", Layout: isa.T16,
		Pattern: "1011111100000000", Meta: "v6T2+ it:any"},

	// 32-bit Thumb-2.
	{Mnemonic: "ADD", Operands: "Rd!PC!SP, Rn!PC, Rm!PC!SP, {Stype}, {Imm5<32}", Layout: isa.T32,
		Pattern: "11101011000 0 Rn:4 0 Imm5[4:2] Rd:4 Imm5[1:0] Stype:2 Rm:4",
		Meta:    "v6T2+ it:any"},
	// MOVW; the immediate is scattered over four chunks.
	{Mnemonic: "MOVW", Operands: "Rd!PC!SP, Imm16", Layout: isa.T32,
		Pattern: "11110 Imm16[11] 100100 Imm16[15:12] 0 Imm16[10:8] Rd:4 Imm16[7:0]",
		Meta:    "v6T2+ it:any"},

	// 32-bit ARM. Condition 0b1111 selects the unconditional coding
	// space, so conditional encodings require Cond < 15.
	{Mnemonic: "ADD", Operands: "{Cond<15}, Rd, Rn, Rm, {Stype}, {Imm5<32}", Layout: isa.A32,
		Pattern: "Cond:4 00001000 Rn:4 Rd:4 Imm5:5 Stype:2 0 Rm:4", Meta: ""},
	{Mnemonic: "ADDS", Operands: "{Cond<15}, Rd, Rn, Rm, {Stype}, {Imm5<32}", Layout: isa.A32,
		Pattern: "Cond:4 00001001 Rn:4 Rd:4 Imm5:5 Stype:2 0 Rm:4", Meta: "flags=NZCV"},
	{Mnemonic: "SUB", Operands: "{Cond<15}, Rd, Rn, Rm, {Stype}, {Imm5<32}", Layout: isa.A32,
		Pattern: "Cond:4 00000100 Rn:4 Rd:4 Imm5:5 Stype:2 0 Rm:4", Meta: ""},
	{Mnemonic: "MOV", Operands: "{Cond<15}, Rd, Imm12<4096", Layout: isa.A32,
		Pattern: "Cond:4 00111010 0000 Rd:4 Imm12:12", Meta: ""},
	{Mnemonic: "MOV", Operands: "{Cond<15}, Rd, Rm", Layout: isa.A32,
		Pattern: "Cond:4 00011010 0000 Rd:4 00000000 Rm:4", Meta: ""},
	{Mnemonic: "CPY", Operands: "{Cond<15}, Rd, Rm", Layout: isa.A32,
		Pattern: "Cond:4 00011010 0000 Rd:4 00000000 Rm:4", Meta: "v6+ alias=MOV"},
	{Mnemonic: "MUL", Operands: "{Cond<15}, Rd!PC, Rn!PC, Rm!PC", Layout: isa.A32,
		Pattern: "Cond:4 00000000 Rd:4 0000 Rm:4 1001 Rn:4", Meta: ""},
	// Doubleword transfers: the second register is implied, not
	// encoded.
	{Mnemonic: "LDRD", Operands: "{Cond<15}, Rt!LR, Rt2=Rt+1, [Rn, Imm8]", Layout: isa.A32,
		Pattern: "Cond:4 00011100 Rn:4 Rt:4 Imm8[7:4] 1101 Imm8[3:0]", Meta: "v5+ +dsp"},
	{Mnemonic: "STRD", Operands: "{Cond<15}, Rt!LR, Rt2=Rt+1, [Rn, Imm8]", Layout: isa.A32,
		Pattern: "Cond:4 00011100 Rn:4 Rt:4 Imm8[7:4] 1111 Imm8[3:0]", Meta: "v5+ +dsp"},
	{Mnemonic: "QADD", Operands: "{Cond<15}, Rd!PC, Rm!PC, Rn!PC", Layout: isa.A32,
		Pattern: "Cond:4 00010000 Rn:4 Rd:4 00000101 Rm:4", Meta: "v5+ +dsp flags=Q"},
	{Mnemonic: "SWP", Operands: "{Cond<15}, Rt!PC, Rm!PC, [Rn!PC]", Layout: isa.A32,
		Pattern: "Cond:4 00010000 Rn:4 Rt:4 00001001 Rm:4", Meta: "v4+ v8-"},
	{Mnemonic: "MRS", Operands: "{Cond<15}, Rd!PC, R<2", Layout: isa.A32,
		Pattern: "Cond:4 00010 R 001111 Rd:4 000000000000", Meta: ""},
	{Mnemonic: "B", Operands: "{Cond<15}, Rel24*4", Layout: isa.A32,
		Pattern: "Cond:4 1010 Rel24:24", Meta: ""},
	{Mnemonic: "BL", Operands: "{Cond<15}, Rel24*4", Layout: isa.A32,
		Pattern: "Cond:4 1011 Rel24:24", Meta: ""},
	{Mnemonic: "BX", Operands: "{Cond<15}, Rm", Layout: isa.A32,
		Pattern: "Cond:4 000100101111111111110001 Rm:4", Meta: "v4T+"},
	{Mnemonic: "BLX", Operands: "{Cond<15}, Rm!PC", Layout: isa.A32,
		Pattern: "Cond:4 000100101111111111110011 Rm:4", Meta: "v5+"},
	// Immediate BLX always switches to Thumb; the half-word bit of
	// the offset lands in bit 24, below the rest of the field.
	{Mnemonic: "BLX", Operands: "Rel25*2", Layout: isa.A32,
		Pattern: "1111101 Rel25[0] Rel25[24:1]", Meta: "v5+ it:never"},
	{Mnemonic: "LDM", Operands: "{Cond<15}, Rn!PC, Rlist16", Layout: isa.A32,
		Pattern: "Cond:4 10001001 Rn:4 Rlist16:16", Meta: ""},
	{Mnemonic: "STM", Operands: "{Cond<15}, Rn!PC, Rlist16", Layout: isa.A32,
		Pattern: "Cond:4 10001000 Rn:4 Rlist16:16", Meta: ""},
}

// Records returns the raw table in declared order. The slice is shared;
// callers must not modify it.
func Records() []encoding.Variant {
	return records
}
