package engine_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armtab/encoding"
	"github.com/sarchlab/armtab/isa"
)

var _ = Describe("Registry", func() {
	records := []encoding.Variant{
		{Mnemonic: "MOV", Operands: "Rd<8, Imm8<=255", Layout: isa.T16, Pattern: "00100 Rd:3 Imm8:8", Meta: "v4T+"},
		{Mnemonic: "UDF", Operands: "Imm8<=255", Layout: isa.T16, Pattern: "11011110 Imm8:8", Meta: "v?"},
		{Mnemonic: "MOV", Operands: "{Cond<15}, Rd, Imm12<4096", Layout: isa.A32,
			Pattern: "Cond:4 00111010 0000 Rd:4 Imm12:12", Meta: ""},
	}

	It("should group variants by mnemonic in table order", func() {
		r := mustBuild(records)
		variants := r.Variants("MOV")
		Expect(variants).To(HaveLen(2))
		Expect(variants[0].Layout).To(Equal(isa.T16))
		Expect(variants[1].Layout).To(Equal(isa.A32))
		Expect(r.Variants("NOPE")).To(BeEmpty())
	})

	It("should list encodings with unresolved version metadata", func() {
		r := mustBuild(records)
		uncurated := r.Uncurated()
		Expect(uncurated).To(HaveLen(1))
		Expect(uncurated[0].Mnemonic).To(Equal("UDF"))
	})

	It("should dump uncurated encodings for table curators", func() {
		r := mustBuild(records)
		var buf bytes.Buffer
		r.DumpUncurated(&buf)
		Expect(buf.String()).To(ContainSubstring("1 encodings with unresolved version metadata"))
		Expect(buf.String()).To(ContainSubstring("UDF"))
	})
})
