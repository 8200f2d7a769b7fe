package isa_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armtab/isa"
)

var _ = Describe("Layout", func() {
	It("should report 16-bit words for compact Thumb", func() {
		Expect(isa.T16.Width()).To(Equal(uint8(16)))
	})

	It("should report 32-bit words for Thumb-2 and ARM", func() {
		Expect(isa.T32.Width()).To(Equal(uint8(32)))
		Expect(isa.A32.Width()).To(Equal(uint8(32)))
	})

	It("should parse layout tags", func() {
		l, err := isa.ParseLayout("T32")
		Expect(err).ToNot(HaveOccurred())
		Expect(l).To(Equal(isa.T32))
	})

	It("should reject unknown layout tags", func() {
		_, err := isa.ParseLayout("A64")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Version", func() {
	It("should order versions oldest to newest", func() {
		Expect(isa.V4 < isa.V4T).To(BeTrue())
		Expect(isa.V4T < isa.V5).To(BeTrue())
		Expect(isa.V5E < isa.V6).To(BeTrue())
		Expect(isa.V6T2 < isa.V7).To(BeTrue())
		Expect(isa.V7 < isa.V8).To(BeTrue())
	})

	It("should sort the zero value below every real version", func() {
		Expect(isa.VersionNone < isa.V4).To(BeTrue())
	})

	It("should parse names with and without the v prefix", func() {
		v, err := isa.ParseVersion("v5E")
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(isa.V5E))

		v, err = isa.ParseVersion("6T2")
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(isa.V6T2))
	})

	It("should reject unknown versions", func() {
		_, err := isa.ParseVersion("v9")
		Expect(err).To(HaveOccurred())
	})

	It("should round-trip through text marshaling", func() {
		text, err := isa.V4T.MarshalText()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(text)).To(Equal("v4T"))

		var v isa.Version
		Expect(v.UnmarshalText(text)).To(Succeed())
		Expect(v).To(Equal(isa.V4T))
	})
})

var _ = Describe("Profile", func() {
	It("should permit versions inside the gate", func() {
		p := isa.ThumbProfile(isa.V5)
		Expect(p.Permits(isa.V4T, isa.VersionNone)).To(BeTrue())
		Expect(p.Permits(isa.V5, isa.VersionNone)).To(BeTrue())
	})

	It("should refuse versions below the minimum", func() {
		p := isa.ThumbProfile(isa.V4T)
		Expect(p.Permits(isa.V5, isa.VersionNone)).To(BeFalse())
	})

	It("should treat the maximum as exclusive", func() {
		p := isa.ARMProfile(isa.V8)
		Expect(p.Permits(isa.V4, isa.V8)).To(BeFalse())

		p = isa.ARMProfile(isa.V7)
		Expect(p.Permits(isa.V4, isa.V8)).To(BeTrue())
	})

	It("should leave an unbounded gate open", func() {
		p := isa.ARMProfile(isa.V4)
		Expect(p.Permits(isa.VersionNone, isa.VersionNone)).To(BeTrue())
	})

	It("should report implemented extensions", func() {
		p := isa.ThumbProfile(isa.V7, isa.FeatDSP)
		Expect(p.Has(isa.FeatDSP)).To(BeTrue())
		Expect(p.Has(isa.FeatVFP)).To(BeFalse())
	})

	It("should prefer compact encodings in Thumb state", func() {
		p := isa.ThumbProfile(isa.V7)
		Expect(p.LayoutOrder).To(Equal([]isa.Layout{isa.T16, isa.T32}))
	})

	It("should round-trip through JSON", func() {
		p := isa.ThumbProfile(isa.V6T2, isa.FeatDSP)
		data, err := json.Marshal(p)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"version":"v6T2"`))

		var back isa.Profile
		Expect(json.Unmarshal(data, &back)).To(Succeed())
		Expect(back.Version).To(Equal(isa.V6T2))
		Expect(back.Features).To(Equal([]isa.Feature{isa.FeatDSP}))
	})
})

var _ = Describe("Registers", func() {
	It("should name role registers by their alias", func() {
		Expect(isa.RegisterName(13)).To(Equal("SP"))
		Expect(isa.RegisterName(14)).To(Equal("LR"))
		Expect(isa.RegisterName(15)).To(Equal("PC"))
		Expect(isa.RegisterName(7)).To(Equal("R7"))
	})

	It("should resolve aliases and Rn names", func() {
		n, ok := isa.RegisterByName("SP")
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(isa.RegSP))

		n, ok = isa.RegisterByName("R12")
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(uint8(12)))
	})

	It("should reject names outside the core register file", func() {
		_, ok := isa.RegisterByName("R16")
		Expect(ok).To(BeFalse())

		_, ok = isa.RegisterByName("X0")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Operand", func() {
	It("should compare by kind and value", func() {
		Expect(isa.Reg(3)).To(Equal(isa.Reg(3)))
		Expect(isa.Reg(3)).ToNot(Equal(isa.Imm(3)))
	})

	It("should render each kind in assembly style", func() {
		Expect(isa.Reg(13).String()).To(Equal("SP"))
		Expect(isa.Imm(42).String()).To(Equal("#42"))
		Expect(isa.Off(-8).String()).To(Equal("-8"))
		Expect(isa.Off(8).String()).To(Equal("+8"))
		Expect(isa.RegList(0b0110).String()).To(Equal("{R1,R2}"))
		Expect(isa.CondOp(isa.CondNE).String()).To(Equal("NE"))
	})
})
