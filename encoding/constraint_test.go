package encoding_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armtab/encoding"
	"github.com/sarchlab/armtab/isa"
)

var _ = Describe("Constraints", func() {
	It("should enforce register exclusions", func() {
		e := mustCompile(encoding.Variant{
			Mnemonic: "BLX",
			Operands: "Rm!PC",
			Layout:   isa.T16,
			Pattern:  "010001111 Rm:4 000",
		})

		Expect(e.CheckOperands(map[string]int64{"Rm": 3})).To(Succeed())

		err := e.CheckOperands(map[string]int64{"Rm": 15})
		var cerr *encoding.ConstraintError
		Expect(err).To(BeAssignableToTypeOf(cerr))
		Expect(err.(*encoding.ConstraintError).Field).To(Equal("Rm"))
		Expect(err.(*encoding.ConstraintError).Rule).To(Equal("must not be PC"))
	})

	It("should enforce repeated exclusions independently", func() {
		e := mustCompile(encoding.Variant{
			Mnemonic: "MOVW",
			Operands: "Rd!PC!SP, Imm16",
			Layout:   isa.T32,
			Pattern:  "11110 Imm16[11] 100100 Imm16[15:12] 0 Imm16[10:8] Rd:4 Imm16[7:0]",
		})
		Expect(e.CheckOperands(map[string]int64{"Rd": 15, "Imm16": 0})).ToNot(Succeed())
		Expect(e.CheckOperands(map[string]int64{"Rd": 13, "Imm16": 0})).ToNot(Succeed())
		Expect(e.CheckOperands(map[string]int64{"Rd": 12, "Imm16": 0})).To(Succeed())
	})

	It("should enforce exclusive bounds", func() {
		e := mustCompile(encoding.Variant{
			Mnemonic: "MOV",
			Operands: "Rd<8, Imm8<=255",
			Layout:   isa.T16,
			Pattern:  "00100 Rd:3 Imm8:8",
		})
		Expect(e.CheckOperands(map[string]int64{"Rd": 7, "Imm8": 255})).To(Succeed())

		err := e.CheckOperands(map[string]int64{"Rd": 8, "Imm8": 0})
		var rerr *encoding.RangeError
		Expect(err).To(BeAssignableToTypeOf(rerr))
		Expect(err.(*encoding.RangeError).Hi).To(Equal(int64(7)))
	})

	It("should enforce inclusive bounds", func() {
		e := mustCompile(encoding.Variant{
			Mnemonic: "MOV",
			Operands: "Rd<8, Imm8<=255",
			Layout:   isa.T16,
			Pattern:  "00100 Rd:3 Imm8:8",
		})
		err := e.CheckOperands(map[string]int64{"Rd": 0, "Imm8": 256})
		var rerr *encoding.RangeError
		Expect(err).To(BeAssignableToTypeOf(rerr))
		Expect(err.(*encoding.RangeError).Hi).To(Equal(int64(255)))
	})

	It("should pin fixed-identity operands to their register", func() {
		e := mustCompile(encoding.Variant{
			Mnemonic: "ADD",
			Operands: "Rd<8, SP, Imm8*4",
			Layout:   isa.T16,
			Pattern:  "10101 Rd:3 Imm8:8",
		})
		Expect(e.CheckOperands(map[string]int64{"Rd": 1, "SP": 13, "Imm8": 8})).To(Succeed())

		err := e.CheckOperands(map[string]int64{"Rd": 1, "SP": 12, "Imm8": 8})
		var cerr *encoding.ConstraintError
		Expect(err).To(BeAssignableToTypeOf(cerr))
		Expect(err.(*encoding.ConstraintError).Rule).To(Equal("must be SP"))
	})

	It("should fail on a missing operand value", func() {
		e := mustCompile(encoding.Variant{
			Mnemonic: "MOV",
			Operands: "Rd<8, Imm8<=255",
			Layout:   isa.T16,
			Pattern:  "00100 Rd:3 Imm8:8",
		})
		err := e.CheckOperands(map[string]int64{"Rd": 0})
		Expect(err).To(MatchError(ContainSubstring("missing value for operand Imm8")))
	})

	Context("with an equality-tied register pair", func() {
		var e *encoding.Encoding

		BeforeEach(func() {
			e = mustCompile(encoding.Variant{
				Mnemonic: "LDRD",
				Operands: "Rt!LR, Rt2=Rt+1, [Rn, Imm8]",
				Layout:   isa.A32,
				Pattern:  "Cond:4 00011100 Rn:4 Rt:4 Imm8[7:4] 1101 Imm8[3:0]",
			})
		})

		It("should accept a correctly paired value", func() {
			values := map[string]int64{"Rt": 2, "Rt2": 3, "Rn": 4, "Imm8": 16}
			Expect(e.CheckOperands(values)).To(Succeed())
		})

		It("should reject a mispaired value", func() {
			values := map[string]int64{"Rt": 2, "Rt2": 5, "Rn": 4, "Imm8": 16}
			err := e.CheckOperands(values)
			var cerr *encoding.ConstraintError
			Expect(err).To(BeAssignableToTypeOf(cerr))
			Expect(err.(*encoding.ConstraintError).Rule).To(Equal("must equal Rt+1"))
		})

		It("should derive the tied value after decoding", func() {
			values := e.Unpack(0xE1C421D0)
			Expect(values).ToNot(HaveKey("Rt2"))
			Expect(e.DeriveOperands(values)).To(Succeed())
			Expect(values["Rt2"]).To(Equal(int64(3)))
			Expect(values["Imm8"]).To(Equal(int64(16)))
		})
	})
})
