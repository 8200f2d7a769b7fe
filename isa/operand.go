package isa

import (
	"fmt"
	"strings"
)

// OperandKind tags the value carried by an Operand.
type OperandKind uint8

// Operand kinds.
const (
	OperandRegister OperandKind = iota
	OperandImmediate
	OperandOffset  // signed, PC-relative byte offset
	OperandRegList // bitmask of core registers
	OperandCond
)

func (k OperandKind) String() string {
	switch k {
	case OperandRegister:
		return "register"
	case OperandImmediate:
		return "immediate"
	case OperandOffset:
		return "offset"
	case OperandRegList:
		return "register list"
	case OperandCond:
		return "condition"
	default:
		return fmt.Sprintf("OperandKind(%d)", uint8(k))
	}
}

// Operand is one logical operand value: a register number, an
// immediate, a signed relative offset, a register-list mask, or a
// condition code. Operands are comparable values; two operands are
// equal iff kind and value agree.
type Operand struct {
	Kind  OperandKind
	Value int64
}

// Reg returns a register operand.
func Reg(n uint8) Operand {
	return Operand{Kind: OperandRegister, Value: int64(n)}
}

// Imm returns an immediate operand.
func Imm(v int64) Operand {
	return Operand{Kind: OperandImmediate, Value: v}
}

// Off returns a signed relative-offset operand.
func Off(v int64) Operand {
	return Operand{Kind: OperandOffset, Value: v}
}

// RegList returns a register-list operand from a bitmask where bit n
// stands for Rn.
func RegList(mask uint16) Operand {
	return Operand{Kind: OperandRegList, Value: int64(mask)}
}

// CondOp returns a condition-code operand.
func CondOp(c Cond) Operand {
	return Operand{Kind: OperandCond, Value: int64(c)}
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return RegisterName(uint8(o.Value))
	case OperandImmediate:
		return fmt.Sprintf("#%d", o.Value)
	case OperandOffset:
		return fmt.Sprintf("%+d", o.Value)
	case OperandRegList:
		var names []string
		for n := 0; n < 16; n++ {
			if o.Value&(1<<n) != 0 {
				names = append(names, RegisterName(uint8(n)))
			}
		}
		return "{" + strings.Join(names, ",") + "}"
	case OperandCond:
		return Cond(o.Value).String()
	default:
		return fmt.Sprintf("Operand(%d,%d)", o.Kind, o.Value)
	}
}
