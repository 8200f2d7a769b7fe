package isa

import "fmt"

// Core register numbers with an architectural role. R0-R12 are plain
// general-purpose registers; the last three double as the stack
// pointer, link register, and program counter.
const (
	RegSP uint8 = 13
	RegLR uint8 = 14
	RegPC uint8 = 15
)

// RegisterName returns the assembly-level name of a core register.
func RegisterName(n uint8) string {
	switch n {
	case RegSP:
		return "SP"
	case RegLR:
		return "LR"
	case RegPC:
		return "PC"
	default:
		return fmt.Sprintf("R%d", n)
	}
}

// RegisterByName resolves a register alias or Rn name to its number.
func RegisterByName(name string) (uint8, bool) {
	switch name {
	case "SP":
		return RegSP, true
	case "LR":
		return RegLR, true
	case "PC":
		return RegPC, true
	}
	if len(name) < 2 || name[0] != 'R' {
		return 0, false
	}
	var n int
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n > 15 {
		return 0, false
	}
	return uint8(n), true
}
