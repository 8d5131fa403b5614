// Package addressing resolves a 6502 instruction's operand bytes into a
// 16 bit effective address. Resolve is the only entry point: it is a
// stateless function of (mode, Memory, Registers) except for the PC
// advancement that is itself part of its contract — every mode leaves PC
// pointing at the next opcode to fetch.
package addressing

import (
	"github.com/mos6502go/core/memory"
	"github.com/mos6502go/core/registers"
)

// Mode enumerates the twelve distinct 6502 addressing modes plus the
// Relative pseudo-mode used only by branches.
type Mode int

const (
	Accumulator Mode = iota
	Implied
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Length returns the total instruction length in bytes, opcode included,
// for mode.
func (m Mode) Length() uint16 {
	switch m {
	case Accumulator, Implied:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 1
}

// String names the mode, used in decode-table comments and error text.
func (m Mode) String() string {
	switch m {
	case Accumulator:
		return "Accumulator"
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	case Relative:
		return "Relative"
	}
	return "Unknown"
}

// Resolve converts mode's operand, read starting at PC+1, into a 16 bit
// effective address, and advances PC by mode.Length(). Accumulator and
// Implied modes have no address; Resolve returns 0 for them and the
// caller (a semantic handler) must not dereference it.
//
// Relative mode returns the raw sign-extended displacement rather than an
// address — the branch handler in cpu combines it with the post-fetch PC,
// since the base PC a branch displaces from is the instruction *after*
// the branch, a detail only the branch handler has in scope.
func Resolve(mode Mode, mem *memory.Memory, reg *registers.Registers) uint16 {
	pc := reg.PC
	d1 := mem.Read(pc + 1)

	var addr uint16
	switch mode {
	case Accumulator, Implied:
		addr = 0
	case Immediate:
		addr = pc + 1
	case ZeroPage:
		addr = uint16(d1)
	case ZeroPageX:
		addr = uint16(d1 + reg.X)
	case ZeroPageY:
		addr = uint16(d1 + reg.Y)
	case Relative:
		addr = uint16(int16(int8(d1)))
	case Absolute:
		addr = mem.ReadWord(pc + 1)
	case AbsoluteX:
		addr = mem.ReadWord(pc+1) + uint16(reg.X)
	case AbsoluteY:
		addr = mem.ReadWord(pc+1) + uint16(reg.Y)
	case Indirect:
		addr = readIndirectWithPageBug(mem, mem.ReadWord(pc+1))
	case IndirectX:
		zp := uint16(d1 + reg.X)
		addr = readZeroPageWord(mem, zp)
	case IndirectY:
		base := readZeroPageWord(mem, uint16(d1))
		addr = base + uint16(reg.Y)
	}

	reg.PC += mode.Length()
	return addr
}

// readZeroPageWord reads a little-endian word whose two bytes both live
// in the zero page, wrapping the high-byte fetch within page 0 the way
// real 6502 indexed-indirect addressing does: ($FF),Y reads its high byte
// from $00, not $100.
func readZeroPageWord(mem *memory.Memory, zpAddr uint16) uint16 {
	lo := mem.Read(zpAddr & 0x00FF)
	hi := mem.Read((zpAddr + 1) & 0x00FF)
	return uint16(hi)<<8 | uint16(lo)
}

// readIndirectWithPageBug resolves JMP ($xxxx)'s target the way real NMOS
// 6502 silicon does: if the pointer's low byte is 0xFF, the high byte of
// the target is fetched from $xx00 instead of $(xx+1)00, because the
// hardware only increments the low byte of the address bus without
// carrying into the high byte. This is deliberately emulated (see
// SPEC_FULL.md) since the functional-test ROM exercises it.
func readIndirectWithPageBug(mem *memory.Memory, ptr uint16) uint16 {
	lo := mem.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := mem.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}
