// Package registers owns the 6502's architectural register file: the
// accumulator, index registers, stack pointer, program counter, and the
// packed status byte. It also owns the page-1 stack push/pop protocol,
// since that's purely a function of S and the memory image.
package registers

import "github.com/mos6502go/core/memory"

// Status flag bit masks, packed into P as (N V - B D I Z C) from bit 7
// down to bit 0. Bit 5 is permanently wired high on real hardware and is
// tracked here as Unused so ToBinary/FromBinary round-trip it explicitly
// rather than silently dropping it.
const (
	Negative  = uint8(0x80)
	Overflow  = uint8(0x40)
	Unused    = uint8(0x20)
	Break     = uint8(0x10)
	Decimal   = uint8(0x08)
	Interrupt = uint8(0x04)
	Zero      = uint8(0x02)
	Carry     = uint8(0x01)
)

// stackBase is the fixed address of page 1, the hardware stack.
const stackBase = uint16(0x0100)

// Registers holds the six architectural registers of a 6502. The zero
// value has every register at zero, which is the documented power-on
// state for A/X/Y/S/PC; P is zero too, with Unused clear, and no flag
// helper sets Unused. New returns the power-on state with Unused set.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	PC uint16
	P  uint8
}

// New returns a Registers value in its documented power-on state: all
// registers zero, P with only the permanently-set unused bit high.
func New() *Registers {
	return &Registers{P: Unused}
}

// ToBinary packs the eight flags into a single status byte, bit-exact
// with the 6502 hardware layout: N V - B D I Z C.
func (r *Registers) ToBinary() uint8 {
	return r.P
}

// FromBinary loads P directly from b. All eight bits, including the
// unused bit and B, are stored verbatim so ToBinary/FromBinary round-trip.
func (r *Registers) FromBinary(b uint8) {
	r.P = b
}

// SetFlag sets or clears the given flag bit in P.
func (r *Registers) SetFlag(flag uint8, v bool) {
	if v {
		r.P |= flag
	} else {
		r.P &^= flag
	}
}

// Flag reports whether the given flag bit is set in P.
func (r *Registers) Flag(flag uint8) bool {
	return r.P&flag != 0
}

// SetNZ sets the Negative and Zero flags from result, the single helper
// the design notes call for since nearly every ALU/load operation ends
// with exactly this check.
func (r *Registers) SetNZ(result uint8) {
	r.SetFlag(Zero, result == 0)
	r.SetFlag(Negative, result&0x80 != 0)
}

// Push writes val to the stack page (0x0100 + S) and then decrements S,
// wrapping modulo 256. Wraparound on a full stack is not an error; it
// matches hardware.
func (r *Registers) Push(mem *memory.Memory, val uint8) {
	mem.Write(stackBase+uint16(r.S), val)
	r.S--
}

// Pop increments S, wrapping modulo 256, and returns the byte now at the
// top of the stack page.
func (r *Registers) Pop(mem *memory.Memory) uint8 {
	r.S++
	return mem.Read(stackBase + uint16(r.S))
}

// PushWord pushes a 16 bit value as two bytes, high byte first, matching
// JSR/BRK's push order so the matching PopWord (used by RTS/RTI) restores
// it correctly.
func (r *Registers) PushWord(mem *memory.Memory, val uint16) {
	r.Push(mem, uint8(val>>8))
	r.Push(mem, uint8(val))
}

// PopWord pops two bytes, low byte first, and reassembles them into a
// 16 bit value. Pairs with PushWord.
func (r *Registers) PopWord(mem *memory.Memory) uint16 {
	lo := r.Pop(mem)
	hi := r.Pop(mem)
	return uint16(hi)<<8 | uint16(lo)
}
