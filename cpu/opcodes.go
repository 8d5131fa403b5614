package cpu

import (
	"github.com/mos6502go/core/addressing"
	"github.com/mos6502go/core/registers"
)

// exec is the signature every opcode handler implements: given the chip
// and the addressing mode its decode-table entry was registered with, it
// performs the instruction's full effect, including the PC advancement
// addressing.Resolve already did as a side effect of computing the
// operand address.
type exec func(c *Chip, mode addressing.Mode)

// --- Load / store -----------------------------------------------------

func execLDA(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.A = c.mem.Read(addr)
	c.reg.SetNZ(c.reg.A)
}

func execLDX(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.X = c.mem.Read(addr)
	c.reg.SetNZ(c.reg.X)
}

func execLDY(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.Y = c.mem.Read(addr)
	c.reg.SetNZ(c.reg.Y)
}

func execSTA(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.mem.Write(addr, c.reg.A)
}

func execSTX(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.mem.Write(addr, c.reg.X)
}

func execSTY(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.mem.Write(addr, c.reg.Y)
}

// --- Register transfers -------------------------------------------------

func execTAX(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.X = c.reg.A; c.reg.SetNZ(c.reg.X) }
func execTAY(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.Y = c.reg.A; c.reg.SetNZ(c.reg.Y) }
func execTXA(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.A = c.reg.X; c.reg.SetNZ(c.reg.A) }
func execTYA(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.A = c.reg.Y; c.reg.SetNZ(c.reg.A) }
func execTSX(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.X = c.reg.S; c.reg.SetNZ(c.reg.X) }
func execTXS(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.S = c.reg.X }

// --- Stack --------------------------------------------------------------

func execPHA(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.Push(c.mem, c.reg.A) }
func execPLA(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.A = c.reg.Pop(c.mem)
	c.reg.SetNZ(c.reg.A)
}

// execPHP pushes P with the Unused and Break bits forced on, without
// mutating the live P register's Break bit — only the stacked copy
// carries the software-interrupt marker.
func execPHP(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	pushed := c.reg.ToBinary() | registers.Unused | registers.Break
	c.reg.Push(c.mem, pushed)
}

func execPLP(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.FromBinary(c.reg.Pop(c.mem))
}

// --- Arithmetic -----------------------------------------------------------

func execADC(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	m := c.mem.Read(addr)
	adc(c.reg, m)
}

// execSBC reuses adc's logic against the ones' complement of the operand,
// the standard trick that makes A-M-(1-C) fall out of A+(^M)+C — matching
// how the teacher's iADC documents its own SBC reuse.
func execSBC(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	m := c.mem.Read(addr)
	adc(c.reg, ^m)
}

func adc(r *registers.Registers, m uint8) {
	a := r.A
	carryIn := uint16(0)
	if r.Flag(registers.Carry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(m) + carryIn
	result := uint8(sum)

	r.SetFlag(registers.Carry, sum > 0xFF)
	r.SetFlag(registers.Overflow, (a^result)&(m^result)&0x80 != 0)
	r.SetNZ(result)
	r.A = result
}

// --- Logic ------------------------------------------------------------

func execAND(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.A &= c.mem.Read(addr)
	c.reg.SetNZ(c.reg.A)
}

func execORA(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.A |= c.mem.Read(addr)
	c.reg.SetNZ(c.reg.A)
}

func execEOR(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.A ^= c.mem.Read(addr)
	c.reg.SetNZ(c.reg.A)
}

func execBIT(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	m := c.mem.Read(addr)
	c.reg.SetFlag(registers.Zero, c.reg.A&m == 0)
	c.reg.SetFlag(registers.Negative, m&0x80 != 0)
	c.reg.SetFlag(registers.Overflow, m&0x40 != 0)
}

// --- Compare ------------------------------------------------------------

func compare(r *registers.Registers, reg uint8, m uint8) {
	result := reg - m
	r.SetFlag(registers.Carry, reg >= m)
	r.SetNZ(result)
}

func execCMP(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	compare(c.reg, c.reg.A, c.mem.Read(addr))
}

func execCPX(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	compare(c.reg, c.reg.X, c.mem.Read(addr))
}

func execCPY(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	compare(c.reg, c.reg.Y, c.mem.Read(addr))
}

// --- Increment / decrement ----------------------------------------------

func execINC(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	v := c.mem.Read(addr) + 1
	c.mem.Write(addr, v)
	c.reg.SetNZ(v)
}

func execDEC(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	v := c.mem.Read(addr) - 1
	c.mem.Write(addr, v)
	c.reg.SetNZ(v)
}

func execINX(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.X++; c.reg.SetNZ(c.reg.X) }
func execINY(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.Y++; c.reg.SetNZ(c.reg.Y) }
func execDEX(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.X--; c.reg.SetNZ(c.reg.X) }
func execDEY(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.Y--; c.reg.SetNZ(c.reg.Y) }

// --- Shifts and rotates ---------------------------------------------------
//
// Each of these has an Accumulator-mode form (operates on A directly) and
// a memory form (read-modify-write through an effective address). Both
// share the same bit arithmetic, so each handler dispatches on mode.

func execASL(c *Chip, mode addressing.Mode) {
	if mode == addressing.Accumulator {
		c.resolve(mode)
		c.reg.SetFlag(registers.Carry, c.reg.A&0x80 != 0)
		c.reg.A <<= 1
		c.reg.SetNZ(c.reg.A)
		return
	}
	addr := c.resolve(mode)
	v := c.mem.Read(addr)
	c.reg.SetFlag(registers.Carry, v&0x80 != 0)
	v <<= 1
	c.mem.Write(addr, v)
	c.reg.SetNZ(v)
}

func execLSR(c *Chip, mode addressing.Mode) {
	if mode == addressing.Accumulator {
		c.resolve(mode)
		c.reg.SetFlag(registers.Carry, c.reg.A&0x01 != 0)
		c.reg.A >>= 1
		c.reg.SetNZ(c.reg.A)
		return
	}
	addr := c.resolve(mode)
	v := c.mem.Read(addr)
	c.reg.SetFlag(registers.Carry, v&0x01 != 0)
	v >>= 1
	c.mem.Write(addr, v)
	c.reg.SetNZ(v)
}

func execROL(c *Chip, mode addressing.Mode) {
	carryIn := uint8(0)
	if c.reg.Flag(registers.Carry) {
		carryIn = 1
	}
	if mode == addressing.Accumulator {
		c.resolve(mode)
		c.reg.SetFlag(registers.Carry, c.reg.A&0x80 != 0)
		c.reg.A = (c.reg.A << 1) | carryIn
		c.reg.SetNZ(c.reg.A)
		return
	}
	addr := c.resolve(mode)
	v := c.mem.Read(addr)
	c.reg.SetFlag(registers.Carry, v&0x80 != 0)
	v = (v << 1) | carryIn
	c.mem.Write(addr, v)
	c.reg.SetNZ(v)
}

func execROR(c *Chip, mode addressing.Mode) {
	carryIn := uint8(0)
	if c.reg.Flag(registers.Carry) {
		carryIn = 0x80
	}
	if mode == addressing.Accumulator {
		c.resolve(mode)
		c.reg.SetFlag(registers.Carry, c.reg.A&0x01 != 0)
		c.reg.A = (c.reg.A >> 1) | carryIn
		c.reg.SetNZ(c.reg.A)
		return
	}
	addr := c.resolve(mode)
	v := c.mem.Read(addr)
	c.reg.SetFlag(registers.Carry, v&0x01 != 0)
	v = (v >> 1) | carryIn
	c.mem.Write(addr, v)
	c.reg.SetNZ(v)
}

// --- Flag operations ------------------------------------------------------

func execCLC(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.SetFlag(registers.Carry, false) }
func execSEC(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.SetFlag(registers.Carry, true) }
func execCLI(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.SetFlag(registers.Interrupt, false)
}
func execSEI(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.SetFlag(registers.Interrupt, true)
}
func execCLV(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.SetFlag(registers.Overflow, false)
}
func execCLD(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.SetFlag(registers.Decimal, false) }
func execSED(c *Chip, mode addressing.Mode) { c.resolve(mode); c.reg.SetFlag(registers.Decimal, true) }

// --- Branches -----------------------------------------------------------
//
// Resolve(Relative, ...) returns the sign-extended displacement, not an
// address, and has already advanced PC past the two-byte branch
// instruction. branchIf adds the displacement to that post-fetch PC only
// when cond holds, matching hardware: the offset is always relative to
// the instruction immediately following the branch.

func branchIf(c *Chip, cond bool) {
	disp := c.resolve(addressing.Relative)
	if cond {
		c.reg.PC += disp
	}
}

func execBCC(c *Chip, _ addressing.Mode) { branchIf(c, !c.reg.Flag(registers.Carry)) }
func execBCS(c *Chip, _ addressing.Mode) { branchIf(c, c.reg.Flag(registers.Carry)) }
func execBEQ(c *Chip, _ addressing.Mode) { branchIf(c, c.reg.Flag(registers.Zero)) }
func execBNE(c *Chip, _ addressing.Mode) { branchIf(c, !c.reg.Flag(registers.Zero)) }
func execBMI(c *Chip, _ addressing.Mode) { branchIf(c, c.reg.Flag(registers.Negative)) }
func execBPL(c *Chip, _ addressing.Mode) { branchIf(c, !c.reg.Flag(registers.Negative)) }
func execBVC(c *Chip, _ addressing.Mode) { branchIf(c, !c.reg.Flag(registers.Overflow)) }
func execBVS(c *Chip, _ addressing.Mode) { branchIf(c, c.reg.Flag(registers.Overflow)) }

// --- Jumps, calls, and interrupts -----------------------------------------

func execJMP(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.PC = addr
}

// execJSR pushes the address of the last byte of the JSR instruction
// itself (PC-1 after Resolve's advancement, per the documented 6502
// convention RTS relies on), then jumps.
func execJSR(c *Chip, mode addressing.Mode) {
	addr := c.resolve(mode)
	c.reg.PushWord(c.mem, c.reg.PC-1)
	c.reg.PC = addr
}

func execRTS(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.PC = c.reg.PopWord(c.mem) + 1
}

// execBRK pushes PC+2 (skipping the padding byte that follows a BRK
// opcode) and a status byte with Unused and Break forced on, sets the
// Interrupt flag, and loads PC from IRQVector — the same push shape as
// execPHP, without touching the live P's Break bit.
func execBRK(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.PushWord(c.mem, c.reg.PC+1)
	pushed := c.reg.ToBinary() | registers.Unused | registers.Break
	c.reg.Push(c.mem, pushed)
	c.reg.SetFlag(registers.Interrupt, true)
	c.reg.PC = c.mem.ReadWord(IRQVector)
}

func execRTI(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
	c.reg.FromBinary(c.reg.Pop(c.mem))
	c.reg.PC = c.reg.PopWord(c.mem)
}

// --- No-op ----------------------------------------------------------------

func execNOP(c *Chip, mode addressing.Mode) {
	c.resolve(mode)
}
