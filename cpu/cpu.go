// Package cpu implements the 6502 instruction dispatcher: it decodes one
// opcode byte into a (mnemonic, addressing mode) pair, resolves the
// operand through the addressing package, and applies the opcode's
// semantic effect to the registers and memory it's given. It exposes
// single-step and run-to-halt operations, matching the Chip type the
// teacher repository builds, collapsed from its per-tick state machine
// into a single call per instruction since sub-instruction timing is out
// of scope here.
package cpu

import (
	"fmt"

	"github.com/mos6502go/core/addressing"
	"github.com/mos6502go/core/memory"
	"github.com/mos6502go/core/registers"
)

// IRQVector is the fixed address pair the BRK software trap loads PC
// from. NMI and RESET vectors exist on real hardware but are not
// consulted by this core — the embedder sets PC directly instead.
const IRQVector = uint16(0xFFFE)

// InvalidState reports an internal precondition failure: a decode-table
// entry with no addressing mode, or similar programmer error. It should
// never surface from correctly-constructed opcode tables; it exists as a
// defensive channel the way the teacher's InvalidCPUState does.
type InvalidState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// HaltError reports that Step fetched a byte with no matching entry in
// the decode table. PC still points at the offending opcode so the
// caller can inspect machine state.
type HaltError struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e HaltError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// Chip is a 6502 instruction engine: registers plus the memory image it
// executes against. The zero value is not usable; construct with New.
type Chip struct {
	reg *registers.Registers
	mem *memory.Memory
}

// New returns a Chip wired to mem, with registers in their documented
// power-on state. The caller is responsible for loading a program into
// mem and setting Registers().PC to the entry point before calling Step
// or Run — this core does not consult the reset vector.
func New(mem *memory.Memory) *Chip {
	return &Chip{
		reg: registers.New(),
		mem: mem,
	}
}

// Registers returns the engine's register file, for setup (writing PC,
// seeding flags) and inspection after execution.
func (c *Chip) Registers() *registers.Registers {
	return c.reg
}

// Memory returns the engine's memory image.
func (c *Chip) Memory() *memory.Memory {
	return c.mem
}

// Step fetches and fully executes one instruction: decode, resolve
// addressing, apply semantics, including any flag and memory side
// effects. It returns HaltError if the byte at PC does not decode to a
// legal opcode; PC is left pointing at that byte.
func (c *Chip) Step() error {
	op := c.mem.Read(c.reg.PC)
	instr := decodeTable[op]
	if instr == nil {
		return HaltError{Opcode: op, PC: c.reg.PC}
	}
	instr.exec(c, instr.mode)
	return nil
}

// Run executes instructions until Step returns an error (normally a
// HaltError from an undecodable opcode) and returns that error to the
// caller. It never returns nil; a program that never halts will not
// return from Run.
func (c *Chip) Run() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
	}
}

// resolve is a small convenience wrapper so opcode handlers don't all
// need to import the addressing package directly.
func (c *Chip) resolve(mode addressing.Mode) uint16 {
	return addressing.Resolve(mode, c.mem, c.reg)
}
