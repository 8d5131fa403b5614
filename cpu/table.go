package cpu

import "github.com/mos6502go/core/addressing"

// instruction pairs a decoded opcode's addressing mode with the handler
// that implements its effect. mnemonic is carried only for diagnostics —
// dispatch never branches on it.
type instruction struct {
	mnemonic string
	mode     addressing.Mode
	exec     exec
}

// decodeTable maps every one of the 151 legal NMOS 6502 opcodes to its
// instruction. Entries left nil are either unused by the legal
// instruction set or one of the undocumented "illegal" opcodes, which
// are out of scope — Step reports them via HaltError rather than
// guessing at semantics no datasheet commits to.
var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]*instruction {
	var t [256]*instruction

	add := func(op uint8, mnemonic string, mode addressing.Mode, fn exec) {
		t[op] = &instruction{mnemonic: mnemonic, mode: mode, exec: fn}
	}

	// Loads.
	add(0xA9, "LDA", addressing.Immediate, execLDA)
	add(0xA5, "LDA", addressing.ZeroPage, execLDA)
	add(0xB5, "LDA", addressing.ZeroPageX, execLDA)
	add(0xAD, "LDA", addressing.Absolute, execLDA)
	add(0xBD, "LDA", addressing.AbsoluteX, execLDA)
	add(0xB9, "LDA", addressing.AbsoluteY, execLDA)
	add(0xA1, "LDA", addressing.IndirectX, execLDA)
	add(0xB1, "LDA", addressing.IndirectY, execLDA)

	add(0xA2, "LDX", addressing.Immediate, execLDX)
	add(0xA6, "LDX", addressing.ZeroPage, execLDX)
	add(0xB6, "LDX", addressing.ZeroPageY, execLDX)
	add(0xAE, "LDX", addressing.Absolute, execLDX)
	add(0xBE, "LDX", addressing.AbsoluteY, execLDX)

	add(0xA0, "LDY", addressing.Immediate, execLDY)
	add(0xA4, "LDY", addressing.ZeroPage, execLDY)
	add(0xB4, "LDY", addressing.ZeroPageX, execLDY)
	add(0xAC, "LDY", addressing.Absolute, execLDY)
	add(0xBC, "LDY", addressing.AbsoluteX, execLDY)

	// Stores.
	add(0x85, "STA", addressing.ZeroPage, execSTA)
	add(0x95, "STA", addressing.ZeroPageX, execSTA)
	add(0x8D, "STA", addressing.Absolute, execSTA)
	add(0x9D, "STA", addressing.AbsoluteX, execSTA)
	add(0x99, "STA", addressing.AbsoluteY, execSTA)
	add(0x81, "STA", addressing.IndirectX, execSTA)
	add(0x91, "STA", addressing.IndirectY, execSTA)

	add(0x86, "STX", addressing.ZeroPage, execSTX)
	add(0x96, "STX", addressing.ZeroPageY, execSTX)
	add(0x8E, "STX", addressing.Absolute, execSTX)

	add(0x84, "STY", addressing.ZeroPage, execSTY)
	add(0x94, "STY", addressing.ZeroPageX, execSTY)
	add(0x8C, "STY", addressing.Absolute, execSTY)

	// Register transfers.
	add(0xAA, "TAX", addressing.Implied, execTAX)
	add(0xA8, "TAY", addressing.Implied, execTAY)
	add(0x8A, "TXA", addressing.Implied, execTXA)
	add(0x98, "TYA", addressing.Implied, execTYA)
	add(0xBA, "TSX", addressing.Implied, execTSX)
	add(0x9A, "TXS", addressing.Implied, execTXS)

	// Stack.
	add(0x48, "PHA", addressing.Implied, execPHA)
	add(0x68, "PLA", addressing.Implied, execPLA)
	add(0x08, "PHP", addressing.Implied, execPHP)
	add(0x28, "PLP", addressing.Implied, execPLP)

	// Arithmetic.
	add(0x69, "ADC", addressing.Immediate, execADC)
	add(0x65, "ADC", addressing.ZeroPage, execADC)
	add(0x75, "ADC", addressing.ZeroPageX, execADC)
	add(0x6D, "ADC", addressing.Absolute, execADC)
	add(0x7D, "ADC", addressing.AbsoluteX, execADC)
	add(0x79, "ADC", addressing.AbsoluteY, execADC)
	add(0x61, "ADC", addressing.IndirectX, execADC)
	add(0x71, "ADC", addressing.IndirectY, execADC)

	add(0xE9, "SBC", addressing.Immediate, execSBC)
	add(0xE5, "SBC", addressing.ZeroPage, execSBC)
	add(0xF5, "SBC", addressing.ZeroPageX, execSBC)
	add(0xED, "SBC", addressing.Absolute, execSBC)
	add(0xFD, "SBC", addressing.AbsoluteX, execSBC)
	add(0xF9, "SBC", addressing.AbsoluteY, execSBC)
	add(0xE1, "SBC", addressing.IndirectX, execSBC)
	add(0xF1, "SBC", addressing.IndirectY, execSBC)

	// Logic.
	add(0x29, "AND", addressing.Immediate, execAND)
	add(0x25, "AND", addressing.ZeroPage, execAND)
	add(0x35, "AND", addressing.ZeroPageX, execAND)
	add(0x2D, "AND", addressing.Absolute, execAND)
	add(0x3D, "AND", addressing.AbsoluteX, execAND)
	add(0x39, "AND", addressing.AbsoluteY, execAND)
	add(0x21, "AND", addressing.IndirectX, execAND)
	add(0x31, "AND", addressing.IndirectY, execAND)

	add(0x09, "ORA", addressing.Immediate, execORA)
	add(0x05, "ORA", addressing.ZeroPage, execORA)
	add(0x15, "ORA", addressing.ZeroPageX, execORA)
	add(0x0D, "ORA", addressing.Absolute, execORA)
	add(0x1D, "ORA", addressing.AbsoluteX, execORA)
	add(0x19, "ORA", addressing.AbsoluteY, execORA)
	add(0x01, "ORA", addressing.IndirectX, execORA)
	add(0x11, "ORA", addressing.IndirectY, execORA)

	add(0x49, "EOR", addressing.Immediate, execEOR)
	add(0x45, "EOR", addressing.ZeroPage, execEOR)
	add(0x55, "EOR", addressing.ZeroPageX, execEOR)
	add(0x4D, "EOR", addressing.Absolute, execEOR)
	add(0x5D, "EOR", addressing.AbsoluteX, execEOR)
	add(0x59, "EOR", addressing.AbsoluteY, execEOR)
	add(0x41, "EOR", addressing.IndirectX, execEOR)
	add(0x51, "EOR", addressing.IndirectY, execEOR)

	add(0x24, "BIT", addressing.ZeroPage, execBIT)
	add(0x2C, "BIT", addressing.Absolute, execBIT)

	// Compare.
	add(0xC9, "CMP", addressing.Immediate, execCMP)
	add(0xC5, "CMP", addressing.ZeroPage, execCMP)
	add(0xD5, "CMP", addressing.ZeroPageX, execCMP)
	add(0xCD, "CMP", addressing.Absolute, execCMP)
	add(0xDD, "CMP", addressing.AbsoluteX, execCMP)
	add(0xD9, "CMP", addressing.AbsoluteY, execCMP)
	add(0xC1, "CMP", addressing.IndirectX, execCMP)
	add(0xD1, "CMP", addressing.IndirectY, execCMP)

	add(0xE0, "CPX", addressing.Immediate, execCPX)
	add(0xE4, "CPX", addressing.ZeroPage, execCPX)
	add(0xEC, "CPX", addressing.Absolute, execCPX)

	add(0xC0, "CPY", addressing.Immediate, execCPY)
	add(0xC4, "CPY", addressing.ZeroPage, execCPY)
	add(0xCC, "CPY", addressing.Absolute, execCPY)

	// Increment / decrement.
	add(0xE6, "INC", addressing.ZeroPage, execINC)
	add(0xF6, "INC", addressing.ZeroPageX, execINC)
	add(0xEE, "INC", addressing.Absolute, execINC)
	add(0xFE, "INC", addressing.AbsoluteX, execINC)

	add(0xC6, "DEC", addressing.ZeroPage, execDEC)
	add(0xD6, "DEC", addressing.ZeroPageX, execDEC)
	add(0xCE, "DEC", addressing.Absolute, execDEC)
	add(0xDE, "DEC", addressing.AbsoluteX, execDEC)

	add(0xE8, "INX", addressing.Implied, execINX)
	add(0xC8, "INY", addressing.Implied, execINY)
	add(0xCA, "DEX", addressing.Implied, execDEX)
	add(0x88, "DEY", addressing.Implied, execDEY)

	// Shifts and rotates.
	add(0x0A, "ASL", addressing.Accumulator, execASL)
	add(0x06, "ASL", addressing.ZeroPage, execASL)
	add(0x16, "ASL", addressing.ZeroPageX, execASL)
	add(0x0E, "ASL", addressing.Absolute, execASL)
	add(0x1E, "ASL", addressing.AbsoluteX, execASL)

	add(0x4A, "LSR", addressing.Accumulator, execLSR)
	add(0x46, "LSR", addressing.ZeroPage, execLSR)
	add(0x56, "LSR", addressing.ZeroPageX, execLSR)
	add(0x4E, "LSR", addressing.Absolute, execLSR)
	add(0x5E, "LSR", addressing.AbsoluteX, execLSR)

	add(0x2A, "ROL", addressing.Accumulator, execROL)
	add(0x26, "ROL", addressing.ZeroPage, execROL)
	add(0x36, "ROL", addressing.ZeroPageX, execROL)
	add(0x2E, "ROL", addressing.Absolute, execROL)
	add(0x3E, "ROL", addressing.AbsoluteX, execROL)

	add(0x6A, "ROR", addressing.Accumulator, execROR)
	add(0x66, "ROR", addressing.ZeroPage, execROR)
	add(0x76, "ROR", addressing.ZeroPageX, execROR)
	add(0x6E, "ROR", addressing.Absolute, execROR)
	add(0x7E, "ROR", addressing.AbsoluteX, execROR)

	// Flags.
	add(0x18, "CLC", addressing.Implied, execCLC)
	add(0x38, "SEC", addressing.Implied, execSEC)
	add(0x58, "CLI", addressing.Implied, execCLI)
	add(0x78, "SEI", addressing.Implied, execSEI)
	add(0xB8, "CLV", addressing.Implied, execCLV)
	add(0xD8, "CLD", addressing.Implied, execCLD)
	add(0xF8, "SED", addressing.Implied, execSED)

	// Branches.
	add(0x10, "BPL", addressing.Relative, execBPL)
	add(0x30, "BMI", addressing.Relative, execBMI)
	add(0x50, "BVC", addressing.Relative, execBVC)
	add(0x70, "BVS", addressing.Relative, execBVS)
	add(0x90, "BCC", addressing.Relative, execBCC)
	add(0xB0, "BCS", addressing.Relative, execBCS)
	add(0xD0, "BNE", addressing.Relative, execBNE)
	add(0xF0, "BEQ", addressing.Relative, execBEQ)

	// Jumps, calls, interrupts.
	add(0x4C, "JMP", addressing.Absolute, execJMP)
	add(0x6C, "JMP", addressing.Indirect, execJMP)
	add(0x20, "JSR", addressing.Absolute, execJSR)
	add(0x60, "RTS", addressing.Implied, execRTS)
	add(0x00, "BRK", addressing.Implied, execBRK)
	add(0x40, "RTI", addressing.Implied, execRTI)

	// No-op.
	add(0xEA, "NOP", addressing.Implied, execNOP)

	return t
}
