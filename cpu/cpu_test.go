package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/mos6502go/core/memory"
	"github.com/mos6502go/core/registers"
)

// wantRegs describes the register state a test expects. Zero A/X/Y/S
// fields are the power-on defaults, so tests only name what an
// instruction is expected to change; P powers on as Unused, so tests
// always name it.
type wantRegs struct {
	A, X, Y, S uint8
	PC         uint16
	P          uint8
}

func assertRegs(t *testing.T, got *registers.Registers, want wantRegs) {
	t.Helper()
	gotSnapshot := wantRegs{A: got.A, X: got.X, Y: got.Y, S: got.S, PC: got.PC, P: got.P}
	if diff := deep.Equal(gotSnapshot, want); diff != nil {
		t.Errorf("register mismatch: %v\ngot:  %s\nwant: %s", diff, spew.Sdump(gotSnapshot), spew.Sdump(want))
	}
}

func newChipAt(pc uint16, program ...uint8) *Chip {
	mem := memory.New()
	mem.WriteBytes(pc, program)
	c := New(mem)
	c.Registers().PC = pc
	return c
}

func TestStepLDAImmediateSetsNZ(t *testing.T) {
	c := newChipAt(0x0600, 0xA9, 0x00) // LDA #$00
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertRegs(t, c.Registers(), wantRegs{A: 0x00, PC: 0x0602, P: registers.Unused | registers.Zero})
}

func TestStepLDAImmediateNegative(t *testing.T) {
	c := newChipAt(0x0600, 0xA9, 0x80) // LDA #$80
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertRegs(t, c.Registers(), wantRegs{A: 0x80, PC: 0x0602, P: registers.Unused | registers.Negative})
}

func TestStepSTAAbsolute(t *testing.T) {
	c := newChipAt(0x0600, 0x8D, 0x00, 0x02) // STA $0200
	c.Registers().A = 0x42
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Memory().Read(0x0200); got != 0x42 {
		t.Errorf("mem[0x0200] = 0x%02X, want 0x42", got)
	}
}

func TestStepADCSetsOverflowClearsCarry(t *testing.T) {
	c := newChipAt(0x0600, 0x69, 0x01) // ADC #$01
	c.Registers().A = 0x7F             // +1 overflows into negative
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	r := c.Registers()
	if r.A != 0x80 {
		t.Errorf("A = 0x%02X, want 0x80", r.A)
	}
	if !r.Flag(registers.Overflow) {
		t.Error("expected Overflow set")
	}
	if r.Flag(registers.Carry) {
		t.Error("expected Carry clear")
	}
}

func TestStepADCCarryOut(t *testing.T) {
	c := newChipAt(0x0600, 0x69, 0x01) // ADC #$01
	c.Registers().A = 0xFF
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	r := c.Registers()
	if r.A != 0x00 {
		t.Errorf("A = 0x%02X, want 0x00", r.A)
	}
	if !r.Flag(registers.Carry) {
		t.Error("expected Carry set")
	}
	if !r.Flag(registers.Zero) {
		t.Error("expected Zero set")
	}
}

func TestStepSBCBorrow(t *testing.T) {
	c := newChipAt(0x0600, 0xE9, 0x01) // SBC #$01
	c.Registers().A = 0x00
	c.Registers().SetFlag(registers.Carry, true) // no borrow going in
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	r := c.Registers()
	if r.A != 0xFF {
		t.Errorf("A = 0x%02X, want 0xFF", r.A)
	}
	if r.Flag(registers.Carry) {
		t.Error("expected Carry clear (borrow occurred)")
	}
}

func TestStepASLAccumulatorSetsNegativeFromResultBit7(t *testing.T) {
	c := newChipAt(0x0600, 0x0A) // ASL A
	c.Registers().A = 0x40       // bit 6 set, bit 7 clear: N comes from the shifted result
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	r := c.Registers()
	if r.A != 0x80 {
		t.Errorf("A = 0x%02X, want 0x80", r.A)
	}
	if r.Flag(registers.Carry) {
		t.Error("expected Carry clear: input bit 7 was 0")
	}
	if !r.Flag(registers.Negative) {
		t.Error("expected Negative set: result bit 7 is 1")
	}
}

func TestStepBranchTaken(t *testing.T) {
	c := newChipAt(0x0600, 0xD0, 0x05) // BNE +5
	c.Registers().SetFlag(registers.Zero, false)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := c.Registers().PC, uint16(0x0607); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
}

func TestStepBranchNotTaken(t *testing.T) {
	c := newChipAt(0x0600, 0xD0, 0x05) // BNE +5
	c.Registers().SetFlag(registers.Zero, true)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := c.Registers().PC, uint16(0x0602); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
}

func TestStepBranchBackward(t *testing.T) {
	c := newChipAt(0x0610, 0xD0, 0xFB) // BNE -5
	c.Registers().SetFlag(registers.Zero, false)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := c.Registers().PC, uint16(0x060D); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
}

func TestStepJSRThenRTSRoundTrips(t *testing.T) {
	mem := memory.New()
	mem.WriteBytes(0x0600, []uint8{0x20, 0x00, 0x07, 0xEA}) // JSR $0700; NOP
	mem.WriteBytes(0x0700, []uint8{0x60})                   // RTS
	c := New(mem)
	c.Registers().PC = 0x0600
	c.Registers().S = 0xFF

	if err := c.Step(); err != nil { // JSR
		t.Fatalf("JSR step: %v", err)
	}
	if got, want := c.Registers().PC, uint16(0x0700); got != want {
		t.Fatalf("after JSR, PC = 0x%04X, want 0x%04X", got, want)
	}
	if err := c.Step(); err != nil { // RTS
		t.Fatalf("RTS step: %v", err)
	}
	if got, want := c.Registers().PC, uint16(0x0603); got != want {
		t.Fatalf("after RTS, PC = 0x%04X, want 0x%04X", got, want)
	}
	if got, want := c.Registers().S, uint8(0xFF); got != want {
		t.Fatalf("S = 0x%02X, want 0x%02X", got, want)
	}
}

func TestStepBRKPushesPWithBAndUnusedSetWithoutMutatingLiveP(t *testing.T) {
	c := newChipAt(0x0600, 0x00, 0x00) // BRK ; padding byte
	c.Memory().WriteWord(IRQVector, 0x9000)
	c.Registers().S = 0xFF
	c.Registers().P = 0 // clear everything, including Unused, to prove BRK forces bits on the pushed copy only

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	r := c.Registers()
	if got, want := r.PC, uint16(0x9000); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
	if !r.Flag(registers.Interrupt) {
		t.Error("expected Interrupt flag set after BRK")
	}
	if r.Flag(registers.Break) {
		t.Error("expected live P Break bit to stay clear after BRK")
	}
	// PC high at 0x01FF, PC low at 0x01FE, status at 0x01FD.
	pushedP := c.Memory().Read(0x01FD)
	if pushedP&registers.Break == 0 || pushedP&registers.Unused == 0 {
		t.Errorf("pushed P = 0x%02X, want Break and Unused both set", pushedP)
	}
}

func TestStepRTIRestoresPAndPC(t *testing.T) {
	c := newChipAt(0x0600, 0x40) // RTI
	c.Registers().S = 0xFC
	c.Memory().Write(0x01FD, 0xA5)       // status byte
	c.Memory().WriteWord(0x01FE, 0x1234) // return PC

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	r := c.Registers()
	if got, want := r.PC, uint16(0x1234); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
	if got, want := r.P, uint8(0xA5); got != want {
		t.Errorf("P = 0x%02X, want 0x%02X", got, want)
	}
}

func TestStepIndirectJMPPageBoundaryBug(t *testing.T) {
	c := newChipAt(0x0600, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	c.Memory().Write(0x30FF, 0x80)
	c.Memory().Write(0x3000, 0x12) // bug: high byte from $3000
	c.Memory().Write(0x3100, 0x34) // must not be used
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := c.Registers().PC, uint16(0x1280); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
}

func TestStepUnimplementedOpcodeHalts(t *testing.T) {
	c := newChipAt(0x0600, 0x02) // not a legal opcode
	err := c.Step()
	if err == nil {
		t.Fatal("expected HaltError, got nil")
	}
	halt, ok := err.(HaltError)
	if !ok {
		t.Fatalf("expected HaltError, got %T: %v", err, err)
	}
	if halt.Opcode != 0x02 || halt.PC != 0x0600 {
		t.Errorf("unexpected HaltError: %+v", halt)
	}
}

func TestRunStopsAtHalt(t *testing.T) {
	c := newChipAt(0x0600, 0xEA, 0xEA, 0x02) // two NOPs then an illegal opcode
	err := c.Run()
	if err == nil {
		t.Fatal("expected error from Run")
	}
	if got, want := c.Registers().PC, uint16(0x0602); got != want {
		t.Errorf("PC = 0x%04X, want 0x%04X", got, want)
	}
}

func TestPHPThenPLARestoresAccumulatorNotFlags(t *testing.T) {
	c := newChipAt(0x0600, 0x08, 0x68) // PHP ; PLA
	c.Registers().S = 0xFF
	c.Registers().A = 0x99
	c.Registers().P = registers.Unused | registers.Carry

	if err := c.Step(); err != nil { // PHP
		t.Fatalf("PHP: %v", err)
	}
	if err := c.Step(); err != nil { // PLA
		t.Fatalf("PLA: %v", err)
	}
	r := c.Registers()
	// PLA pulled the pushed status byte into A, not P — PLA only sets N/Z
	// from that byte, and both stay clear for 0x31.
	want := registers.Unused | registers.Carry | registers.Break
	if r.A != want {
		t.Errorf("A = 0x%02X, want 0x%02X", r.A, want)
	}
	if r.P != registers.Unused|registers.Carry {
		t.Errorf("P changed by PLA: got 0x%02X", r.P)
	}
}
