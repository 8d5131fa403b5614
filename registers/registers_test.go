package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mos6502go/core/memory"
)

func TestNewPowerOnState(t *testing.T) {
	r := New()
	assert.Zero(t, r.A)
	assert.Zero(t, r.X)
	assert.Zero(t, r.Y)
	assert.Zero(t, r.S)
	assert.Zero(t, r.PC)
	assert.Equal(t, Unused, r.P)
}

func TestToFromBinaryRoundTrip(t *testing.T) {
	for _, b := range []uint8{0x00, 0xFF, 0x81, 0x55, 0xAA, 0x30} {
		r := &Registers{}
		r.FromBinary(b)
		assert.Equal(t, b, r.ToBinary(), "round trip of 0x%02X", b)
	}
}

func TestSetFlagAndFlag(t *testing.T) {
	r := &Registers{}
	r.SetFlag(Carry, true)
	assert.True(t, r.Flag(Carry))
	assert.False(t, r.Flag(Zero))
	r.SetFlag(Carry, false)
	assert.False(t, r.Flag(Carry))
}

func TestSetNZ(t *testing.T) {
	r := &Registers{}
	r.SetNZ(0x00)
	assert.True(t, r.Flag(Zero))
	assert.False(t, r.Flag(Negative))

	r.SetNZ(0x80)
	assert.False(t, r.Flag(Zero))
	assert.True(t, r.Flag(Negative))

	r.SetNZ(0x01)
	assert.False(t, r.Flag(Zero))
	assert.False(t, r.Flag(Negative))
}

func TestPushPopByteWrapsStackPointer(t *testing.T) {
	mem := memory.New()
	r := &Registers{S: 0x00}
	r.Push(mem, 0x42)
	assert.Equal(t, uint8(0xFF), r.S)
	assert.Equal(t, uint8(0x42), mem.Read(0x0100))

	got := r.Pop(mem)
	assert.Equal(t, uint8(0x00), r.S)
	assert.Equal(t, uint8(0x42), got)
}

func TestPushPopWordOrder(t *testing.T) {
	mem := memory.New()
	r := &Registers{S: 0xFF}
	r.PushWord(mem, 0x1234)
	// High byte pushed first means it lands at the deeper stack slot.
	assert.Equal(t, uint8(0x12), mem.Read(0x01FF))
	assert.Equal(t, uint8(0x34), mem.Read(0x01FE))

	got := r.PopWord(mem)
	assert.Equal(t, uint16(0x1234), got)
	assert.Equal(t, uint8(0xFF), r.S)
}
