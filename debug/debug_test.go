package debug

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/wdctrace/tracecore/cpu"
	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
)

func TestModelStepsOneInstructionOnSpace(t *testing.T) {
	d := cpu.NewDispatch(memory.NewShadow(0x10000, nil), nil)
	win := sample.NewWindow([]sample.Sample{
		{Data: 0xEA, Type: sample.Opcode}, // NOP
		{Data: 0xEA, Type: sample.Opcode},
	})
	m := NewModel(d, win)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	assert.Nil(t, cmd)
	nm := next.(Model)
	assert.Contains(t, nm.log, "0000  NOP")
}

func TestModelQuitsOnQ(t *testing.T) {
	d := cpu.NewDispatch(memory.NewShadow(0x10000, nil), nil)
	win := sample.NewWindow([]sample.Sample{{Data: 0xEA, Type: sample.Opcode}})
	m := NewModel(d, win)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
}

func TestModelViewRendersWithoutPanicking(t *testing.T) {
	d := cpu.NewDispatch(memory.NewShadow(0x10000, nil), nil)
	win := sample.NewWindow([]sample.Sample{{Data: 0xEA, Type: sample.Opcode}})
	m := NewModel(d, win)
	assert.NotPanics(t, func() { m.View() })
}
