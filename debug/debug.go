// Package debug provides an interactive terminal stepper over a captured
// bus trace, one instruction at a time, built on the same bubbletea/
// lipgloss/go-spew foundation hejops-gone/cpu/debugger.go uses for its
// 6502 single-stepper.
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/wdctrace/tracecore/cpu"
	"github.com/wdctrace/tracecore/sample"
)

const historyLines = 20

// Model is the bubbletea model driving one trace's step-through session.
// It never decides when to stop; the caller's window bounds the trace.
type Model struct {
	dispatch *cpu.Dispatch
	win      sample.Window

	idx    int
	prevPC uint16
	lastOp byte
	log    []string
	err    error
}

// NewModel starts a Model at the beginning of win, driven by d.
func NewModel(d *cpu.Dispatch, win sample.Window) Model {
	return Model{dispatch: d, win: win}
}

func (m Model) Init() tea.Cmd { return nil }

// Update advances the session on space/j (step one instruction) or quits
// on q, the same two-key scheme the teacher's debugger model uses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.step()
		}
	}
	return m, nil
}

func (m *Model) step() {
	if m.err != nil {
		return
	}
	if pc, ok := m.dispatch.GetPC(); ok {
		m.prevPC = pc
	}
	s, ok := m.win.At(m.idx)
	if !ok {
		m.err = fmt.Errorf("trace exhausted at sample %d", m.idx)
		return
	}
	m.lastOp = s.Data

	text, _, err := m.dispatch.Disassemble(m.win, m.idx)
	if err != nil {
		m.err = err
		return
	}
	consumed, err := m.dispatch.Emulate(m.win, m.idx)
	if err != nil {
		m.err = err
		return
	}

	line := fmt.Sprintf("%04X  %s", m.prevPC, text)
	if m.dispatch.GetAndClearFail() {
		line += "  [FAIL]"
	}
	m.log = append(m.log, line)
	if len(m.log) > historyLines {
		m.log = m.log[len(m.log)-historyLines:]
	}
	m.idx += consumed
}

// View renders the instruction history, the current register state, and a
// raw dump of the about-to-execute table entry, mirroring the teacher's
// page-table-plus-status-plus-spew layout.
func (m Model) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(m.log, "\n"),
		"",
		m.dispatch.GetState(),
		"",
		spew.Sdump(cpu.Table[m.lastOp]),
	)
	if m.err != nil {
		body += "\n" + m.err.Error()
	}
	return body
}

// Run launches an interactive stepper TUI over win, driven by d.
func Run(d *cpu.Dispatch, win sample.Window) error {
	_, err := tea.NewProgram(NewModel(d, win)).Run()
	return err
}
