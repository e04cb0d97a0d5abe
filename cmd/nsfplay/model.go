package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nsf6502/cpu"
	"nsf6502/nsf"
)

type stepMsg struct{}

// model is the bubbletea model driving the NSF runner. Its layout mirrors
// the teacher's page-table-plus-status split, widened with an NSF metadata
// panel and a dump pane backed by go-spew.
type model struct {
	runner *nsf.Runner
	auto   bool

	offset uint16 // top-left address of the rendered page window
	prevPC uint16
	err    error
}

func newModel(runner *nsf.Runner, auto bool) model {
	return model{runner: runner, auto: auto, offset: runner.Header.LoadAddr &^ 0xFF}
}

func (m model) Init() tea.Cmd {
	if m.auto {
		return tickCmd(m.runner.Header.PlaySpeed())
	}
	return nil
}

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = 16 * time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return stepMsg{} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			return m.step()
		case "a":
			m.auto = !m.auto
			if m.auto {
				return m, tickCmd(m.runner.Header.PlaySpeed())
			}
		}
	case stepMsg:
		if m.auto {
			nm, cmd := m.step()
			if nm.(model).err != nil {
				return nm, tea.Quit
			}
			return nm, tea.Batch(cmd, tickCmd(m.runner.Header.PlaySpeed()))
		}
	}
	return m, nil
}

func (m model) step() (tea.Model, tea.Cmd) {
	m.prevPC = m.runner.CPU.PC
	if err := m.runner.Step(); err != nil {
		m.err = err
	}
	return m, nil
}

const bytesPerRow = 16

func (m model) renderPage(start uint16) string {
	c := m.runner.CPU
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < bytesPerRow; i++ {
		addr := start + i
		b := c.Read8(addr)
		if addr == c.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := range bytesPerRow {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	for i := range 8 {
		rows = append(rows, m.renderPage(m.offset+uint16(i*bytesPerRow)))
	}
	return strings.Join(rows, "\n")
}

// codePane disassembles a handful of instructions starting at PC. It walks
// by each listed instruction's own encoded width, so it stays aligned even
// though instructions vary in length -- a naive fixed stride would drift
// onto operand bytes as data.
func (m model) codePane() string {
	c := m.runner.CPU
	addr := c.PC
	lines := make([]string, 0, 6)
	for range 6 {
		line := c.Disassemble(addr)
		lines = append(lines, fmt.Sprintf("%04x  %s", addr, line))
		addr += c.InstructionWidth(addr)
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	c := m.runner.CPU
	var flags string
	for _, f := range []byte{
		cpu.FlagNegative, cpu.FlagOverflow, cpu.FlagUnused, cpu.FlagBreak,
		cpu.FlagDecimal, cpu.FlagInterrupt, cpu.FlagZero, cpu.FlagCarry,
	} {
		if c.Flag(f) {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (prev %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
instructions: %d
N V _ B D I Z C
%s`,
		c.PC, m.prevPC, c.A, c.X, c.Y, c.SP, c.InstructionCount(), flags)
}

func (m model) metadata() string {
	h := m.runner.Header
	region := "NTSC"
	if h.IsPAL() {
		region = "PAL"
	}
	return fmt.Sprintf(
		"%s\nby %s\n(c) %s\nregion: %s  speed: %s",
		h.Name(), h.Artist(), h.Copyright(), region, h.PlaySpeed(),
	)
}

func (m model) View() string {
	errLine := ""
	if m.err != nil {
		errLine = "error: " + m.err.Error()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			"  "+m.status(),
			"  "+m.codePane(),
		),
		"",
		m.metadata(),
		"",
		errLine,
		spew.Sdump(m.runner.CPU.Registers()),
	)
}
