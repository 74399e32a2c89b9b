// Package keypad implements the keypad front end as a Bubble Tea
// program: an expression field, a numeric/operator keypad that inserts
// at the caret, and a result line. Like the other front ends it depends
// only on calc.Calculate and calc.Format.
package keypad

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calclab/calc"
)

type action int8

const (
	actNone action = iota
	actCalc
	actClear
	actQuit
)

// key is one keypad button. Insert keys carry the text they place at
// the caret; the glyph shown may differ (÷ inserts /). Action keys
// carry an action instead.
type key struct {
	label  string
	insert string
	action action
}

// keys lays the pad out like a desk calculator, with the calculate,
// clear, and quit buttons on the bottom row.
var keys = [][]key{
	{{label: "7", insert: "7"}, {label: "8", insert: "8"}, {label: "9", insert: "9"}, {label: "÷", insert: "/"}},
	{{label: "4", insert: "4"}, {label: "5", insert: "5"}, {label: "6", insert: "6"}, {label: "×", insert: "*"}},
	{{label: "1", insert: "1"}, {label: "2", insert: "2"}, {label: "3", insert: "3"}, {label: "−", insert: "-"}},
	{{label: "0", insert: "0"}, {label: "(", insert: "("}, {label: ")", insert: ")"}, {label: "+", insert: "+"}},
	{{label: "=", action: actCalc}, {label: "C", action: actClear}, {label: "quit", action: actQuit}},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	keyStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
	keySelStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62")).Bold(true)
	resultStyle = lipgloss.NewStyle().Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the keypad program state.
type Model struct {
	input    textinput.Model
	result   string
	row, col int
	padFocus bool
	quitting bool
}

// New creates the keypad model with the expression field focused.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "1 + 2*(3-4) / -5"
	in.CharLimit = 256
	in.Focus()
	return Model{input: in}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.clear()
			return m, nil
		case "tab":
			m.padFocus = !m.padFocus
			if m.padFocus {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		case "enter":
			if m.padFocus {
				return m.press(keys[m.row][m.col])
			}
			m.calculate()
			return m, nil
		}
		if m.padFocus {
			switch msg.String() {
			case "up":
				if m.row > 0 {
					m.row--
				}
			case "down":
				if m.row < len(keys)-1 {
					m.row++
				}
			case "left":
				if m.col > 0 {
					m.col--
				}
			case "right":
				if m.col < len(keys[m.row])-1 {
					m.col++
				}
			case " ":
				return m.press(keys[m.row][m.col])
			}
			if m.col > len(keys[m.row])-1 {
				m.col = len(keys[m.row]) - 1
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// press activates a keypad button.
func (m Model) press(k key) (tea.Model, tea.Cmd) {
	if k.insert != "" {
		m.insert(k.insert)
		return m, nil
	}
	switch k.action {
	case actCalc:
		m.calculate()
	case actClear:
		m.clear()
	case actQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// insert places text at the caret and moves the caret past it. The
// field positions by rune, so slice by rune as well.
func (m *Model) insert(s string) {
	v := []rune(m.input.Value())
	pos := m.input.Position()
	if pos > len(v) {
		pos = len(v)
	}
	m.input.SetValue(string(v[:pos]) + s + string(v[pos:]))
	m.input.SetCursor(pos + len([]rune(s)))
}

// calculate evaluates the field and fills the result line. Failures of
// any kind, recognized or not, become result text; nothing may escape
// the UI.
func (m *Model) calculate() {
	defer func() {
		if r := recover(); r != nil {
			m.result = fmt.Sprintf("error: %v", r)
		}
	}()
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		m.result = ""
		return
	}
	v, err := calc.Calculate(expr)
	if err != nil {
		m.result = "error: " + err.Error()
		return
	}
	m.result = calc.Format(v)
}

func (m *Model) clear() {
	m.input.SetValue("")
	m.result = ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("calc"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	for r, row := range keys {
		cells := make([]string, len(row))
		for c, k := range row {
			style := keyStyle
			if m.padFocus && r == m.row && c == m.col {
				style = keySelStyle
			}
			cells[c] = style.Render(k.label)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	switch {
	case strings.HasPrefix(m.result, "error: "):
		b.WriteString(errStyle.Render(m.result))
	case m.result != "":
		b.WriteString(resultStyle.Render("= " + m.result))
	}
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("enter calculate, esc clear, tab keypad, ctrl+c quit"))
	return frameStyle.Render(b.String()) + "\n"
}
