// Package ui implements the interactive a × b^x terminal calculator.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/power-calculator/domain/power"
)

const title = "a × (b^x) Calculator"

var labels = [...]string{"a:", "b (>0):", "x:"}

// Model is the bubbletea model for the calculator.
type Model struct {
	inputs  [3]textinput.Model
	focused int
	method  power.Method

	result   string
	errorMsg string

	styles Styles
}

// New creates a calculator model with focus on the first field.
func New() Model {
	return NewWithMethod(power.MethodNative)
}

// NewWithMethod creates a calculator model that starts on the given method.
func NewWithMethod(method power.Method) Model {
	m := Model{
		method: method,
		result: "Result: ",
		styles: DefaultStyles(),
	}
	placeholders := [...]string{"multiplier", "base", "exponent"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 24
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "ctrl+t":
			m.method = nextMethod(m.method)
			return m, nil
		case "enter":
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	for i, in := range m.inputs {
		label := m.styles.Label
		if i == m.focused {
			label = m.styles.Focus
		}
		b.WriteString(label.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\nmethod: " + string(m.method) + "\n")
	b.WriteString(m.styles.Result.Render(m.result))
	b.WriteString("\n")
	if m.errorMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errorMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab/↑/↓ move • enter calculate • ctrl+t method • esc quit"))
	return b.String()
}

// SetValues fills the three fields, mainly for tests and scripted input.
func (m *Model) SetValues(multiplier, base, exponent string) {
	m.inputs[0].SetValue(multiplier)
	m.inputs[1].SetValue(base)
	m.inputs[2].SetValue(exponent)
}

// Method returns the active evaluation method.
func (m Model) Method() power.Method {
	return m.method
}

// Focused returns the index of the focused field.
func (m Model) Focused() int {
	return m.focused
}

// Result returns the result label text.
func (m Model) Result() string {
	return m.result
}

// ErrorMessage returns the error label text, empty when the last calculation succeeded.
func (m Model) ErrorMessage() string {
	return m.errorMsg
}

func (m *Model) calculate() {
	value, err := power.ComputeWith(m.method,
		m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value())
	out := power.NewOutcome(value, err)
	if out.OK() {
		m.result = out.String()
		m.errorMsg = ""
		return
	}
	m.result = "Result: "
	m.errorMsg = out.String()
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focused].Focus()
	return m
}

func nextMethod(current power.Method) power.Method {
	for i, method := range power.Methods {
		if method == current {
			return power.Methods[(i+1)%len(power.Methods)]
		}
	}
	return power.Methods[0]
}
