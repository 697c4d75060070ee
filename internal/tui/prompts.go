package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seedrepo.dev/seedrepo/internal/tui/style"
)

// ErrInteractiveDisabled is returned when prompts are disabled via SEEDREPO_NO_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (SEEDREPO_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user leaves the form
var ErrCanceled = errors.New("canceled")

// FormValues are the five inputs the form collects
type FormValues struct {
	TargetPath    string
	RemoteURL     string
	AuthorName    string
	AuthorEmail   string
	StructurePath string
}

var formLabels = [...]string{
	"Local repository path",
	"Remote repository URL",
	"Author name",
	"Author email",
	"Structure file (JSON, YAML or TOML)",
}

// formModel is a five field input form. Tab and arrows move between fields,
// Enter on the last field submits.
type formModel struct {
	inputs []textinput.Model
	focus  int
	done   bool
	err    error
}

func newFormModel(initial FormValues) formModel {
	values := []string{initial.TargetPath, initial.RemoteURL, initial.AuthorName, initial.AuthorEmail, initial.StructurePath}

	m := formModel{inputs: make([]textinput.Model, len(formLabels))}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 1024
		ti.Width = 72
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.focus == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			cmd := m.moveFocus(1)
			return m, cmd
		case tea.KeyTab, tea.KeyDown:
			cmd := m.moveFocus(1)
			return m, cmd
		case tea.KeyShiftTab, tea.KeyUp:
			cmd := m.moveFocus(-1)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m formModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(style.ColorBold("Create a repository from a structure file"))
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		label := formLabels[i]
		if i == m.focus {
			label = style.ColorDir(label)
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", label, input.View())
	}
	b.WriteString(style.ColorDim("(Tab to move, Enter on the last field to submit, Esc to cancel)"))
	return lipgloss.NewStyle().Margin(1, 0).Render(b.String())
}

func (m formModel) values() FormValues {
	return FormValues{
		TargetPath:    m.inputs[0].Value(),
		RemoteURL:     m.inputs[1].Value(),
		AuthorName:    m.inputs[2].Value(),
		AuthorEmail:   m.inputs[3].Value(),
		StructurePath: m.inputs[4].Value(),
	}
}

// RunInputForm shows the input form prefilled with initial and returns what
// the user submitted.
func RunInputForm(initial FormValues) (FormValues, error) {
	if interactiveDisabled() {
		return FormValues{}, ErrInteractiveDisabled
	}

	p := tea.NewProgram(newFormModel(initial), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return FormValues{}, err
	}

	final, ok := model.(formModel)
	if !ok {
		return FormValues{}, fmt.Errorf("unexpected model type")
	}
	if final.err != nil {
		return FormValues{}, final.err
	}
	return final.values(), nil
}
