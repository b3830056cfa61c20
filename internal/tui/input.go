package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	field   Field
	input   textinput.Model
	value   string
	errMsg  string
	done    bool
	aborted bool
}

func newInputModel(field Field) inputModel {
	in := textinput.New()
	in.Placeholder = field.Placeholder
	in.Width = 60
	in.SetValue(field.Initial)
	if field.Secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	in.Focus()

	return inputModel{field: field, input: in}
}

func (m inputModel) cancelled() bool {
	return m.aborted
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			value := strings.TrimSpace(m.input.Value())
			if m.field.Validate != nil {
				if err := m.field.Validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.value, m.done = value, true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m inputModel) View() string {
	title := titleStyle.Render(m.field.Title)

	if m.done {
		shown := m.value
		if m.field.Secret {
			shown = strings.Repeat("*", min(len(m.value), 8))
		}
		return title + " " + answerStyle.Render(shown) + "\n"
	}
	if m.aborted {
		return title + "\n"
	}

	out := title + "\n" + m.input.View() + "\n"
	if m.errMsg != "" {
		out += errorStyle.Render(m.errMsg) + "\n"
	}
	out += helpStyle.Render("enter submit  esc cancel") + "\n"
	return out
}
