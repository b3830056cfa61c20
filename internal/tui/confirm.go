package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(title string, defaultYes bool) confirmModel {
	return confirmModel{title: title, value: defaultYes}
}

func (m confirmModel) cancelled() bool {
	return m.aborted
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.cancel):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.yes):
		m.value, m.done = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no):
		m.value, m.done = false, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.toggle):
		m.value = !m.value
	case key.Matches(keyMsg, keys.enter):
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + " ")

	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		b.WriteString(answerStyle.Render(answer) + "\n")
		return b.String()
	}
	if m.aborted {
		return b.String() + "\n"
	}

	yes, no := "Yes", "No"
	if m.value {
		yes = selectedStyle.Render("[Yes]")
	} else {
		no = selectedStyle.Render("[No]")
	}
	b.WriteString(yes + " / " + no + "\n")
	b.WriteString(helpStyle.Render("y/n  ←/→ toggle  enter confirm  esc cancel") + "\n")
	return b.String()
}
