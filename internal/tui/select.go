package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	title   string
	options []Option
	idx     int
	done    bool
	aborted bool
}

func newSelectModel(title string, options []Option) selectModel {
	return selectModel{title: title, options: options}
}

func (m selectModel) cancelled() bool {
	return m.aborted
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.cancel):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.options)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))

	if m.done {
		b.WriteString(" " + answerStyle.Render(m.options[m.idx].Label) + "\n")
		return b.String()
	}
	b.WriteString("\n")
	if m.aborted {
		return b.String()
	}

	for i, opt := range m.options {
		line := "  " + opt.Label
		if i == m.idx {
			line = selectedStyle.Render("> " + opt.Label)
		}
		if opt.Hint != "" {
			line += " " + hintStyle.Render(opt.Hint)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move  enter select  esc cancel") + "\n")
	return b.String()
}
