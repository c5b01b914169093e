// Package history provides the interactive browser over saved cover letters.
package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 1, 2)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 0, 0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)

	detailHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Padding(1, 0, 1, 2)

	letterBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2)
)

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

type browserModel struct {
	records []model.LetterRecord
	cursor  int
	state   viewState
	vp      viewport.Model
	width   int
	height  int
	ready   bool
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 4
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == viewDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.records) == 0 {
			return m, nil
		}
		rec := m.records[m.cursor]
		m.state = viewDetail
		m.vp.SetContent(letterBodyStyle.Width(m.width - 4).Render(rec.Letter))
		m.vp.GotoTop()
	}
	return m, nil
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = viewList
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if m.state == viewDetail {
		rec := m.records[m.cursor]
		header := detailHeaderStyle.Render(fmt.Sprintf("Letter #%d — %s — %s",
			rec.ID, rec.CreatedAt.Local().Format("2006-01-02 15:04"), rec.JobBrief))
		hint := hintStyle.Render("↑/↓ scroll  esc back  q quit")
		return header + "\n" + m.vp.View() + "\n" + hint
	}

	s := titleStyle.Render("Cover Letter History — Select a letter")
	s += "\n"

	for i, rec := range m.records {
		label := fmt.Sprintf("#%d  %s  %s",
			rec.ID, rec.CreatedAt.Local().Format("2006-01-02 15:04"), rec.JobBrief)
		sub := subtitleStyle.Render("model: " + rec.Model)
		if i == m.cursor {
			s += selectedStyle.Render("> "+label) + "  " + sub + "\n"
		} else {
			s += itemStyle.Render(label) + "  " + sub + "\n"
		}
	}

	s += hintStyle.Render("↑/↓/j/k navigate  enter read  q quit")
	return s
}

// RunBrowser shows the interactive letter browser over the given records.
func RunBrowser(records []model.LetterRecord) error {
	m := browserModel{records: records}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
