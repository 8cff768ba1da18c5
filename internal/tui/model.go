package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NAGOHUSA/MCQUESTS/internal/engine"
	"github.com/NAGOHUSA/MCQUESTS/internal/feed"
	"github.com/NAGOHUSA/MCQUESTS/internal/ui"
)

type boardModel struct {
	dir string

	width  int
	height int

	dates    []string
	record   *engine.Record
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	dates []string
}

type recordMsg struct {
	date string
	rec  engine.Record
	err  error
}

func newBoardModel(dir string) boardModel {
	return boardModel{
		dir:     dir,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{dates: feed.ReadIndex(m.dir)}
	}
}

func (m boardModel) recordCmd(date string) tea.Cmd {
	return func() tea.Msg {
		rec, err := feed.ReadQuest(m.dir, date)
		return recordMsg{date: date, rec: rec, err: err}
	}
}

func (m boardModel) selectedDate() string {
	if m.selected < 0 || m.selected >= len(m.dates) {
		return ""
	}
	return m.dates[m.selected]
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.dates = msg.dates
		if m.selected >= len(m.dates) {
			m.selected = len(m.dates) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		if d := m.selectedDate(); d != "" {
			return m, m.recordCmd(d)
		}
		m.record = nil
		return m, nil
	case recordMsg:
		if msg.err != nil {
			m.record = nil
			m.lastLog = "Read failed: " + msg.err.Error()
			return m, nil
		}
		if msg.date == m.selectedDate() {
			rec := msg.rec
			m.record = &rec
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				return m, m.recordCmd(m.selectedDate())
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.dates)-1 {
				m.selected++
				return m, m.recordCmd(m.selectedDate())
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading && len(m.dates) == 0 {
		return "MCQUESTS — loading…\n"
	}

	header := ui.Heading(ui.IconQuest, "MCQUESTS Feed") + " " + ui.Muted.Render(m.dir)
	sidebar := m.renderDates()
	main := m.renderRecord()
	footer := ui.Dim.Render(m.lastLog + "  •  ↑/↓ select, r refresh, q quit")

	// Simple 2-column layout.
	leftW := 14
	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(fmt.Sprintf("%-*s  %s\n", leftW, l, r))
	}

	return header + "\n\n" + body.String() + "\n" + footer + "\n"
}

func (m boardModel) renderDates() string {
	if len(m.dates) == 0 {
		return ui.Muted.Render("(no quests yet)")
	}
	var b strings.Builder
	for i, d := range m.dates {
		if i == m.selected {
			b.WriteString(ui.SelectedRow.Render(d))
		} else {
			b.WriteString(d)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m boardModel) renderRecord() string {
	if m.record == nil {
		return ui.Muted.Render("Select a date.")
	}
	rec := m.record
	var b strings.Builder
	b.WriteString(ui.ThemeSwatch(rec.Theme, rec.Color) + "  " + ui.Muted.Render(rec.Date) + "\n")
	b.WriteString(ui.Dim.Render(rec.Lore) + "\n")
	b.WriteString(ui.LabelValue("Biome", rec.BiomeHint) + "\n")
	b.WriteString(ui.LabelValue("Reward", rec.Reward) + "\n")
	for i, s := range rec.Steps {
		b.WriteString(ui.StepLine(i, s) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
