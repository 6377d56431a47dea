package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"palplanner/internal/app"
	"palplanner/internal/pet"
	"palplanner/internal/shop"
	"palplanner/internal/task"
	"palplanner/internal/ui"
)

type boardModel struct {
	app *app.App

	width  int
	height int

	petName   string
	happiness float64
	energy    float64
	mood      pet.Mood
	equipped  map[shop.Category]shop.Item

	balance int
	tasks   []task.Task

	selected int
	lastLog  string

	changes   <-chan struct{}
	unwatches []func()
}

type changedMsg struct{}

func newBoardModel(a *app.App) *boardModel {
	m := &boardModel{app: a, lastLog: "Loaded."}

	// One merged subscription across all three stores.
	merged := make(chan struct{}, 1)
	forward := func(ch <-chan struct{}) {
		for range ch {
			select {
			case merged <- struct{}{}:
			default:
			}
		}
	}
	tch, tcancel := a.Tasks.Subscribe()
	pch, pcancel := a.Pet.Subscribe()
	sch, scancel := a.Shop.Subscribe()
	go forward(tch)
	go forward(pch)
	go forward(sch)

	m.changes = merged
	m.unwatches = []func(){tcancel, pcancel, scancel}
	m.refresh()
	return m
}

func (m *boardModel) teardown() {
	for _, cancel := range m.unwatches {
		cancel()
	}
}

func (m *boardModel) refresh() {
	m.petName = m.app.Pet.Name()
	m.happiness, m.energy, m.mood = m.app.Pet.Stats()
	m.equipped = m.app.Pet.EquippedItems()
	m.balance = m.app.Tasks.Balance()
	m.tasks = m.app.Tasks.TasksForDate(time.Now())
	if m.selected >= len(m.tasks) {
		m.selected = len(m.tasks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *boardModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case changedMsg:
		m.refresh()
		return m, m.waitForChange()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.teardown()
			return m, tea.Quit
		case "r":
			m.refresh()
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			if t.Status != task.StatusPending {
				m.lastLog = "Only pending tasks can be completed."
				return m, nil
			}
			if m.app.Tasks.Complete(t.ID) {
				m.lastLog = fmt.Sprintf("Completed %q: +%d PalPoints.", t.Title, t.Points)
			}
			m.refresh()
			return m, nil
		case "f":
			if m.app.Pet.Feed() {
				m.lastLog = fmt.Sprintf("%s enjoyed the meal.", m.petName)
			} else {
				m.lastLog = "No food equipped. Buy and equip some first."
			}
			m.refresh()
			return m, nil
		case "p":
			m.app.Pet.Play()
			m.lastLog = fmt.Sprintf("Played with %s.", m.petName)
			m.refresh()
			return m, nil
		}
	}
	return m, nil
}

func (m *boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderPetPanel()
	main := m.renderDay()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m *boardModel) renderHeader() string {
	return fmt.Sprintf("PalPlanner | %s %s | %s",
		ui.IconPet, m.petName, ui.Points(m.balance))
}

func (m *boardModel) renderPetPanel() string {
	lines := []string{m.petName}
	lines = append(lines, "Mood: "+ui.MoodText(m.mood))
	lines = append(lines, "Happiness "+statBar(m.happiness, 14))
	lines = append(lines, "Energy    "+statBar(m.energy, 14))
	lines = append(lines, "")
	lines = append(lines, "Equipped")
	any := false
	for _, c := range shop.Categories {
		if item, ok := m.equipped[c]; ok {
			lines = append(lines, fmt.Sprintf("- %s %s", ui.CategoryIcon(c), item.Name))
			any = true
		}
	}
	if !any {
		lines = append(lines, "(nothing)")
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- f: feed, p: play")
	lines = append(lines, "- r: refresh, q: quit")
	return strings.Join(lines, "\n")
}

func (m *boardModel) renderDay() string {
	out := []string{"Today"}
	if len(m.tasks) == 0 {
		out = append(out, "(no tasks today)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := " "
		switch t.Status {
		case task.StatusCompleted:
			mark = ui.IconDone
		case task.StatusFailed:
			mark = ui.IconFailed
		}
		out = append(out, fmt.Sprintf("%s%s %s %s (%d pts, %s)",
			cursor, mark, t.DueInstant().Format("15:04"), t.Title, t.Points, t.Status))
	}
	return strings.Join(out, "\n")
}

func statBar(value float64, width int) string {
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %3.0f%%",
		strings.Repeat("#", filled), strings.Repeat("-", width-filled), value*100)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
