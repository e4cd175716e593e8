package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// pathLoadedMsg carries the day views and the active day.
type pathLoadedMsg struct {
	views  []app.DayView
	active int
	order  domain.PriesthoodOrder
}

// storeChangedMsg reports a write to the progress database by another
// process.
type storeChangedMsg struct{}

// reflectionLoadedMsg carries the saved reflection for the selected day.
type reflectionLoadedMsg struct {
	day  int
	text string
}

type pathKeyMap struct {
	Left, Right, Up, Down key.Binding
	Today, Quit           key.Binding
}

func (k pathKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Today, k.Quit}
}

func (k pathKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var pathKeys = pathKeyMap{
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
	Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// pathBrowser is a read-only bubbletea view over the 120 days. It moves a
// cursor across the grid and shows the selected day's reflection.
type pathBrowser struct {
	missions app.MissionUseCase
	help     help.Model
	// watcher is nil when live refresh is off.
	watcher *fsnotify.Watcher
	dbPath  string

	views      []app.DayView
	order      domain.PriesthoodOrder
	active     int
	cursor     int
	reflection reflectionLoadedMsg
	loading    bool
}

func newPathBrowser(missions app.MissionUseCase) *pathBrowser {
	return &pathBrowser{missions: missions, help: help.New(), loading: true}
}

// watchStore turns on live refresh: writes to the database file (or its
// WAL) from another pathkeeper process reload the grid.
func (m *pathBrowser) watchStore(w *fsnotify.Watcher, dbPath string) *pathBrowser {
	m.watcher = w
	m.dbPath = dbPath
	return m
}

func (m *pathBrowser) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitForChange())
}

func (m *pathBrowser) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w, base := m.watcher, filepath.Base(m.dbPath)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Write) && strings.HasPrefix(filepath.Base(ev.Name), base) {
					return storeChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// refresh reloads only when the stored state differs from what the engine
// holds.
func (m *pathBrowser) refresh() tea.Cmd {
	missions := m.missions
	return func() tea.Msg {
		changed, err := missions.Refresh(context.Background())
		if err != nil || !changed {
			return nil
		}
		return m.load()()
	}
}

func (m *pathBrowser) load() tea.Cmd {
	missions := m.missions
	return func() tea.Msg {
		ctx := context.Background()
		s := missions.Snapshot(ctx)
		return pathLoadedMsg{views: missions.DayViews(ctx), active: s.ActiveDay, order: s.Order}
	}
}

func (m *pathBrowser) loadReflection(day int) tea.Cmd {
	missions := m.missions
	return func() tea.Msg {
		return reflectionLoadedMsg{day: day, text: missions.Reflection(context.Background(), day)}
	}
}

func (m *pathBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pathLoadedMsg:
		m.loading = false
		m.views = msg.views
		m.order = msg.order
		if m.cursor == 0 || m.cursor == m.active {
			m.cursor = max(msg.active, 1)
		}
		m.active = max(msg.active, 1)
		return m, m.loadReflection(m.cursor)

	case reflectionLoadedMsg:
		m.reflection = msg
		return m, nil

	case storeChangedMsg:
		return m, tea.Batch(m.refresh(), m.waitForChange())

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		prev := m.cursor
		switch {
		case key.Matches(msg, pathKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, pathKeys.Left):
			m.cursor--
		case key.Matches(msg, pathKeys.Right):
			m.cursor++
		case key.Matches(msg, pathKeys.Up):
			m.cursor -= 7
		case key.Matches(msg, pathKeys.Down):
			m.cursor += 7
		case key.Matches(msg, pathKeys.Today):
			m.cursor = m.active
		}
		m.cursor = min(max(m.cursor, 1), progression.TotalDays)
		if m.cursor != prev {
			return m, m.loadReflection(m.cursor)
		}
	}
	return m, nil
}

func (m *pathBrowser) selected() (app.DayView, bool) {
	for _, v := range m.views {
		if v.Day == m.cursor {
			return v, true
		}
	}
	return app.DayView{}, false
}

func (m *pathBrowser) View() string {
	if m.loading {
		return formatter.Dim("Loading path...")
	}

	var b strings.Builder
	month := -1
	col := 0
	for _, v := range m.views {
		if v.Month != month {
			if month >= 0 {
				b.WriteString("\n")
			}
			month = v.Month
			col = 0
			b.WriteString(formatter.StyleHeader.Render(progression.MonthLabel(month, m.order)) + "\n")
		} else if col%7 == 0 {
			b.WriteString("\n")
		}
		cell := fmt.Sprintf("%3d %s", v.Day, formatter.DayGlyph(v.State))
		if v.Day == m.cursor {
			cell = formatter.StyleBold.Reverse(true).Render(cell)
		} else {
			cell = formatter.DayStyle(v.State).Render(cell)
		}
		b.WriteString(cell + "  ")
		col++
	}
	b.WriteString("\n\n")

	if v, ok := m.selected(); ok {
		b.WriteString(formatter.Bold(fmt.Sprintf("Day %d · %s", v.Day, v.Title)) + "  " + formatter.DayStateLabel(v.State) + "\n")
		if v.GraceDate != "" {
			b.WriteString(formatter.Dim("Excused on "+v.GraceDate) + "\n")
		}
		if m.reflection.day == v.Day && m.reflection.text != "" {
			b.WriteString(formatter.Wrap(m.reflection.text) + "\n")
		} else {
			b.WriteString(formatter.Dim("No reflection yet.") + "\n")
		}
	}
	b.WriteString("\n" + m.help.View(pathKeys))
	return b.String()
}
