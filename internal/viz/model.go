package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/search"
	"github.com/san-kum/mazelab/internal/session"
)

const (
	width        = 80
	height       = 24
	panelWidth   = 36
	traceWidth   = 30
	MaxInterval  = 2 * time.Second
	speedupRatio = 2
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the Bubble Tea model around one session. Every tick advances the
// active run by a single event, so the tick interval is the animation speed.
type Model struct {
	session       *session.Session
	canvas        *Canvas
	interval      time.Duration
	width, height int
	frame         int
	showHelp      bool
	err           error
}

func NewModel(s *session.Session) Model {
	cfg := s.Config()
	SetTheme(cfg.Theme)
	return Model{
		session:  s,
		canvas:   NewCanvas(CurrentTheme),
		interval: cfg.Interval,
		width:    width,
		height:   height,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles key bindings and advances the run on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fit()
		return m, nil
	case TickMsg:
		m.frame++
		if m.session.Running() {
			m.session.Tick()
		}
		return m, tick(m.interval)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Cancel()
		return m, tea.Quit
	case "b":
		_, m.err = m.session.Search(search.BreadthFirst)
	case "d":
		_, m.err = m.session.Search(search.DepthFirst)
	case "B":
		_, m.err = m.session.Switch(search.BreadthFirst)
	case "D":
		_, m.err = m.session.Switch(search.DepthFirst)
	case "s":
		if current, ok := m.session.Strategy(); ok {
			_, m.err = m.session.Switch(current.Other())
		}
	case "x":
		m.session.Cancel()
	case "c":
		m.session.Clear()
	case "r":
		m.err = m.session.Refresh()
		m.fit()
	case "+", "=":
		m.interval = max(m.interval/speedupRatio, config.MinInterval)
	case "-", "_":
		m.interval = min(m.interval*speedupRatio, MaxInterval)
	case "t":
		NextTheme()
		m.canvas.Theme = CurrentTheme
	case "m":
		m.canvas.Compact = !m.canvas.Compact
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// fit switches to compact rendering when block cells overflow the terminal.
func (m *Model) fit() {
	g := m.session.Maze()
	blockW, blockH := g.Width()*2, g.Height()
	m.canvas.Compact = blockW+panelWidth+8 > m.width || blockH+2 > m.height
}

// Interval is the current delay between animation steps.
func (m Model) Interval() time.Duration { return m.interval }

// View renders the maze next to the status panel.
func (m Model) View() string {
	mazeView := canvasStyle.Render(m.canvas.Render(m.session.Display()))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, mazeView, statsStyle.Render(m.panel()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) panel() string {
	s := m.session
	g := s.Maze()
	st := s.Status()

	var b strings.Builder
	b.WriteString(GradientText("MAZELAB", CurrentTheme.Accent, CurrentTheme.Wall) + "\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("%dx%d  seed %d  %s", g.Height(), g.Width(), s.Seed(), CurrentTheme.Name)) + "\n\n")

	status := StatusStyle(st).Render(strings.ToUpper(st.String()))
	if st == search.Running {
		status = StatusRunning.Render(AnimatedSpinner(m.frame)) + " " + status
	}
	if strategy, ok := s.Strategy(); ok {
		status += "  " + MetricValue.Render(strategy.Title())
	}
	b.WriteString(status + "\n\n")

	open := g.OpenCells()
	coverage := 0.0
	if open > 0 {
		coverage = float64(s.Visited()) / float64(open)
	}
	b.WriteString(MetricLabel.Render("Visited") + MetricValue.Render(fmt.Sprintf("%d / %d", s.Visited(), open)) + "\n")
	b.WriteString(MetricLabel.Render("Coverage") + ProgressBar(coverage, 16) + "\n")
	if last := s.Last(); last != nil && st == search.Found {
		b.WriteString(MetricLabel.Render("Path") + MetricValue.Render(fmt.Sprintf("%d steps", last.PathLength)) + "\n")
	}
	b.WriteString(MetricLabel.Render("Interval") + MetricValue.Render(m.interval.String()) + "\n\n")

	b.WriteString(Subtle.Render("frontier") + "\n")
	b.WriteString(SparklineChart(s.Trace(traceWidth), traceWidth) + "\n")

	if last := s.Last(); last != nil {
		b.WriteString("\n" + Subtle.Render(fmt.Sprintf("last: %s %s, %d visited", last.Strategy, last.Status, last.Visited)) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + ErrorText.Render(m.err.Error()) + "\n")
	}

	b.WriteString(helpStyle.Render(Separator(panelWidth-6) + "\n" +
		hint("b/d", "bfs/dfs") + hint("B/D/s", "switch") + "\n" +
		hint("x", "cancel") + hint("c", "clear") + hint("r", "new maze") + "\n" +
		hint("+/-", "speed") + hint("t", "theme") + hint("?", "help") + hint("q", "quit")))
	return b.String()
}

func hint(key, label string) string {
	return KeyName.Render(key) + KeyHint.Render(" "+label+"  ")
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  B        - Breadth-first search     ║
║  D        - Depth-first search       ║
║  Shift+B  - Switch to BFS mid-run    ║
║  Shift+D  - Switch to DFS mid-run    ║
║  s        - Swap to the other search ║
║  X        - Cancel search            ║
║  C        - Clear visited marks      ║
║  R        - Generate a new maze      ║
║  + / -    - Faster / slower          ║
║  T        - Cycle themes             ║
║  M        - Toggle compact view      ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
