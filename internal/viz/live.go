package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tether/internal/verlet"
	"tether/internal/world"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a world on a timer and draws its bodies on a braille
// canvas: sticks as lines, lone alive points as dots.
type Model struct {
	w        *world.World
	scenario string
	dt       float64
	fps      int

	canvas  *Canvas
	running bool

	// Fixed viewport in world units, captured from the initial extents.
	minX, minY, maxX, maxY float64
}

func NewModel(w *world.World, scenario string, dt float64, fps int) Model {
	m := Model{
		w:        w,
		scenario: scenario,
		dt:       dt,
		fps:      fps,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		running:  true,
	}
	m.fitViewport()
	return m
}

func (m *Model) fitViewport() {
	m.minX, m.minY = -1, -1
	m.maxX, m.maxY = 1, 1
	first := true
	for _, b := range m.w.Bodies() {
		for _, p := range b.Points() {
			if first {
				m.minX, m.maxX = p.Pos.X, p.Pos.X
				m.minY, m.maxY = p.Pos.Y, p.Pos.Y
				first = false
				continue
			}
			m.minX = min(m.minX, p.Pos.X)
			m.maxX = max(m.maxX, p.Pos.X)
			m.minY = min(m.minY, p.Pos.Y)
			m.maxY = max(m.maxY, p.Pos.Y)
		}
	}
	// Margin so sag and swing stay on screen.
	spanX := m.maxX - m.minX
	spanY := m.maxY - m.minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	m.minX -= spanX
	m.maxX += spanX
	m.minY -= spanY * 0.25
	m.maxY += spanY
}

func (m Model) project(p verlet.Vec2) (int, int) {
	px := (p.X - m.minX) / (m.maxX - m.minX) * float64(canvasWidth*2-1)
	py := (p.Y - m.minY) / (m.maxY - m.minY) * float64(canvasHeight*4-1)
	return int(px), int(py)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running {
			// Several substeps per frame keeps the constraint solver
			// stable at display rates.
			for i := 0; i < 2; i++ {
				m.w.Step(m.dt)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	points, sticks := 0, 0
	for _, b := range m.w.Bodies() {
		for _, s := range b.Sticks() {
			x0, y0 := m.project(s.A.Pos)
			x1, y1 := m.project(s.B.Pos)
			m.canvas.Line(x0, y0, x1, y1)
			sticks++
		}
		for _, p := range b.Points() {
			if !p.Alive() {
				continue
			}
			x, y := m.project(p.Pos)
			m.canvas.Set(x, y)
			points++
		}
	}

	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("time"), valueStyle.Render(fmt.Sprintf("%.2fs", m.w.Time())),
		labelStyle.Render("points"), valueStyle.Render(fmt.Sprintf("%d", points)),
		labelStyle.Render("sticks"), valueStyle.Render(fmt.Sprintf("%d", sticks)),
		labelStyle.Render("state"), valueStyle.Render(runState(m.running)),
	)

	return headerStyle.Render("tether · "+m.scenario) + "\n" +
		canvasStyle.Render(m.canvas.String()) + "\n" +
		stats +
		helpStyle.Render("\nspace pause · q quit")
}

func runState(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}

// RunLive starts the live view and blocks until the user quits.
func RunLive(w *world.World, scenario string, dt float64, fps int) error {
	_, err := tea.NewProgram(NewModel(w, scenario, dt, fps), tea.WithAltScreen()).Run()
	return err
}
