package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/raycast-arena/internal/geom"
	"github.com/vovakirdan/raycast-arena/internal/scene"
)

// Inspector layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the wall list sidebar
	sidebarWidth       = 24 // Width of wall list sidebar
)

// InspectorKeyMap defines the key bindings for the hit inspector.
type InspectorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextWall key.Binding
	PrevWall key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k InspectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextWall, k.PrevWall, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k InspectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextWall, k.PrevWall},
		{k.Back, k.Quit},
	}
}

// DefaultInspectorKeyMap returns default key bindings.
func DefaultInspectorKeyMap() InspectorKeyMap {
	return InspectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextWall: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next wall"),
		),
		PrevWall: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev wall"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("tab/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HitRow is one ray result shown by the inspector.
type HitRow struct {
	Ray   int
	Angle float64 // direction angle in degrees, [0, 360)
	Wall  int     // -1 when the ray escapes
	Point geom.Point
	Dist  float64
}

// CollectHits runs the visibility query on s and returns one row per ray.
func CollectHits(s *scene.Scene) []HitRow {
	pos := s.Emitter.Position()
	dirs := s.Emitter.Directions()
	hits := s.Emitter.CastRays(s.Walls)

	rows := make([]HitRow, len(hits))
	for i, h := range hits {
		angle := math.Atan2(dirs[i].Y, dirs[i].X) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}
		row := HitRow{Ray: i, Angle: angle, Wall: -1}
		if h.OK {
			row.Wall = h.Wall
			row.Point = h.Point
			row.Dist = h.Point.Sub(pos).Len()
		}
		rows[i] = row
	}
	return rows
}

// InspectorModel lists the current ray hits of a frozen scene, filtered by
// wall. It is embedded in Model and opened with tab.
type InspectorModel struct {
	walls       []geom.Segment
	rows        []HitRow
	wallCursor  int // 0 = all walls, i = wall i-1
	table       table.Model
	help        help.Model
	keys        InspectorKeyMap
	width       int
	height      int
	closed      bool
	quitting    bool
	showSidebar bool
}

// NewInspectorModel snapshots the scene's walls and hits.
func NewInspectorModel(s *scene.Scene, width, height int) InspectorModel {
	h := help.New()
	h.Width = width

	m := InspectorModel{
		walls:       append([]geom.Segment(nil), s.Walls...),
		rows:        CollectHits(s),
		keys:        DefaultInspectorKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *InspectorModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Ray", Width: 5},
		{Title: "Angle", Width: 7},
		{Title: "Wall", Width: 5},
		{Title: "X", Width: 9},
		{Title: "Y", Width: 9},
		{Title: "Dist", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Visible returns the rows matching the current wall filter.
func (m InspectorModel) Visible() []HitRow {
	if m.wallCursor == 0 {
		return m.rows
	}
	wall := m.wallCursor - 1
	out := make([]HitRow, 0)
	for _, r := range m.rows {
		if r.Wall == wall {
			out = append(out, r)
		}
	}
	return out
}

func (m *InspectorModel) updateTableRows() {
	visible := m.Visible()
	rows := make([]table.Row, len(visible))
	for i, r := range visible {
		if r.Wall < 0 {
			rows[i] = table.Row{fmt.Sprintf("%d", r.Ray), fmt.Sprintf("%.1f", r.Angle), "-", "-", "-", "-"}
			continue
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Ray),
			fmt.Sprintf("%.1f", r.Angle),
			fmt.Sprintf("%d", r.Wall),
			fmt.Sprintf("%.2f", r.Point.X),
			fmt.Sprintf("%.2f", r.Point.Y),
			fmt.Sprintf("%.2f", r.Dist),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages for the inspector.
func (m InspectorModel) Update(msg tea.Msg) (InspectorModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.NextWall):
			m.wallCursor = (m.wallCursor + 1) % (len(m.walls) + 1)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevWall):
			m.wallCursor--
			if m.wallCursor < 0 {
				m.wallCursor = len(m.walls)
			}
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the inspector.
func (m InspectorModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("RAY HITS - "+m.filterLabel(), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.filterLabel()), m.width))
		b.WriteString("\n\n")
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m InspectorModel) filterLabel() string {
	if m.wallCursor == 0 {
		return fmt.Sprintf("all walls (%d rays)", len(m.rows))
	}
	return fmt.Sprintf("wall %d (%d rays)", m.wallCursor-1, len(m.Visible()))
}

// renderWideLayout renders the table with a sidebar for wall selection.
func (m InspectorModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Walls\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	labels := make([]string, 0, len(m.walls)+1)
	labels = append(labels, "all")
	for i, w := range m.walls {
		labels = append(labels, fmt.Sprintf("%d (%.0f,%.0f)-(%.0f,%.0f)", i, w.A.X, w.A.Y, w.B.X, w.B.Y))
	}

	// Keep the cursor visible when there are more walls than rows
	rows := max(m.height-10, 1)
	start := 0
	if m.wallCursor >= rows {
		start = m.wallCursor - rows + 1
	}
	for i := start; i < len(labels) && i < start+rows; i++ {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.wallCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := labels[i]
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(sidebar.String()), "  ", m.renderTable())
}

func (m InspectorModel) renderTable() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.Visible()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return tableStyle.Render(emptyStyle.Render("No ray hits this wall."))
	}
	return tableStyle.Render(m.table.View())
}

// Closed returns true once the user asked to go back to the arena.
func (m InspectorModel) Closed() bool {
	return m.closed
}

// IsQuitting returns true if the user wants to quit entirely.
func (m InspectorModel) IsQuitting() bool {
	return m.quitting
}
