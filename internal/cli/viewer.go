package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wordweb/pkg/graph"
	"github.com/matzehuels/wordweb/pkg/render"
	"github.com/matzehuels/wordweb/pkg/view"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Viewport - the camera driven by the zoom controller
// =============================================================================

// viewport shows a fraction of the graph rows. It is the [view.Camera] the
// zoom controller pushes to.
type viewport struct {
	percent float64
}

// SetViewPercent implements view.Camera.
func (v *viewport) SetViewPercent(p float64) { v.percent = p }

// visible returns how many of total rows fit the current percent, at least one.
func (v *viewport) visible(total int) int {
	if total == 0 {
		return 0
	}
	n := int(math.Ceil(v.percent * float64(total)))
	return max(1, min(n, total))
}

// =============================================================================
// ViewerModel - interactive word graph viewer
// =============================================================================

// viewerRow is one edge of the graph as displayed.
type viewerRow struct {
	subject  *graph.Node
	relation string
	object   *graph.Node
}

// ViewerModel is the bubbletea model for the interactive viewer.
type ViewerModel struct {
	Title  string
	Rows   []viewerRow
	Keys   view.Keymap
	Zoom   *view.Controller
	Offset int
	Height int

	camera *viewport
}

// NewViewerModel creates a viewer for g. The view starts fully zoomed out.
func NewViewerModel(g *graph.Graph, keys view.Keymap) ViewerModel {
	cam := &viewport{}
	ctrl := view.NewController(nil)
	ctrl.Bind(cam)
	return ViewerModel{
		Title:  g.Name(),
		Rows:   graphRows(g),
		Keys:   keys,
		Zoom:   ctrl,
		Height: 20,
		camera: cam,
	}
}

// graphRows lists every edge, then every node without edges.
func graphRows(g *graph.Graph) []viewerRow {
	var rows []viewerRow
	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		rows = append(rows, viewerRow{subject: from, relation: e.Label(), object: to})
	}
	for _, n := range g.Nodes() {
		if g.OutDegree(n.ID) == 0 && g.InDegree(n.ID) == 0 {
			rows = append(rows, viewerRow{subject: n})
		}
	}
	return rows
}

// Visible returns the number of rows the current zoom shows.
func (m ViewerModel) Visible() int {
	return m.camera.visible(len(m.Rows))
}

func (m ViewerModel) Init() tea.Cmd {
	return nil
}

func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
			return m, nil
		case "down", "j":
			if m.Offset < m.maxOffset() {
				m.Offset++
			}
			return m, nil
		}
		if m.Zoom.Dispatch(m.Keys.Event(key)) {
			m.Offset = min(m.Offset, m.maxOffset())
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.Offset = min(m.Offset, m.maxOffset())
	}
	return m, nil
}

// maxOffset is the last offset that still fills the window.
func (m ViewerModel) maxOffset() int {
	return max(0, m.Visible()-m.Height)
}

func (m ViewerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(m.helpLine()))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  (empty graph)"))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.Visible()
	end := min(m.Offset+m.Height, visible)

	rows := make([][]string, 0, end-m.Offset)
	shown := m.Rows[m.Offset:end]
	for _, r := range shown {
		rows = append(rows, []string{nodeLabel(r.subject), r.relation, nodeLabel(r.object)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Subject", "Relation", "Object").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if row < 0 || row >= len(shown) {
				return lipgloss.NewStyle()
			}
			switch col {
			case 0:
				return nodeStyle(shown[row].subject)
			case 2:
				return nodeStyle(shown[row].object)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  zoom %3.0f%%  rows %d-%d of %d (%d in view)",
		m.Zoom.Zoom()*100, m.Offset+1, end, len(m.Rows), visible)))

	return b.String()
}

func (m ViewerModel) helpLine() string {
	in := strings.Join(m.Keys.Keys(view.ZoomIn), "/")
	out := strings.Join(m.Keys.Keys(view.ZoomOut), "/")
	return fmt.Sprintf("%s show more  %s show less  ↑/↓ scroll  q quit", in, out)
}

func nodeLabel(n *graph.Node) string {
	if n == nil {
		return ""
	}
	return n.Label()
}

// nodeStyle paints a cell with the node's fill color.
func nodeStyle(n *graph.Node) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if n == nil {
		return s
	}
	c, ok := render.ParseFillColor(n.Style())
	if !ok {
		return s.Foreground(colorWhite)
	}
	s = s.Background(lipgloss.Color(c.Hex()))
	if c.Luminance() < 0.5 {
		return s.Foreground(lipgloss.Color("#ffffff"))
	}
	return s.Foreground(lipgloss.Color("#000000"))
}
