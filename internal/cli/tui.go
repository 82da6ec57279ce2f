package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/dfscope/pkg/dfs"
	"github.com/matzehuels/dfscope/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// VertexListModel - Interactive query vertex selection
// =============================================================================

// VertexListModel is the bubbletea model for interactive vertex selection.
// Each row shows a vertex with its traversal timestamps, out-degree and
// whether it roots its own DFS tree.
type VertexListModel struct {
	graph    *graph.Graph
	forest   *dfs.Forest
	Cursor   int
	Selected *int
	Height   int
	Offset   int
}

// NewVertexListModel creates a new vertex list model.
func NewVertexListModel(g *graph.Graph, f *dfs.Forest) VertexListModel {
	return VertexListModel{
		graph:  g,
		forest: f,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m VertexListModel) Init() tea.Cmd {
	return nil
}

func (m VertexListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.graph.VertexCount()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			v := m.Cursor + 1
			m.Selected = &v
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m VertexListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Vertex"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > m.graph.VertexCount() {
		end = m.graph.VertexCount()
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		v := i + 1

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		root := ""
		if m.forest.IsRoot(v) {
			root = "✓"
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", v),
			fmt.Sprintf("%d", m.forest.Discovery[v]),
			fmt.Sprintf("%d", m.forest.Finish[v]),
			fmt.Sprintf("%d", m.graph.OutDegree(v)),
			root,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Vertex", "Disc", "Finish", "Out", "Root").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col >= 2 && col <= 3 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.graph.VertexCount())))

	return b.String()
}
