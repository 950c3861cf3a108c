package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/matzehuels/repomap/pkg/errors"
	"github.com/matzehuels/repomap/pkg/layout"
	"github.com/matzehuels/repomap/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// maxBrowseItems caps the file rows shown for the current directory.
const maxBrowseItems = 12

// =============================================================================
// BrowseModel - Interactive directory navigation
// =============================================================================

// BrowseModel is the bubbletea model for walking a tree one directory at a
// time. Descending pushes onto the layout context's stack and going back
// pops it, so every visited directory's layout is solved once per session.
type BrowseModel struct {
	Ctx    *layout.Context
	Dirs   []*tree.Node
	Cursor int
	Height int
	Offset int
	Err    error
}

// NewBrowseModel creates a browse model positioned at lc's current directory.
func NewBrowseModel(lc *layout.Context) BrowseModel {
	m := BrowseModel{Ctx: lc, Height: 10}
	m.refresh()
	return m
}

// refresh lists the subdirectories of the current directory.
func (m *BrowseModel) refresh() {
	m.Dirs = lo.Filter(m.Ctx.Current().Children, func(n *tree.Node, _ int) bool {
		return n.IsContainer()
	})
	m.Cursor = min(m.Cursor, max(len(m.Dirs)-1, 0))
	m.Offset = min(m.Offset, m.Cursor)
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.Err = nil
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
			if m.Cursor < len(m.Dirs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", "right", "l":
			if len(m.Dirs) == 0 {
				return m, nil
			}
			if err := m.Ctx.Push(m.Dirs[m.Cursor]); err != nil {
				m.Err = err
				return m, nil
			}
			m.Cursor, m.Offset = 0, 0
			m.refresh()
		case "backspace", "left", "h":
			left, ok := m.Ctx.Pop()
			if !ok {
				return m, nil
			}
			m.Cursor, m.Offset = 0, 0
			m.refresh()
			if i := lo.IndexOf(m.Dirs, left); i >= 0 {
				m.Cursor = i
				m.Offset = max(0, i-m.Height+1)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height/2-6, 3)
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("repomap " + breadcrumb(m.Ctx.Breadcrumb())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  ← back  q quit"))
	b.WriteString("\n\n")

	res := m.Ctx.Layout()
	b.WriteString(layoutSummary(res))
	b.WriteString("\n\n")

	if len(m.Dirs) == 0 {
		b.WriteString(listDimStyle.Render("  no subdirectories"))
		b.WriteString("\n")
	}
	end := min(m.Offset+m.Height, len(m.Dirs))
	for i := m.Offset; i < end; i++ {
		d := m.Dirs[i]
		line := fmt.Sprintf("%-28s %4d files  %s", d.Name+"/", len(tree.Gaggle(d)), formatBytes(d.Size))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(res.Items) > 0 {
		b.WriteString("\n")
		b.WriteString(placedTable(res.Items))
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
	}
	return b.String()
}

// layoutSummary renders the headline numbers of a solved layout.
func layoutSummary(res layout.Result) string {
	status := StyleSuccess.Render("fits")
	if !res.Feasible {
		status = StyleWarning.Render("does not fit")
	}
	parts := []string{
		string(res.Mode),
		fmt.Sprintf("%d files", len(res.Items)),
		"scale " + StyleNumber.Render(fmt.Sprintf("%g", res.Scalar)),
		"diameter " + StyleNumber.Render(fmt.Sprintf("%.1f", res.Diameter)),
		status,
	}
	if n := len(res.Diagnostics); n > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d diagnostics", n)))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

// placedTable renders the first solved items of a layout.
func placedTable(items []layout.Placed) string {
	shown := items[:min(len(items), maxBrowseItems)]
	rows := lo.Map(shown, func(p layout.Placed, _ int) []string {
		lang := p.Language
		if lang == "" {
			lang = "—"
		}
		return []string{p.Name, formatBytes(p.RawSize), fmt.Sprintf("%.1f", p.Size), fmt.Sprintf("%.0f,%.0f", p.X, p.Y), lang}
	})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("File", "Bytes", "Size", "Position", "Lang").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleValue
			}
			return listDimStyle
		})

	out := t.Render()
	if rest := len(items) - len(shown); rest > 0 {
		out += "\n" + listDimStyle.Render(fmt.Sprintf("  … %d more", rest))
	}
	return out
}
