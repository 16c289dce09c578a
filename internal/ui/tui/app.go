package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/APConduct/tree-sitter-luma/internal/domain"
)

type screen int

const (
	screenPick screen = iota
	screenTree
)

type fileItem struct {
	path string
}

func (f fileItem) Title() string       { return f.path }
func (f fileItem) Description() string { return "" }
func (f fileItem) FilterValue() string { return f.path }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	picker list.Model

	width  int
	height int

	// tree screen state
	file     string
	report   domain.ParseReport
	flat     []domain.FlatNode
	showAnon bool
	cursor   int
	offset   int
	loadErr  error
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Luma sources"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:    t,
		deps:     deps,
		scr:      screenPick,
		picker:   l,
		showAnon: false,
	}
}

func (m model) Init() tea.Cmd {
	return loadFilesCmd(m.deps.Root, m.deps.FileExt)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.picker.SetSize(msg.Width-4, msg.Height-6)
		m.clampScroll()
		return m, nil

	case filesLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			if m.deps.Logger != nil {
				m.deps.Logger.Error("tui.files_load_failed", "err", msg.err)
			}
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.paths))
		for _, p := range msg.paths {
			items = append(items, fileItem{path: p})
		}
		cmd := m.picker.SetItems(items)
		return m, cmd

	case parseDoneMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			if m.deps.Logger != nil {
				m.deps.Logger.Error("tui.parse_failed", "file", msg.path, "err", msg.err)
			}
			return m, nil
		}
		m.loadErr = nil
		m.file = msg.path
		m.report = msg.report
		m.rebuildFlat()
		m.cursor = 0
		m.offset = 0
		m.scr = screenTree
		if m.deps.Logger != nil {
			m.deps.Logger.Info("tui.parsed",
				"file", msg.path,
				"nodes", msg.report.NodeCount,
				"errors", msg.report.ErrorCount)
		}
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenPick {
			return m.updatePick(msg)
		}
		return m.updateTree(msg)
	}

	if m.scr == screenPick {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if !m.picker.SettingFilter() {
			return m, tea.Quit
		}
	case "enter":
		if it, ok := m.picker.SelectedItem().(fileItem); ok {
			return m, parseFileCmd(m.deps.Parser, m.deps.Root, it.path)
		}
		return m, nil
	case "r":
		if !m.picker.SettingFilter() {
			return m, loadFilesCmd(m.deps.Root, m.deps.FileExt)
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m model) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "b":
		m.scr = screenPick
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-m.treeHeight())
	case "pgdown":
		m.moveCursor(m.treeHeight())
	case "g":
		m.cursor = 0
		m.offset = 0
	case "G":
		m.cursor = len(m.flat) - 1
		m.clampScroll()
	case "a":
		m.showAnon = !m.showAnon
		m.rebuildFlat()
		m.cursor = 0
		m.offset = 0
	}
	return m, nil
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	m.clampScroll()
}

func (m *model) clampScroll() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.treeHeight()
	if h < 1 {
		h = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m model) treeHeight() int {
	// header (4 lines) + footer (2 lines)
	return m.height - 6
}

func (m *model) rebuildFlat() {
	all := domain.Flatten(m.report.Root)
	if m.showAnon {
		m.flat = all
		return
	}
	m.flat = m.flat[:0]
	for _, f := range all {
		if f.Node.Named {
			m.flat = append(m.flat, f)
		}
	}
}

func (m model) View() string {
	if m.scr == screenPick {
		return m.viewPick()
	}
	return m.viewTree()
}

func (m model) viewPick() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("luma — tree explorer"))
	b.WriteByte('\n')
	b.WriteString(m.theme.Subtitle.Render(m.deps.Root))
	b.WriteByte('\n')
	if m.loadErr != nil {
		b.WriteString(m.theme.Error.Render(fmt.Sprintf("error: %v", m.loadErr)))
		b.WriteByte('\n')
	}
	b.WriteString(m.picker.View())
	b.WriteByte('\n')
	b.WriteString(m.theme.Help.Render("enter: parse • r: refresh • q: quit"))
	return b.String()
}

func (m model) viewTree() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.file))
	b.WriteByte('\n')
	summary := fmt.Sprintf("%s • %d nodes", m.report.RootKind, m.report.NodeCount)
	if m.report.ErrorCount > 0 {
		summary += " • " + m.theme.Error.Render(fmt.Sprintf("%d errors", m.report.ErrorCount))
	}
	b.WriteString(m.theme.Subtitle.Render(summary))
	b.WriteString("\n\n")

	h := m.treeHeight()
	if h < 1 {
		h = 1
	}
	end := m.offset + h
	if end > len(m.flat) {
		end = len(m.flat)
	}

	for i := m.offset; i < end; i++ {
		f := m.flat[i]
		line := fmt.Sprintf("%s%s [%d:%d - %d:%d]",
			strings.Repeat("  ", f.Depth),
			treeLabel(f.Node),
			f.Node.Range.Start.Row, f.Node.Range.Start.Column,
			f.Node.Range.End.Row, f.Node.Range.End.Column)

		switch {
		case i == m.cursor:
			line = m.theme.Cursor.Render(line)
		case f.Node.IsError() || f.Node.Missing:
			line = m.theme.Error.Render(line)
		case !f.Node.Named:
			line = m.theme.Anon.Render(line)
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	anon := "show"
	if m.showAnon {
		anon = "hide"
	}
	b.WriteString(m.theme.Help.Render(
		fmt.Sprintf("↑/↓: move • a: %s anonymous • g/G: top/bottom • esc: back • ctrl+c: quit", anon)))
	return b.String()
}

func treeLabel(n domain.Node) string {
	label := n.Kind
	if !n.Named {
		label = fmt.Sprintf("%q", n.Kind)
	}
	if n.Missing {
		label = "MISSING " + label
	}
	return label
}
