package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Ki11erRabbit/Maru/format"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateCategories browserState = iota
	stateEntries
	stateFilter
)

type category int

const (
	categoryObjects category = iota
	categoryFunctions
	categoryGlobals
	categoryStrings
	categoryBytecode
	categoryCount
)

func (c category) String() string {
	switch c {
	case categoryObjects:
		return "Objects"
	case categoryFunctions:
		return "Functions"
	case categoryGlobals:
		return "Globals"
	case categoryStrings:
		return "Strings"
	case categoryBytecode:
		return "Bytecode"
	default:
		return "?"
	}
}

// inspectorModel browses a decoded module's tables: a top-level list of
// categories, then a filterable list of that category's entries.
type inspectorModel struct {
	path     string
	module   *format.Module
	width    int
	state    browserState
	category category
	selected int
	filter   textinput.Model
	rows     []string
}

func newInspectorModel(path string, m *format.Module, width int) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "/ "
	return &inspectorModel{path: path, module: m, width: width, filter: ti}
}

func runInspector(path string, m *format.Module) error {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		opts = nil
	}

	p := tea.NewProgram(newInspectorModel(path, m, width), opts...)
	_, err := p.Run()
	return err
}

func (m *inspectorModel) Init() tea.Cmd { return nil }

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		if m.state != stateFilter {
			return m, tea.Quit
		}

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < m.rowCount()-1 {
			m.selected++
		}

	case "enter":
		switch m.state {
		case stateCategories:
			m.category = category(m.selected)
			m.rows = describeCategory(m.module, m.category)
			m.state = stateEntries
			m.selected = 0
		case stateEntries:
			// Entries are leaves; nothing further to drill into.
		}

	case "/":
		if m.state == stateEntries {
			m.state = stateFilter
			m.filter.Focus()
			return m, textinput.Blink
		}

	case "esc":
		switch m.state {
		case stateEntries:
			m.state = stateCategories
			m.selected = int(m.category)
		case stateFilter:
			m.filter.Blur()
			m.filter.Reset()
			m.state = stateEntries
		}
	}

	if m.state == stateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if keyMsg.String() == "enter" {
			m.filter.Blur()
			m.state = stateEntries
		}
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) rowCount() int {
	if m.state == stateCategories {
		return int(categoryCount)
	}
	return len(m.filteredRows())
}

func (m *inspectorModel) filteredRows() []string {
	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		return m.rows
	}
	var out []string
	for _, r := range m.rows {
		if strings.Contains(strings.ToLower(r), needle) {
			out = append(out, r)
		}
	}
	return out
}

func (m *inspectorModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("maruinspect"))
	b.WriteString(" ")
	b.WriteString(m.path)
	b.WriteString("\n\n")

	switch m.state {
	case stateCategories:
		for i := category(0); i < categoryCount; i++ {
			m.renderRow(&b, int(i), i.String())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateEntries, stateFilter:
		b.WriteString(categoryStyle.Render(m.category.String()))
		b.WriteString("\n\n")
		rows := m.filteredRows()
		for i, r := range rows {
			m.renderRow(&b, i, r)
		}
		if len(rows) == 0 {
			b.WriteString(typeStyle.Render("(empty)"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(m.filter.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter apply • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • / filter • esc back • q quit"))
		}
	}

	return b.String()
}

func (m *inspectorModel) renderRow(b *strings.Builder, idx int, text string) {
	cursor := "  "
	if idx == m.selected {
		cursor = "> "
		b.WriteString(selectedStyle.Render(cursor + text))
	} else {
		b.WriteString(cursor + text)
	}
	b.WriteString("\n")
}

func describeCategory(m *format.Module, c category) []string {
	switch c {
	case categoryObjects:
		rows := make([]string, len(m.Objects))
		for i, o := range m.Objects {
			rows[i] = fmt.Sprintf("#%d name=%d variants=%d internal=%d", i, o.Name, len(o.Variants), o.Internal)
		}
		return rows

	case categoryFunctions:
		rows := make([]string, len(m.Functions))
		for i, f := range m.Functions {
			body := fmt.Sprintf("bytecode#%d", f.BytecodeIdx)
			if f.IsNative() {
				body = "native"
			}
			rows[i] = fmt.Sprintf("#%d name=%d params=%d vars=%d body=%s", i, f.Name, len(f.Parameters), f.VariableCount, body)
		}
		return rows

	case categoryGlobals:
		rows := make([]string, len(m.Globals))
		for i, g := range m.Globals {
			rows[i] = fmt.Sprintf("#%d name=%d init=%d", i, g.Name, g.InitIndex)
		}
		return rows

	case categoryStrings:
		rows := make([]string, len(m.Strings.Entries))
		for i, s := range m.Strings.Entries {
			rows[i] = fmt.Sprintf("#%d %q", i, s)
		}
		return rows

	case categoryBytecode:
		rows := make([]string, len(m.Bytecode.Entries))
		for i, e := range m.Bytecode.Entries {
			rows[i] = fmt.Sprintf("#%d %d bytes", i, len(e))
		}
		return rows
	}
	return nil
}
