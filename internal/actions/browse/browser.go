package browse

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/cmdtree-tools/cli/internal/dispatchers"
	"github.com/cmdtree-tools/cli/internal/locale"
	treerender "github.com/cmdtree-tools/cli/internal/render"
	"github.com/cmdtree-tools/cli/internal/tree"
	"github.com/cmdtree-tools/cli/internal/ui/splitpanel"
	"github.com/cmdtree-tools/cli/internal/ui/style"
)

const (
	footerHeight = 1
	pageSize     = 10
)

var layoutConfig = splitpanel.Config{
	SidebarWidthPercent: 0.35,
	SidebarMinWidth:     24,
	SidebarMaxWidth:     40,
}

//
// Public API
//

func Browse(args []string, flags *dispatchers.ParsedFlags) error {
	return browse(args, flags, DefaultDeps())
}

//
// Entrypoint
//

func browse(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive browser requires a terminal")
	}

	reg, err := deps.OpenRegistry(flags.String("--registry", ""))
	if err != nil {
		return err
	}

	localeName, _ := deps.Get("locale")
	loc := locale.Select(reg.Descriptions(), localeName)

	// The browser shows the whole hierarchy without truncation; folding and
	// filtering happen interactively.
	root := tree.BuildRoot(reg.TopLevel(), loc, tree.Params{MaxSubcommands: math.MaxInt})

	rows := flattenRows(root, nil)
	if len(rows) == 0 {
		return errors.New("registry has no commands to browse")
	}

	styleName, _ := deps.Get("style")
	spec, err := treerender.ResolveStyle(styleName, deps.GetInt("indent_width", 4))
	if err != nil {
		return err
	}

	m := model{
		root:         root,
		rows:         rows,
		collapsed:    make(map[string]bool),
		focusSidebar: true,
		colors:       deps.GetColors(),
		spec:         spec,
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

//
// Rows
//

// row is one sidebar entry: a tree node with its depth and display path.
type row struct {
	node  *tree.Node
	depth int
	path  []string
}

// flattenRows lists the visible rows in display order. Children of a node
// whose path key is in collapsed are skipped.
func flattenRows(root *tree.Node, collapsed map[string]bool) []row {
	var rows []row

	var visit func(n *tree.Node, depth int, prefix []string)
	visit = func(n *tree.Node, depth int, prefix []string) {
		path := append(append([]string{}, prefix...), n.Display)
		rows = append(rows, row{node: n, depth: depth, path: path})
		if collapsed[strings.Join(path, " ")] {
			return
		}
		for _, child := range n.Children {
			visit(child, depth+1, path)
		}
	}

	for _, child := range root.Children {
		visit(child, 0, nil)
	}

	return rows
}

//
// Key bindings
//

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Switch   key.Binding
	Toggle   key.Binding
	Filter   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
	Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "fold")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

//
// Model
//

type model struct {
	root          *tree.Node
	rows          []row
	collapsed     map[string]bool
	filter        string
	filtering     bool
	cursor        int
	sidebarScroll int
	contentScroll int
	width         int
	height        int
	focusSidebar  bool
	colors        style.ColorConfig
	spec          treerender.StyleSpec
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Filter mode captures all keys until enter or esc.
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Switch):
			m.focusSidebar = !m.focusSidebar

		case key.Matches(msg, keys.Toggle):
			m.toggleFold()

		case key.Matches(msg, keys.Filter):
			m.filtering = true

		case key.Matches(msg, keys.Up):
			if m.focusSidebar {
				m.moveCursor(-1)
			} else {
				m.scrollContent(-1)
			}

		case key.Matches(msg, keys.Down):
			if m.focusSidebar {
				m.moveCursor(1)
			} else {
				m.scrollContent(1)
			}

		case key.Matches(msg, keys.PageUp):
			m.scrollContent(-pageSize)

		case key.Matches(msg, keys.PageDown):
			m.scrollContent(pageSize)

		case key.Matches(msg, keys.Top):
			m.cursor = 0
			m.contentScroll = 0

		case key.Matches(msg, keys.Bottom):
			m.cursor = len(m.rows) - 1
			m.contentScroll = 0
		}
	}

	m.clampScroll()
	return m, nil
}

func (m *model) moveCursor(delta int) {
	cursor := m.cursor + delta

	// Wrap around.
	if cursor < 0 {
		cursor = len(m.rows) - 1
	} else if cursor >= len(m.rows) {
		cursor = 0
	}

	m.cursor = cursor
	m.contentScroll = 0
}

// updateFilter handles keys while the filter prompt is active.
func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.filtering = false
		m.filter = ""

	case "enter":
		m.filtering = false

	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
		}
		m.jumpToMatch()

	default:
		if msg.Type == tea.KeyRunes {
			m.filter += string(msg.Runes)
			m.jumpToMatch()
		}
	}

	m.clampScroll()
	return m, nil
}

// toggleFold collapses or expands the subtree under the cursor.
func (m *model) toggleFold() {
	r := m.rows[m.cursor]
	if len(r.node.Children) == 0 {
		return
	}

	if m.collapsed == nil {
		m.collapsed = make(map[string]bool)
	}

	pathKey := strings.Join(r.path, " ")
	if m.collapsed[pathKey] {
		delete(m.collapsed, pathKey)
	} else {
		m.collapsed[pathKey] = true
	}

	m.rows = flattenRows(m.root, m.collapsed)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.contentScroll = 0
}

// jumpToMatch moves the cursor to the first row matching the filter.
func (m *model) jumpToMatch() {
	if m.filter == "" {
		return
	}
	for i, r := range m.rows {
		if m.rowMatches(r) {
			m.cursor = i
			m.contentScroll = 0
			return
		}
	}
}

func (m model) rowMatches(r row) bool {
	if m.filter == "" {
		return false
	}
	return strings.Contains(strings.ToLower(r.node.Display), strings.ToLower(m.filter))
}

func (m *model) scrollContent(delta int) {
	m.contentScroll += delta
	if m.contentScroll < 0 {
		m.contentScroll = 0
	}
}

func (m *model) clampScroll() {
	visible := m.visibleHeight()

	if m.cursor < m.sidebarScroll {
		m.sidebarScroll = m.cursor
	}
	if m.cursor >= m.sidebarScroll+visible {
		m.sidebarScroll = m.cursor - visible + 1
	}
}

func (m model) visibleHeight() int {
	height := m.height
	if height == 0 {
		height = 30
	}
	// Footer row, then the panel border rows.
	return max(height-footerHeight-2, 1)
}

//
// View
//

func (m model) View() string {
	width := m.width
	height := m.height
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 30
	}

	layout := splitpanel.NewLayout(width, layoutConfig, m.colors)
	layout.SetFocus(m.focusSidebar)

	panelHeight := height - footerHeight
	visible := max(panelHeight-2, 1)

	sidebar := m.sidebarPanel(visible)
	content := m.contentPanel(layout.MainContentWidth(), visible)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		layout.Render(sidebar, content, panelHeight),
		m.renderFooter(width),
	)
}

func (m model) sidebarPanel(visible int) splitpanel.Panel {
	offset := m.sidebarScroll
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+visible {
		offset = m.cursor - visible + 1
	}

	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(m.colors.Info))

	var lines []string
	for i := offset; i < len(m.rows) && len(lines) < visible; i++ {
		r := m.rows[i]
		label := strings.Repeat("  ", r.depth) + m.foldMarker(r) + r.node.Display

		switch {
		case i == m.cursor:
			lines = append(lines, "▸ "+selectedStyle.Render(label))
		case m.rowMatches(r):
			lines = append(lines, "  "+strings.Repeat("  ", r.depth)+m.foldMarker(r)+style.Match(r.node.Display))
		default:
			lines = append(lines, "  "+label)
		}
	}

	return splitpanel.Panel{
		Lines:      lines,
		ScrollPos:  offset,
		TotalItems: len(m.rows),
	}
}

func (m model) contentPanel(width, visible int) splitpanel.Panel {
	all := m.contentLines(width)

	offset := min(m.contentScroll, max(len(all)-visible, 0))

	lines := all[offset:]
	if len(lines) > visible {
		lines = lines[:visible]
	}

	return splitpanel.Panel{
		Lines:      lines,
		ScrollPos:  offset,
		TotalItems: len(all),
	}
}

func (m model) contentLines(width int) []string {
	r := m.rows[m.cursor]

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Info))
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Success))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))

	lines := []string{titleStyle.Render(strings.Join(r.path, " "))}

	if r.node.Description != "" {
		lines = append(lines, wrapText(r.node.Description, width, mutedStyle)...)
	}
	lines = append(lines, "")

	if len(r.node.Children) > 0 {
		lines = append(lines, headerStyle.Render("SUBCOMMANDS"))
		for _, child := range r.node.Children {
			entry := fmt.Sprintf("   %-18s", child.Display)
			if child.Description != "" {
				entry += "  " + mutedStyle.Render(child.Description)
			}
			lines = append(lines, entry)
		}
		lines = append(lines, "")
	}

	lines = append(lines, headerStyle.Render("TREE"))
	preview := treerender.Text(r.node, m.spec, math.MaxInt, false)
	lines = append(lines, strings.Split(preview, "\n")...)

	return lines
}

func (m model) renderFooter(width int) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(m.colors.Info)).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))
	sep := labelStyle.Render(" │ ")

	if m.filtering {
		footer := keyStyle.Render("/") + " " + m.filter + "▌" + sep +
			labelStyle.Render("enter keep") + sep +
			labelStyle.Render("esc clear")
		return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(footer)
	}

	footer := keyStyle.Render("↑↓") + labelStyle.Render(" nav") + sep +
		keyStyle.Render("enter") + labelStyle.Render(" fold") + sep +
		keyStyle.Render("/") + labelStyle.Render(" filter") + sep +
		keyStyle.Render("tab") + labelStyle.Render(" panel") + sep +
		keyStyle.Render("g/G") + labelStyle.Render(" jump") + sep +
		keyStyle.Render("q") + labelStyle.Render(" quit")

	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(footer)
}

// foldMarker shows whether a row's subtree is expanded, collapsed, or absent.
func (m model) foldMarker(r row) string {
	if len(r.node.Children) == 0 {
		return "  "
	}
	if m.collapsed[strings.Join(r.path, " ")] {
		return "+ "
	}
	return "- "
}

func wrapText(text string, width int, style lipgloss.Style) []string {
	if width <= 0 {
		width = 72
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= width {
			out = append(out, style.Render(line))
			continue
		}

		words := strings.Fields(line)
		current := ""
		for _, word := range words {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				out = append(out, style.Render(current))
				current = word
			}
		}
		if current != "" {
			out = append(out, style.Render(current))
		}
	}

	return out
}
