package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/depviz/pkg/deps"
	"github.com/matzehuels/depviz/pkg/errors"
)

var (
	detailHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	detailFailedStyle = lipgloss.NewStyle().Foreground(colorRed)
	detailBoxStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// packageItem is one row of the browser list.
type packageItem struct {
	name   string
	deps   []string
	failed bool
	reason errors.Code
	usedBy int
}

func (i packageItem) Title() string { return i.name }

func (i packageItem) Description() string {
	switch {
	case i.failed:
		return "lookup failed: " + string(i.reason)
	case len(i.deps) == 0:
		return "no dependencies"
	default:
		return fmt.Sprintf("%d %s · used by %d", len(i.deps), plural(len(i.deps), "dependency", "dependencies"), i.usedBy)
	}
}

func (i packageItem) FilterValue() string { return i.name }

type browserKeys struct {
	Detail key.Binding
	Root   key.Binding
	Follow key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		Detail: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle details")),
		Root:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "jump to root")),
		Follow: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open first dependency")),
	}
}

// browser is the bubbletea model behind --browse: a filterable list of the
// resolved packages in traversal order with a detail pane for the selection.
type browser struct {
	root       string
	items      []packageItem
	index      map[string]int
	list       list.Model
	keys       browserKeys
	showDetail bool
	wide       bool
	width      int
	height     int
}

// newBrowser lists the packages of res; reasons holds the error code of each
// failed lookup.
func newBrowser(root string, res *deps.Result, reasons map[string]errors.Code) browser {
	usedBy := make(map[string]int)
	for _, ds := range res.Graph.All() {
		for _, d := range ds {
			usedBy[d]++
		}
	}

	var items []packageItem
	for name, ds := range res.Graph.All() {
		items = append(items, packageItem{name: name, deps: ds, usedBy: usedBy[name]})
	}
	for _, name := range res.Failed {
		items = append(items, packageItem{name: name, failed: true, reason: reasons[name], usedBy: usedBy[name]})
	}

	listItems := make([]list.Item, len(items))
	index := make(map[string]int, len(items))
	for i, it := range items {
		listItems[i] = it
		index[it.name] = i
	}

	keys := newBrowserKeys()
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	l := list.New(listItems, delegate, 0, 0)
	l.Title = "Dependencies of " + root
	l.Styles.Title = StyleTitle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Detail, keys.Follow, keys.Root}
	}

	return browser{
		root:       root,
		items:      items,
		index:      index,
		list:       l,
		keys:       keys,
		showDetail: true,
	}
}

func (m browser) Init() tea.Cmd {
	return nil
}

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.wide = msg.Width >= 90
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Detail):
			m.showDetail = !m.showDetail
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Root):
			m.list.ResetFilter()
			m.list.Select(0)
			return m, nil
		case key.Matches(msg, m.keys.Follow):
			m.follow()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// resize gives the list half the width when the detail pane sits beside it.
func (m *browser) resize() {
	width := m.width
	if m.wide && m.showDetail {
		width = m.width / 2
	}
	m.list.SetSize(width, max(m.height-2, 5))
}

// follow moves the selection to the first dependency of the selected package.
func (m *browser) follow() {
	it, ok := m.list.SelectedItem().(packageItem)
	if !ok || len(it.deps) == 0 {
		return
	}
	if i, ok := m.index[it.deps[0]]; ok {
		m.list.ResetFilter()
		m.list.Select(i)
	}
}

func (m browser) View() string {
	listView := m.list.View()
	if !m.showDetail {
		return listView
	}
	it, ok := m.list.SelectedItem().(packageItem)
	if !ok {
		return listView
	}
	detail := detailBoxStyle.Render(m.detail(it))
	if m.wide {
		return lipgloss.JoinHorizontal(lipgloss.Top, listView, detail)
	}
	return listView + "\n\n" + detail
}

// detail renders the selected package's dependencies as a table.
func (m browser) detail(it packageItem) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(it.name))
	b.WriteString("\n")
	if it.failed {
		b.WriteString(detailFailedStyle.Render(fmt.Sprintf("registry lookup failed (%s); dependencies unknown", it.reason)))
		return b.String()
	}
	if len(it.deps) == 0 {
		b.WriteString(StyleDim.Render("no dependencies"))
		return b.String()
	}

	rows := make([][]string, len(it.deps))
	for i, d := range it.deps {
		status := "-"
		if j, ok := m.index[d]; ok {
			if m.items[j].failed {
				status = "failed"
			} else {
				status = strconv.Itoa(len(m.items[j].deps))
			}
		}
		rows[i] = []string{d, status}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dependency", "Deps").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return detailHeaderStyle
			}
			if rows[row][1] == "failed" {
				return detailFailedStyle
			}
			if col == 1 {
				return StyleDim
			}
			return StyleValue
		})
	b.WriteString(t.Render())
	return b.String()
}
