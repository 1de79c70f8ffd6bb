package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/redthread/internal/ui"
)

// Row is one store record as the browser shows it. Pos is the record's
// 1-based position in the store, stable under filtering.
type Row struct {
	Pos       int
	Text      string
	Detail    string
	Checkable bool
	Done      bool
}

// Implement list.Item interface
func (r Row) Title() string       { return r.Text }
func (r Row) Description() string { return r.Detail }
func (r Row) FilterValue() string { return r.Text }

// Source connects the browser to a store.
type Source struct {
	Title string
	// Rows lists every record in store order.
	Rows func() []Row
	// Toggle flips the checkable field of the record at pos. Nil makes the
	// browser read-only.
	Toggle func(pos int) error
}

// Model is the Bubble Tea model behind Run.
type Model struct {
	list    list.Model
	src     Source
	changed bool
	err     string
	width   int
	height  int
}

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, _ := item.(Row)
	t := ui.Current()

	line := r.Text
	if r.Checkable {
		box := t.Muted.Render(t.BoxUnchecked)
		if r.Done {
			box = t.Success.Render(t.BoxChecked)
			line = doneStyle.Render(line)
		}
		line = box + " " + line
	}
	if r.Detail != "" {
		line += "  " + t.Muted.Render(r.Detail)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

var toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))

// New builds the browser model over src.
func New(src Source) Model {
	l := list.New(toItems(src.Rows()), rowDelegate{}, 0, 0)
	l.Title = src.Title
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("record", "records")
	if src.Toggle != nil {
		l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{toggleBind} }
		l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{toggleBind} }
	}
	m := Model{list: l, src: src, width: 80, height: 24}
	m.resize()
	return m
}

func (m *Model) resize() {
	h := m.height - 4
	if m.err != "" {
		h--
	}
	m.list.SetSize(m.width-4, h)
}

func toItems(rows []Row) []list.Item {
	out := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out
}

// Changed reports whether any record was modified.
func (m Model) Changed() bool { return m.changed }

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case tea.KeyMsg:
		// typing into the filter box must not trigger shortcuts
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			return m, tea.Quit
		case " ":
			m.toggleSelected()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) toggleSelected() {
	if m.src.Toggle == nil {
		return
	}
	r, ok := m.list.SelectedItem().(Row)
	if !ok || !r.Checkable {
		return
	}
	if err := m.src.Toggle(r.Pos); err != nil {
		m.err = err.Error()
		return
	}
	m.err = ""
	m.changed = true
	m.list.SetItems(toItems(m.src.Rows()))
}

func (m Model) View() string {
	m.resize()
	content := m.list.View()
	if m.err != "" {
		t := ui.Current()
		content += "\n" + t.Error.Render(t.SymFail+" "+m.err)
	}
	return ui.PanelString(strings.Split(content, "\n"))
}

// Run shows the browser until the user quits and reports whether anything
// changed.
func Run(src Source, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(New(src), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.Changed(), nil
}
