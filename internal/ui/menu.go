package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Results of RunMenu when the user leaves without picking a row.
const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

type MenuOption func(*menuConfig)

type menuConfig struct {
	// backLabel names the parent screen; empty means q quits.
	backLabel string
	selectID  string
	info      []infoLine
}

type infoLine struct {
	label string
	value string
}

// WithBackNavigation makes q and esc return MenuActionBack. label names
// the screen they return to.
func WithBackNavigation(label string) MenuOption {
	return func(cfg *menuConfig) {
		if label == "" {
			label = "back"
		}
		cfg.backLabel = label
	}
}

// WithInitialSelectionID pre-selects a row by ID when the menu opens.
func WithInitialSelectionID(id string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.selectID = strings.TrimSpace(id)
	}
}

// WithInfo adds a label/value line below the preview.
func WithInfo(label string, value string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.info = append(cfg.info, infoLine{label: label, value: value})
	}
}

// MenuItem is one row of a settings list. Details holds the current value.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
	// Swatch is a pre-rendered color preview drawn after the value.
	Swatch string
}

func (m MenuItem) Title() string       { return m.TitleText }
func (m MenuItem) Description() string { return m.Details }
func (m MenuItem) FilterValue() string { return m.TitleText + " " + m.ID }

type menuKeys struct {
	edit   key.Binding
	jump   key.Binding
	filter key.Binding
	back   key.Binding
	quit   key.Binding

	canGoBack bool
}

func newMenuKeys(backLabel string) menuKeys {
	k := menuKeys{
		edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if backLabel != "" {
		k.canGoBack = true
		k.back = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", strings.ToLower(backLabel)))
		k.quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	}
	return k
}

func (k menuKeys) ShortHelp() []key.Binding {
	if k.canGoBack {
		return []key.Binding{k.edit, k.jump, k.filter, k.back}
	}
	return []key.Binding{k.edit, k.jump, k.filter, k.quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	if k.canGoBack {
		return [][]key.Binding{{k.edit, k.jump, k.filter}, {k.back, k.quit}}
	}
	return [][]key.Binding{{k.edit, k.jump, k.filter}, {k.quit}}
}

// rowDelegate draws "n. Title  value swatch" with the values lined up in
// one column.
type rowDelegate struct {
	titleWidth int
	number     lipgloss.Style
	normal     lipgloss.Style
	selected   lipgloss.Style
	value      lipgloss.Style
	dimmed     lipgloss.Style
}

func newRowDelegate(items []MenuItem) rowDelegate {
	width := 0
	for _, item := range items {
		width = max(width, ansi.StringWidth(item.TitleText))
	}
	return rowDelegate{
		titleWidth: width,
		number:     lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted))),
		normal:     lipgloss.NewStyle().Foreground(lipgloss.Color(string(Foreground))),
		selected:   lipgloss.NewStyle().Foreground(lipgloss.Color(string(Primary))).Bold(true),
		value:      lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))),
		dimmed:     lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted))),
	}
}

func (d rowDelegate) Height() int                         { return 1 }
func (d rowDelegate) Spacing() int                        { return 0 }
func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	marker, title := "  ", d.normal
	switch {
	case index == m.Index() && m.FilterState() != list.Filtering:
		marker, title = "> ", d.selected
	case m.FilterState() == list.Filtering && strings.TrimSpace(m.FilterValue()) == "":
		title = d.dimmed
	}

	number := fmt.Sprintf("%d.", index+1)
	room := m.Width() - len(marker) - len(number) - 1
	if row.Swatch != "" {
		room -= ansi.StringWidth(row.Swatch) + 1
	}

	label := padRight(row.TitleText, d.titleWidth)
	value := row.Details
	switch {
	case ansi.StringWidth(label) >= room:
		label, value = ansi.Truncate(row.TitleText, max(4, room), "..."), ""
	case value != "":
		value = ansi.Truncate(value, max(0, room-ansi.StringWidth(label)-2), "...")
	}

	line := marker + d.number.Render(number) + " " + title.Render(label)
	if value != "" {
		line += "  " + d.value.Render(value)
	}
	if row.Swatch != "" {
		line += " " + row.Swatch
	}
	fmt.Fprint(w, line) //nolint:errcheck
}

func padRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

type menuModel struct {
	list     list.Model
	help     help.Model
	keys     menuKeys
	title    string
	subtitle string
	info     []infoLine

	width  int
	height int

	choice string
	done   bool
}

const defaultMenuHeight = 24

func newMenuModel(title string, subtitle string, items []MenuItem, cfg menuConfig) menuModel {
	listItems := make([]list.Item, len(items))
	selected := 0
	for i, item := range items {
		listItems[i] = item
		if cfg.selectID != "" && item.ID == cfg.selectID {
			selected = i
		}
	}

	l := list.New(listItems, newRowDelegate(items), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()

	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	h.Styles.ShortKey, h.Styles.FullKey = keyStyle, keyStyle
	h.Styles.ShortDesc, h.Styles.FullDesc, h.Styles.Ellipsis = descStyle, descStyle, descStyle

	m := menuModel{
		list:     l,
		help:     h,
		keys:     newMenuKeys(cfg.backLabel),
		title:    title,
		subtitle: subtitle,
		info:     cfg.info,
	}
	m.resize(terminalWidth(), defaultMenuHeight)
	m.list.Select(selected)
	return m
}

func (m *menuModel) resize(width int, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	layout := calculateMenuLayout(m.width, m.height)
	m.list.SetSize(layout.listWidth, layout.listHeight)
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.finish(MenuActionQuit)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.edit):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				return m.finish(item.ID)
			}
		case key.Matches(msg, m.keys.jump):
			if id, ok := m.jump(msg.String()); ok {
				return m.finish(id)
			}
			return m, nil
		case m.keys.canGoBack && key.Matches(msg, m.keys.back):
			return m.finish(MenuActionBack)
		case key.Matches(msg, m.keys.quit):
			return m.finish(MenuActionQuit)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m menuModel) finish(choice string) (tea.Model, tea.Cmd) {
	m.choice = choice
	m.done = true
	return m, tea.Quit
}

// jump selects the n-th visible row of the current page.
func (m *menuModel) jump(digit string) (string, bool) {
	if len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return "", false
	}
	visible := m.list.VisibleItems()
	target := max(0, m.list.Index()-m.list.Cursor()) + int(digit[0]-'1')
	if target >= len(visible) {
		return "", false
	}
	item, ok := visible[target].(MenuItem)
	if !ok {
		return "", false
	}
	m.list.Select(target)
	return item.ID, true
}

func (m menuModel) View() tea.View {
	if m.done {
		return tea.View{}
	}

	layout := calculateMenuLayout(m.width, m.height)
	listPane := lipgloss.NewStyle().
		Width(layout.listWidth).
		Height(layout.listHeight).
		Render(m.listView(layout.listWidth))
	sidePane := lipgloss.NewStyle().
		Width(layout.panelWidth).
		Height(layout.panelHeight).
		PaddingLeft(1).
		Render(m.detailPanel(layout.panelWidth-1, layout.panelHeight))

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, "  ", sidePane)
	if layout.stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, listPane, "", sidePane)
	}

	v := tea.NewView(Frame(m.title, m.subtitle, body, m.help.View(m.keys)))
	v.AltScreen = true
	return v
}

func (m menuModel) listView(width int) string {
	filter := strings.TrimSpace(m.list.FilterValue())
	if filter == "" {
		return m.list.View()
	}
	hint := MutedStyle.Render("filter: " + ansi.Truncate(filter, max(10, width-8), "..."))
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), "", hint)
}

// detailPanel shows the selected row with a larger preview, then the info
// lines.
func (m menuModel) detailPanel(width int, height int) string {
	heading := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	fit := func(s string) string { return ansi.Truncate(s, max(8, width), "...") }

	var lines []string
	if item, ok := m.list.SelectedItem().(MenuItem); ok {
		lines = append(lines, heading.Render(fit(item.TitleText)))
		if item.Details != "" {
			lines = append(lines, PrimaryStyle().Render(fit(item.Details)))
		}
		if item.Swatch != "" {
			lines = append(lines, "", item.Swatch, item.Swatch)
		}
	} else {
		lines = append(lines, MutedStyle.Render("Nothing matches"))
	}

	if len(m.info) > 0 {
		lines = append(lines, "")
		for _, in := range m.info {
			lines = append(lines, menuInfoLine(in.label, in.value, width))
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func menuInfoLine(label string, value string, width int) string {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return MutedStyle.Render(ansi.Truncate(strings.ToLower(label)+": "+value, max(10, width), "..."))
}

type menuLayout struct {
	stacked     bool
	listWidth   int
	listHeight  int
	panelWidth  int
	panelHeight int
}

// calculateMenuLayout puts the detail panel right of the list when both
// fit, and below it otherwise.
func calculateMenuLayout(width int, height int) menuLayout {
	const (
		minList  = 44
		minPanel = 26
		gap      = 2
		chrome   = 6
	)
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = defaultMenuHeight
	}
	body := max(8, height-chrome)

	if width >= minList+minPanel+gap {
		panel := max(minPanel, width/3)
		return menuLayout{
			listWidth:   width - panel - gap,
			listHeight:  body,
			panelWidth:  panel,
			panelHeight: body,
		}
	}

	listHeight := max(5, body*2/3)
	return menuLayout{
		stacked:     true,
		listWidth:   max(4, width),
		listHeight:  listHeight,
		panelWidth:  max(4, width),
		panelHeight: max(4, body-listHeight),
	}
}

// RunMenu shows items and returns the chosen ID, MenuActionBack or
// MenuActionQuit. It fails on a non-interactive terminal.
func RunMenu(title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", fmt.Errorf("non-interactive terminal")
	}
	cfg := menuConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	result, err := tea.NewProgram(newMenuModel(title, subtitle, items, cfg)).Run()
	if err != nil {
		return "", err
	}
	if final, ok := result.(menuModel); ok {
		return final.choice, nil
	}
	return "", nil
}
