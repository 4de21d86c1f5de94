package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func testMenuItems() []MenuItem {
	return []MenuItem{
		{ID: "background-color", TitleText: "Background color", Details: "Default"},
		{ID: "snap-color", TitleText: "Snap color", Details: "#ff33b5e5"},
		{ID: "exit", TitleText: "Exit"},
	}
}

func newTestMenu(opts ...MenuOption) menuModel {
	cfg := menuConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := newMenuModel("PIE STYLE", "", testMenuItems(), cfg)
	m.resize(100, 30)
	return m
}

func press(m menuModel, code rune) menuModel {
	next, _ := m.Update(tea.KeyPressMsg{Code: code, Text: string(code)})
	return next.(menuModel)
}

func TestMenuInitialSelection(t *testing.T) {
	m := newTestMenu(WithInitialSelectionID(" snap-color "), WithInfo("Database", "/tmp/settings.db"))
	if got := m.list.Index(); got != 1 {
		t.Errorf("selected index = %d, want 1", got)
	}
	if len(m.info) != 1 || m.info[0].value != "/tmp/settings.db" {
		t.Errorf("info = %+v", m.info)
	}
}

func TestMenuJump(t *testing.T) {
	m := press(newTestMenu(), '3')
	if !m.done || m.choice != "exit" {
		t.Errorf("after 3: done = %v, choice = %q", m.done, m.choice)
	}

	m = press(newTestMenu(), '9')
	if m.done {
		t.Errorf("9 picked %q from three rows", m.choice)
	}
}

func TestMenuLeaveKeys(t *testing.T) {
	tests := []struct {
		name string
		opts []MenuOption
		code rune
		want string
	}{
		{"q quits", nil, 'q', MenuActionQuit},
		{"esc quits", nil, tea.KeyEscape, MenuActionQuit},
		{"q goes back", []MenuOption{WithBackNavigation("Pie style")}, 'q', MenuActionBack},
		{"esc goes back", []MenuOption{WithBackNavigation("")}, tea.KeyEscape, MenuActionBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tea.KeyPressMsg{Code: tt.code}
			if tt.code == 'q' {
				msg.Text = "q"
			}
			next, _ := newTestMenu(tt.opts...).Update(msg)
			if got := next.(menuModel).choice; got != tt.want {
				t.Errorf("choice = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMenuBackHelpNamesParent(t *testing.T) {
	keys := newMenuKeys("Pie style")
	short := keys.ShortHelp()
	if got := short[len(short)-1].Help().Desc; got != "pie style" {
		t.Errorf("back help = %q, want pie style", got)
	}
	if got := newMenuKeys("").ShortHelp()[3].Help().Desc; got != "quit" {
		t.Errorf("quit help = %q, want quit", got)
	}
}

func TestRowShowsValueNextToTitle(t *testing.T) {
	m := newTestMenu()
	d := newRowDelegate(testMenuItems())

	var buf bytes.Buffer
	d.Render(&buf, m.list, 1, testMenuItems()[1])
	row := ansi.Strip(buf.String())

	if !strings.Contains(row, "2. Snap color        #ff33b5e5") {
		t.Errorf("row = %q, want value aligned after the longest title", row)
	}

	buf.Reset()
	d.Render(&buf, m.list, 0, testMenuItems()[0])
	if row := ansi.Strip(buf.String()); !strings.HasPrefix(row, "> 1. ") {
		t.Errorf("selected row = %q, want > marker", row)
	}
}

func TestCalculateMenuLayout(t *testing.T) {
	wide := calculateMenuLayout(120, 40)
	if wide.stacked {
		t.Error("120 columns should not stack")
	}
	if wide.listWidth+wide.panelWidth+2 != 120 {
		t.Errorf("panel widths %d+%d do not fill 120", wide.listWidth, wide.panelWidth)
	}

	narrow := calculateMenuLayout(60, 30)
	if !narrow.stacked {
		t.Error("60 columns should stack")
	}
	if narrow.listHeight+narrow.panelHeight > 30 {
		t.Errorf("stacked heights %d+%d exceed the terminal", narrow.listHeight, narrow.panelHeight)
	}
}
