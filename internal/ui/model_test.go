package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/recipe-ssg/internal/parser"
)

var testRecipes = []parser.Recipe{
	{Title: "Banana Bread", Ingredients: []string{"3 ripe bananas"}, Steps: []string{"Mash bananas"}, Path: "banana-bread.md"},
	{Title: "Apple Pie", Ingredients: []string{"apples"}, Path: "desserts/apple-pie.md"},
	{Title: "Bread Pudding", Steps: []string{"Soak bread"}, Path: "desserts/pudding.md"},
}

func titles(recipes []parser.Recipe) []string {
	var out []string
	for _, r := range recipes {
		out = append(out, r.Title)
	}
	return out
}

func TestFilterRecipes(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query keeps all", "", []string{"Banana Bread", "Apple Pie", "Bread Pudding"}},
		{"case-insensitive substring", "BREAD", []string{"Banana Bread", "Bread Pudding"}},
		{"inner substring", "e pi", []string{"Apple Pie"}},
		{"whole query as one substring", "bread banana", nil},
		{"no match", "soup", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(FilterRecipes(testRecipes, tt.query))
			if strings.Join(got, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("FilterRecipes(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func update(t *testing.T, m browseModel, msg tea.Msg) browseModel {
	t.Helper()
	next, _ := m.Update(msg)
	bm, ok := next.(browseModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm
}

func TestBrowseModel_TypeAndFilter(t *testing.T) {
	m := newBrowseModel(testRecipes)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pie")})
	if got := m.textInput.Value(); got != "pie" {
		t.Fatalf("query = %q, want pie", got)
	}

	// Filtering waits for the debounce tick
	if len(m.filtered) != len(testRecipes) {
		t.Fatalf("filtered before debounce = %d", len(m.filtered))
	}
	m = update(t, m, filterMsg{})
	if got := titles(m.filtered); len(got) != 1 || got[0] != "Apple Pie" {
		t.Errorf("filtered = %v, want [Apple Pie]", got)
	}
}

func TestBrowseModel_Navigation(t *testing.T) {
	m := newBrowseModel(testRecipes)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestBrowseModel_EnterSelects(t *testing.T) {
	m := newBrowseModel(testRecipes)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(browseModel)
	if m.selected == nil || m.selected.Title != "Apple Pie" {
		t.Fatalf("selected = %+v, want Apple Pie", m.selected)
	}
	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter should return tea.Quit")
	}
}

func TestBrowseModel_EnterWithNoMatches(t *testing.T) {
	m := newBrowseModel(testRecipes)
	m.textInput.SetValue("zzz")
	m.applyFilter()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.selected != nil {
		t.Errorf("selected = %+v, want nil", m.selected)
	}
}

func TestBrowseModel_EscQuits(t *testing.T) {
	m := newBrowseModel(testRecipes)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(browseModel)
	if !m.quitting || m.selected != nil {
		t.Errorf("quitting = %v, selected = %v", m.quitting, m.selected)
	}
	if cmd == nil {
		t.Fatal("esc should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestBrowseModel_View(t *testing.T) {
	m := newBrowseModel(testRecipes)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, want := range []string{
		"Banana Bread",
		"Apple Pie",
		"Ingredients",
		"3 ripe bananas",
		"1. Mash bananas",
		"3/3",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScrollWindow(t *testing.T) {
	offset := 0
	start, end := scrollWindow(7, 10, 3, &offset)
	if start != 5 || end != 8 {
		t.Errorf("scrollWindow() = %d,%d, want 5,8", start, end)
	}
	start, end = scrollWindow(0, 10, 3, &offset)
	if start != 0 || end != 3 {
		t.Errorf("scrollWindow() = %d,%d, want 0,3", start, end)
	}
}

func TestTruncateLines(t *testing.T) {
	text := "a\nb\nc\nd"
	if got := truncateLines(text, 10); got != text {
		t.Errorf("truncateLines() = %q", got)
	}
	if got := truncateLines(text, 3); got != "a\nb\n  ..." {
		t.Errorf("truncateLines() = %q", got)
	}
	if got := truncateLines(text, 0); got != "" {
		t.Errorf("truncateLines() = %q", got)
	}
}
