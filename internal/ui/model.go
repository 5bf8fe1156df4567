package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/recipe-ssg/internal/parser"
)

// ============================================================================
// Filtering
// ============================================================================

// FilterRecipes keeps the recipes whose title contains query, ignoring case.
// This is the same rule the generated index page applies in the browser.
func FilterRecipes(recipes []parser.Recipe, query string) []parser.Recipe {
	if query == "" {
		return recipes
	}
	q := strings.ToLower(query)
	filtered := make([]parser.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Title), q) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ============================================================================
// Debounce
// ============================================================================

// filterMsg triggers filtering after debounce
type filterMsg struct{}

// debounceFilter returns a command that triggers filtering after a delay
func debounceFilter() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return filterMsg{}
	})
}

// ============================================================================
// Browse Model
// ============================================================================

// browseModel is the Bubble Tea model for picking a recipe
type browseModel struct {
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	recipes  []parser.Recipe
	filtered []parser.Recipe
	cursor   int
	offset   int // viewport scroll offset
	selected *parser.Recipe
}

// newBrowseModel creates a model over the given recipes
func newBrowseModel(recipes []parser.Recipe) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search recipes..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return browseModel{
		recipes:   recipes,
		filtered:  recipes,
		textInput: ti,
	}
}

// Init implements tea.Model
func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 4
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	case filterMsg:
		m.applyFilter()
		return m, nil
	}

	prevQuery := m.textInput.Value()
	var tiCmd tea.Cmd
	m.textInput, tiCmd = m.textInput.Update(msg)
	cmds = append(cmds, tiCmd)

	// Only trigger debounced filter if query changed
	if m.textInput.Value() != prevQuery {
		cmds = append(cmds, debounceFilter())
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes navigation keys; other keys go to the text input
func (m *browseModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return tea.Quit
	case "enter":
		if m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			m.selected = &selected
			return tea.Quit
		}
	case "up", "ctrl+p":
		m.moveCursor(-1)
	case "down", "ctrl+n":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-10)
	case "pgdown":
		m.moveCursor(10)
	case "home", "ctrl+a":
		m.cursor = 0
	case "end", "ctrl+e":
		m.cursor = max(0, len(m.filtered)-1)
	}
	return nil
}

// moveCursor moves the cursor by delta, clamping to valid range
func (m *browseModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(0, len(m.filtered)-1))
}

// applyFilter narrows the list to the current query
func (m *browseModel) applyFilter() {
	m.filtered = FilterRecipes(m.recipes, m.textInput.Value())
	m.cursor = clamp(m.cursor, 0, max(0, len(m.filtered)-1))
	m.offset = 0
}

// ============================================================================
// Rendering
// ============================================================================

// View implements tea.Model
func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.width, 80)
	height := max(m.height, 24)

	preview := m.renderPreview(width)
	previewLines := countLines(preview)

	inputLines := 3 // divider + info + input
	listHeight := max(height-previewLines-inputLines, 3)
	list := m.renderList(listHeight)
	listLines := countLines(list)

	padding := max(height-previewLines-listLines-inputLines, 0)

	var b strings.Builder
	b.WriteString(preview)
	b.WriteString(list)
	b.WriteString(strings.Repeat("\n", padding))
	b.WriteString(m.renderInput(width))
	return b.String()
}

// renderPreview shows the recipe under the cursor
func (m browseModel) renderPreview(width int) string {
	var b strings.Builder
	lines := 0
	const maxLines = 10

	if m.cursor < len(m.filtered) {
		r := m.filtered[m.cursor]
		b.WriteString(styles.PreviewPath.Render(r.Path))
		b.WriteString("\n")
		b.WriteString(styles.PreviewTitle.Render(r.Title))
		b.WriteString("\n")
		lines += 2

		body := previewBody(r)
		body = truncateLines(body, maxLines-lines)
		b.WriteString(body)
		b.WriteString("\n")
		lines += countLines(body)
	}

	// Pad to fixed height
	for lines < maxLines {
		b.WriteString("\n")
		lines++
	}

	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	return b.String()
}

// previewBody lists ingredients then numbered steps
func previewBody(r parser.Recipe) string {
	var lines []string
	if len(r.Ingredients) > 0 {
		lines = append(lines, styles.PreviewHeading.Render("Ingredients"))
		for _, ing := range r.Ingredients {
			lines = append(lines, styles.PreviewIngredient.Render("  • "+ing))
		}
	}
	if len(r.Steps) > 0 {
		lines = append(lines, styles.PreviewHeading.Render("Steps"))
		for i, step := range r.Steps {
			lines = append(lines, styles.PreviewStep.Render(fmt.Sprintf("  %d. %s", i+1, step)))
		}
	}
	return strings.Join(lines, "\n")
}

// renderList renders the scrollable list of recipe titles
func (m *browseModel) renderList(maxHeight int) string {
	if len(m.filtered) == 0 {
		return ""
	}

	start, end := scrollWindow(m.cursor, len(m.filtered), maxHeight, &m.offset)

	var b strings.Builder
	for i := start; i < end; i++ {
		r := m.filtered[i]
		if i == m.cursor {
			b.WriteString(styles.Cursor.Render("> "))
			b.WriteString(styles.WithSelection(styles.Title).Render(r.Title))
			b.WriteString(styles.WithSelection(styles.Path).Render("  " + r.Path))
		} else {
			b.WriteString("  ")
			b.WriteString(styles.Title.Render(r.Title))
			b.WriteString(styles.Path.Render("  " + r.Path))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderInput renders the input section at the bottom
func (m browseModel) renderInput(width int) string {
	var b strings.Builder
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %d/%d", len(m.filtered), len(m.recipes))))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Enter select"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("ESC exit"))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	return b.String()
}

// ============================================================================
// Helpers
// ============================================================================

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// countLines counts the number of lines in a string
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// scrollWindow calculates the visible range for a scrollable list
func scrollWindow(cursor, total, height int, offset *int) (start, end int) {
	if cursor < *offset {
		*offset = cursor
	}
	if cursor >= *offset+height {
		*offset = cursor - height + 1
	}
	maxOffset := max(0, total-height)
	*offset = clamp(*offset, 0, maxOffset)

	start = *offset
	end = min(start+height, total)
	return
}

// truncateLines keeps at most maxLines lines, marking the cut with "..."
func truncateLines(text string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > maxLines {
		return strings.Join(lines[:maxLines-1], "\n") + "\n  ..."
	}
	return text
}
