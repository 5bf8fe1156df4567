package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/recipe-ssg/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// List view styles
	Title    lipgloss.Style
	Path     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Dim      lipgloss.Style

	// Preview styles
	PreviewTitle      lipgloss.Style
	PreviewHeading    lipgloss.Style
	PreviewIngredient lipgloss.Style
	PreviewStep       lipgloss.Style
	PreviewPath       lipgloss.Style

	// Chrome styles
	Divider lipgloss.Style

	// Colors for direct access
	SelectedBg lipgloss.Color
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:             lipgloss.NewStyle(),
		Path:              lipgloss.NewStyle(),
		Selected:          lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Cursor:            lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Dim:               lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PreviewTitle:      lipgloss.NewStyle().Bold(true),
		PreviewHeading:    lipgloss.NewStyle().Underline(true),
		PreviewIngredient: lipgloss.NewStyle(),
		PreviewStep:       lipgloss.NewStyle(),
		PreviewPath:       lipgloss.NewStyle(),
		Divider:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		SelectedBg:        lipgloss.Color("236"),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	titleColor := parseANSIColor(config.GetColorTitle())
	ingredientColor := parseANSIColor(config.GetColorIngredient())
	stepColor := parseANSIColor(config.GetColorStep())
	pathColor := parseANSIColor(config.GetColorPath())
	borderColor := lipgloss.Color(config.GetColorBorder())
	cursorColor := lipgloss.Color(config.GetColorCursor())
	selectedBg := lipgloss.Color(config.GetColorSelected())
	dimColor := lipgloss.Color(config.GetColorDim())

	// List view styles
	s.Title = lipgloss.NewStyle().Foreground(titleColor)
	s.Path = lipgloss.NewStyle().Foreground(pathColor)
	s.Selected = lipgloss.NewStyle().Background(selectedBg)
	s.Cursor = lipgloss.NewStyle().Foreground(cursorColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)

	// Preview styles (same colors, title is bold)
	s.PreviewTitle = lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	s.PreviewHeading = lipgloss.NewStyle().Underline(true).Foreground(titleColor)
	s.PreviewIngredient = lipgloss.NewStyle().Foreground(ingredientColor)
	s.PreviewStep = lipgloss.NewStyle().Foreground(stepColor)
	s.PreviewPath = lipgloss.NewStyle().Foreground(pathColor)

	// Chrome styles
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
	s.SelectedBg = selectedBg
}

// WithSelection returns a copy of the given style with the selected background applied
func (s *StyleManager) WithSelection(style lipgloss.Style) lipgloss.Style {
	return style.Background(s.SelectedBg)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}

// ============================================================================
// CLI Progress Styles
// ============================================================================

// Progress styles are used for non-interactive command output
var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Info styles a progress message
func Info(s string) string { return infoStyle.Render(s) }

// Success styles a completion message
func Success(s string) string { return successStyle.Render(s) }

// Error styles an error message
func Error(s string) string { return errorStyle.Render(s) }
