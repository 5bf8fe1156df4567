package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/recipe-ssg/internal/action"
	"github.com/gubarz/recipe-ssg/internal/parser"
)

// getTTY returns file handles for TUI input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	// If stdout is not a terminal (piped or captured by $()), use /dev/tty
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			out = os.Stderr // Last resort fallback
		} else {
			closers = append(closers, func() { out.Close() })
		}

		in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			in = os.Stdin
		} else {
			closers = append(closers, func() { in.Close() })
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

		return in, out, func() {
			for _, c := range closers {
				c()
			}
		}
	}

	return os.Stdin, os.Stdout, func() {}
}

// Run launches the recipe browser and applies the configured output
// action to the recipe the user picks. Quitting without a pick is not an error.
func Run(recipes []parser.Recipe, runner *action.Runner, initialQuery string) error {
	if len(recipes) == 0 {
		return fmt.Errorf("no recipes found")
	}

	m := newBrowseModel(recipes)
	if initialQuery != "" {
		m.textInput.SetValue(initialQuery)
		m.applyFilter()
	}

	ttyIn, ttyOut, cleanup := getTTY()
	RefreshStyles() // Refresh after getTTY sets up the renderer
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	finalModel, err := p.Run()
	cleanup()

	if err != nil {
		return err
	}

	result := finalModel.(browseModel)
	if result.selected == nil {
		return nil
	}
	return runner.Output(*result.selected)
}
