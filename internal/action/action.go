package action

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gubarz/recipe-ssg/internal/config"
	"github.com/gubarz/recipe-ssg/internal/parser"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct {
	out io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		fmt.Fprintln(c.out, text)
		return nil
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Viewer Interface
// ============================================================================

// Viewer opens a recipe source file for reading
type Viewer interface {
	Open(path string) error
}

// pagerViewer runs $PAGER, falling back to less
type pagerViewer struct{}

func (pagerViewer) Open(path string) error {
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less"
	}
	cmd := exec.Command(pager, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ============================================================================
// Output Modes
// ============================================================================

// Mode represents what happens to a selected recipe
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
	ModeOpen  Mode = "open"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModePrint, ModeCopy, ModeOpen:
		return m, nil
	case "":
		return ModePrint, nil
	default:
		return "", fmt.Errorf("unsupported output mode: %s (supported: print, copy, open)", s)
	}
}

// ============================================================================
// Runner
// ============================================================================

// Runner applies output modes to recipes
type Runner struct {
	out       io.Writer
	clipboard Clipboard
	viewer    Viewer
}

// NewRunner creates a runner writing to stdout with the system clipboard
func NewRunner() *Runner {
	return &Runner{
		out:       os.Stdout,
		clipboard: &systemClipboard{out: os.Stdout},
		viewer:    pagerViewer{},
	}
}

// WithOutput sets the writer used by print mode
func (r *Runner) WithOutput(w io.Writer) *Runner {
	r.out = w
	return r
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (r *Runner) WithClipboard(c Clipboard) *Runner {
	r.clipboard = c
	return r
}

// WithViewer sets a custom viewer implementation (useful for testing)
func (r *Runner) WithViewer(v Viewer) *Runner {
	r.viewer = v
	return r
}

// Output handles a recipe based on the configured mode
func (r *Runner) Output(recipe parser.Recipe) error {
	mode, err := ParseMode(config.GetOutput())
	if err != nil {
		return err
	}
	return r.OutputWithMode(recipe, mode)
}

// OutputWithMode handles a recipe with an explicit mode
func (r *Runner) OutputWithMode(recipe parser.Recipe, mode Mode) error {
	switch mode {
	case ModeCopy:
		return r.clipboard.Copy(ShoppingList(recipe))
	case ModeOpen:
		return r.viewer.Open(recipe.Path)
	default: // print
		_, err := fmt.Fprintln(r.out, recipe.Path)
		return err
	}
}

// ShoppingList formats a recipe's ingredients as a markdown checklist
func ShoppingList(recipe parser.Recipe) string {
	var b strings.Builder
	b.WriteString(recipe.Title)
	b.WriteString("\n")
	for _, ingredient := range recipe.Ingredients {
		b.WriteString("- [ ] ")
		b.WriteString(ingredient)
		b.WriteString("\n")
	}
	return b.String()
}
