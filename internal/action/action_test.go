package action

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"

	"github.com/gubarz/recipe-ssg/internal/parser"
)

type fakeClipboard struct {
	copied string
}

func (c *fakeClipboard) Copy(text string) error {
	c.copied = text
	return nil
}

type fakeViewer struct {
	opened string
}

func (v *fakeViewer) Open(path string) error {
	v.opened = path
	return nil
}

var soup = parser.Recipe{
	Title:       "Tomato Soup",
	Ingredients: []string{"4 tomatoes", "1 onion"},
	Steps:       []string{"Simmer"},
	Path:        "recipes/tomato-soup.md",
}

func newTestRunner() (*Runner, *bytes.Buffer, *fakeClipboard, *fakeViewer) {
	var out bytes.Buffer
	clip := &fakeClipboard{}
	view := &fakeViewer{}
	r := NewRunner().WithOutput(&out).WithClipboard(clip).WithViewer(view)
	return r, &out, clip, view
}

func TestOutputWithMode(t *testing.T) {
	t.Run("print", func(t *testing.T) {
		r, out, _, _ := newTestRunner()
		if err := r.OutputWithMode(soup, ModePrint); err != nil {
			t.Fatalf("OutputWithMode() error = %v", err)
		}
		if got := out.String(); got != "recipes/tomato-soup.md\n" {
			t.Errorf("printed %q", got)
		}
	})

	t.Run("copy", func(t *testing.T) {
		r, out, clip, _ := newTestRunner()
		if err := r.OutputWithMode(soup, ModeCopy); err != nil {
			t.Fatalf("OutputWithMode() error = %v", err)
		}
		want := "Tomato Soup\n- [ ] 4 tomatoes\n- [ ] 1 onion\n"
		if clip.copied != want {
			t.Errorf("copied %q, want %q", clip.copied, want)
		}
		if out.Len() != 0 {
			t.Errorf("copy should not print, got %q", out.String())
		}
	})

	t.Run("open", func(t *testing.T) {
		r, _, _, view := newTestRunner()
		if err := r.OutputWithMode(soup, ModeOpen); err != nil {
			t.Fatalf("OutputWithMode() error = %v", err)
		}
		if view.opened != "recipes/tomato-soup.md" {
			t.Errorf("opened %q", view.opened)
		}
	})
}

func TestOutputUsesConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("output", "copy")

	r, _, clip, _ := newTestRunner()
	if err := r.Output(soup); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if clip.copied == "" {
		t.Error("Output() should follow the configured copy mode")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"print", ModePrint, false},
		{"COPY", ModeCopy, false},
		{" open ", ModeOpen, false},
		{"", ModePrint, false},
		{"exec", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShoppingList_NoIngredients(t *testing.T) {
	got := ShoppingList(parser.Recipe{Title: "Water"})
	if got != "Water\n" {
		t.Errorf("ShoppingList() = %q", got)
	}
}
