package render

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"

	"github.com/gubarz/recipe-ssg/internal/parser"
)

var bananaBread = parser.Recipe{
	Title:       "Banana Bread",
	Ingredients: []string{"3 ripe bananas", "1 cup sugar"},
	Steps:       []string{"Mash bananas", "Bake at 350°F"},
	Path:        "recipes/banana-bread.md",
}

func TestRecipePage(t *testing.T) {
	page := NewRenderer(false).RecipePage(bananaBread)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Banana Bread</title>",
		"<h1>Banana Bread</h1>",
		"<li>3 ripe bananas</li>",
		"<li>1 cup sugar</li>",
		"<li>Mash bananas</li>",
		"<li>Bake at 350°F</li>",
		`<a href="index.html" class="back-link">`,
		"<style>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("RecipePage() missing %q", want)
		}
	}
}

func TestRecipePage_ListsInOrder(t *testing.T) {
	page := NewRenderer(false).RecipePage(bananaBread)

	ul := strings.Index(page, "<ul>")
	ol := strings.Index(page, "<ol>")
	if ul < 0 || ol < 0 || ul > ol {
		t.Fatalf("expected ingredients <ul> before steps <ol>")
	}

	order := []string{"3 ripe bananas", "1 cup sugar", "Mash bananas", "Bake at 350°F"}
	last := -1
	for _, item := range order {
		idx := strings.Index(page, "<li>"+item+"</li>")
		if idx <= last {
			t.Errorf("item %q out of order", item)
		}
		last = idx
	}

	ingredients := page[ul:ol]
	if strings.Contains(ingredients, "Mash bananas") {
		t.Error("step rendered inside the ingredients list")
	}
}

func TestRecipePage_VerbatimText(t *testing.T) {
	recipe := parser.Recipe{
		Title:       "Pizza",
		Ingredients: []string{"**200g** <em>flour</em>"},
	}
	page := NewRenderer(false).RecipePage(recipe)
	if !strings.Contains(page, "<li>**200g** <em>flour</em></li>") {
		t.Errorf("RecipePage() should keep item text verbatim:\n%s", page)
	}
}

func TestRecipePage_InlineMarkdown(t *testing.T) {
	recipe := parser.Recipe{
		Title:       "Pizza",
		Ingredients: []string{"**200g** <em>flour</em>"},
		Steps:       []string{"Bake for `10` minutes"},
	}
	page := NewRenderer(true).RecipePage(recipe)

	for _, want := range []string{
		"<li><strong>200g</strong> <em>flour</em></li>",
		"<li>Bake for <code>10</code> minutes</li>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("RecipePage() missing %q in:\n%s", want, page)
		}
	}
}

func TestInlineMarkdown(t *testing.T) {
	md := goldmark.New()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "1 cup sugar", "1 cup sugar"},
		{"emphasis", "*fresh* basil", "<em>fresh</em> basil"},
		{"link", "[salt](https://example.com)", `<a href="https://example.com">salt</a>`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InlineMarkdown(md, tt.input)
			if err != nil {
				t.Fatalf("InlineMarkdown() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("InlineMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndexPage(t *testing.T) {
	entries := []IndexEntry{
		{Title: "Banana Bread", Path: "banana-bread.html"},
		{Title: "Apple Pie", Path: "apple-pie.html"},
	}
	page := NewRenderer(false).IndexPage("", entries)

	for _, want := range []string{
		"<title>Recipe Collection</title>",
		"<h1>Recipe Collection</h1>",
		`id="searchInput"`,
		`<a href="banana-bread.html" class="recipe-link">Banana Bread</a>`,
		`<a href="apple-pie.html" class="recipe-link">Apple Pie</a>`,
		"toLowerCase()",
		"recipeTitle.includes(searchTerm)",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("IndexPage() missing %q", want)
		}
	}

	if strings.Index(page, "banana-bread.html") > strings.Index(page, "apple-pie.html") {
		t.Error("IndexPage() should keep the given entry order")
	}
}

func TestIndexPage_CustomTitle(t *testing.T) {
	page := NewRenderer(false).IndexPage("Family Cookbook", nil)
	if !strings.Contains(page, "<title>Family Cookbook</title>") || !strings.Contains(page, "<h1>Family Cookbook</h1>") {
		t.Errorf("IndexPage() did not use custom title")
	}
	if strings.Contains(page, `class="recipe-item"`) {
		t.Errorf("IndexPage() with no entries should render an empty list")
	}
}
