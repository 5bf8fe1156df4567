package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gubarz/recipe-ssg/internal/parser"
)

// DefaultIndexTitle is used when no index title is configured
const DefaultIndexTitle = "Recipe Collection"

// IndexEntry is one link on the index page
type IndexEntry struct {
	Title string
	Path  string // Page file name relative to the index
}

// Renderer turns recipes into HTML documents.
// Item text is inserted as-is unless InlineMarkdown is set, in which case
// each ingredient and step is rendered through goldmark first.
type Renderer struct {
	InlineMarkdown bool

	md goldmark.Markdown
}

// NewRenderer creates a renderer
func NewRenderer(inlineMarkdown bool) *Renderer {
	return &Renderer{InlineMarkdown: inlineMarkdown}
}

func (r *Renderer) item(text string) string {
	if !r.InlineMarkdown {
		return text
	}
	if r.md == nil {
		r.md = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	out, err := InlineMarkdown(r.md, text)
	if err != nil {
		return text
	}
	return out
}

// InlineMarkdown renders a single line of markdown and strips the
// paragraph wrapper goldmark puts around it.
func InlineMarkdown(md goldmark.Markdown, text string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		out = out[len("<p>") : len(out)-len("</p>")]
	}
	return out, nil
}

// RecipePage renders a full HTML page for one recipe
func (r *Renderer) RecipePage(recipe parser.Recipe) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>`)
	sb.WriteString(recipe.Title)
	sb.WriteString("</title>\n")
	sb.WriteString(recipeStyle)
	sb.WriteString(`</head>
<body>
    <a href="index.html" class="back-link">← Back to Recipes</a>
    <h1>`)
	sb.WriteString(recipe.Title)
	sb.WriteString("</h1>\n    \n    <h2>Ingredients</h2>\n    <ul>\n")
	r.writeItems(&sb, recipe.Ingredients)
	sb.WriteString("    </ul>\n\n    <h2>Steps</h2>\n    <ol>\n")
	r.writeItems(&sb, recipe.Steps)
	sb.WriteString("    </ol>\n</body>\n</html>")

	return sb.String()
}

func (r *Renderer) writeItems(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString("        <li>")
		sb.WriteString(r.item(item))
		sb.WriteString("</li>\n")
	}
}

// IndexPage renders the searchable index linking every recipe page.
// The search box hides entries whose title does not contain the query,
// ignoring case.
func (r *Renderer) IndexPage(title string, entries []IndexEntry) string {
	if title == "" {
		title = DefaultIndexTitle
	}

	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>`)
	sb.WriteString(title)
	sb.WriteString("</title>\n")
	sb.WriteString(indexStyle)
	sb.WriteString("</head>\n<body>\n    <h1>")
	sb.WriteString(title)
	sb.WriteString(`</h1>
    <div class="search-container">
        <input type="text" class="search-input" placeholder="Search recipes..." id="searchInput">
    </div>
    <ul class="recipe-list" id="recipeList">
`)
	for _, entry := range entries {
		sb.WriteString("        <li class=\"recipe-item\">\n            <a href=\"")
		sb.WriteString(entry.Path)
		sb.WriteString("\" class=\"recipe-link\">")
		sb.WriteString(entry.Title)
		sb.WriteString("</a>\n        </li>\n")
	}
	sb.WriteString(`    </ul>
    <div class="no-results" id="noResults" style="display: none;">
        No recipes found matching your search.
    </div>
`)
	sb.WriteString(searchScript)
	sb.WriteString("</body>\n</html>")

	return sb.String()
}
