package exporter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/gubarz/recipe-ssg/internal/parser"
	"github.com/gubarz/recipe-ssg/internal/render"
)

// IndexFile is the name of the generated index page
const IndexFile = "index.html"

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Exporter writes rendered recipe pages to a filesystem
type Exporter struct {
	Fs         afero.Fs
	Renderer   *render.Renderer
	IndexTitle string
}

// NewExporter creates an exporter with a plain renderer
func NewExporter(fs afero.Fs) *Exporter {
	return &Exporter{
		Fs:         fs,
		Renderer:   render.NewRenderer(false),
		IndexTitle: render.DefaultIndexTitle,
	}
}

// FileName derives a page name from a recipe source path:
// "Desserts/Apple Pie.md" becomes "apple-pie.html".
func FileName(sourcePath string) string {
	name := strings.TrimSuffix(filepath.Base(sourcePath), ".md")
	return nonAlnumRegex.ReplaceAllString(strings.ToLower(name), "-") + ".html"
}

// ExportRecipe writes one recipe page to outputPath, replacing any existing file
func (e *Exporter) ExportRecipe(recipe parser.Recipe, outputPath string) error {
	html := e.Renderer.RecipePage(recipe)
	if err := afero.WriteFile(e.Fs, outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

// ExportSite writes a page per recipe and an index page into outputDir.
// Recipes from the same source file share a page name, so the last one
// written wins. It returns the path of the index page.
func (e *Exporter) ExportSite(recipes []parser.Recipe, outputDir string) (string, error) {
	if err := e.Fs.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	entries := make([]render.IndexEntry, 0, len(recipes))
	for _, recipe := range recipes {
		name := FileName(recipe.Path)
		if err := e.ExportRecipe(recipe, filepath.Join(outputDir, name)); err != nil {
			return "", err
		}
		entries = append(entries, render.IndexEntry{Title: recipe.Title, Path: name})
	}

	indexPath := filepath.Join(outputDir, IndexFile)
	index := e.Renderer.IndexPage(e.IndexTitle, entries)
	if err := afero.WriteFile(e.Fs, indexPath, []byte(index), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", indexPath, err)
	}
	return indexPath, nil
}
