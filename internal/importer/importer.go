package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gubarz/recipe-ssg/internal/parser"
	"github.com/spf13/afero"
)

// DefaultExtension is the suffix of recipe files
const DefaultExtension = ".md"

var (
	// ErrNoMarkdownFiles is returned when a directory holds no recipe files.
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	// ErrInputNotDir is returned when the scan root is a regular file.
	ErrInputNotDir = errors.New("not a directory")
)

// ImportError wraps a failure to read a single recipe file.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("failed to import recipe %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Importer reads recipe files and turns them into parsed recipes
type Importer struct {
	Fs        afero.Fs
	Logger    *slog.Logger
	BaseDir   string // Recipe paths are made relative to this directory
	Extension string
}

// NewImporter creates an importer on the given filesystem.
// Paths are reported relative to the process working directory.
func NewImporter(fs afero.Fs, logger *slog.Logger) *Importer {
	base, _ := os.Getwd()
	return &Importer{
		Fs:        fs,
		Logger:    logger,
		BaseDir:   base,
		Extension: DefaultExtension,
	}
}

func (im *Importer) logger() *slog.Logger {
	if im.Logger != nil {
		return im.Logger
	}
	return slog.Default()
}

func (im *Importer) extension() string {
	if im.Extension != "" {
		return im.Extension
	}
	return DefaultExtension
}

// ImportFile reads and parses a single recipe file.
// Recipes without a heading are titled after the file name.
func (im *Importer) ImportFile(path string) ([]parser.Recipe, error) {
	log := im.logger().With("path", path)
	log.Debug("processing file")

	content, err := afero.ReadFile(im.Fs, path)
	if err != nil {
		return nil, &ImportError{Path: path, Err: err}
	}
	log.Debug("read file", "bytes", len(content))

	recipes := parser.Parse(string(content))
	log.Debug("parsed file", "recipes", len(recipes))

	relPath := im.relPath(path)
	for i := range recipes {
		recipes[i].Path = relPath
		if recipes[i].Title == "" {
			recipes[i].Title = TitleFromFilename(path, im.extension())
			log.Debug("no title found, using filename", "title", recipes[i].Title)
		}
	}
	return recipes, nil
}

// ImportDirectory imports every recipe file under root in discovery order.
// Files that fail to import are logged and skipped.
func (im *Importer) ImportDirectory(root string) ([]parser.Recipe, error) {
	files, err := Scan(im.Fs, root, im.extension())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoMarkdownFiles, root)
	}
	im.logger().Debug("scanned directory", "root", root, "files", len(files))

	var recipes []parser.Recipe
	for _, file := range files {
		result, err := im.ImportFile(file)
		if err != nil {
			im.logger().Warn("skipping recipe file", "path", file, "error", err)
			continue
		}
		recipes = append(recipes, result...)
	}

	im.logger().Debug("imported directory", "root", root, "recipes", len(recipes))
	return recipes, nil
}

func (im *Importer) relPath(path string) string {
	if im.BaseDir == "" {
		return path
	}
	rel, err := filepath.Rel(im.BaseDir, path)
	if err != nil {
		return path
	}
	return rel
}

// TitleFromFilename builds a title from a file name: the extension is
// dropped, hyphens and underscores become spaces, and every word starts
// with an upper-case letter.
func TitleFromFilename(path, ext string) string {
	name := strings.TrimSuffix(filepath.Base(path), ext)
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	var b strings.Builder
	prevWord := false
	for _, r := range name {
		word := isWordChar(r)
		if word && !prevWord {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prevWord = word
	}
	return strings.TrimSpace(b.String())
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
