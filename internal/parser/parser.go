package parser

import (
	"regexp"
	"strings"
)

// Recipe represents a single parsed recipe
type Recipe struct {
	Title       string   // From the "# " heading, or derived from the filename
	Ingredients []string // "- " items under "## Ingredients", document order
	Steps       []string // "1. " items under "## Steps", document order
	Path        string   // Source file path, set by the importer
}

// HasContent reports whether the recipe carries at least one ingredient or step
func (r *Recipe) HasContent() bool {
	return len(r.Ingredients) > 0 || len(r.Steps) > 0
}

const (
	recipePrefix  = "# "
	sectionPrefix = "## "
	bulletPrefix  = "- "

	sectionIngredients = "ingredients"
	sectionSteps       = "steps"
)

var ordinalRegex = regexp.MustCompile(`^\d+\.\s+`)

// Parse splits markdown text into recipes.
// Every "# " line starts a new recipe; recipes without any ingredient
// or step are dropped. The result is in document order and may be empty.
func Parse(text string) []Recipe {
	var recipes []Recipe
	var current Recipe
	var section string

	flush := func() {
		if current.HasContent() {
			recipes = append(recipes, current)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		// Top-level heading starts a new recipe
		if strings.HasPrefix(line, recipePrefix) {
			flush()
			current = Recipe{Title: strings.TrimSpace(line[len(recipePrefix):])}
			section = ""
			continue
		}

		// Section header gates the list rules below
		if strings.HasPrefix(line, sectionPrefix) {
			section = strings.TrimSpace(strings.ToLower(line[len(sectionPrefix):]))
			continue
		}

		trimmed := strings.TrimSpace(line)

		switch section {
		case sectionIngredients:
			if strings.HasPrefix(trimmed, bulletPrefix) {
				current.Ingredients = append(current.Ingredients, trimmed[len(bulletPrefix):])
			}
		case sectionSteps:
			if loc := ordinalRegex.FindStringIndex(trimmed); loc != nil {
				current.Steps = append(current.Steps, trimmed[loc[1]:])
			}
		}
	}

	flush()
	return recipes
}
