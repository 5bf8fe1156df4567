package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gubarz/recipe-ssg/internal/action"
	"github.com/gubarz/recipe-ssg/internal/config"
	"github.com/gubarz/recipe-ssg/internal/exporter"
	"github.com/gubarz/recipe-ssg/internal/importer"
	"github.com/gubarz/recipe-ssg/internal/render"
	"github.com/gubarz/recipe-ssg/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var errUsage = errors.New("Usage: recipe-ssg <input-directory> <output-directory>")

var rootCmd = &cobra.Command{
	Use:   "recipe-ssg <input-directory> <output-directory>",
	Short: "Static site generator for Markdown recipes",
	Long: `Converts a folder of Markdown recipes into a static HTML site:
one page per recipe plus a searchable index.

Each "# " heading starts a recipe. "- " items under "## Ingredients"
and "1. " items under "## Steps" are collected in order.`,
	Args:          exactArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse recipes interactively in the terminal",
	Long: `Opens a searchable list of the recipes under path.

Press Enter to print the recipe path, copy its shopping list,
or open its source file, depending on the output mode.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(browseCmd)

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json")
	rootCmd.PersistentFlags().String("extension", "", "Recipe file extension (default .md)")
	rootCmd.Flags().Bool("inline-markdown", false, "Render ingredient and step text as inline Markdown")
	rootCmd.Flags().String("index-title", "", "Title of the index page")

	browseCmd.Flags().StringP("query", "q", "", "Initial search query")
	browseCmd.Flags().StringP("output", "o", "", "Output mode: print, copy, open")
	browseCmd.Flags().Bool("print", false, "Print recipe path (shorthand for -o print)")
	browseCmd.Flags().Bool("copy", false, "Copy shopping list (shorthand for -o copy)")
	browseCmd.Flags().Bool("open", false, "Open recipe source (shorthand for -o open)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("extension", rootCmd.PersistentFlags().Lookup("extension"))
	viper.BindPFlag("inline_markdown", rootCmd.Flags().Lookup("inline-markdown"))
	viper.BindPFlag("index_title", rootCmd.Flags().Lookup("index-title"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// exactArgs reports the usage line instead of cobra's generic message
func exactArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	return nil
}

// newLogger builds the diagnostic logger from configuration
func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.GetLogLevel()}
	if config.GetLogFormat() == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return generate(cmd.OutOrStdout(), afero.NewOsFs(), newLogger(cmd.ErrOrStderr()), args[0], args[1])
}

// generate imports every recipe under inputDir and writes the site to outputDir
func generate(out io.Writer, fs afero.Fs, logger *slog.Logger, inputDir, outputDir string) error {
	inputDir, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}

	if ok, _ := afero.Exists(fs, inputDir); !ok {
		return fmt.Errorf("input directory %q does not exist", inputDir)
	}
	if err := fs.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	im := importer.NewImporter(fs, logger)
	im.Extension = config.GetExtension()

	fmt.Fprintln(out, ui.Info(fmt.Sprintf("Scanning for recipes in %s...", inputDir)))
	recipes, err := im.ImportDirectory(inputDir)
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		return fmt.Errorf("no recipes found in %q", inputDir)
	}
	fmt.Fprintln(out, ui.Info(fmt.Sprintf("Found %d recipe(s) to process...", len(recipes))))

	ex := &exporter.Exporter{
		Fs:         fs,
		Renderer:   render.NewRenderer(config.GetInlineMarkdown()),
		IndexTitle: config.GetIndexTitle(),
	}
	indexPath, err := ex.ExportSite(recipes, outputDir)
	if err != nil {
		return err
	}

	relIndex := indexPath
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, indexPath); err == nil {
			relIndex = rel
		}
	}

	fmt.Fprintln(out, ui.Success(fmt.Sprintf("Successfully generated site at: %s", outputDir)))
	fmt.Fprintf(out, "Index page: %s\n", relIndex)
	fmt.Fprintf(out, "Generated %d recipe pages\n", len(recipes))
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	path := config.GetPath()
	if len(args) > 0 {
		path = args[0]
	}

	// Handle output mode flags
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput(string(action.ModePrint))
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput(string(action.ModeCopy))
	} else if o, _ := cmd.Flags().GetBool("open"); o {
		config.SetOutput(string(action.ModeOpen))
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}
	if _, err := action.ParseMode(config.GetOutput()); err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}

	im := importer.NewImporter(afero.NewOsFs(), newLogger(cmd.ErrOrStderr()))
	im.Extension = config.GetExtension()
	recipes, err := im.ImportDirectory(absPath)
	if err != nil {
		return err
	}

	query, _ := cmd.Flags().GetString("query")
	return ui.Run(recipes, action.NewRunner(), query)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}
