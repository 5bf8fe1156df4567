package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	RecipePath      string `mapstructure:"path"`
	Output          string `mapstructure:"output"`
	LogLevel        string `mapstructure:"log_level"`
	LogFormat       string `mapstructure:"log_format"`
	Extension       string `mapstructure:"extension"`
	InlineMarkdown  bool   `mapstructure:"inline_markdown"`
	IndexTitle      string `mapstructure:"index_title"`
	ColorTitle      string `mapstructure:"color_title"`
	ColorIngredient string `mapstructure:"color_ingredient"`
	ColorStep       string `mapstructure:"color_step"`
	ColorPath       string `mapstructure:"color_path"`
	ColorDim        string `mapstructure:"color_dim"`
	ColorCursor     string `mapstructure:"color_cursor"`
	ColorSelected   string `mapstructure:"color_selected"`
	ColorBorder     string `mapstructure:"color_border"`
}

// C is the global config instance
var C Config

// SetDefaults registers every default value with viper
func SetDefaults() {
	viper.SetDefault("path", ".")
	viper.SetDefault("output", "print")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("extension", ".md")
	viper.SetDefault("inline_markdown", false)
	viper.SetDefault("index_title", "Recipe Collection")
	viper.SetDefault("color_title", "36")      // Cyan
	viper.SetDefault("color_ingredient", "32") // Green
	viper.SetDefault("color_step", "33")       // Yellow
	viper.SetDefault("color_path", "90")       // Gray
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_border", "240")
}

// Init initializes configuration with viper
func Init() error {
	SetDefaults()

	viper.SetConfigName("recipe-ssg")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "recipe-ssg"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("RECIPESSG")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPath returns the default recipe path with tilde expansion
func GetPath() string {
	return expandTilde(viper.GetString("path"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetOutput returns the browse output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetLogLevel returns the configured slog level, defaulting to warn
func GetLogLevel() slog.Level {
	switch strings.ToLower(viper.GetString("log_level")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// GetLogFormat returns "json" or "text"
func GetLogFormat() string {
	if strings.EqualFold(viper.GetString("log_format"), "json") {
		return "json"
	}
	return "text"
}

// GetExtension returns the file suffix recipes are read from
func GetExtension() string {
	ext := viper.GetString("extension")
	if ext == "" {
		return ".md"
	}
	return ext
}

// GetInlineMarkdown returns whether item text is rendered as inline markdown
func GetInlineMarkdown() bool {
	return viper.GetBool("inline_markdown")
}

// GetIndexTitle returns the index page title
func GetIndexTitle() string {
	return viper.GetString("index_title")
}

func GetColorTitle() string      { return viper.GetString("color_title") }
func GetColorIngredient() string { return viper.GetString("color_ingredient") }
func GetColorStep() string       { return viper.GetString("color_step") }
func GetColorPath() string       { return viper.GetString("color_path") }
func GetColorDim() string        { return viper.GetString("color_dim") }
func GetColorCursor() string     { return viper.GetString("color_cursor") }
func GetColorSelected() string   { return viper.GetString("color_selected") }
func GetColorBorder() string     { return viper.GetString("color_border") }

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetPath sets path at runtime
func SetPath(path string) {
	viper.Set("path", path)
	C.RecipePath = path
}
