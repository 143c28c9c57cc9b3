// Package config loads ggtools settings from defaults, a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/ggtools/annotate"
)

// EnvPrefix prefixes environment overrides, e.g. GGTOOLS_ANNOTATE_LINE_WIDTH.
const EnvPrefix = "GGTOOLS"

// Config holds application configuration.
type Config struct {
	Annotate AnnotateConfig
	Table    TableConfig
	Log      LogConfig
}

// AnnotateConfig holds rectangle annotator defaults.
type AnnotateConfig struct {
	LineColor   string    `mapstructure:"line_color"`
	LineWidth   float64   `mapstructure:"line_width"`
	PreviewDash []float64 `mapstructure:"preview_dash"`
	ZoomStep    float64   `mapstructure:"zoom_step"`
	MinScale    float64   `mapstructure:"min_scale"`
	MaxScale    float64   `mapstructure:"max_scale"`
}

// TableConfig holds table converter settings.
type TableConfig struct {
	Encoding string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// DefaultPath returns the config file used when GGTOOLS_CONFIG is unset.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "ggtools", "config.toml")
}

// Load reads configuration. path overrides GGTOOLS_CONFIG, which overrides
// DefaultPath. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("annotate.line_color", annotate.DefaultLineColor)
	v.SetDefault("annotate.line_width", annotate.DefaultLineWidth)
	v.SetDefault("annotate.preview_dash", annotate.DefaultPreviewDash)
	v.SetDefault("annotate.zoom_step", annotate.DefaultZoomStep)
	v.SetDefault("annotate.min_scale", annotate.DefaultMinScale)
	v.SetDefault("annotate.max_scale", annotate.DefaultMaxScale)
	v.SetDefault("table.encoding", "")
	v.SetDefault("log.level", "warn")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Options converts the annotator settings into annotate options.
// An invalid color falls back to the default with an error.
func (c AnnotateConfig) Options() ([]annotate.Option, error) {
	style := annotate.DefaultStyle()
	style.Width = c.LineWidth

	var err error
	if col, perr := annotate.ParseColor(c.LineColor); perr == nil {
		style.Color = col
	} else {
		err = fmt.Errorf("annotate.line_color: %w", perr)
	}

	return []annotate.Option{
		annotate.WithStyle(style),
		annotate.WithPreviewDash(c.PreviewDash...),
		annotate.WithZoom(c.ZoomStep, c.MinScale, c.MaxScale),
	}, err
}

// SlogLevel parses the configured level; unknown names mean warn.
func (c LogConfig) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelWarn
	}
	return l
}
