package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gogpu/ggtools/annotate"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPrefix+"_CONFIG", "")
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	a := c.Annotate
	if a.LineColor != annotate.DefaultLineColor || a.LineWidth != annotate.DefaultLineWidth {
		t.Errorf("stroke defaults = %q/%v", a.LineColor, a.LineWidth)
	}
	if !reflect.DeepEqual(a.PreviewDash, annotate.DefaultPreviewDash) {
		t.Errorf("PreviewDash = %v, want %v", a.PreviewDash, annotate.DefaultPreviewDash)
	}
	if a.ZoomStep != annotate.DefaultZoomStep || a.MinScale != annotate.DefaultMinScale || a.MaxScale != annotate.DefaultMaxScale {
		t.Errorf("zoom defaults = %v/%v/%v", a.ZoomStep, a.MinScale, a.MaxScale)
	}
	if c.Log.SlogLevel() != slog.LevelWarn {
		t.Errorf("log level = %v, want warn", c.Log.SlogLevel())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[annotate]
line_color = "#ff0000"
line_width = 4
preview_dash = [2.0, 2.0]

[table]
encoding = "shift_jis"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Annotate.LineColor != "#ff0000" || c.Annotate.LineWidth != 4 {
		t.Errorf("annotate = %+v", c.Annotate)
	}
	if !reflect.DeepEqual(c.Annotate.PreviewDash, []float64{2, 2}) {
		t.Errorf("PreviewDash = %v, want [2 2]", c.Annotate.PreviewDash)
	}
	if c.Table.Encoding != "shift_jis" {
		t.Errorf("Table.Encoding = %q, want shift_jis", c.Table.Encoding)
	}
	if c.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", c.Log.SlogLevel())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"_ANNOTATE_LINE_WIDTH", "7")
	t.Setenv(EnvPrefix+"_TABLE_ENCODING", "euc-jp")

	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Annotate.LineWidth != 7 {
		t.Errorf("LineWidth = %v, want 7", c.Annotate.LineWidth)
	}
	if c.Table.Encoding != "euc-jp" {
		t.Errorf("Encoding = %q, want euc-jp", c.Table.Encoding)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[annotate\nline_width = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed TOML should fail")
	}
}

func TestAnnotateOptions(t *testing.T) {
	opts, err := AnnotateConfig{LineColor: "#00ff00", LineWidth: 50, ZoomStep: 0.5, MinScale: 0.5, MaxScale: 2}.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	st := annotate.New(opts...).Style()
	if st.Hex() != "#00ff00" || st.Width != annotate.MaxLineWidth {
		t.Errorf("style = %s/%v, want #00ff00/%v", st.Hex(), st.Width, annotate.MaxLineWidth)
	}

	opts, err = AnnotateConfig{LineColor: "nope", LineWidth: 3}.Options()
	if err == nil {
		t.Error("Options() with invalid color should report an error")
	}
	if st := annotate.New(opts...).Style(); st.Hex() != annotate.DefaultLineColor || st.Width != 3 {
		t.Errorf("fallback style = %s/%v", st.Hex(), st.Width)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := (LogConfig{Level: tt.in}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
