package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ares/internal/config/loader"
	"github.com/dshills/ares/internal/renderer/core"
	"github.com/dshills/ares/internal/renderer/highlight"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "ARES_"

// maxIncludeDepth limits nested @include directives.
const maxIncludeDepth = 8

// Config holds all editor settings.
type Config struct {
	Editor EditorConfig      `toml:"editor"`
	Log    LogConfig         `toml:"log"`
	Syntax SyntaxConfig      `toml:"syntax"`
	Theme  map[string]string `toml:"theme"`
	Git    GitConfig         `toml:"git"`
}

// EditorConfig holds editing behaviour.
type EditorConfig struct {
	TabStop        int      `toml:"tab_stop"`
	QuitTimes      int      `toml:"quit_times"`
	MessageTimeout Duration `toml:"message_timeout"`
}

// LogConfig selects the log level and destination.
type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// SyntaxConfig lists directories scanned for syntax definitions.
type SyntaxConfig struct {
	Dirs []string `toml:"dirs"`
}

// GitConfig configures the commit command.
type GitConfig struct {
	Remote string `toml:"remote"`
	Branch string `toml:"branch"`
	Push   bool   `toml:"push"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabStop:        8,
			QuitTimes:      1,
			MessageTimeout: Duration(5 * time.Second),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Syntax: SyntaxConfig{
			Dirs: []string{filepath.Join(DefaultDir(), "syntax")},
		},
		Theme: map[string]string{},
		Git: GitConfig{
			Remote: "origin",
		},
	}
}

// DefaultDir returns the per-user configuration directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ares")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ares")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// Load resolves the configuration. An empty path uses DefaultPath, which may
// be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
	}

	fileValues, err := loader.NewTOMLLoader(path).LoadWithIncludes(path, maxIncludeDepth)
	if err != nil {
		return nil, err
	}

	envValues, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := cfg.apply(loader.DeepMerge(fileValues, envValues)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes a settings map over the current values.
func (c *Config) apply(values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	data, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	return nil
}

func (c *Config) expandPaths() {
	for i, dir := range c.Syntax.Dirs {
		c.Syntax.Dirs[i] = expandHome(dir)
	}
	c.Log.File = expandHome(c.Log.File)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Editor.TabStop < 1 || c.Editor.TabStop > 16 {
		return &ValidationError{Path: "editor.tab_stop", Message: "must be between 1 and 16", Value: c.Editor.TabStop}
	}
	if c.Editor.QuitTimes < 0 {
		return &ValidationError{Path: "editor.quit_times", Message: "must not be negative", Value: c.Editor.QuitTimes}
	}
	if c.Editor.MessageTimeout <= 0 {
		return &ValidationError{Path: "editor.message_timeout", Message: "must be positive", Value: c.Editor.MessageTimeout.Std()}
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return &ValidationError{Path: "log.level", Message: "must be one of " + strings.Join(logLevels, ", "), Value: c.Log.Level}
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return &ValidationError{Path: "log.format", Message: "must be one of " + strings.Join(logFormats, ", "), Value: c.Log.Format}
	}
	for name, hex := range c.Theme {
		if _, ok := highlight.ParseTag(name); !ok {
			return &ValidationError{Path: "theme." + name, Message: "unknown highlight class", Value: hex}
		}
		if _, err := core.ColorFromHex(hex); err != nil {
			return &ValidationError{Path: "theme." + name, Message: "invalid colour", Value: hex}
		}
	}
	if c.Git.Push && c.Git.Remote == "" {
		return &ValidationError{Path: "git.remote", Message: "required when git.push is set", Value: c.Git.Remote}
	}
	return nil
}
