// Package config loads mofc.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Find.
const FileName = "mofc.toml"

type Parse struct {
	ContinueOnError bool `toml:"continue_on_error"`
	MaxDiagnostics  int  `toml:"max_diagnostics"`
	Jobs            int  `toml:"jobs"`
}

type Output struct {
	Format string `toml:"format"` // pretty|json|tree|log
	Color  string `toml:"color"`  // auto|on|off
}

type Generate struct {
	Header      bool `toml:"header"`
	IndentWidth int  `toml:"indent_width"`
}

type Trace struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Output string `toml:"output"`
}

type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // relative paths are resolved against the file
}

type Config struct {
	Parse    Parse    `toml:"parse"`
	Output   Output   `toml:"output"`
	Generate Generate `toml:"generate"`
	Trace    Trace    `toml:"trace"`
	Cache    Cache    `toml:"cache"`

	// Path is the file the values came from, empty for defaults.
	Path string `toml:"-"`
	// Unknown lists keys present in the file that no field took.
	Unknown []string `toml:"-"`
}

func Default() Config {
	return Config{
		Parse:    Parse{MaxDiagnostics: 100},
		Output:   Output{Format: "pretty", Color: "auto"},
		Generate: Generate{Header: true, IndentWidth: 4},
		Trace:    Trace{Level: "off", Mode: "stream", Output: "-"},
	}
}

var ErrInvalidValue = errors.New("invalid value")

var choices = map[string][]string{
	"output.format": {"pretty", "json", "tree", "log"},
	"output.color":  {"auto", "on", "off"},
	"trace.level":   {"off", "error", "phase", "detail", "debug"},
	"trace.mode":    {"stream", "ring", "both"},
}

// Load decodes path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.Path = path
	for _, k := range meta.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, k.String())
	}

	if meta.IsDefined("cache", "dir") && cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	values := map[string]string{
		"output.format": c.Output.Format,
		"output.color":  c.Output.Color,
		"trace.level":   c.Trace.Level,
		"trace.mode":    c.Trace.Mode,
	}
	for key, allowed := range choices {
		v := strings.ToLower(values[key])
		ok := false
		for _, a := range allowed {
			ok = ok || v == a
		}
		if !ok {
			return fmt.Errorf("%w for %s: %q (expected %s)", ErrInvalidValue, key, values[key], strings.Join(allowed, "|"))
		}
	}
	switch {
	case c.Parse.Jobs < 0:
		return fmt.Errorf("%w for parse.jobs: %d", ErrInvalidValue, c.Parse.Jobs)
	case c.Parse.MaxDiagnostics < 0:
		return fmt.Errorf("%w for parse.max_diagnostics: %d", ErrInvalidValue, c.Parse.MaxDiagnostics)
	case c.Generate.IndentWidth <= 0:
		return fmt.Errorf("%w for generate.indent_width: %d", ErrInvalidValue, c.Generate.IndentWidth)
	}
	return nil
}

// Find walks up from startDir to locate mofc.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest mofc.toml above startDir, or the defaults when
// there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
