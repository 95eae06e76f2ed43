package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mofkit/internal/config"
	"mofkit/internal/diag"
	"mofkit/internal/diagfmt"
	"mofkit/internal/source"
)

// session is the state shared by every command of one invocation. It is
// filled by setup before the command runs.
type session struct {
	cfg            config.Config
	logger         *log.Logger
	color          switchMode
	quiet          bool
	maxDiagnostics int
	closers        []func() error
}

func (s *session) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s.cfg = cfg

	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	s.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "mofc",
		Level:  level,
	})
	if cfg.Path != "" {
		s.logger.Debug("loaded config", "path", cfg.Path)
	}
	for _, key := range cfg.Unknown {
		s.logger.Warn("unknown config key", "key", key, "file", cfg.Path)
	}

	if s.color, err = parseSwitch("color", stringSetting(cmd, "color", cfg.Output.Color)); err != nil {
		return err
	}
	if s.color != switchAuto {
		color.NoColor = s.color == switchOff
	}
	if s.quiet, err = cmd.Flags().GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	s.maxDiagnostics = intSetting(cmd, "max-diagnostics", cfg.Parse.MaxDiagnostics)

	if err := s.setupTracing(cmd); err != nil {
		return err
	}
	return s.setupProfiling(cmd)
}

// close runs the cleanups registered during setup, last first.
func (s *session) close(stderr io.Writer) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			fmt.Fprintf(stderr, "mofc: %v\n", err)
		}
	}
	s.closers = nil
}

func (s *session) useColor(w io.Writer) bool { return s.color.enabled(w) }

// report prints diagnostics to the command's stderr.
func (s *session) report(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	out := cmd.ErrOrStderr()
	opts := diagfmt.PrettyOpts{
		Color:     s.useColor(out),
		Context:   2,
		ShowNotes: true,
	}
	if err := diagfmt.Pretty(out, bag, fs, opts); err != nil {
		s.logger.Error("failed to print diagnostics", "err", err)
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil //nolint:nilerr // no working directory, no project file
	}
	return config.Discover(wd)
}

// Flag values win over mofc.toml only when given on the command line.

func stringSetting(cmd *cobra.Command, name, fallback string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil || (!cmd.Flags().Changed(name) && fallback != "") {
		return fallback
	}
	return v
}

func intSetting(cmd *cobra.Command, name string, fallback int) int {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return fallback
	}
	return v
}

func boolSetting(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return fallback
	}
	return v
}
