package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mofkit/internal/driver"
	"mofkit/internal/handler"
	"mofkit/internal/mofgen"
	"mofkit/internal/version"
)

func newGenCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [flags] file.mof",
		Short: "Regenerate canonical MOF from a file",
		Long:  `Gen parses a MOF file and writes every declaration back out in canonical form`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runGen(cmd, args[0])
		},
	}
	flags := cmd.Flags()
	flags.Bool("no-header", false, "omit the generator comment above each declaration")
	flags.Bool("continue", false, "keep going after a declaration fails")
	flags.Int("indent", 4, "spaces per indentation level (ignored with --tabs)")
	flags.Bool("tabs", false, "indent with tabs")
	return cmd
}

func (s *session) runGen(cmd *cobra.Command, path string) error {
	header := s.cfg.Generate.Header
	if cmd.Flags().Changed("no-header") {
		noHeader, err := cmd.Flags().GetBool("no-header")
		if err != nil {
			return fmt.Errorf("failed to get no-header flag: %w", err)
		}
		header = !noHeader
	}
	tabs, err := cmd.Flags().GetBool("tabs")
	if err != nil {
		return fmt.Errorf("failed to get tabs flag: %w", err)
	}
	indent := intSetting(cmd, "indent", s.cfg.Generate.IndentWidth)
	if indent <= 0 && !tabs {
		return fmt.Errorf("invalid --indent value %d (must be positive)", indent)
	}

	gen := mofgen.New(mofgen.Options{
		IndentWidth: indent,
		UseTabs:     tabs,
		NoHeader:    !header,
		Version:     version.Version,
	})
	h := handler.NewGenerate(cmd.OutOrStdout(), gen, boolSetting(cmd, "continue", s.cfg.Parse.ContinueOnError))
	res, err := driver.Stream(cmd.Context(), path, h, s.maxDiagnostics)
	if res == nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	s.report(cmd, res.Bag, res.FileSet)
	if err != nil && !res.Bag.HasErrors() {
		return fmt.Errorf("generation failed: %w", err)
	}
	s.logger.Info("generated", "file", path, "declarations", len(h.Declarations()))
	if err != nil || res.Bag.HasErrors() {
		return &exitError{code: 1}
	}
	return nil
}
