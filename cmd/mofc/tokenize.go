package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mofkit/internal/diagfmt"
	"mofkit/internal/driver"
)

func newTokenizeCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.mof",
		Short: "Tokenize a MOF file",
		Long:  `Tokenize breaks a MOF file down into its tokens and their leading trivia`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runTokenize(cmd, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func (s *session) runTokenize(cmd *cobra.Command, path string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Tokenize(path, s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	s.report(cmd, result.Bag, result.FileSet)

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return &exitError{code: 1}
	}
	return nil
}
