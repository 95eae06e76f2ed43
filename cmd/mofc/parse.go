package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"mofkit/internal/diagfmt"
	"mofkit/internal/driver"
	"mofkit/internal/handler"
	"mofkit/internal/observ"
	"mofkit/internal/source"
)

func newParseCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.mof|directory>",
		Short: "Parse MOF files and report their declarations",
		Long: `Parse extracts the compiler directives, qualifier declarations, classes and
instances of a MOF file, or of every .mof file under a directory`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runParse(cmd, args[0])
		},
	}
	flags := cmd.Flags()
	flags.String("format", "pretty", "output format (pretty|json|tree|log)")
	flags.Bool("continue", false, "keep extracting after a declaration fails")
	flags.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	flags.String("ui", "auto", "progress view for directories (auto|on|off)")
	flags.Bool("cache", false, "reuse cached results for unchanged files")
	flags.Bool("timings", false, "show per-file phase timings")
	return cmd
}

type parseSettings struct {
	format          string
	continueOnError bool
	jobs            int
	ui              switchMode
	cache           bool
	timings         bool
}

func (s *session) parseSettings(cmd *cobra.Command) (parseSettings, error) {
	ps := parseSettings{
		format:          strings.ToLower(stringSetting(cmd, "format", s.cfg.Output.Format)),
		continueOnError: boolSetting(cmd, "continue", s.cfg.Parse.ContinueOnError),
		jobs:            intSetting(cmd, "jobs", s.cfg.Parse.Jobs),
		cache:           boolSetting(cmd, "cache", s.cfg.Cache.Enabled),
	}
	switch ps.format {
	case "pretty", "json", "tree", "log":
	default:
		return ps, fmt.Errorf("unknown format: %s", ps.format)
	}
	if ps.jobs < 0 {
		return ps, fmt.Errorf("invalid --jobs value %d", ps.jobs)
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return ps, fmt.Errorf("failed to get timings flag: %w", err)
	}
	ps.timings = timings
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return ps, fmt.Errorf("failed to get ui flag: %w", err)
	}
	ps.ui, err = parseSwitch("ui", uiValue)
	return ps, err
}

func (s *session) runParse(cmd *cobra.Command, path string) error {
	ps, err := s.parseSettings(cmd)
	if err != nil {
		return err
	}
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	files := []string{path}
	if st.IsDir() {
		if files, err = driver.ListFiles(path); err != nil {
			return fmt.Errorf("failed to list %s: %w", path, err)
		}
		if len(files) == 0 {
			s.logger.Warn("no .mof files found", "dir", path)
			return nil
		}
	}
	headers := st.IsDir() && !s.quiet

	switch ps.format {
	case "tree":
		return s.parseTree(cmd, files, headers)
	case "log":
		return s.parseLog(cmd, ps, files, headers)
	}

	opts := driver.Options{
		Jobs:            ps.jobs,
		MaxDiagnostics:  s.maxDiagnostics,
		ContinueOnError: ps.continueOnError,
	}
	if ps.cache {
		c, cerr := driver.OpenDiskCache(s.cfg.Cache.Dir)
		if cerr != nil {
			s.logger.Warn("cache disabled", "err", cerr)
		} else {
			opts.Cache = c
		}
	}

	var (
		fs      *source.FileSet
		results []driver.Result
	)
	switch {
	case !st.IsDir():
		var res *driver.Result
		fs, res, err = driver.ParseFile(cmd.Context(), path, opts)
		if res != nil {
			results = []driver.Result{*res}
		}
	case ps.ui.enabled(cmd.ErrOrStderr()):
		fs, results, err = runParseDirWithUI(cmd.Context(), cmd.ErrOrStderr(), path, files, opts)
	default:
		fs, results, err = driver.ParseDir(cmd.Context(), path, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	return s.printResults(cmd, ps, fs, results, headers)
}

func (s *session) printResults(cmd *cobra.Command, ps parseSettings, fs *source.FileSet, results []driver.Result, headers bool) error {
	out := cmd.OutOrStdout()
	failed, cached := 0, 0
	for i := range results {
		r := &results[i]
		if r.Err != nil || (r.Bag != nil && r.Bag.HasErrors()) {
			failed++
		}
		if r.Cached {
			cached++
		}
		if !ps.timings && r.Document != nil {
			r.Document.Timing = observ.Report{}
		}
	}

	var err error
	if ps.format == "json" {
		err = diagfmt.Documents(out, results, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			Max:              s.maxDiagnostics,
		})
	} else {
		for _, r := range results {
			s.report(cmd, r.Bag, fs)
		}
		err = diagfmt.Summary(out, results, diagfmt.SummaryOpts{Headers: headers, Timings: ps.timings})
	}
	if err != nil {
		return err
	}

	s.logger.Info("parsed", "files", len(results), "cached", cached, "failed", failed)
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// parseTree dumps the grammar tree of every file.
func (s *session) parseTree(cmd *cobra.Command, files []string, headers bool) error {
	out := cmd.OutOrStdout()
	failed := false
	for i, file := range files {
		res, err := driver.Tree(file, s.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		s.report(cmd, res.Bag, res.FileSet)
		if headers {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", file)
		}
		if res.Tree == nil || res.Bag.HasErrors() {
			failed = true
		}
		if res.Tree == nil {
			continue
		}
		if err := diagfmt.Tree(out, res.Tree, res.FileSet, diagfmt.TreeOpts{Color: s.useColor(out)}); err != nil {
			return err
		}
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// parseLog streams the handler events of every file as log records.
func (s *session) parseLog(cmd *cobra.Command, ps parseSettings, files []string, headers bool) error {
	out := cmd.OutOrStdout()
	failed := false
	for _, file := range files {
		if headers {
			fmt.Fprintf(out, "== %s ==\n", file)
		}
		logging := handler.NewLogging(log.NewWithOptions(out, log.Options{
			Prefix: "mof",
			Level:  log.DebugLevel,
		}))
		acc := handler.NewDefault(ps.continueOnError)
		res, err := driver.Stream(cmd.Context(), file, handler.Multi{logging, acc}, s.maxDiagnostics)
		if res == nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err != nil || res.Bag.HasErrors() {
			failed = true
		}
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}
