package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mofkit/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs one invocation and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s := &session{}
	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	s.close(stderr)
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:               "mofc",
		Short:             "MOF schema parser and generator",
		Long:              `mofc reads DMTF CIM Managed Object Format files, reports the declarations they hold and regenerates canonical MOF`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
	}

	root.AddCommand(newTokenizeCmd(s))
	root.AddCommand(newParseCmd(s))
	root.AddCommand(newGenCmd(s))
	root.AddCommand(newCleanCmd(s))
	root.AddCommand(newVersionCmd())

	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	flags.String("config", "", "path to mofc.toml (default: nearest one above the working directory)")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")
	return root
}

// exitError ends the process with code once the diagnostics are printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
