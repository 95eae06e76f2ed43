package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mofkit/internal/prof"
)

// setupProfiling starts the profilers named by the persistent flags. They
// are stopped when the session closes.
func (s *session) setupProfiling(cmd *cobra.Command) error {
	var opts prof.Options
	for name, dst := range map[string]*string{
		"cpu-profile":   &opts.CPUProfile,
		"mem-profile":   &opts.MemProfile,
		"runtime-trace": &opts.Trace,
	} {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}
	if opts == (prof.Options{}) {
		return nil
	}
	p, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	s.closers = append(s.closers, p.Stop)
	return nil
}
