package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mofkit/internal/trace"
)

// setupTracing resolves the trace settings and attaches the tracer to the
// command context.
func (s *session) setupTracing(cmd *cobra.Command) error {
	output := stringSetting(cmd, "trace", s.cfg.Trace.Output)
	levelName := stringSetting(cmd, "trace-level", s.cfg.Trace.Level)
	modeName := stringSetting(cmd, "trace-mode", s.cfg.Trace.Mode)

	level, err := trace.ParseLevel(levelName)
	if err != nil {
		return err
	}
	// An explicit --trace output without a level traces phases.
	if level == trace.LevelOff && cmd.Flags().Changed("trace") && !cmd.Flags().Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}

	mode, err := trace.ParseMode(modeName)
	if err != nil {
		return err
	}
	tcfg := trace.Config{Level: level, Mode: mode, OutputPath: output}
	tracer, err := trace.New(tcfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	s.closers = append(s.closers, func() error {
		if mode == trace.ModeRing {
			if err := dumpRing(tracer, tcfg); err != nil {
				return err
			}
		}
		if err := tracer.Flush(); err != nil {
			return fmt.Errorf("trace: flush error: %w", err)
		}
		if err := tracer.Close(); err != nil {
			return fmt.Errorf("trace: close error: %w", err)
		}
		return nil
	})
	return nil
}

// dumpRing writes the events a ring tracer kept in memory. At the error
// level nothing is written unless a failure was recorded.
func dumpRing(t trace.Tracer, cfg trace.Config) error {
	ring, ok := t.(*trace.RingTracer)
	if !ok || !ring.ShouldDump() {
		return nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return ring.Dump(os.Stderr, cfg.ResolvedFormat())
	}
	// #nosec G304 -- path comes from the command line
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	if err := ring.Dump(f, cfg.ResolvedFormat()); err != nil {
		_ = f.Close()
		return fmt.Errorf("trace: %w", err)
	}
	return f.Close()
}
