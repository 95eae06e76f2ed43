package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mofkit/internal/driver"
)

func newCleanCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove cached parse results",
		Long:  "Remove every entry of the parse cache (the [cache] dir of mofc.toml, or the user cache directory).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.runClean(cmd)
		},
	}
}

func (s *session) runClean(cmd *cobra.Command) error {
	dir := s.cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = driver.DefaultCacheDir("mofkit"); err != nil {
			return fmt.Errorf("failed to locate cache: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		_, err = fmt.Fprintln(out, "cache directory not found")
		return err
	case err != nil:
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("%q is not a directory", dir)
	}

	cache, err := driver.OpenDiskCache(dir)
	if err != nil {
		return err
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clear %q: %w", dir, err)
	}
	s.logger.Info("cache cleared", "dir", dir)
	_, err = fmt.Fprintf(out, "removed %s\n", dir)
	return err
}
