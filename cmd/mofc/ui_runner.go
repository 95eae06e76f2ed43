package main

import (
	"context"
	"io"

	"mofkit/internal/driver"
	"mofkit/internal/source"
	"mofkit/internal/ui"
)

type parseOutcome struct {
	fs      *source.FileSet
	results []driver.Result
	err     error
}

// runParseDirWithUI parses dir while the progress view follows the driver
// events on out.
func runParseDirWithUI(ctx context.Context, out io.Writer, dir string, files []string, opts driver.Options) (*source.FileSet, []driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, optsCopy)
		outcomeCh <- parseOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	uiErr := ui.Run(out, "parse "+dir, files, events)
	// The view may quit early; keep the driver from blocking on a full channel.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
