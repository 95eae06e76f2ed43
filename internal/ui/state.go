package ui

import (
	"github.com/charmbracelet/lipgloss"

	"mofkit/internal/driver"
)

// fileState is where one file stands in the run, as the view shows it.
type fileState uint8

const (
	stateQueued fileState = iota
	stateReading
	stateParsing
	stateExtracting
	stateDone
	stateCached
	stateFailed
)

type stateInfo struct {
	label  string
	// weight is the share of the file's work finished on reaching the state.
	weight float64
	color  lipgloss.Color
}

var states = [...]stateInfo{
	stateQueued:     {"queued", 0, "7"},
	stateReading:    {"reading", 0.1, "6"},
	stateParsing:    {"parsing", 0.4, "6"},
	stateExtracting: {"extracting", 0.8, "6"},
	stateDone:       {"done", 1, "2"},
	stateCached:     {"cached", 1, "4"},
	stateFailed:     {"error", 1, "1"},
}

func (s fileState) String() string  { return states[s].label }
func (s fileState) finished() bool  { return s >= stateDone }
func (s fileState) weight() float64 { return states[s].weight }
func (s fileState) style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(states[s].color)
}

// stateFor maps a driver event onto a file state. A finished read or parse
// only moves the file along; ok is false for events that change nothing.
func stateFor(stage driver.Stage, status driver.Status) (state fileState, ok bool) {
	switch status {
	case driver.StatusQueued:
		return stateQueued, true
	case driver.StatusError:
		return stateFailed, true
	case driver.StatusCached:
		return stateCached, true
	case driver.StatusDone:
		if stage == driver.StageExtract {
			return stateDone, true
		}
	case driver.StatusWorking:
	default:
		return 0, false
	}
	switch stage {
	case driver.StageRead:
		return stateReading, true
	case driver.StageParse:
		return stateParsing, true
	case driver.StageExtract:
		return stateExtracting, true
	}
	return 0, false
}
