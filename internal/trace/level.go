package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls how much is traced. Each level above error admits one more
// scope: phase admits driver and pass, detail adds file, debug adds
// production.
type Level uint8

const (
	LevelOff Level = iota
	LevelError // failures only; a ring dumps its context when one occurs
	LevelPhase
	LevelDetail
	LevelDebug
)

var levelNames = []string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts a level name in any case; "" means off.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelOff, nil
	}
	if i := slices.Index(levelNames, strings.ToLower(s)); i >= 0 {
		return Level(i), nil // #nosec G115 -- i < len(levelNames)
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames, "|"))
}

// finest is the most detailed scope a level admits, 0 for none.
func (l Level) finest() Scope {
	if l < LevelPhase {
		return 0
	}
	return Scope(l) // LevelPhase=2 -> ScopePass=2, and so on
}

// ShouldEmit reports whether regular events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	return scope <= l.finest() && scope != 0
}

// Admits reports whether ev passes at this level. Failed events pass at
// every level but off.
func (l Level) Admits(ev *Event) bool {
	if ev.Failed {
		return l > LevelOff
	}
	return l.ShouldEmit(ev.Scope)
}
