package trace

import (
	"fmt"
	"strings"
)

// Level controls how much is traced. Each level admits the scopes of the
// levels below it.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // nothing is streamed; kept for crash dumps
	LevelPhase        // driver and pass spans
	LevelDetail       // plus imports and specializations
	LevelDebug        // everything
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(s)
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// admits reports whether events of scope pass at this level.
func (l Level) admits(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail:
		return scope <= ScopeModule
	case LevelDebug:
		return true
	}
	return false
}
