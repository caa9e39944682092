package logcat

import (
	"fmt"
	"strings"
)

// Level is one of the five logcat severities.
type Level int

const (
	Verbose Level = iota + 1
	Debug
	Info
	Warn
	Error
)

// Rank returns the severity ordering, higher is more severe.
func (l Level) Rank() int { return int(l) }

// Letter returns the single-character wire form (V, D, I, W, E).
func (l Level) Letter() string {
	switch l {
	case Verbose:
		return "V"
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warn:
		return "W"
	case Error:
		return "E"
	}
	return "?"
}

func (l Level) String() string {
	switch l {
	case Verbose:
		return "VERBOSE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel resolves a level name or wire letter, case-insensitively.
// Unknown names are a configuration error.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "V", "VERBOSE":
		return Verbose, nil
	case "D", "DEBUG":
		return Debug, nil
	case "I", "INFO":
		return Info, nil
	case "W", "WARN":
		return Warn, nil
	case "E", "ERROR":
		return Error, nil
	}
	return 0, fmt.Errorf("unknown level %q (want verbose, debug, info, warn, or error)", name)
}

// levelFromLetter maps a matched wire letter to its Level. The decoder's
// pattern constrains the input to the closed set.
func levelFromLetter(b byte) Level {
	switch b {
	case 'V':
		return Verbose
	case 'D':
		return Debug
	case 'I':
		return Info
	case 'W':
		return Warn
	}
	return Error
}
