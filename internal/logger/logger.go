package logger

import (
	"log"
	"strings"
	"sync/atomic"
)

// Small leveled wrapper around the standard logger so debug output
// (full prompts, raw provider payloads) can be silenced in production.

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel accepts debug, info, warn(ing) or error. Anything else means info.
func SetLevel(s string) {
	current.Store(int32(ParseLevel(s)))
}

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func Enabled(l Level) bool {
	return Level(current.Load()) <= l
}

func Debugf(format string, v ...any) {
	if Enabled(LevelDebug) {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func Infof(format string, v ...any) {
	if Enabled(LevelInfo) {
		log.Printf("[INFO] "+format, v...)
	}
}

func Warnf(format string, v ...any) {
	if Enabled(LevelWarn) {
		log.Printf("[WARN] "+format, v...)
	}
}

func Errorf(format string, v ...any) {
	if Enabled(LevelError) {
		log.Printf("[ERROR] "+format, v...)
	}
}
