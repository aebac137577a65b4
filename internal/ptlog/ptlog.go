// Package ptlog provides config-driven categorized structured logging,
// adapted from the teacher's internal/logging category system but backed
// by go.uber.org/zap rather than a hand-rolled file logger. Logging is a
// no-op until Init is called; callers that never call Init (library use,
// most tests) get a silent zap.NewNop() logger from every Get.
package ptlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a logging subsystem. Unlike the teacher's ~25-category
// list, this one names six of the module's own packages; only
// CategoryTracker and CategoryResolve are logged to (from
// internal/tracker), the other four have no callers.
type Category string

const (
	CategoryTracker Category = "tracker"
	CategoryResolve Category = "resolve"
	CategoryRender  Category = "render"
	CategoryDiagram Category = "diagram"
	CategoryGraph   Category = "graph"
	CategorySchema  Category = "schema"
)

var (
	base       *zap.Logger
	categories map[string]bool
)

// Init builds the base zap logger at level and records which categories
// are enabled. A nil/empty categories map means every category is
// enabled. Call once at startup (cmd/promisetracker/main.go); safe to
// call again to reconfigure (e.g. after a config reload).
func Init(level string, cats map[string]bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(levelFor(level))

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("ptlog: failed to build logger: %w", err)
	}
	base = l
	categories = cats
	return nil
}

func levelFor(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func isEnabled(c Category) bool {
	if base == nil {
		return false
	}
	if categories == nil {
		return true
	}
	enabled, ok := categories[string(c)]
	if !ok {
		return true
	}
	return enabled
}

// Get returns a zap.Logger tagged with category c, or a no-op logger if
// Init hasn't been called or c is disabled in the active config.
func Get(c Category) *zap.Logger {
	if !isEnabled(c) {
		return zap.NewNop()
	}
	return base.With(zap.String("category", string(c)))
}

// Sync flushes the base logger. Call at shutdown (mirrors the teacher's
// logger.Sync() in cmd/nerd/main.go's PersistentPostRun).
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}
