package coerce

import (
	"context"
	"log/slog"

	"csvjson/internal/diagnostic"
	"csvjson/internal/schema"
)

// Engine coerces cells and reports failures to a logger. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an Engine. A nil logger discards all reports.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{logger: logger}
}

// Value returns the coerced cell, or def.Default when raw cannot be
// converted. It never fails.
func (e *Engine) Value(ctx context.Context, def schema.Definition, raw string) any {
	v, err := Parse(def, raw)
	if err == nil {
		return v
	}

	d, ok := diagnostic.As(err)
	if !ok {
		d = diagnostic.Warning(diagnostic.KindCoerce, "whilst coercing "+def.Name, err.Error(), "")
	}

	d = d.Augment("column " + def.Name)

	// Bool mismatches are only reported at debug level.
	level := slog.LevelInfo
	if def.Type == schema.TypeBool {
		level = slog.LevelDebug
	}

	diagnostic.ReportAt(ctx, e.logger, level, d, "using default value")

	return def.Default
}
