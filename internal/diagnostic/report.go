package diagnostic

import (
	"context"
	"log/slog"
)

// Report writes d to logger at the level implied by its severity. fallback
// says what happens next, e.g. "using default value".
func Report(ctx context.Context, logger *slog.Logger, d *Diagnostic, fallback string) {
	ReportAt(ctx, logger, d.Severity.Level(), d, fallback)
}

// ReportAt is like Report but with an explicit level.
func ReportAt(ctx context.Context, logger *slog.Logger, level slog.Level, d *Diagnostic, fallback string) {
	if logger == nil || d == nil {
		return
	}

	msg := d.Cause
	if fallback != "" {
		msg += ", " + fallback
	}

	logger.Log(ctx, level, msg, slog.Any("diagnostic", d))
}

// ReportAll reports every diagnostic in ds, in order.
func ReportAll(ctx context.Context, logger *slog.Logger, ds Diagnostics) {
	for i := range ds.Items {
		Report(ctx, logger, &ds.Items[i], "")
	}
}
