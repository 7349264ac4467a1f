package diagnostic

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"csvjson/internal/common"
)

// Diagnostic is a single structured report. It is the only error vocabulary
// of the converter: hard failures are returned as *Diagnostic, soft ones are
// logged and a fallback is applied.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Kind is a machine-readable tag, e.g. "wrong-schema-length".
	Kind string
	// Context describes what was being attempted.
	Context string
	// Cause describes why it went wrong.
	Cause string
	// Suggestion is a remediation hint for the user.
	Suggestion string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Level maps the severity onto the slog level it is reported at.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// New returns a diagnostic. Empty fields are filled with placeholders so a
// rendered diagnostic never has blank lines.
func New(sev Severity, kind, context, cause, suggestion string) *Diagnostic {
	if kind == "" {
		kind = "unknown-error-type"
	}

	if context == "" {
		context = "unknown context"
	}

	if cause == "" {
		cause = "unknown reason"
	}

	if suggestion == "" {
		suggestion = "no suggestions, contact the author for help"
	}

	return &Diagnostic{
		Severity:   sev,
		Kind:       kind,
		Context:    context,
		Cause:      cause,
		Suggestion: suggestion,
	}
}

// Error creates a hard-failure diagnostic.
func Error(kind, context, cause, suggestion string) *Diagnostic {
	return New(SeverityError, kind, context, cause, suggestion)
}

// Warning creates a soft-failure diagnostic.
func Warning(kind, context, cause, suggestion string) *Diagnostic {
	return New(SeverityWarning, kind, context, cause, suggestion)
}

// Info creates an informational diagnostic, used when a default was derived.
func Info(kind, context, cause, suggestion string) *Diagnostic {
	return New(SeverityInfo, kind, context, cause, suggestion)
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[%s] %s: %s", d.Kind, d.Context, d.Cause)
}

// Augment returns a copy of d with extra context prepended.
func (d *Diagnostic) Augment(context string) *Diagnostic {
	out := *d
	out.Context = context + ", " + d.Context

	return &out
}

// LogValue implements slog.LogValuer.
func (d *Diagnostic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", d.Kind),
		slog.String("context", d.Context),
		slog.String("cause", d.Cause),
		slog.String("suggestion", d.Suggestion),
	)
}

// Block renders d in the multi-line form printed by the CLI on a hard failure.
func (d *Diagnostic) Block() string {
	var b strings.Builder

	b.WriteString("\n--- ERROR ---\n\n")
	fmt.Fprintf(&b, "Error Type: %s\n\n", d.Kind)
	fmt.Fprintf(&b, "Context: %s\n\n", d.Context)
	fmt.Fprintf(&b, "Why: %s\n\n", d.Cause)
	fmt.Fprintf(&b, "Suggestion: %s\n\n", d.Suggestion)
	b.WriteString("-------------\n")

	return b.String()
}

// As extracts a *Diagnostic from err.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}

	return nil, false
}

// Diagnostics is an ordered collection of diagnostics.
type Diagnostics struct {
	Items []Diagnostic
}

// Add appends d.
func (ds *Diagnostics) Add(d *Diagnostic) {
	if d == nil {
		return
	}

	ds.Items = append(ds.Items, *d)
}

// AddWarning adds a warning diagnostic.
func (ds *Diagnostics) AddWarning(kind, context, cause, suggestion string) {
	ds.Add(Warning(kind, context, cause, suggestion))
}

// AddInfo adds an info diagnostic.
func (ds *Diagnostics) AddInfo(kind, context, cause, suggestion string) {
	ds.Add(Info(kind, context, cause, suggestion))
}

// Merge merges another Diagnostics instance into this one.
func (ds *Diagnostics) Merge(other Diagnostics) {
	ds.Items = append(ds.Items, other.Items...)
}

// Errors returns the error diagnostics.
func (ds Diagnostics) Errors() []Diagnostic { return ds.filter(SeverityError) }

// Warnings returns the warning diagnostics.
func (ds Diagnostics) Warnings() []Diagnostic { return ds.filter(SeverityWarning) }

// Infos returns the info diagnostics.
func (ds Diagnostics) Infos() []Diagnostic { return ds.filter(SeverityInfo) }

// Kinds returns the kind of every diagnostic, in order.
func (ds Diagnostics) Kinds() []string {
	kinds := make([]string, 0, len(ds.Items))
	for _, d := range ds.Items {
		kinds = append(kinds, d.Kind)
	}

	return kinds
}

// HasErrors returns true if there are any error diagnostics.
func (ds Diagnostics) HasErrors() bool {
	return len(ds.Errors()) > 0
}

// Err returns the first error diagnostic, or nil.
func (ds Diagnostics) Err() error {
	for i := range ds.Items {
		if ds.Items[i].Severity == SeverityError {
			d := ds.Items[i]
			return &d
		}
	}

	return nil
}

func (ds Diagnostics) filter(sev Severity) []Diagnostic {
	var out []Diagnostic

	for _, d := range ds.Items {
		if d.Severity == sev {
			out = append(out, d)
		}
	}

	return out
}
