package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"csvjson/internal/diagnostic"
	"csvjson/internal/input"
)

// EnvPrefix prefixes the environment variable read for each flag, e.g.
// CSVJSON_LOG_LEVEL for --log-level.
const EnvPrefix = "CSVJSON_"

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"auto", "text", "json"}
)

// Settings holds the resolved command line configuration.
type Settings struct {
	ConfigPath  string
	OutPath     string
	LogLevel    string
	LogFormat   string
	Delimiter   string
	LazyQuotes  bool
	AllowRagged bool
	Workers     int
	Pretty      bool
	DumpSchema  bool
}

// DefaultSettings returns the settings used when no flag or environment
// variable overrides them.
func DefaultSettings() Settings {
	return Settings{
		OutPath:   input.DefaultOutputPath,
		LogLevel:  "warn",
		LogFormat: "auto",
		Delimiter: ",",
		Workers:   1,
	}
}

// AddFlags registers every setting on fs.
func (s *Settings) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.ConfigPath, "config", "c", s.ConfigPath, "Schema config file (.json, .yaml or .yml)")
	fs.StringVarP(&s.OutPath, "out", "o", s.OutPath, "Output JSON file, - for stdout")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&s.LogFormat, "log-format", s.LogFormat, "Log format (auto, text, json)")
	fs.StringVar(&s.Delimiter, "delimiter", s.Delimiter, "CSV field delimiter")
	fs.BoolVar(&s.LazyQuotes, "lazy-quotes", s.LazyQuotes, "Accept quotes inside unquoted fields")
	fs.BoolVar(&s.AllowRagged, "allow-ragged", s.AllowRagged, "Keep rows whose field count differs from the header")
	fs.IntVar(&s.Workers, "workers", s.Workers, "Number of rows converted in parallel")
	fs.BoolVar(&s.Pretty, "pretty", s.Pretty, "Indent the output JSON")
	fs.BoolVar(&s.DumpSchema, "dump-schema", s.DumpSchema, "Print the resolved schema to stderr")
}

// EnvName returns the environment variable consulted for a flag.
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// ApplyEnv sets every flag that was not given on the command line from its
// environment variable, if present. Flags win over the environment.
func ApplyEnv(fs *pflag.FlagSet) error {
	var errs []error

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "help" {
			return
		}

		v, ok := os.LookupEnv(EnvName(f.Name))
		if !ok {
			return
		}

		if err := fs.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", EnvName(f.Name), v, err))
		}
	})

	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}

// Validate checks the settings, returning an invalid-arguments diagnostic
// for the first problem found.
func (s *Settings) Validate() error {
	invalid := func(cause, suggestion string) error {
		return diagnostic.Error(diagnostic.KindInvalidArguments,
			"whilst checking command line arguments", cause, suggestion)
	}

	if !slices.Contains(logLevels, strings.ToLower(s.LogLevel)) {
		return invalid(fmt.Sprintf("unknown log level %q", s.LogLevel),
			"use one of debug, info, warn, error")
	}

	if !slices.Contains(logFormats, strings.ToLower(s.LogFormat)) {
		return invalid(fmt.Sprintf("unknown log format %q", s.LogFormat),
			"use one of auto, text, json")
	}

	if _, err := s.delimiter(); err != nil {
		return invalid(err.Error(), "use a single character other than a quote or a line break")
	}

	if s.Workers < 1 {
		return invalid(fmt.Sprintf("workers must be at least 1, got %d", s.Workers),
			"omit --workers to convert rows sequentially")
	}

	if s.OutPath == "" {
		return invalid("empty output path", "omit --out to write "+input.DefaultOutputPath)
	}

	return nil
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (s *Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Dialect returns the CSV dialect described by the settings. Call Validate
// first; an invalid delimiter falls back to ','.
func (s *Settings) Dialect() input.Dialect {
	r, err := s.delimiter()
	if err != nil {
		r = ','
	}

	return input.Dialect{
		Delimiter:   r,
		LazyQuotes:  s.LazyQuotes,
		AllowRagged: s.AllowRagged,
	}
}

// Args returns the orchestrator arguments for csvPath.
func (s *Settings) Args(csvPath string) input.Args {
	return input.Args{
		CSVPath:    csvPath,
		ConfigPath: s.ConfigPath,
		OutPath:    s.OutPath,
		Dialect:    s.Dialect(),
	}
}

func (s *Settings) delimiter() (rune, error) {
	if s.Delimiter == `\t` {
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(s.Delimiter)
	if size == 0 || size != len(s.Delimiter) {
		return 0, fmt.Errorf("delimiter %q must be exactly one character", s.Delimiter)
	}

	switch r {
	case utf8.RuneError, '"', '\r', '\n':
		return 0, fmt.Errorf("delimiter %q is not allowed", s.Delimiter)
	}

	return r, nil
}
