package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"csvjson/internal/diagnostic"
	"csvjson/internal/schema"
)

// DefaultOutputPath is used when no output path is given.
const DefaultOutputPath = "data.json"

// Args are the user inputs to a conversion.
type Args struct {
	// CSVPath is the CSV file to convert.
	CSVPath string
	// ConfigPath is the schema config file; empty means none was given.
	ConfigPath string
	// OutPath is the JSON file to write; empty means DefaultOutputPath.
	OutPath string
	// Dialect controls CSV parsing.
	Dialect Dialect
}

// FormattedInput is everything the row assembler needs. It is built once
// and not modified afterwards.
type FormattedInput struct {
	// Schema has one resolved definition per CSV column.
	Schema []schema.Definition
	// Headers is the CSV header row.
	Headers []string
	// Records are the raw rows that parsed successfully.
	Records [][]string
	// OutputPath is where the JSON document should go.
	OutputPath string
	// Diagnostics lists every soft failure met while reading and resolving.
	Diagnostics diagnostic.Diagnostics
}

// Handle reads the inputs described by args and resolves the schema. Soft
// failures are logged to logger as they occur and collected in the result;
// hard failures are returned as *diagnostic.Diagnostic.
func Handle(ctx context.Context, logger *slog.Logger, args Args) (*FormattedInput, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	f, err := os.Open(args.CSVPath)
	if err != nil {
		return nil, diagnostic.Error(diagnostic.KindCSVNotFound,
			"whilst trying to read csv data",
			fmt.Sprintf("file not found: %v", err),
			"specify a valid path to the csv file you want to convert")
	}
	defer f.Close()

	table, err := ReadTable(ctx, f, args.Dialect, logger)
	if err != nil {
		return nil, err
	}

	out := &FormattedInput{
		Headers:     table.Headers,
		Records:     table.Records,
		OutputPath:  DefaultOutputPath,
		Diagnostics: table.Diagnostics,
	}

	if args.OutPath != "" {
		out.OutputPath = args.OutPath
	}

	opts, err := loadOptions(ctx, logger, args.ConfigPath, &out.Diagnostics)
	if err != nil {
		return nil, err
	}

	defs, diags := schema.Resolve(opts, table.Headers, len(table.Headers))
	diagnostic.ReportAll(ctx, logger, diags)

	out.Schema = defs
	out.Diagnostics.Merge(diags)

	if err := out.Diagnostics.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// loadOptions reads the config file. A missing path or an unparsable file
// yields no options; an unreadable file is fatal.
func loadOptions(
	ctx context.Context,
	logger *slog.Logger,
	path string,
	diags *diagnostic.Diagnostics,
) ([]schema.Options, error) {
	if path == "" {
		d := diagnostic.Warning(diagnostic.KindMissingConfig,
			"whilst looking for the config json",
			"file not specified",
			"specify the config file with the --config option")
		diagnostic.Report(ctx, logger, d, "will proceed with generating default options")
		diags.Add(d)

		return nil, nil
	}

	opts, err := schema.LoadFile(path)
	switch {
	case err == nil:
		empty := 0
		for _, o := range opts {
			if o.IsEmpty() {
				empty++
			}
		}

		logger.DebugContext(ctx, "config loaded",
			slog.String("path", path),
			slog.Int("entries", len(opts)),
			slog.Int("empty", empty),
		)

		return opts, nil
	case errors.Is(err, schema.ErrUnreadable):
		return nil, diagnostic.Error(diagnostic.KindOpenConfig,
			"whilst trying to read the config file",
			err.Error(),
			"ensure the specified file is valid")
	default:
		d := diagnostic.Warning(diagnostic.KindParseConfig,
			"whilst trying to parse the config file",
			err.Error(),
			"ensure the config syntax is correct")
		diagnostic.Report(ctx, logger, d, "will proceed with default configs")
		diags.Add(d)

		return nil, nil
	}
}
