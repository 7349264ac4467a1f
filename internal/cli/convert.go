package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"csvjson/internal/coerce"
	"csvjson/internal/diagnostic"
	"csvjson/internal/input"
	"csvjson/internal/record"
)

var schemaDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Convert runs one conversion of csvPath with settings s. stdout receives
// the document when the output path is "-"; stderr receives the schema
// dump. Hard failures are logged and returned as *diagnostic.Diagnostic.
func Convert(ctx context.Context, logger *slog.Logger, s Settings, csvPath string, stdout, stderr io.Writer) error {
	err := convert(ctx, logger, s, csvPath, stdout, stderr)
	if d, ok := diagnostic.As(err); ok {
		diagnostic.Report(ctx, logger, d, "aborting")
	}

	return err
}

func convert(ctx context.Context, logger *slog.Logger, s Settings, csvPath string, stdout, stderr io.Writer) error {
	fi, err := input.Handle(ctx, logger, s.Args(csvPath))
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "input loaded",
		slog.Int("columns", len(fi.Schema)),
		slog.Int("rows", len(fi.Records)),
		slog.Int("warnings", len(fi.Diagnostics.Warnings())),
		slog.Int("infos", len(fi.Diagnostics.Infos())),
	)

	if s.DumpSchema {
		schemaDumper.Fdump(stderr, fi.Schema)
	}

	rows, err := record.AssembleAll(ctx, coerce.NewEngine(logger), fi.Schema, fi.Records, s.Workers)
	if err != nil {
		return err
	}

	doc := record.NewDocument(rows)

	if fi.OutputPath == record.StdoutPath {
		return record.Encode(stdout, doc, s.Pretty)
	}

	if err := record.WriteFile(fi.OutputPath, doc, s.Pretty); err != nil {
		return err
	}

	logger.InfoContext(ctx, "output written",
		slog.String("path", fi.OutputPath),
		slog.Int("rows", len(rows)),
	)

	return nil
}
