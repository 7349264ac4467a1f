package input

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"csvjson/internal/diagnostic"
)

const utf8BOM = "\ufeff"

// Dialect controls how the CSV text is tokenized.
type Dialect struct {
	// Delimiter separates fields; zero means ','.
	Delimiter rune
	// LazyQuotes accepts quotes appearing in unquoted fields.
	LazyQuotes bool
	// AllowRagged keeps rows whose field count differs from the header
	// instead of skipping them.
	AllowRagged bool
}

// Table is the raw content of a CSV file.
type Table struct {
	Headers     []string
	Records     [][]string
	Diagnostics diagnostic.Diagnostics
}

// ReadTable reads a header row followed by data rows. An empty input has no
// columns and no rows. Rows that fail to parse are logged and skipped.
func ReadTable(ctx context.Context, r io.Reader, dialect Dialect, logger *slog.Logger) (*Table, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = dialect.LazyQuotes

	if dialect.Delimiter != 0 {
		cr.Comma = dialect.Delimiter
	}

	if dialect.AllowRagged {
		cr.FieldsPerRecord = -1
	}

	table := &Table{}

	headers, err := cr.Read()
	switch {
	case errors.Is(err, io.EOF):
		return table, nil
	case err != nil:
		return nil, diagnostic.Error(diagnostic.KindCSVHeader,
			"whilst trying to parse csv headers",
			err.Error(),
			"ensure that csv headers are valid")
	}

	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}

	table.Headers = headers

	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read csv rows: %w", err)
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, diagnostic.Error(diagnostic.KindCSVRow,
					fmt.Sprintf("parsing csv at row %d", row),
					err.Error(),
					"ensure the csv file is readable")
			}

			d := diagnostic.Warning(diagnostic.KindCSVRow,
				fmt.Sprintf("parsing csv at row %d", row),
				err.Error(),
				"ensure csv row is valid")
			diagnostic.Report(ctx, logger, d, "skipping row")
			table.Diagnostics.Add(d)

			continue
		}

		table.Records = append(table.Records, rec)
	}

	return table, nil
}
