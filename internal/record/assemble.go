package record

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"csvjson/internal/coerce"
	"csvjson/internal/schema"
)

// Assemble builds the object for one row. Only the first min(len(row),
// len(defs)) cells are used: a short row yields an object without its
// trailing keys, and duplicate column names keep the last value.
func Assemble(ctx context.Context, e *coerce.Engine, defs []schema.Definition, row []string) *Object {
	n := min(len(row), len(defs))

	obj := NewObject(n)
	for i := 0; i < n; i++ {
		obj.Set(defs[i].Name, e.Value(ctx, defs[i], row[i]))
	}

	return obj
}

// AssembleAll assembles every row, preserving input order. Up to workers
// rows are assembled concurrently; workers < 1 means one. Cancelling ctx
// stops between rows.
func AssembleAll(
	ctx context.Context,
	e *coerce.Engine,
	defs []schema.Definition,
	rows [][]string,
	workers int,
) ([]*Object, error) {
	if workers < 1 {
		workers = 1
	}

	out := make([]*Object, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range rows {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out[i] = Assemble(gctx, e, defs, rows[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble rows: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assemble rows: %w", err)
	}

	return out, nil
}
