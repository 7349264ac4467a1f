package coerce

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"csvjson/internal/schema"
)

func newBufferedEngine(buf *bytes.Buffer) *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func TestEngine_Value_FallsBackToDefault(t *testing.T) {
	e := NewEngine(nil)
	ctx := context.Background()

	defaults := []any{nil, float64(0), "", "n/a", false, map[string]any{"missing": true}}
	cases := []struct {
		def       schema.Definition
		malformed []string
	}{
		{schema.Definition{Type: schema.TypeInteger}, []string{"", "garbage", "1.2", "99999999999999999999", "-"}},
		{schema.Definition{Type: schema.TypeFloat}, []string{"", "garbage", "1.2.3", ".", "-"}},
		{schema.Definition{Type: schema.TypeBool, TrueToken: "true", FalseToken: "false"}, []string{"", "TRUE", "yes", "1"}},
		{schema.Definition{Type: schema.TypeDate, DateFormat: "%Y-%m-%d"}, []string{"", "garbage", "2020/01/15", "2020-02-31", "2021-02-29", "2021-04-31"}},
	}

	for _, tc := range cases {
		for _, dv := range defaults {
			def := tc.def
			def.Default = dv
			for _, raw := range tc.malformed {
				assert.Equal(t, dv, e.Value(ctx, def, raw), "type %s raw %q", def.Type, raw)
			}
		}
	}
}

func TestEngine_Value_ImpossibleDateUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	e := newBufferedEngine(&buf)

	joined := schema.Definition{
		Type:       schema.TypeDate,
		Name:       "joined",
		DateFormat: schema.DefaultDateFormat,
		Default:    "unknown",
	}

	for _, raw := range []string{"31/02/2020", "29/02/2021", "31/04/2021"} {
		assert.Equal(t, "unknown", e.Value(context.Background(), joined, raw), raw)
	}

	assert.Equal(t, int64(1582934400), e.Value(context.Background(), joined, "29/02/2020"))
	assert.Equal(t, 3, strings.Count(buf.String(), "parse-date-err"))
}

func TestEngine_Value_Scenario(t *testing.T) {
	e := NewEngine(nil)
	ctx := context.Background()

	age := schema.Definition{Type: schema.TypeInteger, Name: "age", Default: float64(0)}
	assert.Equal(t, float64(0), e.Value(ctx, age, "notanumber"))
	assert.Equal(t, int32(31), e.Value(ctx, age, "31"))

	active := schema.Definition{Type: schema.TypeBool, Name: "active", TrueToken: "true", FalseToken: "false"}
	assert.Equal(t, true, e.Value(ctx, active, "true"))
	assert.Nil(t, e.Value(ctx, active, "TRUE"))
}

func TestEngine_Value_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	e := newBufferedEngine(&buf)
	ctx := context.Background()

	e.Value(ctx, schema.Definition{Type: schema.TypeInteger, Name: "age"}, "abc")
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "sanitise-i32-error")
	assert.Contains(t, out, "column age")
	assert.Contains(t, out, "using default value")

	buf.Reset()
	e.Value(ctx, schema.Definition{Type: schema.TypeBool, Name: "flag", TrueToken: "y", FalseToken: "n"}, "maybe")
	out = buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "parse-bool-err")

	buf.Reset()
	e.Value(ctx, schema.Definition{Type: schema.TypeString, Name: "s"}, "anything")
	assert.Empty(t, buf.String())
}

func TestEngine_Value_BoolMismatchHiddenAtInfo(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	e.Value(context.Background(), schema.Definition{Type: schema.TypeBool, TrueToken: "y", FalseToken: "n"}, "")
	assert.Empty(t, buf.String())
}
