package schema

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvjson/internal/diagnostic"
)

func ptr[T any](v T) *T { return &v }

func TestResolve_LengthInvariant(t *testing.T) {
	headers := []string{"a", "b", "c", "d"}

	for l := 0; l <= 6; l++ {
		for n := 0; n <= 4; n++ {
			t.Run(strconv.Itoa(l)+"x"+strconv.Itoa(n), func(t *testing.T) {
				raw := make([]Options, l)
				defs, _ := Resolve(raw, headers[:n], n)
				assert.Len(t, defs, n)
			})
		}
	}
}

func TestResolve_LengthDiagnostics(t *testing.T) {
	headers := []string{"a", "b"}

	_, diags := Resolve([]Options{{}}, headers, 2)
	require.Len(t, diags.Warnings(), 1)
	assert.Equal(t, diagnostic.KindSchemaLength, diags.Warnings()[0].Kind)
	assert.Contains(t, diags.Warnings()[0].Cause, "shorter")

	_, diags = Resolve([]Options{{}, {}, {}}, headers, 2)
	require.Len(t, diags.Warnings(), 1)
	assert.Contains(t, diags.Warnings()[0].Cause, "longer")

	_, diags = Resolve([]Options{{Name: ptr("x")}, {Name: ptr("y")}}, headers, 2)
	assert.Empty(t, diags.Warnings())
}

func TestResolve_Truncates(t *testing.T) {
	raw := []Options{{Name: ptr("first")}, {Name: ptr("dropped")}}

	defs, _ := Resolve(raw, []string{"h"}, 1)
	require.Len(t, defs, 1)
	assert.Equal(t, "first", defs[0].Name)
}

func TestResolve_NamePrecedence(t *testing.T) {
	raw := []Options{{Name: ptr("configured")}, {}, {}}
	headers := []string{"h0", "h1"}

	defs, diags := Resolve(raw, headers, 3)
	require.Len(t, defs, 3)

	assert.Equal(t, "configured", defs[0].Name)
	assert.Equal(t, "h1", defs[1].Name)
	assert.Equal(t, "2", defs[2].Name)

	assert.Contains(t, diags.Kinds(), diagnostic.KindColNameHeader)

	var noName []diagnostic.Diagnostic
	for _, d := range diags.Warnings() {
		if d.Kind == diagnostic.KindColNoName {
			noName = append(noName, d)
		}
	}
	require.Len(t, noName, 1)
	assert.Contains(t, noName[0].Cause, "column 2")
}

func TestResolve_EmptyHeaderIsStillAName(t *testing.T) {
	defs, _ := Resolve(nil, []string{""}, 1)
	require.Len(t, defs, 1)
	assert.Equal(t, "", defs[0].Name)
}

func TestResolve_ShortSchemaDefaults(t *testing.T) {
	raw := []Options{{Type: ptr(TypeInteger), Default: float64(0)}}
	headers := []string{"id", "city", "country"}

	defs, _ := Resolve(raw, headers, 3)
	require.Len(t, defs, 3)

	for i, def := range defs[1:] {
		assert.Equal(t, TypeString, def.Type)
		assert.Equal(t, headers[i+1], def.Name)
		assert.Nil(t, def.Default)
	}
}

func TestResolve_FieldDefaults(t *testing.T) {
	defs, diags := Resolve([]Options{{}}, []string{"x"}, 1)
	require.Len(t, defs, 1)

	want := Definition{
		Type:       TypeString,
		Name:       "x",
		DateFormat: DefaultDateFormat,
		TrueToken:  DefaultTrueToken,
		FalseToken: DefaultFalseToken,
		Default:    nil,
	}
	assert.Equal(t, want, defs[0])

	assert.Equal(t, []string{
		diagnostic.KindColNameHeader,
		diagnostic.KindColNoType,
		diagnostic.KindColNoDefault,
	}, diags.Kinds())
	assert.Empty(t, diags.Warnings())
}

func TestResolve_Date(t *testing.T) {
	raw := []Options{
		{Type: ptr(TypeDate), Format: ptr("%Y-%m-%d")},
		{Type: ptr(TypeDate)},
		{Type: ptr(TypeString), Format: ptr("%Y")},
	}

	defs, diags := Resolve(raw, []string{"a", "b", "c"}, 3)

	assert.Equal(t, "%Y-%m-%d", defs[0].DateFormat)
	assert.Equal(t, DefaultDateFormat, defs[1].DateFormat)
	assert.Equal(t, DefaultDateFormat, defs[2].DateFormat, "format is only read for date columns")

	warnings := diags.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, diagnostic.KindDateNoFormat, warnings[0].Kind)
	assert.Contains(t, warnings[0].Cause, "column b")
}

func TestResolve_Bool(t *testing.T) {
	raw := []Options{
		{Type: ptr(TypeBool), TrueString: ptr("Y"), FalseString: ptr("N")},
		{Type: ptr(TypeBool)},
		{TrueString: ptr("Y")},
	}

	defs, diags := Resolve(raw, []string{"a", "b", "c"}, 3)

	assert.Equal(t, "Y", defs[0].TrueToken)
	assert.Equal(t, "N", defs[0].FalseToken)
	assert.Equal(t, DefaultTrueToken, defs[1].TrueToken)
	assert.Equal(t, DefaultFalseToken, defs[1].FalseToken)
	assert.Equal(t, DefaultTrueToken, defs[2].TrueToken, "tokens are only read for bool columns")

	assert.Contains(t, diags.Kinds(), diagnostic.KindBoolNoTrue)
	assert.Contains(t, diags.Kinds(), diagnostic.KindBoolNoFalse)
}

func TestResolve_DefaultValueKept(t *testing.T) {
	raw := []Options{{Default: "n/a"}, {Default: map[string]any{"k": 1.0}}}

	defs, _ := Resolve(raw, []string{"a", "b"}, 2)
	assert.Equal(t, "n/a", defs[0].Default)
	assert.Equal(t, map[string]any{"k": 1.0}, defs[1].Default)
}

func TestResolve_NegativeColumns(t *testing.T) {
	defs, _ := Resolve([]Options{{}}, nil, -1)
	assert.Empty(t, defs)
}
