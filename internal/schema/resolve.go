package schema

import (
	"fmt"
	"strconv"

	"csvjson/internal/common"
	"csvjson/internal/diagnostic"
)

const checkingSchema = "while checking schema"

// Resolve reconciles the user entries with the CSV structure and returns
// exactly columns definitions. Entries are matched by position: missing
// trailing entries are padded with empty Options, extra ones are dropped.
// Every gap is recorded in the returned diagnostics.
func Resolve(raw []Options, headers []string, columns int) ([]Definition, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if columns < 0 {
		columns = 0
	}

	opts, cmp := common.Resize(raw, columns)

	switch cmp {
	case -1:
		diags.AddWarning(diagnostic.KindSchemaLength, checkingSchema,
			fmt.Sprintf("schema length %d is shorter than the %d columns in the csv", len(raw), columns),
			"ensure that the schema is of the correct length")
	case 1:
		diags.AddWarning(diagnostic.KindSchemaLength, checkingSchema,
			fmt.Sprintf("schema length %d is longer than the %d columns in the csv", len(raw), columns),
			"ensure that the schema is of the correct length")
	}

	defs := make([]Definition, 0, columns)
	for i := range opts {
		defs = append(defs, resolveColumn(i, opts[i], headers, &diags))
	}

	return defs, diags
}

// resolveColumn fills one Definition from its options, the header row and
// the package defaults.
func resolveColumn(i int, opt Options, headers []string, diags *diagnostic.Diagnostics) Definition {
	def := Definition{
		Type:       DefaultType,
		Name:       strconv.Itoa(i),
		DateFormat: DefaultDateFormat,
		TrueToken:  DefaultTrueToken,
		FalseToken: DefaultFalseToken,
	}

	// Name: config, then header, then the column index.
	if opt.Name != nil {
		def.Name = *opt.Name
	} else if h, ok := common.At(headers, i); ok {
		def.Name = h
		diags.AddInfo(diagnostic.KindColNameHeader, checkingSchema,
			fmt.Sprintf("no name given for column %d, using csv name %q", i, h),
			"set the name key to choose a different JSON key")
	} else {
		diags.AddWarning(diagnostic.KindColNoName, checkingSchema,
			fmt.Sprintf("column %d has no name, using %q", i, def.Name),
			"ensure that column is given a name either through the csv or through the schema config")
	}

	if opt.Type != nil && opt.Type.IsValid() {
		def.Type = *opt.Type
	} else {
		diags.AddInfo(diagnostic.KindColNoType, checkingSchema,
			fmt.Sprintf("no type given for %s, using %s", def.Name, DefaultType),
			"set the type key to one of string, integer, float, date, bool")
	}

	if opt.Default != nil {
		def.Default = opt.Default
	} else {
		diags.AddInfo(diagnostic.KindColNoDefault, checkingSchema,
			fmt.Sprintf("no default for %s, using null", def.Name),
			"set the default key to choose the value emitted for unparsable cells")
	}

	switch def.Type {
	case TypeDate:
		if opt.Format != nil {
			def.DateFormat = *opt.Format
		} else {
			diags.AddWarning(diagnostic.KindDateNoFormat, checkingSchema,
				fmt.Sprintf("column %s is a date column but no format was given, using %s", def.Name, DefaultDateFormat),
				"ensure that date columns have a specified format via the format key")
		}
	case TypeBool:
		if opt.TrueString != nil {
			def.TrueToken = *opt.TrueString
		} else {
			diags.AddInfo(diagnostic.KindBoolNoTrue, checkingSchema,
				fmt.Sprintf("column %s was not given trueString, using %q", def.Name, DefaultTrueToken),
				"set the trueString key to match the csv's true value")
		}

		if opt.FalseString != nil {
			def.FalseToken = *opt.FalseString
		} else {
			diags.AddInfo(diagnostic.KindBoolNoFalse, checkingSchema,
				fmt.Sprintf("column %s was not given falseString, using %q", def.Name, DefaultFalseToken),
				"set the falseString key to match the csv's false value")
		}
	}

	return def
}
