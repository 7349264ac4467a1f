package diagnostic

// Diagnostic kinds.
const (
	KindCSVNotFound      = "csv-file-not-found"
	KindCSVHeader        = "failed-parse-csv-header"
	KindCSVRow           = "failed-parse-row"
	KindMissingConfig    = "missing-config-path"
	KindOpenConfig       = "failed-to-open-config"
	KindParseConfig      = "failed-to-parse-config"
	KindSchemaLength     = "wrong-schema-length"
	KindColNoName        = "col-no-name"
	KindColNameHeader    = "col-name-from-header"
	KindColNoType        = "col-no-type"
	KindColNoDefault     = "col-no-default"
	KindDateNoFormat     = "date-no-format"
	KindBoolNoTrue       = "bool-no-true-string"
	KindBoolNoFalse      = "bool-no-false-string"
	KindParseDate        = "parse-date-err"
	KindParseBool        = "parse-bool-err"
	KindWriteOutput      = "failed-write-output"
	KindEncodeOutput     = "failed-encode-output"
	KindInvalidArguments = "invalid-arguments"
	KindCoerce           = "coerce-error"
)

// SanitiseKind returns the kind used when a sanitised cell cannot be parsed
// as the given numeric type ("i32", "f64").
func SanitiseKind(intended string) string {
	return "sanitise-" + intended + "-error"
}
