package schema

// Defaults applied by the resolver.
const (
	DefaultDateFormat = "%d/%m/%Y"
	DefaultTrueToken  = "true"
	DefaultFalseToken = "false"
)

// Definition is a fully resolved column. It is built once by Resolve and
// not modified afterwards.
type Definition struct {
	// Type the cells are coerced into.
	Type ColumnType
	// Name is the JSON object key.
	Name string
	// DateFormat is only meaningful when Type is TypeDate.
	DateFormat string
	// TrueToken and FalseToken are only meaningful when Type is TypeBool.
	TrueToken  string
	FalseToken string
	// Default is the JSON value used when coercion fails.
	Default any
}
