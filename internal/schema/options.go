package schema

// Options is one user-supplied config entry. A nil field means "not given";
// the resolver then derives the value from the CSV header or a default.
type Options struct {
	// Type of the column.
	Type *ColumnType `json:"type,omitempty" yaml:"type,omitempty"`
	// Name is the JSON key to emit.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	// Format is the strftime-style format for date columns.
	Format *string `json:"format,omitempty" yaml:"format,omitempty"`
	// TrueString is the cell text read as true for bool columns.
	TrueString *string `json:"trueString,omitempty" yaml:"trueString,omitempty"`
	// FalseString is the cell text read as false for bool columns.
	FalseString *string `json:"falseString,omitempty" yaml:"falseString,omitempty"`
	// Default is emitted when a cell cannot be coerced. A JSON null is
	// indistinguishable from an absent key.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
}

// IsEmpty returns true if no field was given.
func (o Options) IsEmpty() bool {
	return o.Type == nil && o.Name == nil && o.Format == nil &&
		o.TrueString == nil && o.FalseString == nil && o.Default == nil
}
