package schema

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=ColumnType -linecomment -output=type_string.go

// ColumnType is the JSON type a column is coerced into.
type ColumnType int

const (
	_ ColumnType = iota // zero value is not a valid column type

	TypeString  // string
	TypeInteger // integer
	TypeFloat   // float
	TypeDate    // date
	TypeBool    // bool
)

// DefaultType is used for columns whose type is not configured.
const DefaultType = TypeString

var columnTypeByTag = map[string]ColumnType{
	TypeString.String():  TypeString,
	TypeInteger.String(): TypeInteger,
	TypeFloat.String():   TypeFloat,
	TypeDate.String():    TypeDate,
	TypeBool.String():    TypeBool,
}

// ParseColumnType maps a lowercase tag onto a ColumnType. Tags are case-sensitive.
func ParseColumnType(tag string) (ColumnType, error) {
	t, ok := columnTypeByTag[tag]
	if !ok {
		return 0, fmt.Errorf("unknown column type %q, expected one of string, integer, float, date, bool", tag)
	}

	return t, nil
}

// IsValid returns true if t is one of the declared column types.
func (t ColumnType) IsValid() bool {
	return t >= TypeString && t <= TypeBool
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ColumnType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("column type must be a string: %w", err)
	}

	parsed, err := ParseColumnType(tag)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t ColumnType) MarshalJSON() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid column type %d", int(t))
	}

	return json.Marshal(t.String())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *ColumnType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("column type must be a string, got %v", node.Kind)
	}

	parsed, err := ParseColumnType(node.Value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
