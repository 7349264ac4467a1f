// Package schema holds the per-column configuration model and the resolver
// that turns a partial user schema into one complete Definition per CSV
// column.
//
// # Config file
//
// The config file is an array whose entries are matched to CSV columns by
// position. Every key is optional:
//
//	[
//	  {"type": "integer", "name": "age", "default": 0},
//	  {"type": "date", "format": "%Y-%m-%d"},
//	  {"type": "bool", "trueString": "yes", "falseString": "no"}
//	]
//
// Files ending in .yaml or .yml are read as YAML with the same keys.
//
// # Resolution
//
// Resolve pads or truncates the user entries to the column count and fills
// every missing field with a default (name from the header, type string,
// default null, date format %d/%m/%Y, bool tokens "true"/"false"). Every gap
// is recorded as a diagnostic; resolution itself never fails.
package schema
