// Package coerce converts raw CSV cells into typed JSON values according to
// a resolved schema.Definition.
//
// Parse is the fallible core. Engine.Value wraps it and never fails: when a
// cell cannot be converted the failure is logged and the column's default
// is returned instead, so one bad cell never aborts a table.
package coerce
