// Package record zips raw CSV rows against a resolved schema into ordered
// JSON objects and writes the final {"data": [...]} document.
package record
