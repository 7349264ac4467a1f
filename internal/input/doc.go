// Package input reads the CSV and the optional config file, resolves the
// schema and hands back everything the row assembler needs.
//
// Failures opening the CSV, reading its header or reading the config file
// abort the run. Everything else (a bad row, a missing or malformed config,
// schema gaps) is logged and replaced by a fallback.
package input
