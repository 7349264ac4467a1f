// Package cli is the csvjson command line: flag and environment handling,
// logger setup and the top-level conversion run.
package cli
