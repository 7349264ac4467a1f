package record

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"csvjson/internal/diagnostic"
)

// StdoutPath makes WriteFile write to standard output.
const StdoutPath = "-"

// Document is the output shape: {"data": [row, ...]}.
type Document struct {
	Data []*Object `json:"data"`
}

// NewDocument wraps rows; a nil slice is emitted as an empty array.
func NewDocument(rows []*Object) Document {
	if rows == nil {
		rows = []*Object{}
	}

	return Document{Data: rows}
}

// Encode writes doc to w. pretty indents with two spaces.
func Encode(w io.Writer, doc Document, pretty bool) error {
	if doc.Data == nil {
		doc.Data = []*Object{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(doc); err != nil {
		return diagnostic.Error(diagnostic.KindEncodeOutput,
			"whilst trying to encode the output json",
			err.Error(),
			"check that configured default values are valid json")
	}

	return nil
}

// WriteFile writes doc to path, or to stdout when path is StdoutPath. The
// file is only created once encoding succeeded.
func WriteFile(path string, doc Document, pretty bool) error {
	if path == StdoutPath {
		return Encode(os.Stdout, doc, pretty)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".csvjson-*")
	if err != nil {
		return writeError(path, err)
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, doc, pretty); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return writeError(path, err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return writeError(path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return writeError(path, err)
	}

	return nil
}

func writeError(path string, err error) *diagnostic.Diagnostic {
	return diagnostic.Error(diagnostic.KindWriteOutput,
		fmt.Sprintf("whilst trying to write %s", path),
		err.Error(),
		"ensure the output directory exists and is writable")
}
