package record

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Object is a JSON object that remembers key insertion order.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty Object sized for n keys.
func NewObject(n int) *Object {
	return &Object{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set stores v under key. Re-setting a key replaces its value but keeps the
// position of the first insertion.
func (o *Object) Set(key string, v any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}

	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := encodeTrimmed(&buf, enc, k); err != nil {
			return nil, fmt.Errorf("encode key %q: %w", k, err)
		}

		buf.WriteByte(':')

		if err := encodeTrimmed(&buf, enc, o.values[k]); err != nil {
			return nil, fmt.Errorf("encode value of %q: %w", k, err)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeTrimmed encodes v and drops the newline the encoder appends.
func encodeTrimmed(buf *bytes.Buffer, enc *json.Encoder, v any) error {
	if err := enc.Encode(v); err != nil {
		return err
	}

	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}

	return nil
}
