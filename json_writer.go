package hw01

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// jsonObjectWriter helps construct a JSON object whose keys are sorted.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	fields map[string]json.RawMessage
	err    error
}

func (w *jsonObjectWriter) set(key string, raw json.RawMessage) {
	if w.fields == nil {
		w.fields = make(map[string]json.RawMessage)
	}
	w.fields[key] = raw
}

// Embed merges the fields of a raw JSON object into the current JSON object
// being built. Existing keys are overwritten.
func (w *jsonObjectWriter) Embed(rawJSON []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawJSON, &fields); err != nil {
		w.err = fmt.Errorf("failed to embed: %w", err)
		return w
	}
	for k, v := range fields {
		w.set(k, v)
	}
	return w
}

// EmbedFrom marshals the given Go value into a JSON object and then embeds
// its fields into the current JSON object being built. This is useful for
// flattening nested structures.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	rawJSON, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal for embedding: %w", err)
		return w
	}
	return w.Embed(rawJSON)
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value interface{}) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.set(key, valBytes)
	return w
}

// MarshalJSON finalizes the JSON object construction, keys in sorted order.
// It satisfies the `json.Marshaler` interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	keys := make([]string, 0, len(w.fields))
	for k := range w.fields {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, strings.Compare)

	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, _ := json.Marshal(k)
		b.Write(key)
		b.WriteByte(':')
		b.Write(w.fields[k])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
