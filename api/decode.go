package api

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// fields is a JSON object split into its members.
type fields map[string]jsoniter.RawMessage

func decodeFields(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("expected a JSON object")
	}
	return f, nil
}

// lookup returns the first member present under any of names. The first name
// is canonical, the rest are aliases.
func (f fields) lookup(names ...string) (string, jsoniter.RawMessage, bool) {
	for _, name := range names {
		if raw, ok := f[name]; ok {
			return name, raw, true
		}
	}
	return "", nil, false
}

// required decodes a member that must be present and non-null.
func (f fields) required(dst any, names ...string) error {
	name, raw, ok := f.lookup(names...)
	if !ok {
		return fmt.Errorf("missing field %q", names[0])
	}
	if isNull(raw) {
		return fmt.Errorf("field %q: unexpected null", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

// optional decodes a member if present. dst should be a pointer to a pointer
// so that null and absence both leave it nil.
func (f fields) optional(dst any, names ...string) error {
	name, raw, ok := f.lookup(names...)
	if !ok || isNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

// isNull reports whether raw holds a JSON null. json-iterator hands a null
// member to RawMessage as an empty slice, so empty counts as null too.
func isNull(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
