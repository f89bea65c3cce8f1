// Package jsonutil provides shared JSON decoding helpers: contextual errors
// and strict decoding for payloads read back from durable storage.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeStrict unmarshals exactly one JSON value from data into v.
// Unknown object fields and trailing data are errors.
func DecodeStrict(data []byte, v any, context string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: trailing data after JSON value", context)
	}
	return nil
}

// DecodeStrictArray strictly decodes a JSON array into a slice.
// A JSON null is rejected; an empty array is allowed.
func DecodeStrictArray[T any](data []byte, context string) ([]T, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%s: expected array, got null", context)
	}
	var entries []T
	if err := DecodeStrict(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// DecodeExactObject reads a single JSON object whose keys are exactly keys,
// matched case-sensitively. Unknown, missing and repeated keys are errors.
// Values are returned undecoded.
func DecodeExactObject(data []byte, keys []string, context string) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%s: expected object", context)
	}

	out := make(map[string]json.RawMessage, len(keys))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", context, err)
		}
		key, _ := tok.(string)
		if !slices.Contains(keys, key) {
			return nil, fmt.Errorf("%s: unknown field %q", context, key)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%s: duplicate field %q", context, key)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: field %q: %w", context, key, err)
		}
		out[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: trailing data after JSON value", context)
	}
	for _, k := range keys {
		if _, ok := out[k]; !ok {
			return nil, fmt.Errorf("%s: missing field %q", context, k)
		}
	}
	return out, nil
}

// MarshalCompact marshals v to a single-line JSON string.
func MarshalCompact(v any, context string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", context, err)
	}
	return string(b), nil
}
