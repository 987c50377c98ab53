package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

var emptyArray = json.RawMessage("[]")

// stripCodeFences drops markdown fence lines (```json ... ```) around a payload.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// normalizeArray returns the JSON array carried by text. A bare array is
// returned as-is, an object holding the array under field is unwrapped and
// any other valid JSON becomes an empty array.
func normalizeArray(text, field string) (json.RawMessage, error) {
	cleaned := stripCodeFences(text)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}

	raw := json.RawMessage(cleaned)
	switch firstByte(raw) {
	case '[':
		return raw, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if inner, ok := obj[field]; ok && firstByte(inner) == '[' {
			return inner, nil
		}
	}
	return emptyArray, nil
}

func firstByte(b []byte) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
