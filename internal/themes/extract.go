package themes

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when the text holds no balanced JSON object.
var ErrNoJSONObject = errors.New("themes: no JSON object in model output")

// ExtractJSONObject returns the first substring of text that is a balanced
// {...} object and parses as JSON. Braces inside string literals are ignored,
// so prose before or after the object and nested or quoted braces are fine.
func ExtractJSONObject(text string) (string, error) {
	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end, ok := matchObject(text, start); ok {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, nil
			}
		}

		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", ErrNoJSONObject
}

// matchObject returns the index of the brace closing the object opened at
// text[start].
func matchObject(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
