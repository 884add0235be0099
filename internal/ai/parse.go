// ABOUTME: Best-effort decoding of model replies into typed values.
// ABOUTME: Strips fences, slices the outer object, repairs common JSON slips.
package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when a reply contains no JSON object.
var ErrNoJSON = errors.New("no JSON object in response")

// Result is a decoded value, or the fallback when decoding failed.
type Result[T any] struct {
	Value    T
	Fallback bool
	Err      error
}

// Parse decodes the JSON object embedded in text into T. On any failure it
// returns fallback with Fallback set and the cause in Err. It never panics.
func Parse[T any](text string, fallback T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[T]{Value: fallback, Fallback: true, Err: fmt.Errorf("parse panic: %v", r)}
		}
	}()

	var v T
	if err := Decode(text, &v); err != nil {
		return Result[T]{Value: fallback, Fallback: true, Err: err}
	}
	return Result[T]{Value: v}
}

// Decode extracts the JSON object from text and unmarshals it into v,
// retrying once with light repair.
func Decode(text string, v any) error {
	obj, ok := ExtractJSON(text)
	if !ok {
		return ErrNoJSON
	}
	err := json.Unmarshal([]byte(obj), v)
	if err == nil {
		return nil
	}
	if rerr := json.Unmarshal([]byte(Repair(obj)), v); rerr != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ExtractJSON removes markdown fences and returns the text between the first
// '{' and the last '}'.
func ExtractJSON(s string) (string, bool) {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+len("```json"):]
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// Repair fixes trailing commas, unquoted keys, and bare word values outside
// string literals. Multi-word bare values are not recoverable.
func Repair(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	inStr, esc := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			b.WriteByte(c)
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}

		switch {
		case c == '"':
			inStr = true
			b.WriteByte(c)
		case c == ',':
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
			b.WriteByte(c)
		case c == '-' || isDigit(c):
			j := i + 1
			for j < len(s) && isNumberChar(s[j]) {
				j++
			}
			b.WriteString(s[i:j])
			i = j - 1
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			word := s[i:j]
			switch word {
			case "true", "false", "null":
				b.WriteString(word)
			default:
				b.WriteByte('"')
				b.WriteString(word)
				b.WriteByte('"')
			}
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNumberChar(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}
