package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/feral-file/ai-company/internal/domain"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// ExtractJSON finds the JSON object in a model reply.
// It accepts a raw JSON reply, a fenced code block, or prose around the first balanced object.
func ExtractJSON(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty reply", domain.ErrMalformedOutput)
	}

	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}

	for _, m := range fencedBlock.FindAllStringSubmatch(trimmed, -1) {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
	}

	if obj, ok := firstBalancedObject(trimmed); ok {
		return []byte(obj), nil
	}

	return nil, fmt.Errorf("%w: no JSON object found in reply", domain.ErrMalformedOutput)
}

// firstBalancedObject scans for the first {...} span that is valid JSON,
// ignoring braces inside string literals
func firstBalancedObject(s string) (string, bool) {
	for start := strings.IndexByte(s, '{'); start >= 0; {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(s); i++ {
			c := s[i]
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
					candidate := s[start : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate, true
					}
					i = len(s)
				}
			}
		}

		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

// Decode extracts the JSON object from a reply and decodes it into out
func Decode(text string, out any) error {
	data, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedOutput, err)
	}
	return nil
}
