package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
)

// extractJSON is the single defensive boundary between free-form model output
// and structured slot data. It tolerates markdown code fences, wrapping prose,
// truncated closing braces, a UTF-8 BOM and string-literal quoting. Any text
// it cannot coerce into a JSON object yields nil; parse failure is a normal
// outcome, never an error.
func extractJSON(text string) map[string]any {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "\ufeff")

	// Strip ```json ... ``` fences.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	// Keep only the outermost {...} span, dropping surrounding prose.
	start := strings.Index(s, "{")
	if start < 0 {
		return nil
	}
	if end := strings.LastIndex(s, "}"); end > start {
		s = s[start : end+1]
	} else {
		s = s[start:]
	}

	// Repair a truncated object by closing unbalanced braces.
	if open, closed := strings.Count(s, "{"), strings.Count(s, "}"); open > closed {
		s += strings.Repeat("}", open-closed)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err == nil {
		return out
	}

	// The model sometimes returns the object as an escaped string literal.
	if strings.Contains(s, `\"`) {
		if unquoted, err := strconv.Unquote(`"` + s + `"`); err == nil {
			if err := json.Unmarshal([]byte(unquoted), &out); err == nil {
				return out
			}
		}
	}

	return nil
}

// extractedSlots pulls the raw slot map out of a parsed extraction object.
func extractedSlots(obj map[string]any) map[string]any {
	if obj == nil {
		return nil
	}
	slots, _ := obj["slots"].(map[string]any)
	return slots
}
