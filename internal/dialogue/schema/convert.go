package schema

import (
	"fmt"
	"strings"
	"time"
)

// TypeString trims and stringifies. Any non-nil input converts.
var TypeString = Type{
	name: "string",
	convert: func(raw any, _ time.Time) (any, bool) {
		return strings.TrimSpace(fmt.Sprint(raw)), true
	},
}

// isoFormats are tried first for full date-time strings.
var isoFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// clockFormats are bare time-of-day shapes, tried in priority order and
// combined with today's date. Matched against the upper-cased input because
// Go's AM/PM parsing is case-sensitive.
var clockFormats = []string{
	"15:04",
	"3:04 PM",
	"3 PM",
	"3PM",
}

// TypeTimeOfDay accepts an already-typed time, an ISO-8601 date-time, or a
// bare clock string resolved against today.
var TypeTimeOfDay = Type{
	name: "time-of-day",
	convert: func(raw any, now time.Time) (any, bool) {
		if t, ok := raw.(time.Time); ok {
			return t, true
		}

		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}

		for _, layout := range isoFormats {
			if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
				return t, true
			}
		}

		upper := strings.ToUpper(s)
		for _, layout := range clockFormats {
			t, err := time.ParseInLocation(layout, upper, now.Location())
			if err != nil {
				continue
			}
			year, month, day := now.Date()
			return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, now.Location()), true
		}

		return nil, false
	},
}

// TypeStringList accepts a native list or a comma-separated string; elements
// are stringified, lower-cased and trimmed, empties dropped. Anything else
// converts to an empty list.
var TypeStringList = Type{
	name: "list-of-strings",
	convert: func(raw any, _ time.Time) (any, bool) {
		normalize := func(elems []any) []string {
			out := make([]string, 0, len(elems))
			for _, e := range elems {
				s := strings.ToLower(strings.TrimSpace(fmt.Sprint(e)))
				if s != "" {
					out = append(out, s)
				}
			}
			return out
		}

		switch v := raw.(type) {
		case []any:
			return normalize(v), true
		case []string:
			elems := make([]any, len(v))
			for i, s := range v {
				elems[i] = s
			}
			return normalize(elems), true
		case string:
			parts := strings.Split(v, ",")
			elems := make([]any, len(parts))
			for i, p := range parts {
				elems[i] = p
			}
			return normalize(elems), true
		default:
			return []string{}, true
		}
	},
}

// Convert parses a raw extracted value into the slot's declared type.
// ok is false for unknown slot names and for values the type rejects.
func Convert(name SlotName, raw any, now time.Time) (any, bool) {
	t, ok := slotTypes[name]
	if !ok {
		return nil, false
	}
	return t.Convert(raw, now)
}

// ValidFuture reports whether a temporal value lies strictly after now.
// Non-temporal values are vacuously valid.
func ValidFuture(value any, now time.Time) bool {
	if t, ok := value.(time.Time); ok {
		return t.After(now)
	}
	return true
}
