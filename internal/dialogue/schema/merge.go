package schema

import "time"

// Merge folds newly extracted raw values into current, in place.
// Per key: absent/nil values are skipped (an extraction that says nothing
// never downgrades a known slot); values that fail conversion, or fail the
// future check on future-validated slots, explicitly reset the slot to
// unknown so the missing-slot resolver re-requests it. There is no
// "known but invalid" state.
func Merge(current Slots, incoming map[string]any, now time.Time) {
	for key, raw := range incoming {
		if raw == nil {
			continue
		}

		name := SlotName(key)
		if _, known := slotTypes[name]; !known {
			continue
		}

		value, ok := Convert(name, raw, now)
		if !ok {
			current[name] = nil
			continue
		}

		if futureValidated[name] && !ValidFuture(value, now) {
			current[name] = nil
			continue
		}

		current[name] = value
	}
}
