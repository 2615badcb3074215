package schema

// Filled reports whether a slot value counts as known. Empty strings and
// empty lists do not.
func Filled(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	default:
		return true
	}
}

// FindMissing returns the slots still needed before the intent can execute,
// in declaration order. For an alternation group: if no member is filled,
// every member is reported (so the caller can offer all alternatives); one
// filled member satisfies the whole group. Pure function of the schema and
// the slot map.
func FindMissing(intent Intent, slots Slots) []SlotName {
	var missing []SlotName
	for _, req := range requiredSlots[intent] {
		satisfied := false
		for _, name := range req.Names {
			if Filled(slots[name]) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			missing = append(missing, req.Names...)
		}
	}
	return missing
}
