package schema_test

import (
	"testing"
	"time"

	"commute-assistant/internal/dialogue/schema"
)

func TestMerge(t *testing.T) {
	now := time.Now()

	t.Run("Nil Values Never Downgrade", func(t *testing.T) {
		slots := schema.NewSlots()
		slots[schema.SlotStartLocation] = "home"

		schema.Merge(slots, map[string]any{"start_location": nil}, now)

		if slots[schema.SlotStartLocation] != "home" {
			t.Errorf("absent extraction must not clear a known slot")
		}
	})

	t.Run("Conversion Failure Invalidates", func(t *testing.T) {
		slots := schema.NewSlots()
		slots[schema.SlotArrivalTime] = now.Add(time.Hour)

		schema.Merge(slots, map[string]any{"arrival_time": "nonsense"}, now)

		if slots[schema.SlotArrivalTime] != nil {
			t.Errorf("failed conversion must reset slot to unknown, got %v", slots[schema.SlotArrivalTime])
		}
	})

	t.Run("Past Time On Future Slot Invalidates", func(t *testing.T) {
		slots := schema.NewSlots()
		past := now.Add(-time.Hour).Format(time.RFC3339)

		schema.Merge(slots, map[string]any{"notification_start_time": past}, now)

		if slots[schema.SlotNotificationStart] != nil {
			t.Errorf("past timestamp must never be retained, got %v", slots[schema.SlotNotificationStart])
		}
	})

	t.Run("Valid Values Assign", func(t *testing.T) {
		slots := schema.NewSlots()
		future := now.Add(2 * time.Hour).Format(time.RFC3339)

		schema.Merge(slots, map[string]any{
			"start_location": " Bishan ",
			"arrival_time":   future,
		}, now)

		if slots[schema.SlotStartLocation] != "Bishan" {
			t.Errorf("unexpected start_location: %v", slots[schema.SlotStartLocation])
		}
		if _, ok := slots[schema.SlotArrivalTime].(time.Time); !ok {
			t.Errorf("expected typed time, got %T", slots[schema.SlotArrivalTime])
		}
	})

	t.Run("Idempotent For Valid Updates", func(t *testing.T) {
		raw := map[string]any{
			"start_location":  "Bishan",
			"end_location":    "Changi",
			"recurrence_days": "mon,tue",
		}

		once := schema.NewSlots()
		schema.Merge(once, raw, now)
		twice := schema.NewSlots()
		schema.Merge(twice, raw, now)
		schema.Merge(twice, raw, now)

		for _, name := range schema.KnownSlots() {
			a, b := once[name], twice[name]
			switch av := a.(type) {
			case []string:
				bv := b.([]string)
				if len(av) != len(bv) {
					t.Errorf("%s: list diverged after re-merge", name)
				}
			default:
				if a != b {
					t.Errorf("%s: expected %v after re-merge, got %v", name, a, b)
				}
			}
		}
	})

	t.Run("Unknown Slot Names Ignored", func(t *testing.T) {
		slots := schema.NewSlots()
		schema.Merge(slots, map[string]any{"favourite_colour": "red"}, now)

		if _, present := slots[schema.SlotName("favourite_colour")]; present {
			t.Errorf("schema is closed, unknown names must not enter the slot map")
		}
	})
}
