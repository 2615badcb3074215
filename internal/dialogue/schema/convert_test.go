package schema_test

import (
	"testing"
	"time"

	"commute-assistant/internal/dialogue/schema"
)

func TestConvertTimeOfDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	t.Run("Bare Clock String", func(t *testing.T) {
		v, ok := schema.Convert(schema.SlotNotificationStart, "08:30", now)
		if !ok {
			t.Fatalf("expected conversion to succeed")
		}
		got := v.(time.Time)
		want := time.Date(2026, 9, 1, 8, 30, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Twelve Hour Clock", func(t *testing.T) {
		for _, in := range []string{"8:30 pm", "8 PM", "8pm"} {
			v, ok := schema.Convert(schema.SlotArrivalTime, in, now)
			if !ok {
				t.Fatalf("expected %q to convert", in)
			}
			if v.(time.Time).Hour() != 20 {
				t.Errorf("%q: expected hour 20, got %d", in, v.(time.Time).Hour())
			}
		}
	})

	t.Run("ISO DateTime", func(t *testing.T) {
		v, ok := schema.Convert(schema.SlotArrivalTime, "2026-09-02T09:15:00", now)
		if !ok {
			t.Fatalf("expected ISO conversion to succeed")
		}
		got := v.(time.Time)
		if got.Day() != 2 || got.Hour() != 9 || got.Minute() != 15 {
			t.Errorf("unexpected parsed time: %v", got)
		}
	})

	t.Run("Already Typed Time", func(t *testing.T) {
		v, ok := schema.Convert(schema.SlotArrivalTime, now, now)
		if !ok || !v.(time.Time).Equal(now) {
			t.Errorf("expected passthrough of typed time, got %v ok=%v", v, ok)
		}
	})

	t.Run("Garbage Yields Unknown", func(t *testing.T) {
		if _, ok := schema.Convert(schema.SlotNotificationStart, "not-a-time", now); ok {
			t.Errorf("expected conversion failure")
		}
		if _, ok := schema.Convert(schema.SlotNotificationStart, 42, now); ok {
			t.Errorf("expected non-string to fail")
		}
	})
}

func TestConvertString(t *testing.T) {
	now := time.Now()

	v, ok := schema.Convert(schema.SlotStartLocation, "  Changi Airport  ", now)
	if !ok || v.(string) != "Changi Airport" {
		t.Errorf("expected trimmed string, got %v ok=%v", v, ok)
	}

	// Stringification never fails for non-nil input.
	v, ok = schema.Convert(schema.SlotBusServiceNumber, 196, now)
	if !ok || v.(string) != "196" {
		t.Errorf("expected stringified number, got %v", v)
	}
}

func TestConvertStringList(t *testing.T) {
	now := time.Now()

	t.Run("Native List", func(t *testing.T) {
		v, _ := schema.Convert(schema.SlotRecurrenceDays, []any{" Monday", "TUESDAY ", ""}, now)
		got := v.([]string)
		if len(got) != 2 || got[0] != "monday" || got[1] != "tuesday" {
			t.Errorf("unexpected list: %v", got)
		}
	})

	t.Run("Comma Separated String", func(t *testing.T) {
		v, _ := schema.Convert(schema.SlotRecurrenceDays, "mon, tue,,wed", now)
		got := v.([]string)
		if len(got) != 3 || got[2] != "wed" {
			t.Errorf("unexpected list: %v", got)
		}
	})

	t.Run("Other Input Yields Empty List", func(t *testing.T) {
		v, _ := schema.Convert(schema.SlotRecurrenceDays, 7, now)
		if got := v.([]string); len(got) != 0 {
			t.Errorf("expected empty list, got %v", got)
		}
	})
}

func TestValidFuture(t *testing.T) {
	now := time.Now()

	if schema.ValidFuture(now.Add(-time.Hour), now) {
		t.Errorf("past time must not validate")
	}
	if !schema.ValidFuture(now.Add(time.Hour), now) {
		t.Errorf("future time must validate")
	}
	if schema.ValidFuture(now, now) {
		t.Errorf("exactly now must not validate, strictly later required")
	}
	if !schema.ValidFuture("not temporal", now) {
		t.Errorf("non-temporal values are vacuously valid")
	}
}
