package schema

import "time"

// Intent is the user's recognized task category.
type Intent string

const (
	IntentRouteInfo       Intent = "route_info"
	IntentScheduleCommute Intent = "schedule_commute"
	IntentNextBus         Intent = "next_bus"
	IntentHelp            Intent = "help"
	IntentReset           Intent = "reset"
)

// IntentNone marks a context with no active intent yet.
const IntentNone Intent = ""

// Known reports whether the intent is part of the closed set.
func (i Intent) Known() bool {
	switch i {
	case IntentRouteInfo, IntentScheduleCommute, IntentNextBus, IntentHelp, IntentReset:
		return true
	}
	return false
}

// SlotName identifies one typed piece of information an intent needs.
type SlotName string

const (
	SlotStartLocation        SlotName = "start_location"
	SlotEndLocation          SlotName = "end_location"
	SlotNotificationStart    SlotName = "notification_start_time"
	SlotArrivalTime          SlotName = "arrival_time"
	SlotBusServiceNumber     SlotName = "bus_service_number"
	SlotBoardingBusStopName  SlotName = "boarding_bus_stop_name"
	SlotBoardingBusStopCode  SlotName = "boarding_bus_stop_code"
	SlotCommutePlanName      SlotName = "commute_plan_name"
	SlotRecurrenceDays       SlotName = "recurrence_days"
)

// Type is a closed variant over the slot value types. Each variant carries its
// own conversion function, so adding a type means adding a variant here and
// nowhere else.
type Type struct {
	name    string
	convert func(raw any, now time.Time) (any, bool)
}

// Name returns the type's wire name.
func (t Type) Name() string { return t.name }

// Convert parses a raw extracted value into this type. ok is false when the
// value cannot be interpreted; callers must treat that as "unknown".
func (t Type) Convert(raw any, now time.Time) (any, bool) {
	return t.convert(raw, now)
}

// Slots maps every known slot name to its current typed value.
// nil means "not yet known"; an empty string or list never stands in for it.
type Slots map[SlotName]any

// Requirement is one slot requirement of an intent: a single slot when Names
// has one element, otherwise an alternation group of which at least one member
// must be filled.
type Requirement struct {
	Names []SlotName
}

func one(n SlotName) Requirement {
	return Requirement{Names: []SlotName{n}}
}

func oneOf(names ...SlotName) Requirement {
	return Requirement{Names: names}
}
