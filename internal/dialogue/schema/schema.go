package schema

// Intents lists every intent the assistant recognizes, in a stable order.
var Intents = []Intent{
	IntentRouteInfo,
	IntentScheduleCommute,
	IntentNextBus,
	IntentHelp,
	IntentReset,
}

// slotTypes fixes each slot's type globally: a slot name has the same type in
// every intent it appears in.
var slotTypes = map[SlotName]Type{
	SlotStartLocation:       TypeString,
	SlotEndLocation:         TypeString,
	SlotNotificationStart:   TypeTimeOfDay,
	SlotArrivalTime:         TypeTimeOfDay,
	SlotBusServiceNumber:    TypeString,
	SlotBoardingBusStopName: TypeString,
	SlotBoardingBusStopCode: TypeString,
	SlotCommutePlanName:     TypeString,
	SlotRecurrenceDays:      TypeStringList,
}

// requiredSlots declares, per intent, the ordered slot requirements that must
// be satisfied before the intent can execute.
var requiredSlots = map[Intent][]Requirement{
	IntentRouteInfo: {
		one(SlotStartLocation),
		one(SlotEndLocation),
	},
	IntentScheduleCommute: {
		one(SlotStartLocation),
		one(SlotEndLocation),
		one(SlotNotificationStart),
		one(SlotArrivalTime),
	},
	IntentNextBus: {
		one(SlotBusServiceNumber),
		oneOf(SlotBoardingBusStopName, SlotBoardingBusStopCode),
	},
	IntentHelp:  {},
	IntentReset: {},
}

// futureValidated names the slots whose values must lie strictly in the
// future. Membership is fixed by meaning, not inferred from the time type.
var futureValidated = map[SlotName]bool{
	SlotNotificationStart: true,
	SlotArrivalTime:       true,
}

// KnownSlots returns every declared slot name, in a stable order.
func KnownSlots() []SlotName {
	return []SlotName{
		SlotStartLocation,
		SlotEndLocation,
		SlotNotificationStart,
		SlotArrivalTime,
		SlotBusServiceNumber,
		SlotBoardingBusStopName,
		SlotBoardingBusStopCode,
		SlotCommutePlanName,
		SlotRecurrenceDays,
	}
}

// NewSlots returns a slot map with an entry for every known slot, all unknown.
func NewSlots() Slots {
	s := make(Slots, len(slotTypes))
	for _, name := range KnownSlots() {
		s[name] = nil
	}
	return s
}

// TypeOf returns the declared type for a slot name.
func TypeOf(name SlotName) (Type, bool) {
	t, ok := slotTypes[name]
	return t, ok
}

// Requirements returns the ordered slot requirements of an intent.
func Requirements(intent Intent) []Requirement {
	return requiredSlots[intent]
}

// RequiredSlotNames returns the intent's requirements flattened to a single
// ordered name list, group members included individually.
func RequiredSlotNames(intent Intent) []SlotName {
	var names []SlotName
	for _, req := range requiredSlots[intent] {
		names = append(names, req.Names...)
	}
	return names
}
