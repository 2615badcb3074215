package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"commute-assistant/internal/dialogue/conversation"
	"commute-assistant/internal/dialogue/repository"
	"commute-assistant/internal/dialogue/schema"
	"commute-assistant/internal/model"
)

// currentLocationKeyword lets the user refer to their reported position.
const currentLocationKeyword = "current location"

// execute dispatches a fully collected intent to its transit backend handler
// and returns a human-readable result summary. Handler failures become
// apologetic summaries, never errors: the caller always has one outward
// message to send.
func (uc *implUseCase) execute(ctx context.Context, sc model.Scope, snap *conversation.Context) string {
	switch snap.Intent {
	case schema.IntentNextBus:
		return uc.executeNextBus(ctx, sc, snap.Slots)
	case schema.IntentRouteInfo:
		return uc.executeRouteInfo(ctx, sc, snap)
	case schema.IntentScheduleCommute:
		return uc.executeScheduleCommute(ctx, sc, snap.Slots)
	default:
		return fmt.Sprintf("Intent %q is recognized, but no handler is implemented.", snap.Intent)
	}
}

func slotString(slots schema.Slots, name schema.SlotName) string {
	s, _ := slots[name].(string)
	return s
}

// executeNextBus looks up upcoming arrivals for the collected stop and
// service. When both group members are set the stop code wins: it is the more
// specific identifier.
func (uc *implUseCase) executeNextBus(ctx context.Context, sc model.Scope, slots schema.Slots) string {
	stopQuery := slotString(slots, schema.SlotBoardingBusStopCode)
	if stopQuery == "" {
		stopQuery = slotString(slots, schema.SlotBoardingBusStopName)
	}
	serviceNo := slotString(slots, schema.SlotBusServiceNumber)

	arrivals, err := uc.transit.BusArrivals(ctx, sc.AuthToken, stopQuery, serviceNo)
	if err != nil {
		uc.l.Errorf(ctx, "%s: bus arrivals lookup failed: %v", logPrefixExecute, err)
		return MsgHandlerFailed
	}
	if len(arrivals) == 0 {
		return "No upcoming buses found for the given stop and service."
	}

	now := time.Now()
	var messages []string
	for _, svc := range arrivals {
		if serviceNo != "" && !strings.EqualFold(serviceNo, svc.ServiceName) {
			continue
		}
		if len(svc.Arrivals) == 0 {
			messages = append(messages, fmt.Sprintf("No arrival times available for bus %s.", svc.ServiceName))
			continue
		}

		var minutes []int
		for _, eta := range svc.Arrivals {
			if len(minutes) == 2 {
				break
			}
			t, err := time.Parse(time.RFC3339, eta)
			if err != nil {
				continue
			}
			if m := int(t.Sub(now).Minutes()); m >= 0 {
				minutes = append(minutes, m)
			}
		}
		if len(minutes) == 0 {
			continue
		}

		msg := describeArrival(svc.ServiceName, stopQuery, minutes)
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		return "No matching bus service arrivals found."
	}
	return strings.Join(messages, " ")
}

func describeArrival(service, stop string, minutes []int) string {
	if minutes[0] == 0 {
		if len(minutes) == 1 {
			return fmt.Sprintf("Bus %s is arriving now at %s.", service, stop)
		}
		return fmt.Sprintf("Bus %s is arriving now at %s. The next one will arrive in %s.",
			service, stop, pluralMinutes(minutes[1]))
	}
	if len(minutes) == 1 {
		return fmt.Sprintf("Bus %s will arrive at %s in %s.", service, stop, pluralMinutes(minutes[0]))
	}
	return fmt.Sprintf("Bus %s will arrive at %s in %s and again in %s.",
		service, stop, pluralMinutes(minutes[0]), pluralMinutes(minutes[1]))
}

func pluralMinutes(m int) string {
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}

// executeRouteInfo geocodes both endpoints and asks the backend for suggested
// routes, rendering a per-leg summary for each.
func (uc *implUseCase) executeRouteInfo(ctx context.Context, sc model.Scope, snap *conversation.Context) string {
	start := slotString(snap.Slots, schema.SlotStartLocation)
	end := slotString(snap.Slots, schema.SlotEndLocation)

	startCoords, errMsg := uc.resolveLocation(ctx, sc, snap, start)
	if errMsg != "" {
		return errMsg
	}
	endCoords, errMsg := uc.resolveLocation(ctx, sc, snap, end)
	if errMsg != "" {
		return errMsg
	}

	routes, err := uc.transit.Routing(ctx, sc.AuthToken, startCoords, endCoords)
	if err != nil {
		uc.l.Errorf(ctx, "%s: routing failed: %v", logPrefixExecute, err)
		return MsgHandlerFailed
	}
	if len(routes) == 0 {
		return "No routes found between the specified locations."
	}

	var messages []string
	for i, route := range routes {
		var legs []string
		for _, leg := range route.Legs {
			switch {
			case leg.Type == "BUS" && leg.BusServiceNumber != "":
				legs = append(legs, fmt.Sprintf("Take bus %s for %d minutes", leg.BusServiceNumber, leg.DurationInMinutes))
			case leg.Type == "WALK":
				legs = append(legs, fmt.Sprintf("Walk for %d minutes", leg.DurationInMinutes))
			case leg.Instruction != "":
				legs = append(legs, leg.Instruction)
			default:
				legs = append(legs, fmt.Sprintf("%s for %d minutes", leg.Type, leg.DurationInMinutes))
			}
		}
		messages = append(messages, fmt.Sprintf("Route %d: %s. Total duration %d minutes. Details: %s.",
			i+1, route.Summary, route.DurationInMinutes, strings.Join(legs, "; then ")))
	}
	return strings.Join(messages, " ")
}

// resolveLocation turns a location name into coordinates, honouring the
// "current location" shortcut against the request's reported position.
// The second return value is a user-facing error message, empty on success.
func (uc *implUseCase) resolveLocation(ctx context.Context, sc model.Scope, snap *conversation.Context, name string) (model.Coordinates, string) {
	if strings.EqualFold(strings.TrimSpace(name), currentLocationKeyword) {
		if snap.Location == nil {
			return model.Coordinates{}, "Current location not available."
		}
		return *snap.Location, ""
	}

	result, err := uc.transit.Geocode(ctx, sc.AuthToken, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Coordinates{}, fmt.Sprintf("No matching location found for %q.", name)
		}
		uc.l.Errorf(ctx, "%s: geocode failed for %q: %v", logPrefixExecute, name, err)
		return model.Coordinates{}, fmt.Sprintf("Unable to reach the location service for %q. Please try again.", name)
	}
	return model.Coordinates{Latitude: result.Latitude, Longitude: result.Longitude}, ""
}

// executeScheduleCommute creates a commute plan from the collected slots,
// resolving start and end against the user's saved locations.
func (uc *implUseCase) executeScheduleCommute(ctx context.Context, sc model.Scope, slots schema.Slots) string {
	saved, err := uc.transit.SavedLocations(ctx, sc.AuthToken)
	if err != nil {
		uc.l.Errorf(ctx, "%s: saved locations lookup failed: %v", logPrefixExecute, err)
		return MsgHandlerFailed
	}

	byName := make(map[string]int64, len(saved))
	for _, loc := range saved {
		byName[strings.ToLower(loc.Name)] = loc.ID
	}

	startID, startOK := byName[strings.ToLower(slotString(slots, schema.SlotStartLocation))]
	endID, endOK := byName[strings.ToLower(slotString(slots, schema.SlotEndLocation))]
	if !startOK || !endOK {
		return "Invalid start or end location. Please choose from your saved locations."
	}

	notifyAt := ""
	if t, ok := slots[schema.SlotNotificationStart].(time.Time); ok {
		notifyAt = t.Format("15:04")
	}

	planName := slotString(slots, schema.SlotCommutePlanName)
	if planName == "" {
		planName = "My Commute Plan"
	}
	recurrenceDays, _ := slots[schema.SlotRecurrenceDays].([]string)

	plan, err := uc.transit.CreateCommutePlan(ctx, sc.AuthToken, repository.CreateCommutePlanOptions{
		Name:             planName,
		NotifyAt:         notifyAt,
		StartLocationID:  startID,
		EndLocationID:    endID,
		Recurrence:       len(recurrenceDays) > 0,
		RecurrenceDayIDs: recurrenceDays,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: commute plan creation failed: %v", logPrefixExecute, err)
		return MsgHandlerFailed
	}

	msg := fmt.Sprintf("Commute plan %q created.", plan.Name)
	if plan.NotifyAt != "" {
		msg += fmt.Sprintf(" You'll be notified at %s.", plan.NotifyAt)
	}
	return msg
}
