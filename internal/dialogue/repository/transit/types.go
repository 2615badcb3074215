package transit

// ---- Request/Response types scoped to this package ----

type geocodeResponse struct {
	Results []geocodeResultDTO `json:"results"`
}

type geocodeResultDTO struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	DisplayName string   `json:"displayName"`
}

type serviceArrivalsDTO struct {
	ServiceName string   `json:"serviceName"`
	Arrivals    []string `json:"arrivals"`
}

type routingRequest struct {
	StartCoordinates string `json:"startCoordinates"`
	EndCoordinates   string `json:"endCoordinates"`
}

type routingResponse struct {
	SuggestedRoutes []routeDTO `json:"suggestedRoutes"`
}

type routeDTO struct {
	DurationInMinutes int          `json:"durationInMinutes"`
	Summary           string       `json:"summary"`
	Legs              []routeLegDTO `json:"legs"`
}

type routeLegDTO struct {
	Type              string `json:"type"`
	DurationInMinutes int    `json:"durationInMinutes"`
	BusServiceNumber  string `json:"busServiceNumber"`
	Instruction       string `json:"instruction"`
}

type savedLocationDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type commutePlanRequest struct {
	CommutePlanName         string   `json:"commutePlanName"`
	NotifyAt                string   `json:"notifyAt"`
	StartLocationID         int64    `json:"startLocationId"`
	EndLocationID           int64    `json:"endLocationId"`
	Recurrence              bool     `json:"recurrence"`
	CommuteRecurrenceDayIDs []string `json:"commuteRecurrenceDayIds"`
}

type commutePlanResponse struct {
	ID              int64  `json:"id"`
	CommutePlanName string `json:"commutePlanName"`
	NotifyAt        string `json:"notifyAt"`
}
