package repository

import (
	"context"
	"errors"

	"commute-assistant/internal/model"
)

// ErrNotFound is returned when a lookup succeeds but matches nothing.
var ErrNotFound = errors.New("no matching results")

// TransitRepository is the interface to the transit backend's domain APIs.
// Every call forwards the caller's auth token verbatim; the backend owns
// verification.
type TransitRepository interface {
	// Geocode resolves a free-form location name to coordinates.
	Geocode(ctx context.Context, token, locationName string) (GeocodeResult, error)

	// BusArrivals fetches upcoming arrivals for a stop, optionally filtered
	// by service number.
	BusArrivals(ctx context.Context, token, stopQuery, serviceNo string) ([]ServiceArrivals, error)

	// Routing suggests routes between two coordinate pairs.
	Routing(ctx context.Context, token string, start, end model.Coordinates) ([]Route, error)

	// SavedLocations lists the user's saved locations.
	SavedLocations(ctx context.Context, token string) ([]SavedLocation, error)

	// CreateCommutePlan creates a commute plan for the user.
	CreateCommutePlan(ctx context.Context, token string, opt CreateCommutePlanOptions) (CommutePlan, error)
}

// GeocodeResult is one resolved location.
type GeocodeResult struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// ServiceArrivals holds the upcoming arrival timestamps of one bus service.
type ServiceArrivals struct {
	ServiceName string
	Arrivals    []string // RFC3339 ETA strings, soonest first
}

// RouteLeg is one leg of a suggested route.
type RouteLeg struct {
	Type              string
	DurationInMinutes int
	BusServiceNumber  string
	Instruction       string
}

// Route is one suggested route.
type Route struct {
	DurationInMinutes int
	Summary           string
	Legs              []RouteLeg
}

// SavedLocation is one of the user's saved locations.
type SavedLocation struct {
	ID   int64
	Name string
}

// CreateCommutePlanOptions is the input for commute plan creation.
type CreateCommutePlanOptions struct {
	Name             string
	NotifyAt         string // HH:MM
	StartLocationID  int64
	EndLocationID    int64
	Recurrence       bool
	RecurrenceDayIDs []string
}

// CommutePlan is a created commute plan.
type CommutePlan struct {
	ID       int64
	Name     string
	NotifyAt string
}
