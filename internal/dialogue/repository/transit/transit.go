package transit

import (
	"context"
	"fmt"
	"net/url"

	"commute-assistant/internal/dialogue/repository"
	"commute-assistant/internal/model"
)

var _ repository.TransitRepository = (*Client)(nil)

// Geocode resolves a location name via GET /api/geocode and returns the first
// match. repository.ErrNotFound when the backend has no results.
func (c *Client) Geocode(ctx context.Context, token, locationName string) (repository.GeocodeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/api/geocode?locationName=%s", c.baseURL, url.QueryEscape(locationName))

	var resp geocodeResponse
	if err := c.getJSON(ctx, token, endpoint, &resp); err != nil {
		return repository.GeocodeResult{}, fmt.Errorf("geocode %q: %w", locationName, err)
	}

	if len(resp.Results) == 0 {
		return repository.GeocodeResult{}, fmt.Errorf("geocode %q: %w", locationName, repository.ErrNotFound)
	}

	first := resp.Results[0]
	if first.Latitude == nil || first.Longitude == nil {
		return repository.GeocodeResult{}, fmt.Errorf("geocode %q: result missing coordinates: %w", locationName, repository.ErrNotFound)
	}

	return repository.GeocodeResult{
		Latitude:    *first.Latitude,
		Longitude:   *first.Longitude,
		DisplayName: first.DisplayName,
	}, nil
}

// BusArrivals fetches arrivals via GET /api/bus/arrivals.
func (c *Client) BusArrivals(ctx context.Context, token, stopQuery, serviceNo string) ([]repository.ServiceArrivals, error) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/api/bus/arrivals?busStopQuery=%s", c.baseURL, url.QueryEscape(stopQuery))
	if serviceNo != "" {
		endpoint += "&serviceNo=" + url.QueryEscape(serviceNo)
	}

	var resp []serviceArrivalsDTO
	if err := c.getJSON(ctx, token, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("bus arrivals for %q: %w", stopQuery, err)
	}

	out := make([]repository.ServiceArrivals, 0, len(resp))
	for _, svc := range resp {
		out = append(out, repository.ServiceArrivals{
			ServiceName: svc.ServiceName,
			Arrivals:    svc.Arrivals,
		})
	}
	return out, nil
}

// Routing suggests routes via POST /api/routing.
func (c *Client) Routing(ctx context.Context, token string, start, end model.Coordinates) ([]repository.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, c.routingTimeout)
	defer cancel()

	body := routingRequest{
		StartCoordinates: fmt.Sprintf("%v,%v", start.Latitude, start.Longitude),
		EndCoordinates:   fmt.Sprintf("%v,%v", end.Latitude, end.Longitude),
	}

	var resp routingResponse
	if err := c.postJSON(ctx, token, c.baseURL+"/api/routing", body, &resp); err != nil {
		return nil, fmt.Errorf("routing: %w", err)
	}

	routes := make([]repository.Route, 0, len(resp.SuggestedRoutes))
	for _, r := range resp.SuggestedRoutes {
		route := repository.Route{
			DurationInMinutes: r.DurationInMinutes,
			Summary:           r.Summary,
		}
		for _, leg := range r.Legs {
			route.Legs = append(route.Legs, repository.RouteLeg{
				Type:              leg.Type,
				DurationInMinutes: leg.DurationInMinutes,
				BusServiceNumber:  leg.BusServiceNumber,
				Instruction:       leg.Instruction,
			})
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// SavedLocations lists the user's saved locations via GET /api/user/saved-locations.
func (c *Client) SavedLocations(ctx context.Context, token string) ([]repository.SavedLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	var resp []savedLocationDTO
	if err := c.getJSON(ctx, token, c.baseURL+"/api/user/saved-locations", &resp); err != nil {
		return nil, fmt.Errorf("saved locations: %w", err)
	}

	out := make([]repository.SavedLocation, 0, len(resp))
	for _, loc := range resp {
		out = append(out, repository.SavedLocation{ID: loc.ID, Name: loc.Name})
	}
	return out, nil
}

// CreateCommutePlan creates a plan via POST /api/user/commute-plans.
func (c *Client) CreateCommutePlan(ctx context.Context, token string, opt repository.CreateCommutePlanOptions) (repository.CommutePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	body := commutePlanRequest{
		CommutePlanName:        opt.Name,
		NotifyAt:               opt.NotifyAt,
		StartLocationID:        opt.StartLocationID,
		EndLocationID:          opt.EndLocationID,
		Recurrence:             opt.Recurrence,
		CommuteRecurrenceDayIDs: opt.RecurrenceDayIDs,
	}

	var resp commutePlanResponse
	if err := c.postJSON(ctx, token, c.baseURL+"/api/user/commute-plans", body, &resp); err != nil {
		return repository.CommutePlan{}, fmt.Errorf("create commute plan: %w", err)
	}

	return repository.CommutePlan{
		ID:       resp.ID,
		Name:     resp.CommutePlanName,
		NotifyAt: resp.NotifyAt,
	}, nil
}
