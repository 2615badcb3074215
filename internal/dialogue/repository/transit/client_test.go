package transit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commute-assistant/internal/dialogue/repository"
	"commute-assistant/internal/model"
)

func TestGeocode(t *testing.T) {
	t.Run("first result wins", func(t *testing.T) {
		var gotAuth, gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.Query().Get("locationName")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": [
				{"latitude": 1.3521, "longitude": 103.8198, "displayName": "Singapore"},
				{"latitude": 1.29, "longitude": 103.85, "displayName": "Somewhere else"}
			]}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, 0, 0)
		got, err := c.Geocode(context.Background(), "Bearer tok", "Singapore")
		if err != nil {
			t.Fatalf("Geocode() error = %v", err)
		}
		if got.Latitude != 1.3521 || got.Longitude != 103.8198 {
			t.Errorf("coordinates = (%v, %v), want first result", got.Latitude, got.Longitude)
		}
		if gotAuth != "Bearer tok" {
			t.Errorf("Authorization = %q, want the token forwarded verbatim", gotAuth)
		}
		if gotQuery != "Singapore" {
			t.Errorf("locationName = %q, want Singapore", gotQuery)
		}
	})

	t.Run("no results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, 0, 0)
		_, err := c.Geocode(context.Background(), "", "Atlantis")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("result without coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": [{"displayName": "No coords"}]}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, 0, 0)
		_, err := c.Geocode(context.Background(), "", "Nowhere")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestBusArrivals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("busStopQuery"); got != "83139" {
			t.Errorf("busStopQuery = %q, want 83139", got)
		}
		if got := r.URL.Query().Get("serviceNo"); got != "189" {
			t.Errorf("serviceNo = %q, want 189", got)
		}
		w.Write([]byte(`[{"serviceName": "189", "arrivals": ["2026-09-01T08:05:00+08:00"]}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 0, 0)
	got, err := c.BusArrivals(context.Background(), "", "83139", "189")
	if err != nil {
		t.Fatalf("BusArrivals() error = %v", err)
	}
	if len(got) != 1 || got[0].ServiceName != "189" || len(got[0].Arrivals) != 1 {
		t.Errorf("arrivals = %+v, want one service with one ETA", got)
	}
}

func TestRouting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Write([]byte(`{"suggestedRoutes": [{
			"durationInMinutes": 35,
			"summary": "Bus 189 then walk",
			"legs": [
				{"type": "WALK", "durationInMinutes": 5},
				{"type": "BUS", "durationInMinutes": 25, "busServiceNumber": "189"}
			]
		}]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 0, 0)
	got, err := c.Routing(context.Background(), "",
		model.Coordinates{Latitude: 1.30, Longitude: 103.76},
		model.Coordinates{Latitude: 1.28, Longitude: 103.85})
	if err != nil {
		t.Fatalf("Routing() error = %v", err)
	}
	if len(got) != 1 || len(got[0].Legs) != 2 {
		t.Fatalf("routes = %+v, want one route with two legs", got)
	}
	if got[0].Legs[1].BusServiceNumber != "189" {
		t.Errorf("bus leg = %+v, want service 189", got[0].Legs[1])
	}
}

func TestCreateCommutePlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 7, "commutePlanName": "Morning run", "notifyAt": "07:45"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 0, 0)
	got, err := c.CreateCommutePlan(context.Background(), "", repository.CreateCommutePlanOptions{
		Name:            "Morning run",
		NotifyAt:        "07:45",
		StartLocationID: 1,
		EndLocationID:   2,
	})
	if err != nil {
		t.Fatalf("CreateCommutePlan() error = %v", err)
	}
	if got.ID != 7 || got.NotifyAt != "07:45" {
		t.Errorf("plan = %+v, want id 7 at 07:45", got)
	}
}

func TestBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL, 0, 0)
	if _, err := c.SavedLocations(context.Background(), ""); err == nil {
		t.Error("SavedLocations() error = nil, want non-2xx failure")
	}
}

func TestLookupTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	c := NewClient(server.URL, 20*time.Millisecond, 0)
	if _, err := c.Geocode(context.Background(), "", "Singapore"); err == nil {
		t.Error("Geocode() error = nil, want timeout failure")
	}
}
