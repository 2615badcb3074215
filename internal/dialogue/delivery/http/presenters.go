package http

import (
	"time"

	"commute-assistant/internal/dialogue"
	"commute-assistant/internal/model"
	"commute-assistant/pkg/response"
)

// --- Request DTOs ---

type coordinates struct {
	Latitude  float64 `json:"latitude"  binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
}

type chatReq struct {
	UserInput       string       `json:"user_input" binding:"required,max=2000"`
	CurrentLocation *coordinates `json:"current_location"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() dialogue.TurnInput {
	input := dialogue.TurnInput{
		Utterance: r.UserInput,
	}
	if r.CurrentLocation != nil {
		input.Location = &model.Coordinates{
			Latitude:  r.CurrentLocation.Latitude,
			Longitude: r.CurrentLocation.Longitude,
		}
	}
	return input
}

// --- Response DTOs ---

type chatResp struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Intent  string         `json:"intent,omitempty"`
	Slots   map[string]any `json:"slots,omitempty"`
}

func (h *handler) newChatResp(out dialogue.TurnOutput) chatResp {
	resp := chatResp{
		Type:    out.Type,
		Message: out.Message,
		Intent:  string(out.Intent),
	}
	if len(out.Slots) > 0 {
		resp.Slots = make(map[string]any, len(out.Slots))
		for name, value := range out.Slots {
			if t, ok := value.(time.Time); ok {
				value = response.DateTime(t)
			}
			resp.Slots[string(name)] = value
		}
	}
	return resp
}
