package dialogue

import (
	"commute-assistant/internal/dialogue/schema"
	"commute-assistant/internal/model"
)

// Response types on the wire.
const (
	ResponseTypeMessage = "message"
	ResponseTypeError   = "error"
)

// TurnInput is one inbound user utterance with its ancillary request context.
type TurnInput struct {
	Utterance string
	Location  *model.Coordinates
}

// TurnOutput is the single outward message a turn produces, together with the
// context's intent and slot values after the turn.
type TurnOutput struct {
	Type    string
	Message string
	Intent  schema.Intent
	Slots   schema.Slots
}
