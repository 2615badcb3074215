package conversation

import (
	"commute-assistant/internal/dialogue/schema"
	"commute-assistant/internal/model"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance of the bounded history.
type Turn struct {
	Role    string
	Content string
}

// Context is the per-user conversational state carried across turns.
type Context struct {
	Intent  schema.Intent
	Slots   schema.Slots
	History []Turn

	// Location is the caller's last reported position, refreshed per request.
	// It is ancillary context, not part of the slot set.
	Location *model.Coordinates
}

// NewContext returns an empty context: no intent, every slot unknown.
func NewContext() Context {
	return Context{
		Intent: schema.IntentNone,
		Slots:  schema.NewSlots(),
	}
}

// Clone deep-copies the context so a turn can work on a private snapshot and
// commit it back only once all external calls have succeeded.
func (c Context) Clone() Context {
	out := Context{
		Intent:  c.Intent,
		Slots:   make(schema.Slots, len(c.Slots)),
		History: make([]Turn, len(c.History)),
	}
	for name, value := range c.Slots {
		if list, ok := value.([]string); ok {
			value = append([]string(nil), list...)
		}
		out.Slots[name] = value
	}
	copy(out.History, c.History)
	if c.Location != nil {
		loc := *c.Location
		out.Location = &loc
	}
	return out
}

// Append adds one turn to the history.
func (c *Context) Append(role, content string) {
	c.History = append(c.History, Turn{Role: role, Content: content})
}

// Truncate drops the oldest turns so at most max remain.
func (c *Context) Truncate(max int) {
	if max > 0 && len(c.History) > max {
		c.History = append([]Turn(nil), c.History[len(c.History)-max:]...)
	}
}

// ClearSlots resets every slot to unknown.
func (c *Context) ClearSlots() {
	for name := range c.Slots {
		c.Slots[name] = nil
	}
}
