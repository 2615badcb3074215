package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"commute-assistant/internal/dialogue/conversation"
	"commute-assistant/internal/dialogue/schema"
	"commute-assistant/internal/model"
)

// helpCapabilities is the static capability summary the help prompt is built
// around, and the fallback reply when the generator is unavailable.
const helpCapabilities = `Here's what I can help you with:

1. Route Info (route_info)
   - Ask me how to get from one place to another.
   - Example: "How do I get from downtown to the airport?"

2. Schedule a Commute (schedule_commute)
   - Tell me when you need to arrive and I'll plan the timing.
   - Example: "I want to reach work by 9 AM. Notify me when to leave."

3. Next Bus Timing (next_bus)
   - Give me the bus number and stop, and I'll tell you when the next one arrives.
   - Example: "When is the next D1 bus at Clementi?"

Just ask a question and I'll guide you step by step.`

func renderHistory(history []conversation.Turn) string {
	var b strings.Builder
	for _, turn := range history {
		role := "User"
		if turn.Role == conversation.RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, turn.Content)
	}
	return b.String()
}

func slotNamesJSON(names []schema.SlotName) string {
	strs := make([]string, len(names))
	for i, n := range names {
		strs[i] = string(n)
	}
	raw, _ := json.MarshalIndent(strs, "", "  ")
	return string(raw)
}

func slotValuesJSON(slots schema.Slots) string {
	wire := make(map[string]any, len(slots))
	for name, value := range slots {
		if t, ok := value.(time.Time); ok {
			value = t.Format(time.RFC3339)
		}
		wire[string(name)] = value
	}
	raw, _ := json.MarshalIndent(wire, "", "  ")
	return string(raw)
}

// buildExtractionPrompt asks the model to pull the requested slot values out
// of the recent conversation, as JSON only.
func buildExtractionPrompt(intent schema.Intent, requested []schema.SlotName, history []conversation.Turn, location *model.Coordinates) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are a helpful assistant extracting structured information from a multi-turn conversation.

The user's intent is %q.

Extract these slot fields if the conversation provides them:
%s

Rules:
- Return ONLY a JSON object of the form {"slots": {...}}.
- Use null for any slot the conversation does not provide.
- Times must be ISO-8601 date-times or plain HH:MM strings.
- Do not invent values.
`, intent, slotNamesJSON(requested))

	if location != nil {
		fmt.Fprintf(&b, "\nThe user's current location is latitude %v, longitude %v. When the user says \"current location\", keep the literal value \"current location\".\n", location.Latitude, location.Longitude)
	}

	fmt.Fprintf(&b, "\nConversation:\n%s\nJSON:", renderHistory(history))
	return b.String()
}

// buildFollowupPrompt asks the model to request exactly the missing slots.
func buildFollowupPrompt(intent schema.Intent, slots schema.Slots, missing []schema.SlotName, history []conversation.Turn) string {
	return fmt.Sprintf(`You are an assistant helping a user with the intent %q.

Values provided so far:
%s

Some required information is still missing. Ask one natural follow-up question to collect:
%s

When the list offers alternatives (for example a stop name or a stop code), offer the user every alternative. Prompt ONLY for the missing values. Do not include explanations or labels, just write the assistant's next message.

Conversation:
%s
Assistant:`, intent, slotValuesJSON(slots), slotNamesJSON(missing), renderHistory(history))
}

// buildFinalPrompt asks the model to phrase the handler result for the user.
func buildFinalPrompt(intent schema.Intent, slots schema.Slots, handlerResult string) string {
	return fmt.Sprintf(`You are an assistant that just completed the user's request with the intent %q.

Collected values:
%s

Result from the backend:
%s

Write a short, friendly message presenting this result to the user. Do not ask for more information. Do not include explanations or labels.

Assistant:`, intent, slotValuesJSON(slots), handlerResult)
}

// buildHelpPrompt asks the model to present the capability summary in context.
func buildHelpPrompt(history []conversation.Turn) string {
	return fmt.Sprintf(`You are a commute assistant. Present the following capabilities to the user in a friendly tone, keeping the structure intact:

%s

Conversation:
%s
Assistant:`, helpCapabilities, renderHistory(history))
}
