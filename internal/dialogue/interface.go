package dialogue

import (
	"context"

	"commute-assistant/internal/model"
	"commute-assistant/pkg/classifier"
)

// UseCase is the business logic interface for the dialogue domain.
type UseCase interface {
	// ProcessTurn runs one request/response cycle: classify the utterance,
	// update the user's conversation context, and produce either a follow-up
	// question or the result of an executed intent.
	ProcessTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)
}

// Classifier predicts an intent label and confidence for one utterance.
// The use case applies its own confidence and utterance-length gates before
// trusting the label.
type Classifier interface {
	Predict(ctx context.Context, text string) (classifier.Prediction, error)
}
