package usecase

import (
	"commute-assistant/internal/dialogue"
	"commute-assistant/internal/dialogue/conversation"
	"commute-assistant/internal/dialogue/repository"
	"commute-assistant/pkg/gemini"
	pkgLog "commute-assistant/pkg/log"
)

// Config holds the dialogue tuning knobs.
type Config struct {
	// HistoryLength bounds the per-user turn history.
	HistoryLength int

	// ConfidenceThreshold is the minimum classifier confidence required for
	// a predicted intent to override the active one.
	ConfidenceThreshold float64

	// MinUtteranceWords is the minimum utterance length for an intent switch.
	MinUtteranceWords int
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier dialogue.Classifier
	llm        *gemini.Client
	transit    repository.TransitRepository
	store      *conversation.Store
	cfg        Config
}

// New creates a new dialogue UseCase instance.
func New(
	l pkgLog.Logger,
	classifier dialogue.Classifier,
	llm *gemini.Client,
	transit repository.TransitRepository,
	store *conversation.Store,
	cfg Config,
) *implUseCase {
	if cfg.HistoryLength <= 0 {
		cfg.HistoryLength = DefaultHistoryLength
	}
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if cfg.MinUtteranceWords <= 0 {
		cfg.MinUtteranceWords = DefaultMinUtteranceWords
	}
	return &implUseCase{
		l:          l,
		classifier: classifier,
		llm:        llm,
		transit:    transit,
		store:      store,
		cfg:        cfg,
	}
}

var _ dialogue.UseCase = (*implUseCase)(nil)
