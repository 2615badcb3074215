package usecase

import (
	"context"
	"strings"
	"time"

	"commute-assistant/internal/dialogue"
	"commute-assistant/internal/dialogue/conversation"
	"commute-assistant/internal/dialogue/schema"
	"commute-assistant/internal/model"
	"commute-assistant/pkg/gemini"
)

// ProcessTurn runs one request/response cycle for a user.
//
// The turn works on a private snapshot of the user's context while holding the
// per-user session lock; the snapshot is committed back only on paths where
// the turn completed, so a cancelled request or a failed extraction leaves the
// previous consistent state intact.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input dialogue.TurnInput) (dialogue.TurnOutput, error) {
	if sc.UserID == "" {
		return dialogue.TurnOutput{}, dialogue.ErrMissingUser
	}
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return dialogue.TurnOutput{}, dialogue.ErrEmptyUtterance
	}

	// Classification happens before the session lock is taken; it does not
	// depend on conversational state.
	pred, err := uc.classifier.Predict(ctx, utterance)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classifier unavailable, continuing without prediction: %v", logPrefixProcessTurn, err)
		pred.Intent, pred.Confidence = "", 0
	}

	sess, release := uc.store.Acquire(sc.UserID)
	defer release()

	snap := sess.Snapshot()
	snap.Location = input.Location

	// A confident prediction of a different intent restarts the collection:
	// history and slots are cleared. This is the only path that resets slots;
	// low-confidence or too-short utterances never override an in-progress
	// intent.
	predicted := schema.Intent(pred.Intent)
	if predicted != schema.IntentNone && predicted.Known() &&
		pred.Confidence >= uc.cfg.ConfidenceThreshold &&
		wordCount(utterance) >= uc.cfg.MinUtteranceWords &&
		predicted != snap.Intent {
		uc.l.Infof(ctx, "%s: user %s switches intent %q -> %q (confidence %.2f)",
			logPrefixProcessTurn, sc.UserID, snap.Intent, predicted, pred.Confidence)
		snap.History = nil
		snap.ClearSlots()
		snap.Intent = predicted
	}

	snap.Append(conversation.RoleUser, utterance)
	snap.Truncate(uc.cfg.HistoryLength)

	switch snap.Intent {
	case schema.IntentReset:
		sess.Commit(conversation.NewContext())
		return dialogue.TurnOutput{
			Type:    dialogue.ResponseTypeMessage,
			Message: MsgResetDone,
		}, nil

	case schema.IntentHelp, schema.IntentNone:
		reply, err := uc.llm.GenerateText(ctx, buildHelpPrompt(snap.History), &gemini.GenerationConfig{MaxOutputTokens: 300})
		if err != nil {
			uc.l.Warnf(ctx, "%s: help generation failed, using static summary: %v", logPrefixProcessTurn, err)
			reply = helpCapabilities
		}
		if ctx.Err() != nil {
			return dialogue.TurnOutput{}, ctx.Err()
		}
		sess.Commit(snap)
		return dialogue.TurnOutput{
			Type:    dialogue.ResponseTypeMessage,
			Message: reply,
		}, nil
	}

	return uc.collectSlots(ctx, sc, sess, snap)
}

// collectSlots runs the extraction → merge → missing-check loop body for one
// turn of an in-progress intent, then either executes or asks a follow-up.
func (uc *implUseCase) collectSlots(ctx context.Context, sc model.Scope, sess *conversation.Session, snap conversation.Context) (dialogue.TurnOutput, error) {
	requested := schema.FindMissing(snap.Intent, snap.Slots)
	if len(requested) == 0 {
		requested = schema.RequiredSlotNames(snap.Intent)
	}

	extractionPrompt := buildExtractionPrompt(snap.Intent, requested, snap.History, snap.Location)
	raw, err := uc.llm.GenerateText(ctx, extractionPrompt, &gemini.GenerationConfig{
		Temperature:     0.1,
		MaxOutputTokens: 256,
	})
	if err != nil {
		// Extraction failure is a normal outcome: apologize without
		// committing, so the in-progress context survives untouched.
		uc.l.Warnf(ctx, "%s: slot extraction call failed: %v", logPrefixProcessTurn, err)
		return dialogue.TurnOutput{
			Type:    dialogue.ResponseTypeMessage,
			Message: MsgExtractionFailed,
			Intent:  snap.Intent,
		}, nil
	}

	extracted := extractJSON(raw)
	if extracted == nil {
		uc.l.Warnf(ctx, "%s: unparseable extraction output: %q", logPrefixProcessTurn, raw)
		return dialogue.TurnOutput{
			Type:    dialogue.ResponseTypeMessage,
			Message: MsgExtractionFailed,
			Intent:  snap.Intent,
		}, nil
	}

	if slots := extractedSlots(extracted); len(slots) > 0 {
		schema.Merge(snap.Slots, slots, time.Now())
	}

	missing := schema.FindMissing(snap.Intent, snap.Slots)

	var reply string
	if len(missing) == 0 {
		result := uc.execute(ctx, sc, &snap)
		reply, err = uc.llm.GenerateText(ctx, buildFinalPrompt(snap.Intent, snap.Slots, result), &gemini.GenerationConfig{MaxOutputTokens: 300})
		if err != nil {
			// The handler already produced a readable summary; fall back to it.
			uc.l.Warnf(ctx, "%s: final response generation failed: %v", logPrefixProcessTurn, err)
			reply = result
		}
	} else {
		reply, err = uc.llm.GenerateText(ctx, buildFollowupPrompt(snap.Intent, snap.Slots, missing, snap.History), &gemini.GenerationConfig{MaxOutputTokens: 300})
		if err != nil {
			uc.l.Warnf(ctx, "%s: follow-up generation failed: %v", logPrefixProcessTurn, err)
			reply = staticFollowup(missing)
		}
	}

	snap.Append(conversation.RoleAssistant, reply)
	snap.Truncate(uc.cfg.HistoryLength)

	// Commit only once every external call of the turn has completed.
	if ctx.Err() != nil {
		return dialogue.TurnOutput{}, ctx.Err()
	}
	sess.Commit(snap)

	return dialogue.TurnOutput{
		Type:    dialogue.ResponseTypeMessage,
		Message: reply,
		Intent:  snap.Intent,
		Slots:   snap.Slots,
	}, nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// staticFollowup is the generator-less fallback question for missing slots.
func staticFollowup(missing []schema.SlotName) string {
	names := make([]string, len(missing))
	for i, n := range missing {
		names[i] = strings.ReplaceAll(string(n), "_", " ")
	}
	return "Could you tell me your " + strings.Join(names, " or ") + "?"
}
