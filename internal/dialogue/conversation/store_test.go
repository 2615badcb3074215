package conversation_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"commute-assistant/internal/dialogue/conversation"
	"commute-assistant/internal/dialogue/schema"
)

func TestSnapshotIsolation(t *testing.T) {
	store := conversation.NewStore(0, 0)

	sess, release := store.Acquire("alice")
	snap := sess.Snapshot()
	snap.Intent = schema.IntentNextBus
	snap.Slots[schema.SlotBusServiceNumber] = "D1"
	snap.Append(conversation.RoleUser, "when is the next D1")
	release()

	// Uncommitted snapshot must not be visible.
	sess, release = store.Acquire("alice")
	current := sess.Snapshot()
	if current.Intent != schema.IntentNone {
		t.Errorf("uncommitted snapshot leaked intent %q", current.Intent)
	}
	if current.Slots[schema.SlotBusServiceNumber] != nil {
		t.Errorf("uncommitted snapshot leaked slot value")
	}
	if len(current.History) != 0 {
		t.Errorf("uncommitted snapshot leaked history")
	}

	sess.Commit(snap)
	release()

	sess, release = store.Acquire("alice")
	defer release()
	if got := sess.Snapshot(); got.Intent != schema.IntentNextBus || len(got.History) != 1 {
		t.Errorf("committed state not visible: %+v", got)
	}
}

func TestTruncateKeepsNewest(t *testing.T) {
	ctx := conversation.NewContext()
	for i := 0; i < 10; i++ {
		ctx.Append(conversation.RoleUser, fmt.Sprintf("turn %d", i))
	}
	ctx.Truncate(3)

	if len(ctx.History) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(ctx.History))
	}
	if ctx.History[0].Content != "turn 7" || ctx.History[2].Content != "turn 9" {
		t.Errorf("oldest turns must drop first: %+v", ctx.History)
	}
}

func TestConcurrentTurnsSerialize(t *testing.T) {
	store := conversation.NewStore(0, 0)
	const turns = 50

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sess, release := store.Acquire("bob")
			defer release()

			snap := sess.Snapshot()
			snap.Append(conversation.RoleUser, fmt.Sprintf("turn %d", n))
			time.Sleep(time.Millisecond) // widen the race window
			sess.Commit(snap)
		}(i)
	}
	wg.Wait()

	sess, release := store.Acquire("bob")
	defer release()
	if got := len(sess.Snapshot().History); got != turns {
		t.Errorf("interleaved turns lost updates: expected %d history entries, got %d", turns, got)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	store := conversation.NewStore(0, 0)

	sess, release := store.Acquire("carol")
	snap := sess.Snapshot()
	snap.Intent = schema.IntentRouteInfo
	sess.Commit(snap)
	release()

	sess, release = store.Acquire("dave")
	defer release()
	if sess.Snapshot().Intent != schema.IntentNone {
		t.Errorf("contexts must never alias across users")
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}
}
