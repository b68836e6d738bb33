package selection

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStoreControllerIsPerSession(t *testing.T) {
	t.Parallel()

	store := NewStore("axis")
	first := store.Controller("a")
	if store.Controller("a") != first {
		t.Fatalf("expected same controller for the same session")
	}
	second := store.Controller("b")
	if second == first {
		t.Fatalf("expected distinct controllers per session")
	}

	first.Toggle("coreops")
	if !second.IsExpanded("axis") {
		t.Fatalf("toggle in one session leaked into another")
	}
	if got := store.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := store.DefaultID(); got != "axis" {
		t.Fatalf("DefaultID() = %q, want axis", got)
	}
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)}
	var counts []int
	store := NewStore("axis",
		WithClock(clock.Now),
		WithIdleTTL(time.Minute),
		WithSessionCountHook(func(n int) { counts = append(counts, n) }),
	)

	c := store.Controller("a")
	c.Toggle("coreops")
	store.Controller("b")

	clock.Advance(45 * time.Second)
	store.Controller("b")
	clock.Advance(30 * time.Second)

	if _, ok := store.Lookup("a"); ok {
		t.Fatalf("expected session a to be expired")
	}
	if _, ok := store.Lookup("b"); !ok {
		t.Fatalf("expected session b to be live")
	}
	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("Sweep() = %d, want 1", removed)
	}

	fresh := store.Controller("a")
	if !fresh.IsExpanded("axis") {
		t.Fatalf("expired session should restart with the default selection")
	}

	want := []int{1, 2, 1, 2}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("counts = %v, want %v", counts, want)
		}
	}
}

func TestStoreEvictsLeastRecentlySeen(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore("axis", WithClock(clock.Now), WithMaxSessions(2))

	store.Controller("a")
	clock.Advance(time.Second)
	store.Controller("b")
	clock.Advance(time.Second)
	store.Controller("a")
	clock.Advance(time.Second)
	store.Controller("c")

	if _, ok := store.Lookup("b"); ok {
		t.Fatalf("expected least recently seen session b to be evicted")
	}
	for _, id := range []string{"a", "c"} {
		if _, ok := store.Lookup(id); !ok {
			t.Fatalf("expected session %q to be live", id)
		}
	}
}

func TestStoreObserverAttachedToNewControllers(t *testing.T) {
	t.Parallel()

	var transitions []string
	store := NewStore("axis", WithObserver(func(change Change) {
		transitions = append(transitions, change.Toggled+":"+change.Transition())
	}))

	store.Controller("a").Toggle("axis")
	store.Controller("b").Toggle("k9trainpros")

	if len(transitions) != 2 || transitions[0] != "axis:collapse" || transitions[1] != "k9trainpros:expand" {
		t.Fatalf("transitions = %v", transitions)
	}
}

func TestStoreEnd(t *testing.T) {
	t.Parallel()

	store := NewStore("axis")
	store.Controller("a")
	store.End("a")
	store.End("missing")
	if got := store.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

func TestStoreRunStopsWithContext(t *testing.T) {
	t.Parallel()

	store := NewStore("axis")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
