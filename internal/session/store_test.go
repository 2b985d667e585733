package session

import (
	"sync"
	"testing"
)

func TestStorePutGet(t *testing.T) {
	store := NewStore()

	sess := Session{
		ChatID:        -100123,
		MessageID:     42,
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: 2,
	}
	store.Put("poll-1", sess)

	got, ok := store.Get("poll-1")
	if !ok {
		t.Fatal("expected session present")
	}
	if got.ChatID != sess.ChatID {
		t.Errorf("ChatID = %v, want %v", got.ChatID, sess.ChatID)
	}
	if got.CorrectOption != 2 {
		t.Errorf("CorrectOption = %v, want 2", got.CorrectOption)
	}
	if len(got.Options) != 4 {
		t.Errorf("len(Options) = %v, want 4", len(got.Options))
	}
}

func TestStoreUnknownPoll(t *testing.T) {
	store := NewStore()

	if _, ok := store.Get("missing"); ok {
		t.Error("expected no session for unknown poll id")
	}
}

func TestStoreKeepsClosedSessions(t *testing.T) {
	store := NewStore()

	store.Put("poll-1", Session{ChatID: 1})
	store.Put("poll-2", Session{ChatID: 2})

	// Sessions live for the whole process, nothing evicts them.
	if store.Len() != 2 {
		t.Errorf("Len() = %v, want 2", store.Len())
	}
	if _, ok := store.Get("poll-1"); !ok {
		t.Error("expected poll-1 to survive")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Put("poll-1", Session{ChatID: 1, CorrectOption: 1})
		}()
		go func() {
			defer wg.Done()
			store.Get("poll-1")
		}()
	}
	wg.Wait()

	if _, ok := store.Get("poll-1"); !ok {
		t.Error("expected session after concurrent writes")
	}
}
