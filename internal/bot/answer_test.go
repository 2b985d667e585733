package bot

import (
	"testing"

	"trivia-bot/internal/session"

	"gopkg.in/telebot.v4"
)

func newAnswerStore() *session.Store {
	store := session.NewStore()
	store.Put("poll-1", session.Session{
		ChatID:        -100123,
		MessageID:     42,
		Options:       []string{"London", "Paris", "Berlin", "Madrid"},
		CorrectOption: 1,
	})
	return store
}

func TestEvaluateAnswer(t *testing.T) {
	voter := &telebot.User{ID: 777, Username: "alice"}

	tests := []struct {
		name   string
		answer *telebot.PollAnswer
		award  bool
	}{
		{
			name:   "correct option",
			answer: &telebot.PollAnswer{PollID: "poll-1", Sender: voter, Options: []int{1}},
			award:  true,
		},
		{
			name:   "incorrect option",
			answer: &telebot.PollAnswer{PollID: "poll-1", Sender: voter, Options: []int{0}},
			award:  false,
		},
		{
			name:   "unknown poll id",
			answer: &telebot.PollAnswer{PollID: "poll-from-before-restart", Sender: voter, Options: []int{1}},
			award:  false,
		},
		{
			name:   "retracted vote",
			answer: &telebot.PollAnswer{PollID: "poll-1", Sender: voter, Options: []int{}},
			award:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, award := evaluateAnswer(newAnswerStore(), tt.answer)

			if award != tt.award {
				t.Fatalf("award = %v, want %v", award, tt.award)
			}
			if !tt.award && entry != nil {
				t.Errorf("entry = %+v, want nil when nothing is awarded", entry)
			}
		})
	}
}

func TestEvaluateAnswerEntry(t *testing.T) {
	store := newAnswerStore()
	answer := &telebot.PollAnswer{
		PollID:  "poll-1",
		Sender:  &telebot.User{ID: 777, Username: "alice"},
		Options: []int{1},
	}

	entry, award := evaluateAnswer(store, answer)
	if !award {
		t.Fatal("expected an award for the correct option")
	}

	if entry.UserID != 777 {
		t.Errorf("UserID = %v, want 777", entry.UserID)
	}
	if entry.ChatID != -100123 {
		t.Errorf("ChatID = %v, want the session's chat", entry.ChatID)
	}
	if entry.Username != "alice" {
		t.Errorf("Username = %v, want alice", entry.Username)
	}
}

func TestEvaluateAnswerOncePerEvent(t *testing.T) {
	store := newAnswerStore()
	answer := &telebot.PollAnswer{
		PollID:  "poll-1",
		Sender:  &telebot.User{ID: 777, Username: "alice"},
		Options: []int{1},
	}

	// One correct answer event resolves to exactly one ranking entry,
	// and the session survives for later voters.
	entry, award := evaluateAnswer(store, answer)
	if !award || entry == nil {
		t.Fatal("expected exactly one entry for a correct answer")
	}
	if _, ok := store.Get("poll-1"); !ok {
		t.Error("session must remain for other voters of the same poll")
	}
}
