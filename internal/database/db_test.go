package database

import (
	"errors"
	"strings"
	"testing"

	"trivia-bot/internal/models"
)

func TestConnectionError(t *testing.T) {
	baseErr := errors.New("connection refused")
	err := &ConnectionError{
		Host: "localhost",
		Port: 5432,
		Err:  baseErr,
	}

	if err.Error() == "" {
		t.Error("Expected error message")
	}

	if !errors.Is(err, baseErr) {
		t.Error("Expected underlying error to be unwrapped")
	}
}

func TestConnectionErrorMessage(t *testing.T) {
	baseErr := errors.New("connection refused")
	err := &ConnectionError{
		Host: "postgres.example.com",
		Port: 5432,
		Err:  baseErr,
	}

	errMsg := err.Error()
	if !strings.Contains(errMsg, "postgres.example.com:5432") {
		t.Errorf("Error() = %v, want host and port", errMsg)
	}
	if !strings.Contains(errMsg, "connection refused") {
		t.Errorf("Error() = %v, want underlying cause", errMsg)
	}
}

func TestFetchedQuestionModel(t *testing.T) {
	question := models.FetchedQuestion{
		QuestionID: "622a1c357cc59eab6f94ffc4",
	}

	if question.QuestionID != "622a1c357cc59eab6f94ffc4" {
		t.Errorf("QuestionID = %v", question.QuestionID)
	}
}

func TestRankingEntryModel(t *testing.T) {
	entry := models.RankingEntry{
		UserID:   123456789,
		ChatID:   -100987654321,
		Username: "testuser",
	}

	if entry.UserID != 123456789 {
		t.Errorf("UserID = %v, want 123456789", entry.UserID)
	}
	if entry.ChatID != -100987654321 {
		t.Errorf("ChatID = %v, want -100987654321", entry.ChatID)
	}
	if entry.Username != "testuser" {
		t.Errorf("Username = %v, want testuser", entry.Username)
	}
}

func TestChatRankModel(t *testing.T) {
	rank := models.ChatRank{
		Username: "alice",
		Points:   7,
	}

	if rank.Username != "alice" {
		t.Errorf("Username = %v, want alice", rank.Username)
	}
	if rank.Points != 7 {
		t.Errorf("Points = %v, want 7", rank.Points)
	}
}
