package bot

import (
	"strings"
	"testing"

	"trivia-bot/internal/config"
	"trivia-bot/internal/session"
)

func TestNewBot(t *testing.T) {
	cfg := config.BotConfig{
		Token: "test-token",
	}

	_, err := New(cfg, nil, nil, nil, session.NewStore())
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestNewBotNoToken(t *testing.T) {
	cfg := config.BotConfig{
		Token: "",
	}

	_, err := New(cfg, nil, nil, nil, nil)
	if err == nil {
		t.Error("Expected error when token is empty")
	}
}

func TestStaticCommandTexts(t *testing.T) {
	if !strings.Contains(voteText, "https://t.me/BotsArchive/2474") {
		t.Errorf("voteText = %q, want BotsArchive link", voteText)
	}
	if !strings.Contains(codeText, "https://github.com/Kekko01/Trivia-Bot-Telegram") {
		t.Errorf("codeText = %q, want the bot's Github page", codeText)
	}
}
