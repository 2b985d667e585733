package main

import (
	"context"
	"fmt"
	"time"

	"trivia-bot/internal/config"
	"trivia-bot/internal/trivia"
	"trivia-bot/pkg/logger"
)

func main() {
	logger.Init("debug", nil)

	fmt.Println("=== Testing Trivia Client ===")
	fmt.Println()

	cfg := config.TriviaConfig{
		URL:     "https://the-trivia-api.com/v2/questions",
		Timeout: 30 * time.Second,
	}

	client := trivia.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	question, err := client.Fetch(ctx)
	if err != nil {
		logger.Error("Fetch error", logger.Err(err))
		return
	}

	fmt.Printf("✓ Question %s\n", question.ID)
	fmt.Printf("  Text: %s\n", question.Text)
	fmt.Printf("  Correct: %s\n", question.CorrectAnswer)
	for i, opt := range question.IncorrectAnswers {
		fmt.Printf("  Incorrect %d: %s\n", i+1, opt)
	}

	options, correct := question.Shuffle()
	fmt.Println("\nShuffled options:")
	for i, opt := range options {
		marker := " "
		if i == correct {
			marker = "*"
		}
		fmt.Printf("  %s %d: %s\n", marker, i, opt)
	}

	fmt.Println()
	fmt.Println("=== Test Complete ===")
}
