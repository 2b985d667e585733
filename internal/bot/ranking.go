package bot

import (
	"fmt"
	"strings"

	"trivia-bot/internal/models"

	"gopkg.in/telebot.v4"
)

const rankingLimit = 10

// rankingSendOptions renders the t.me profile links as Markdown without
// letting Telegram attach a preview card for the first one.
func rankingSendOptions() *telebot.SendOptions {
	return &telebot.SendOptions{
		ParseMode:             telebot.ModeMarkdown,
		DisableWebPagePreview: true,
	}
}

// renderRanking formats the top 10 of a chat with dense ranking: tied
// point counts share a position, the next distinct count advances the
// position by one. The input must already be sorted descending by
// points, which the store query guarantees.
func renderRanking(chatTitle string, ranking []models.ChatRank) string {
	if len(ranking) == 0 {
		return "No points in this chat yet. Use /quiz to start!"
	}

	var sb strings.Builder
	sb.WriteString("🏅 This is the top 10 ranking for the chat " + chatTitle + ":\n")

	position := 1
	current := ranking[0].Points
	for _, row := range ranking {
		if row.Points < current {
			position++
			current = row.Points
		}
		if position > rankingLimit {
			break
		}
		fmt.Fprintf(&sb, "%d) [%s](https://t.me/%s): %d points\n",
			position, row.Username, row.Username, row.Points)
	}
	return sb.String()
}

// renderPoints never renders a numeric zero, zero points gets its own
// message.
func renderPoints(points int) string {
	if points == 0 {
		return "You have no points! ❎"
	}
	return fmt.Sprintf("You have %d points! 🧮", points)
}
