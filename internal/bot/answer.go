package bot

import (
	"trivia-bot/internal/models"
	"trivia-bot/internal/session"

	"gopkg.in/telebot.v4"
)

// evaluateAnswer resolves a poll answer against the session store and
// returns the single ranking entry to record for a correct answer. The
// second return is false when nothing is awarded: unknown poll id
// (e.g. a poll posted before a restart), retracted vote, or wrong
// option.
func evaluateAnswer(sessions *session.Store, answer *telebot.PollAnswer) (*models.RankingEntry, bool) {
	sess, ok := sessions.Get(answer.PollID)
	if !ok {
		return nil, false
	}

	if len(answer.Options) == 0 {
		return nil, false
	}

	if answer.Options[0] != sess.CorrectOption {
		return nil, false
	}

	return &models.RankingEntry{
		UserID:   answer.Sender.ID,
		ChatID:   sess.ChatID,
		Username: answer.Sender.Username,
	}, true
}
