package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trivia-bot/internal/config"
	"trivia-bot/internal/database"
	"trivia-bot/internal/session"
	"trivia-bot/internal/trivia"
	"trivia-bot/pkg/logger"

	"gopkg.in/telebot.v4"
)

type Bot struct {
	settings  telebot.Settings
	questions *database.QuestionRepository
	ranking   *database.RankingRepository
	trivia    *trivia.Client
	sessions  *session.Store
	tbot      *telebot.Bot
	cfg       config.BotConfig
}

func New(cfg config.BotConfig, questions *database.QuestionRepository, ranking *database.RankingRepository, client *trivia.Client, sessions *session.Store) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	return &Bot{
		cfg:       cfg,
		questions: questions,
		ranking:   ranking,
		trivia:    client,
		sessions:  sessions,
		settings: telebot.Settings{
			Token:  cfg.Token,
			Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		},
	}, nil
}

func (b *Bot) Start() (*telebot.Bot, error) {
	tbot, err := telebot.NewBot(b.settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b.tbot = tbot
	b.setupHandlers(tbot)

	go tbot.Start()

	return tbot, nil
}

func (b *Bot) setupHandlers(bot *telebot.Bot) {
	bot.Handle(telebot.OnText, func(c telebot.Context) error {
		logger.Info("Incoming text message",
			logger.Int64("user_id", c.Sender().ID),
			logger.String("username", c.Sender().Username),
			logger.String("text", c.Text()),
		)
		return c.Send("Use /quiz to get a quiz!")
	})

	bot.Handle(telebot.OnPollAnswer, func(c telebot.Context) error {
		logger.Info("Incoming poll answer",
			logger.Int64("user_id", c.PollAnswer().Sender.ID),
			logger.String("poll_id", c.PollAnswer().PollID),
		)
		return b.handlePollAnswer(c)
	})

	bot.Handle("/start", b.handleStart)
	bot.Handle("/quiz", b.handleQuiz)
	bot.Handle("/help", b.handleHelp)
	bot.Handle("/ranking", b.handleRanking)
	bot.Handle("/points", b.handlePoints)
	bot.Handle("/vote", b.handleVote)
	bot.Handle("/code", b.handleCode)
}

func (b *Bot) handleStart(c telebot.Context) error {
	if c.Chat().Type == telebot.ChatPrivate {
		return c.Send("Hi " + c.Sender().FirstName +
			" 👋! I'm a trivia bot. I can give you a quiz. Use /quiz to get a quiz.")
	}
	return c.Send("Hi " + c.Chat().Title +
		" 👋! I'm a trivia bot. I can give you a quiz and send a group ranking. Use /quiz to get a quiz.")
}

func (b *Bot) handleQuiz(c telebot.Context) error {
	ctx := context.Background()

	question, err := b.trivia.Fetch(ctx)
	if err != nil {
		logger.Error("Failed to fetch question", logger.Err(err))
		if errors.Is(err, trivia.ErrMalformedResponse) {
			return c.Send("Invalid question format. Please try again.")
		}
		return c.Send("Failed to fetch questions from the API.")
	}

	seen, err := b.questions.IsSeen(ctx, question.ID)
	if err != nil {
		logger.Error("Failed to check question", logger.Err(err), logger.String("question_id", question.ID))
		return c.Send("Something went wrong. Please try again.")
	}
	if seen {
		return c.Send("Question already posted. Please wait for the next round.")
	}

	if err := b.questions.MarkSeen(ctx, question.ID); err != nil {
		logger.Error("Failed to record question", logger.Err(err), logger.String("question_id", question.ID))
		return c.Send("Something went wrong. Please try again.")
	}

	options, correct := question.Shuffle()

	poll := &telebot.Poll{
		Type:          telebot.PollQuiz,
		Question:      "❔ " + question.Text,
		CorrectOption: correct,
		Anonymous:     false,
	}
	poll.AddOptions(options...)

	msg, err := b.tbot.Send(c.Chat(), poll)
	if err != nil {
		logger.Error("Failed to send poll", logger.Err(err))
		return c.Send("Something went wrong. Please try again.")
	}

	b.sessions.Put(msg.Poll.ID, session.Session{
		ChatID:        c.Chat().ID,
		MessageID:     msg.ID,
		Options:       options,
		CorrectOption: correct,
	})

	logger.Info("Quiz posted",
		logger.String("question_id", question.ID),
		logger.String("poll_id", msg.Poll.ID),
		logger.Int64("chat_id", c.Chat().ID),
	)
	return nil
}

// handlePollAnswer awards one point for a correct answer. Answers for
// unknown poll ids, e.g. polls posted before a restart, are ignored.
func (b *Bot) handlePollAnswer(c telebot.Context) error {
	answer := c.PollAnswer()

	entry, award := evaluateAnswer(b.sessions, answer)
	if !award {
		logger.Debug("No point for answer", logger.String("poll_id", answer.PollID))
		return nil
	}

	ctx := context.Background()
	if err := b.ranking.AddPoint(ctx, entry); err != nil {
		logger.Error("Failed to add point",
			logger.Err(err),
			logger.Int64("user_id", entry.UserID),
			logger.Int64("chat_id", entry.ChatID),
		)
		return nil
	}

	logger.Info("Point awarded",
		logger.Int64("user_id", entry.UserID),
		logger.Int64("chat_id", entry.ChatID),
	)
	return nil
}

func (b *Bot) handleRanking(c telebot.Context) error {
	if c.Chat().Type == telebot.ChatPrivate {
		return c.Send("⚠️ This command is only for groups.")
	}

	ctx := context.Background()
	ranking, err := b.ranking.ChatRanking(ctx, c.Chat().ID)
	if err != nil {
		logger.Error("Failed to get ranking", logger.Err(err), logger.Int64("chat_id", c.Chat().ID))
		return c.Send("Something went wrong. Please try again.")
	}

	return c.Send(renderRanking(c.Chat().Title, ranking), rankingSendOptions())
}

func (b *Bot) handlePoints(c telebot.Context) error {
	ctx := context.Background()
	points, err := b.ranking.UserPoints(ctx, c.Sender().ID)
	if err != nil {
		logger.Error("Failed to get points", logger.Err(err), logger.Int64("user_id", c.Sender().ID))
		return c.Send("Something went wrong. Please try again.")
	}

	return c.Send(renderPoints(points))
}

func (b *Bot) handleHelp(c telebot.Context) error {
	return c.Send("Use /quiz to get a quiz.\n" +
		"Use /ranking to get the ranking.\n" +
		"Use /help to get this message.\n" +
		"Use /start to get this message.\n" +
		"Use /points to get the sum of your points.\n" +
		"Use /vote for voting bot, /code for get the code Github page.")
}

const (
	voteText = "If you like the bot, please vote me here: https://t.me/BotsArchive/2474"
	codeText = "If you want see or make a pull request, here the Github Page of the Bot: https://github.com/Kekko01/Trivia-Bot-Telegram"
)

func (b *Bot) handleVote(c telebot.Context) error {
	return c.Send(voteText)
}

func (b *Bot) handleCode(c telebot.Context) error {
	return c.Send(codeText)
}
