package database

import (
	"context"
	"fmt"

	"trivia-bot/internal/config"
	"trivia-bot/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ConnectionError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to database at %s:%d: %v", e.Host, e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

type DB struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, &ConnectionError{
			Host: cfg.Host,
			Port: cfg.Port,
			Err:  err,
		}
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, &ConnectionError{
			Host: cfg.Host,
			Port: cfg.Port,
			Err:  err,
		}
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

type QuestionRepository struct {
	db *DB
}

func NewQuestionRepository(db *DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// IsSeen reports whether the trivia API question id was already posted.
func (r *QuestionRepository) IsSeen(ctx context.Context, questionID string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM fetched_questions WHERE question_id = $1)",
		questionID,
	).Scan(&exists)
	return exists, err
}

// MarkSeen records a question id. A raced duplicate surfaces as the
// unique-violation error from the driver.
func (r *QuestionRepository) MarkSeen(ctx context.Context, questionID string) error {
	_, err := r.db.Pool.Exec(ctx,
		"INSERT INTO fetched_questions (question_id) VALUES ($1)",
		questionID,
	)
	return err
}

func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM fetched_questions").Scan(&count)
	return count, err
}

type RankingRepository struct {
	db *DB
}

func NewRankingRepository(db *DB) *RankingRepository {
	return &RankingRepository{db: db}
}

// AddPoint inserts one ranking row for a correct answer and refreshes
// the username on the user's older rows.
func (r *RankingRepository) AddPoint(ctx context.Context, entry *models.RankingEntry) error {
	_, err := r.db.Pool.Exec(ctx,
		"INSERT INTO ranking (user_id, chat_id, username, date) VALUES ($1, $2, $3, NOW())",
		entry.UserID, entry.ChatID, entry.Username,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ranking row: %w", err)
	}

	_, err = r.db.Pool.Exec(ctx,
		"UPDATE ranking SET username = $1 WHERE user_id = $2",
		entry.Username, entry.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to refresh username: %w", err)
	}
	return nil
}

// ChatRanking returns per-username point counts for a chat, ordered
// descending. The dense-ranking pass depends on this ordering.
func (r *RankingRepository) ChatRanking(ctx context.Context, chatID int64) ([]models.ChatRank, error) {
	rows, err := r.db.Pool.Query(ctx,
		"SELECT username, COUNT(date) AS points FROM ranking WHERE chat_id = $1 GROUP BY username ORDER BY points DESC",
		chatID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranking []models.ChatRank
	for rows.Next() {
		var entry models.ChatRank
		if err := rows.Scan(&entry.Username, &entry.Points); err != nil {
			return nil, err
		}
		ranking = append(ranking, entry)
	}
	return ranking, rows.Err()
}

// UserPoints counts the user's ranking rows across all chats.
func (r *RankingRepository) UserPoints(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		"SELECT COUNT(date) FROM ranking WHERE user_id = $1",
		userID,
	).Scan(&count)
	return count, err
}
