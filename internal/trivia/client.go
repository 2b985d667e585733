package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"

	"trivia-bot/internal/config"
)

var (
	// ErrFetchFailed is returned when the trivia API answers with a
	// non-200 status.
	ErrFetchFailed = errors.New("failed to fetch questions from the trivia API")
	// ErrMalformedResponse is returned when the body cannot be parsed
	// or no usable question is present.
	ErrMalformedResponse = errors.New("malformed trivia API response")
)

// Question is one normalized trivia question.
type Question struct {
	ID               string
	Text             string
	CorrectAnswer    string
	IncorrectAnswers []string
}

// Shuffle returns all answer options in random order together with the
// index of the correct one.
func (q *Question) Shuffle() ([]string, int) {
	options := make([]string, 0, len(q.IncorrectAnswers)+1)
	options = append(options, q.IncorrectAnswers...)
	options = append(options, q.CorrectAnswer)

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := 0
	for i, opt := range options {
		if opt == q.CorrectAnswer {
			correct = i
			break
		}
	}
	return options, correct
}

type Client struct {
	cfg    config.TriviaConfig
	client *http.Client
}

func New(cfg config.TriviaConfig, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// questionPayload matches both field spellings the trivia API has used.
// The question itself arrives either as a plain string (v1) or as an
// object with a text field (v2).
type questionPayload struct {
	ID                 string          `json:"id"`
	Question           json.RawMessage `json:"question"`
	CorrectAnswer      string          `json:"correctAnswer"`
	CorrectAnswerSnake string          `json:"correct_answer"`
	IncorrectAnswers   []string        `json:"incorrectAnswers"`
	IncorrectSnake     []string        `json:"incorrect_answers"`
}

func (p *questionPayload) text() string {
	if len(p.Question) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(p.Question, &s); err == nil {
		return s
	}

	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(p.Question, &obj); err == nil {
		return obj.Text
	}
	return ""
}

func (p *questionPayload) normalize() (*Question, error) {
	q := &Question{
		ID:               p.ID,
		Text:             p.text(),
		CorrectAnswer:    p.CorrectAnswer,
		IncorrectAnswers: p.IncorrectAnswers,
	}
	if q.CorrectAnswer == "" {
		q.CorrectAnswer = p.CorrectAnswerSnake
	}
	if len(q.IncorrectAnswers) == 0 {
		q.IncorrectAnswers = p.IncorrectSnake
	}

	if q.ID == "" || q.Text == "" || q.CorrectAnswer == "" || len(q.IncorrectAnswers) == 0 {
		return nil, fmt.Errorf("%w: question is missing required fields", ErrMalformedResponse)
	}
	return q, nil
}

// Fetch retrieves the current question set and picks one question
// uniformly at random.
func (c *Client) Fetch(ctx context.Context) (*Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "trivia-bot/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	payloads, err := decodeQuestions(body)
	if err != nil {
		return nil, err
	}

	selected := payloads[rand.IntN(len(payloads))]
	return selected.normalize()
}

// decodeQuestions accepts the deployed top-level array shape and the
// older results-wrapper shape.
func decodeQuestions(body []byte) ([]questionPayload, error) {
	var payloads []questionPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		var wrapper struct {
			Results []questionPayload `json:"results"`
		}
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		payloads = wrapper.Results
	}

	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: no questions returned", ErrMalformedResponse)
	}
	return payloads, nil
}
