// Package ai calls a remote chat-completion endpoint to extract a
// transaction from free text the local parser could not handle. The model's
// reply is treated as untrusted: fences are stripped, every field is coerced
// defensively, and all failures degrade to typed soft errors.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/rs/zerolog"

	"github.com/pulkeeper/pulkeeper/internal/domain"
	"github.com/pulkeeper/pulkeeper/internal/numword"
)

// Defaults for the DeepSeek-compatible chat-completions API.
const (
	DefaultEndpoint    = "https://api.deepseek.com/v1/chat/completions"
	DefaultModel       = "deepseek-chat"
	DefaultTemperature = 0.2
	DefaultTimeout     = 15 * time.Second

	defaultAttempts = 3
	retryDelay      = 500 * time.Millisecond
)

// Config holds the chat-completion client configuration.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
	Attempts    uint
}

// Client submits single-turn chat completions and parses the reply into a
// transaction candidate.
type Client struct {
	httpClient *http.Client
	cfg        Config
	log        zerolog.Logger
}

// NewClient creates a chat-completion client. Zero-value config fields fall
// back to the DeepSeek defaults.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = defaultAttempts
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
		log:        log,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the user text to the model and returns the coerced
// transaction candidate. Network/timeout/non-2xx failures surface as
// domain.ErrAIUnavailable, undecodable payloads as domain.ErrAIMalformed;
// nothing else escapes.
func (c *Client) Analyze(ctx context.Context, text string) (domain.ParsedTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	content, err := c.complete(ctx, buildPrompt(text))
	if err != nil {
		return domain.ParsedTransaction{}, err
	}

	clean := cleanModelContent(content)

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		// Raw payload kept for offline debugging; models drift.
		c.log.Debug().Str("raw", content).Msg("undecodable model payload")
		return domain.ParsedTransaction{}, fmt.Errorf("%w: %v", domain.ErrAIMalformed, err)
	}

	tx := c.coerce(payload)
	c.log.Debug().
		Str("title", tx.Title).
		Int64("amount", tx.Amount).
		Str("category", string(tx.Category)).
		Bool("is_income", tx.IsIncome).
		Msg("ai analysis result")

	return tx, nil
}

// complete performs the HTTP round trip with bounded retry. Only transient
// failures (network errors, 5xx) are retried; total latency stays capped by
// the context deadline set in Analyze.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", domain.ErrAIUnavailable, err)
	}

	var content string
	var malformed error

	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			if c.cfg.APIKey != "" {
				req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				statusErr := fmt.Errorf("chat completion status %d", resp.StatusCode)
				if resp.StatusCode >= http.StatusInternalServerError {
					return statusErr
				}
				return retry.Unrecoverable(statusErr)
			}

			var decoded chatResponse
			if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
				malformed = fmt.Errorf("%w: decoding response envelope: %v", domain.ErrAIMalformed, err)
				return nil
			}
			if len(decoded.Choices) == 0 {
				malformed = fmt.Errorf("%w: response has no choices", domain.ErrAIMalformed)
				return nil
			}

			content = decoded.Choices[0].Message.Content
			return nil
		},
		retry.Attempts(c.cfg.Attempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}
	if malformed != nil {
		return "", malformed
	}

	return content, nil
}

// coerce validates every field of the untrusted payload. The amount is
// re-normalized through numword so the output is strictly numeric even when
// the model emits "20k" or a word number; normalization failure leaves zero
// for the resolver's reconciliation pass.
func (c *Client) coerce(payload map[string]interface{}) domain.ParsedTransaction {
	tx := domain.ParsedTransaction{
		Title:    getString(payload, "title", "description"),
		Category: domain.ParseCategory(getString(payload, "category")),
	}

	if v, ok := numword.Normalize(getAmountText(payload, "amount")); ok {
		tx.Amount = v
	}

	switch strings.ToLower(getString(payload, "type")) {
	case "income":
		tx.IsIncome = true
	case "expense":
		tx.IsIncome = false
	default:
		if v, ok := getBool(payload, "is_income"); ok {
			tx.IsIncome = v
		}
	}

	if d := getString(payload, "date"); d != "" {
		if _, err := time.Parse("2006-01-02", d); err == nil {
			tx.Date = d
		}
	}

	return tx
}
