// Package speech submits voice audio to a Whisper-compatible transcription
// endpoint. A transcript feeds the same resolution pipeline as typed text;
// any failure is surfaced as domain.ErrTranscriptionFailed without
// attempting resolution, since there is no text to resolve.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/rs/zerolog"

	"github.com/pulkeeper/pulkeeper/internal/domain"
)

// Defaults for the OpenAI Whisper transcription API.
const (
	DefaultEndpoint = "https://api.openai.com/v1/audio/transcriptions"
	DefaultModel    = "whisper-1"
	DefaultTimeout  = 15 * time.Second

	defaultAttempts = 2
	retryDelay      = 500 * time.Millisecond
)

// Config holds the transcription client configuration.
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
	Attempts uint
}

// Transcriber converts audio bytes into text via a remote speech-to-text
// service.
type Transcriber struct {
	httpClient *http.Client
	cfg        Config
	log        zerolog.Logger
}

// NewTranscriber creates a transcription client. Zero-value config fields
// fall back to the Whisper defaults.
func NewTranscriber(cfg Config, log zerolog.Logger) *Transcriber {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = defaultAttempts
	}

	return &Transcriber{
		httpClient: &http.Client{},
		cfg:        cfg,
		log:        log,
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio payload as multipart form data and returns
// the transcript. Every failure mode, including a reply without a "text"
// field, degrades to domain.ErrTranscriptionFailed.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: building form: %v", domain.ErrTranscriptionFailed, err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("%w: building form: %v", domain.ErrTranscriptionFailed, err)
	}
	if err := mw.WriteField("model", t.cfg.Model); err != nil {
		return "", fmt.Errorf("%w: building form: %v", domain.ErrTranscriptionFailed, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: building form: %v", domain.ErrTranscriptionFailed, err)
	}

	var text string

	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.Endpoint, bytes.NewReader(buf.Bytes()))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", mw.FormDataContentType())
			if t.cfg.APIKey != "" {
				req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
			}

			resp, err := t.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				statusErr := fmt.Errorf("transcription status %d", resp.StatusCode)
				if resp.StatusCode >= http.StatusInternalServerError {
					return statusErr
				}
				return retry.Unrecoverable(statusErr)
			}

			var decoded transcriptionResponse
			if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decoding response: %v", err))
			}

			text = decoded.Text
			return nil
		},
		retry.Attempts(t.cfg.Attempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranscriptionFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty transcript", domain.ErrTranscriptionFailed)
	}

	t.log.Debug().Str("transcript", text).Msg("voice transcribed")
	return text, nil
}
