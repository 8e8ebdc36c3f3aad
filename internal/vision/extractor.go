// Package vision extracts the textual content of a receipt photo with a
// multimodal model. The extracted line goes through the same resolution
// pipeline as typed text.
package vision

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/pulkeeper/pulkeeper/internal/domain"
)

// DefaultModel is the multimodal model used for receipt photos.
const DefaultModel = "gemini-2.5-flash"

const receiptPrompt = "Read the receipt in the attached photo.\n" +
	"Reply with ONE plain-text line: the merchant or purchase description " +
	"followed by the total amount as a bare number, e.g. \"Korzinka 125000\".\n" +
	"No Markdown, no explanations. If the photo is not a receipt or the " +
	"total cannot be read, reply with the single word UNREADABLE."

// generator performs one image-plus-prompt model call. It exists as an
// interface so tests can cover ExtractText without the GenAI API.
type generator interface {
	generate(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error)
}

// genaiGenerator calls the GenAI API. The client reads GEMINI_API_KEY from
// the environment.
type genaiGenerator struct{}

func (genaiGenerator) generate(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("creating genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}

// Extractor reads receipts via a multimodal model.
type Extractor struct {
	model string
	log   zerolog.Logger
	gen   generator
}

// NewExtractor creates a receipt extractor. An empty model falls back to
// DefaultModel.
func NewExtractor(model string, log zerolog.Logger) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{model: model, log: log, gen: genaiGenerator{}}
}

// ExtractText sends the receipt image to the model and returns the raw line
// to feed into the resolver. Failures degrade to domain.ErrAIUnavailable;
// an unreadable receipt is domain.ErrNoAmount.
func (e *Extractor) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	raw, err := e.gen.generate(ctx, e.model, receiptPrompt, image, mimeType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "UNREADABLE") {
		return "", fmt.Errorf("%w: receipt not readable", domain.ErrNoAmount)
	}

	e.log.Debug().Str("extracted", raw).Msg("receipt photo extracted")
	return raw, nil
}
