package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pulkeeper/pulkeeper/internal/domain"
)

// mockGenerator is a deterministic stand-in for the model call.
type mockGenerator struct {
	reply string
	err   error

	gotModel    string
	gotMimeType string
	gotImage    []byte
}

func (m *mockGenerator) generate(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error) {
	m.gotModel = model
	m.gotMimeType = mimeType
	m.gotImage = image
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func newExtractor(gen generator) *Extractor {
	e := NewExtractor("", zerolog.Nop())
	e.gen = gen
	return e
}

func TestExtractText_Success(t *testing.T) {
	mock := &mockGenerator{reply: "Korzinka 125000\n"}
	e := newExtractor(mock)

	got, err := e.ExtractText(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != "Korzinka 125000" {
		t.Errorf("ExtractText() = %q, want %q", got, "Korzinka 125000")
	}
	if mock.gotModel != DefaultModel {
		t.Errorf("model = %q, want %q", mock.gotModel, DefaultModel)
	}
	if mock.gotMimeType != "image/jpeg" {
		t.Errorf("mime type = %q, want image/jpeg", mock.gotMimeType)
	}
	if len(mock.gotImage) == 0 {
		t.Error("image bytes were not passed through")
	}
}

func TestExtractText_Unreadable(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"sentinel", "UNREADABLE"},
		{"sentinel lowercase", "unreadable"},
		{"empty reply", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(&mockGenerator{reply: tt.reply})

			_, err := e.ExtractText(context.Background(), []byte{1}, "image/png")
			if !errors.Is(err, domain.ErrNoAmount) {
				t.Errorf("ExtractText() error = %v, want ErrNoAmount", err)
			}
		})
	}
}

func TestExtractText_ModelFailure(t *testing.T) {
	e := newExtractor(&mockGenerator{err: errors.New("rpc deadline exceeded")})

	_, err := e.ExtractText(context.Background(), []byte{1}, "image/png")
	if !errors.Is(err, domain.ErrAIUnavailable) {
		t.Errorf("ExtractText() error = %v, want ErrAIUnavailable", err)
	}
}
