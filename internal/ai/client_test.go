package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulkeeper/pulkeeper/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		Endpoint: srv.URL,
		APIKey:   "test-key",
		Timeout:  2 * time.Second,
		Attempts: 1,
	}, zerolog.Nop())
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	})
	return string(b)
}

func TestAnalyze(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply(`{"type":"expense","amount":20000,"category":"transport","title":"такси","date":null}`))
	})

	tx, err := client.Analyze(context.Background(), "такси двадцать тысяч")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if tx.Title != "такси" {
		t.Errorf("Title = %q, want %q", tx.Title, "такси")
	}
	if tx.Amount != 20000 {
		t.Errorf("Amount = %d, want 20000", tx.Amount)
	}
	if tx.Category != domain.CategoryTransport {
		t.Errorf("Category = %q, want transport", tx.Category)
	}
	if tx.IsIncome {
		t.Error("IsIncome = true, want false")
	}
}

func TestAnalyze_FencedContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fenced := "```json\n{\"type\":\"income\",\"amount\":3000000,\"category\":\"income\",\"title\":\"зарплата\"}\n```"
		fmt.Fprint(w, chatReply(fenced))
	})

	tx, err := client.Analyze(context.Background(), "зарплата три миллиона")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if tx.Amount != 3000000 {
		t.Errorf("Amount = %d, want 3000000", tx.Amount)
	}
	if !tx.IsIncome {
		t.Error("IsIncome = false, want true")
	}
}

func TestAnalyze_AmountShorthandRenormalized(t *testing.T) {
	// The model emits "20k" as a string; numword must replace it with the
	// numeric value.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply(`{"type":"expense","amount":"20k","category":"food","title":"кофе"}`))
	})

	tx, err := client.Analyze(context.Background(), "кофе на 20k")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if tx.Amount != 20000 {
		t.Errorf("Amount = %d, want 20000", tx.Amount)
	}
}

func TestAnalyze_UnknownCategoryClamped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply(`{"type":"expense","amount":5000,"category":"miscellaneous spending","title":"что-то"}`))
	})

	tx, err := client.Analyze(context.Background(), "что-то 5000")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if tx.Category != domain.CategoryOther {
		t.Errorf("Category = %q, want other", tx.Category)
	}
}

func TestAnalyze_MalformedContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply("not json at all"))
	})

	_, err := client.Analyze(context.Background(), "такси 18000")
	if !errors.Is(err, domain.ErrAIMalformed) {
		t.Errorf("Analyze() error = %v, want ErrAIMalformed", err)
	}
}

func TestAnalyze_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Analyze(context.Background(), "такси 18000")
	if !errors.Is(err, domain.ErrAIUnavailable) {
		t.Errorf("Analyze() error = %v, want ErrAIUnavailable", err)
	}
}

func TestAnalyze_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	})

	_, err := client.Analyze(context.Background(), "такси 18000")
	if !errors.Is(err, domain.ErrAIMalformed) {
		t.Errorf("Analyze() error = %v, want ErrAIMalformed", err)
	}
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
		fmt.Fprint(w, chatReply(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Analyze(ctx, "такси 18000")
	if !errors.Is(err, domain.ErrAIUnavailable) {
		t.Errorf("Analyze() error = %v, want ErrAIUnavailable", err)
	}
}

func TestCleanModelContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced bare", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around object", "Here you go:\n{\"a\":1}\nHope that helps!", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelContent(tt.input); got != tt.want {
				t.Errorf("cleanModelContent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
