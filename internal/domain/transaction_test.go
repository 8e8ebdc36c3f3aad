package domain

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"transport", CategoryTransport},
		{"Transport", CategoryTransport},
		{"  FOOD  ", CategoryFood},
		{"income", CategoryIncome},
		{"groceries", CategoryOther},
		{"", CategoryOther},
		{"еда", CategoryOther},
		{"OTHER", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseCategory(tt.input)
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsedTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      ParsedTransaction
		wantErr error
	}{
		{
			name:    "positive amount is valid",
			tx:      ParsedTransaction{Title: "такси", Amount: 18000, Category: CategoryTransport},
			wantErr: nil,
		},
		{
			name:    "zero amount fails",
			tx:      ParsedTransaction{Title: "такси", Amount: 0},
			wantErr: ErrNoAmount,
		},
		{
			name:    "negative amount fails",
			tx:      ParsedTransaction{Title: "такси", Amount: -500},
			wantErr: ErrNoAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
