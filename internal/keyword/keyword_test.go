package keyword

import "testing"

func TestClassifyDirection(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIncome bool
		wantOK     bool
	}{
		{"salary cue", "зарплата 500000", true, true},
		{"inflected salary cue", "получил зарплату", true, true},
		{"uzbek income cue", "oylik keldi 4000000", true, true},
		{"plus sign", "+500000", true, true},
		{"spent cue", "потратил 20000 на такси", false, true},
		{"bought cue", "bought coffee 15000", false, true},
		{"minus sign", "-20000 такси", false, true},
		{"no cues", "такси 18000", false, false},
		{"no cues plain text", "кофе с молоком", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIncome, gotOK := ClassifyDirection(tt.input)
			if gotOK != tt.wantOK {
				t.Fatalf("ClassifyDirection(%q) ok = %v, want %v", tt.input, gotOK, tt.wantOK)
			}
			if gotOK && gotIncome != tt.wantIncome {
				t.Errorf("ClassifyDirection(%q) income = %v, want %v", tt.input, gotIncome, tt.wantIncome)
			}
		})
	}
}

func TestClassifyDirection_TieBreak(t *testing.T) {
	// Both an income and an expense cue appear; the expense pass runs
	// second and wins. Documented last-write-wins behavior.
	gotIncome, ok := ClassifyDirection("получил зарплату и потратил 50000")
	if !ok {
		t.Fatal("expected a direction opinion")
	}
	if gotIncome {
		t.Error("expense cue must win the tie-break")
	}
}

func TestIsIncomeSynonym(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"income", true},
		{"Salary", true},
		{"зарплата", true},
		{"maosh", true},
		{"transport", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsIncomeSynonym(tt.input); got != tt.want {
				t.Errorf("IsIncomeSynonym(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
