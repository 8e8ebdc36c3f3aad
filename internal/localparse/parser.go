// Package localparse is the fast, no-network path of the resolution
// pipeline. It only handles messages that carry a literal digit run;
// spelled-out numbers are deliberately left to the AI fallback.
package localparse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pulkeeper/pulkeeper/internal/domain"
)

var digitRunRe = regexp.MustCompile(`\d[\d\s]*`)

// Result is a locally parsed transaction candidate.
type Result struct {
	Title    string
	Amount   int64
	Category domain.Category
	Language Language
}

// Parse extracts an amount and title from text using the first digit run.
// It returns ok=false when the text contains no digits at all; that is the
// designed signal for the caller to fall through to AI analysis.
func Parse(text string) (Result, bool) {
	match := digitRunRe.FindString(text)
	if match == "" {
		return Result{}, false
	}

	amount, err := strconv.ParseInt(strings.Join(strings.Fields(match), ""), 10, 64)
	if err != nil {
		return Result{}, false
	}

	lang := DetectLanguage(text)

	title := strings.TrimSpace(strings.Replace(text, match, "", 1))
	if title == "" {
		title = placeholderTitles[lang]
	}

	return Result{
		Title:    title,
		Amount:   amount,
		Category: ClassifyCategory(title, lang),
		Language: lang,
	}, true
}

// DetectLanguage guesses the message language from its character set:
// any Cyrillic means Russian, Latin letters without Cyrillic mean English,
// anything else is treated as Uzbek. The hint only picks a keyword table.
func DetectLanguage(text string) Language {
	hasLatin := false
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return LangRussian
		}
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			hasLatin = true
		}
	}
	if hasLatin {
		return LangEnglish
	}
	return LangUzbek
}

// ClassifyCategory scans the language's keyword rules in fixed order and
// returns the first category whose cue word occurs in the text. Matching is
// substring-based on the lower-cased text, which tolerates inflected forms.
func ClassifyCategory(text string, lang Language) domain.Category {
	t := strings.ToLower(text)
	for _, rule := range categoryRules[lang] {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryOther
}

// PlaceholderTitle returns the generic label for the given language.
func PlaceholderTitle(lang Language) string {
	return placeholderTitles[lang]
}
