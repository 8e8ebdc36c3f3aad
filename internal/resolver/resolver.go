// Package resolver composes the resolution pipeline: local rule parsing,
// AI analysis fallback, numeric reconciliation, and keyword overrides.
//
// The ordering is a deliberate confidence hierarchy: digits in text (cheap,
// reliable) beat AI structured extraction (expensive, semi-reliable), which
// beats raw numeric-word scraping (last resort); the keyword direction
// override is the highest-confidence signal for income vs. expense
// regardless of where the rest of the record came from.
package resolver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulkeeper/pulkeeper/internal/domain"
	"github.com/pulkeeper/pulkeeper/internal/keyword"
	"github.com/pulkeeper/pulkeeper/internal/localparse"
	"github.com/pulkeeper/pulkeeper/internal/numword"
)

// Analyzer produces a transaction candidate from free text using a remote
// model. It exists as an interface so tests can mock the AI layer.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (domain.ParsedTransaction, error)
}

// Resolver turns one raw input string into a validated transaction. It is
// stateless: every call allocates its own intermediate state, and concurrent
// resolutions share nothing.
type Resolver struct {
	analyzer Analyzer
	log      zerolog.Logger
	now      func() time.Time
}

// New creates a resolver around the given AI analyzer.
func New(analyzer Analyzer, log zerolog.Logger) *Resolver {
	return &Resolver{
		analyzer: analyzer,
		log:      log,
		now:      time.Now,
	}
}

// Resolve runs the pipeline over a single message. It returns either a
// transaction satisfying the output contract or one of the domain errors;
// no other failure crosses this boundary.
func (r *Resolver) Resolve(ctx context.Context, text string) (domain.ParsedTransaction, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return domain.ParsedTransaction{}, domain.ErrNoAmount
	}

	tx, err := r.extract(ctx, raw)
	if err != nil {
		return domain.ParsedTransaction{}, err
	}

	// Numeric reconciliation: a last-resort scrape of the raw text when
	// neither stage produced a positive amount.
	if tx.Amount <= 0 {
		n, ok := numword.Normalize(raw)
		if !ok {
			return domain.ParsedTransaction{}, domain.ErrNoAmount
		}
		tx.Amount = n
	}

	lang := localparse.DetectLanguage(raw)

	if tx.Category == "" || tx.Category == domain.CategoryOther {
		tx.Category = localparse.ClassifyCategory(raw, lang)
	}
	if tx.Title == "" {
		tx.Title = localparse.PlaceholderTitle(lang)
	}

	// Keyword cues are authoritative over both the parser's
	// category-implied flag and the AI's own type field.
	if isIncome, ok := keyword.ClassifyDirection(raw); ok {
		tx.IsIncome = isIncome
	}

	// Income can also leak through via the category name rather than the
	// flag; force the flag when it does.
	if tx.Category == domain.CategoryIncome || keyword.IsIncomeSynonym(string(tx.Category)) {
		tx.IsIncome = true
	}

	if tx.Date == "" {
		tx.Date = r.now().Format("2006-01-02")
	}

	if err := tx.Validate(); err != nil {
		return domain.ParsedTransaction{}, err
	}

	r.log.Debug().
		Str("title", tx.Title).
		Int64("amount", tx.Amount).
		Str("category", string(tx.Category)).
		Bool("is_income", tx.IsIncome).
		Msg("message resolved")

	return tx, nil
}

// extract produces the initial candidate: the local digit parser first, the
// AI analyzer only when the text carries no digits. An AI failure is soft;
// the word-number scrape may still rescue the message, and only when that
// also fails does the AI error surface, joined with ErrNoAmount.
func (r *Resolver) extract(ctx context.Context, raw string) (domain.ParsedTransaction, error) {
	if res, ok := localparse.Parse(raw); ok {
		return domain.ParsedTransaction{
			Title:    res.Title,
			Amount:   res.Amount,
			Category: res.Category,
			IsIncome: res.Category == domain.CategoryIncome,
		}, nil
	}

	tx, err := r.analyzer.Analyze(ctx, raw)
	if err == nil {
		return tx, nil
	}

	r.log.Debug().Err(err).Msg("ai analysis failed, trying word numbers")

	n, ok := numword.Normalize(raw)
	if !ok {
		return domain.ParsedTransaction{}, errors.Join(domain.ErrNoAmount, err)
	}

	lang := localparse.DetectLanguage(raw)
	return domain.ParsedTransaction{
		Title:    raw,
		Amount:   n,
		Category: localparse.ClassifyCategory(raw, lang),
	}, nil
}
