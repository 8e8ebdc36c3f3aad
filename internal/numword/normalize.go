// Package numword converts numeric expressions found in free text into an
// integer amount. It understands plain digits (with spaces as group
// separators), digits with a scale suffix ("1.5 млн", "30 тыс", "20k") and
// spelled-out Russian/Uzbek number words ("пятнадцать тысяч", "ikki ming").
package numword

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	scaleRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(` + scaleAlternation() + `)`)
	digitRe = regexp.MustCompile(`\d[\d\s]*`)
	wordRe  = regexp.MustCompile(`[a-zа-яёўқғҳ'’ʼ]+`)

	apostrophes = strings.NewReplacer("’", "'", "ʼ", "'")
)

// scaleAlternation builds the scale-suffix alternation from the multiplier
// table so the regex cannot match a word the table has no value for.
// Longest alternatives first so "миллион" is not cut down to "млн".
func scaleAlternation() string {
	keys := make([]string, 0, len(scaleMultipliers))
	for k := range scaleMultipliers {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return strings.Join(keys, "|")
}

// Normalize extracts an integer amount from text. The second return value is
// false when no numeral of any kind was found; callers must treat that as
// "no amount extracted", not as zero.
//
// Stages are tried in priority order, first success wins:
//  1. digits followed by a scale word ("1.5 млн" -> 1_500_000)
//  2. a plain digit run, internal spaces stripped ("1 500 000" -> 1_500_000)
//  3. spelled-out number words against both language tables, larger sum wins
func Normalize(text string) (int64, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return 0, false
	}

	if v, ok := digitsWithScale(t); ok {
		return v, true
	}
	if v, ok := plainDigits(t); ok {
		return v, true
	}
	return wordNumber(t)
}

// digitsWithScale matches a numeral immediately followed by a scale
// abbreviation. The scale word must not continue into a longer word, so
// "5000 книг" does not read as "5000k".
func digitsWithScale(t string) (int64, bool) {
	for _, loc := range scaleRe.FindAllStringSubmatchIndex(t, -1) {
		if end := loc[1]; end < len(t) {
			r, _ := utf8.DecodeRuneInString(t[end:])
			if unicode.IsLetter(r) {
				continue
			}
		}

		num := strings.ReplaceAll(t[loc[2]:loc[3]], ",", ".")
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}
		mul := scaleMultipliers[t[loc[4]:loc[5]]]
		if mul == 0 {
			continue
		}
		return int64(f * float64(mul)), true
	}
	return 0, false
}

func plainDigits(t string) (int64, bool) {
	m := digitRe.FindString(t)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.Join(strings.Fields(m), ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// wordNumber evaluates the token stream against both the Uzbek and Russian
// tables independently and returns the larger of the two non-zero results.
// A word absent from a table simply contributes nothing to that language's
// sum, so whichever language the text actually matches wins.
func wordNumber(t string) (int64, bool) {
	words := wordRe.FindAllString(t, -1)
	if len(words) == 0 {
		return 0, false
	}
	for i, w := range words {
		words[i] = apostrophes.Replace(w)
	}

	uz := accumulate(words, uzbekNumbers)
	ru := accumulate(words, russianNumbers)

	best := uz
	if ru > best {
		best = ru
	}
	if best <= 0 {
		return 0, false
	}
	return best, true
}

// accumulate folds number words into a value. Hundreds, thousands and
// millions multiply the accumulator and flush it into the running total;
// everything else is additive ("пятнадцать тысяч" = 15 * 1000).
func accumulate(words []string, table map[string]int64) int64 {
	var total, current int64

	for _, w := range words {
		v, ok := table[w]
		if !ok {
			continue
		}

		switch v {
		case 100, 1000, 1_000_000:
			if current == 0 {
				current = 1
			}
			current *= v
			total += current
			current = 0
		default:
			current += v
		}
	}

	return total + current
}
