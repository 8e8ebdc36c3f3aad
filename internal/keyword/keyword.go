// Package keyword holds the income/expense cue-word tables. Cue words are
// considered a higher-confidence direction signal than anything the local
// parser or the AI infers structurally, so the resolver applies them last.
package keyword

import "strings"

// Cue stems cover Russian, Uzbek and symbolic forms. Matching is
// substring-based, which deliberately catches inflected forms
// ("зарплат" matches "зарплата" and "зарплату").
var incomeCues = []string{
	"зарплат", "аванс", "доход", "премия", "пополнен", "получил", "поступлен",
	"salary", "income", "bonus",
	"maosh", "oylik", "daromad",
	"+",
}

var expenseCues = []string{
	"купил", "потратил", "оплат", "заплатил", "расход",
	"spent", "bought", "paid",
	"sotib", "to'ladim", "xarajat",
	"-",
}

// ClassifyDirection reports whether the text signals income or expense.
// ok=false means no cue matched and the caller keeps its prior value.
//
// When cues from both lists appear, the expense pass runs second and wins.
// That last-write-wins tie-break is intentional and kept as-is.
func ClassifyDirection(text string) (isIncome, ok bool) {
	t := strings.ToLower(text)

	for _, cue := range incomeCues {
		if strings.Contains(t, cue) {
			isIncome, ok = true, true
			break
		}
	}
	for _, cue := range expenseCues {
		if strings.Contains(t, cue) {
			isIncome, ok = false, true
			break
		}
	}
	return isIncome, ok
}

// incomeSynonyms are category names that imply income regardless of any
// is_income flag that arrived with them.
var incomeSynonyms = map[string]struct{}{
	"income":   {},
	"salary":   {},
	"зарплата": {},
	"доход":    {},
	"maosh":    {},
	"oylik":    {},
	"daromad":  {},
}

// IsIncomeSynonym reports whether a category name means income, catching
// income that leaks through the category field rather than the flag.
func IsIncomeSynonym(category string) bool {
	_, ok := incomeSynonyms[strings.ToLower(strings.TrimSpace(category))]
	return ok
}
