package localparse

import "github.com/pulkeeper/pulkeeper/internal/domain"

// Language is a rough hint derived from the character set of the message.
// It only selects which keyword table to apply; it is not a full language
// detection.
type Language string

const (
	LangRussian Language = "ru"
	LangUzbek   Language = "uz"
	LangEnglish Language = "en"
)

// categoryRule pairs a category with its cue words. Rules are scanned in
// slice order and the first match wins, so the order is part of the contract.
type categoryRule struct {
	category domain.Category
	keywords []string
}

var categoryRules = map[Language][]categoryRule{
	LangRussian: {
		{domain.CategoryTransport, []string{"такси", "автобус", "метро", "бензин", "машин", "поездк", "яндекс"}},
		{domain.CategoryFood, []string{"кафе", "ресторан", "еда", "обед", "ужин", "завтрак", "кофе", "продукт", "магазин", "бургер", "шаверма", "корзинка"}},
		{domain.CategoryFun, []string{"кино", "театр", "концерт", "развлечен", "игр"}},
		{domain.CategoryHome, []string{"аренда", "квартир", "коммунал", "ремонт", "мебел"}},
		{domain.CategoryHealth, []string{"аптек", "врач", "лекарств", "клиник", "больниц"}},
		{domain.CategoryShopping, []string{"одежд", "обувь", "покупк", "подарок"}},
		{domain.CategoryServices, []string{"интернет", "связь", "подписк", "парикмахер", "услуг"}},
		{domain.CategoryIncome, []string{"зарплат", "аванс", "доход", "премия", "пополнен"}},
	},
	LangUzbek: {
		{domain.CategoryTransport, []string{"taksi", "такси", "avtobus", "benzin", "yo'l"}},
		{domain.CategoryFood, []string{"ovqat", "kafe", "tushlik", "nonushta", "oziq", "bozor", "кафе", "овқат"}},
		{domain.CategoryFun, []string{"kino", "кино", "konsert", "o'yin"}},
		{domain.CategoryHome, []string{"ijara", "kommunal", "ta'mir", "uy"}},
		{domain.CategoryHealth, []string{"dorixona", "shifokor", "dori", "аптека"}},
		{domain.CategoryShopping, []string{"kiyim", "poyabzal", "sovg'a", "do'kon"}},
		{domain.CategoryServices, []string{"internet", "aloqa", "obuna", "sartarosh"}},
		{domain.CategoryIncome, []string{"maosh", "oylik", "daromad", "avans"}},
	},
	LangEnglish: {
		{domain.CategoryTransport, []string{"taxi", "uber", "bus", "metro", "fuel", "petrol", "yandex"}},
		{domain.CategoryFood, []string{"food", "cafe", "lunch", "dinner", "breakfast", "coffee", "restaurant", "grocery", "market", "kfc", "doner"}},
		{domain.CategoryFun, []string{"cinema", "movie", "theatre", "concert", "game"}},
		{domain.CategoryHome, []string{"rent", "apartment", "utilities", "furniture"}},
		{domain.CategoryHealth, []string{"pharmacy", "doctor", "medicine", "clinic", "hospital"}},
		{domain.CategoryShopping, []string{"clothes", "shoes", "shopping", "gift", "mall"}},
		{domain.CategoryServices, []string{"internet", "mobile", "subscription", "barber", "service"}},
		{domain.CategoryIncome, []string{"salary", "income", "bonus", "payout"}},
	},
}

// placeholderTitles is the generic label used when stripping the amount
// leaves no text behind.
var placeholderTitles = map[Language]string{
	LangRussian: "расход",
	LangUzbek:   "xarajat",
	LangEnglish: "expense",
}
