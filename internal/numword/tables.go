package numword

// Word-value tables for spelled-out numbers. The Uzbek table carries both
// Cyrillic and Latin spellings since users mix scripts freely.
// Values of 100, 1000 and 1_000_000 act as multipliers during accumulation;
// everything else is additive.

var uzbekNumbers = map[string]int64{
	"ноль": 0, "нол": 0, "нуль": 0, "nol": 0,

	"бир": 1, "икки": 2, "уч": 3, "тўрт": 4, "беш": 5,
	"олти": 6, "етти": 7, "саккиз": 8, "туғқиз": 9, "тўққиз": 9,

	"bir": 1, "ikki": 2, "uch": 3, "to'rt": 4, "besh": 5,
	"olti": 6, "yetti": 7, "sakkiz": 8, "to'qqiz": 9,

	"ўн": 10, "йигирма": 20, "ўттиз": 30, "қирқ": 40,
	"эллик": 50, "олтмиш": 60, "етмиш": 70, "саксон": 80, "тўқсон": 90,

	"o'n": 10, "yigirma": 20, "o'ttiz": 30, "qirq": 40,
	"ellik": 50, "oltmish": 60, "yetmish": 70, "sakson": 80, "to'qson": 90,

	"юз": 100, "йуз": 100, "юзта": 100, "yuz": 100,
	"минг": 1000, "ming": 1000,
	"млн": 1_000_000, "миллион": 1_000_000, "million": 1_000_000,
	"ярим": 500_000, "yarim": 500_000,
}

var russianNumbers = map[string]int64{
	"ноль": 0, "один": 1, "два": 2, "три": 3, "четыре": 4,
	"пять": 5, "шесть": 6, "семь": 7, "восемь": 8, "девять": 9,

	"десять": 10, "одиннадцать": 11, "двенадцать": 12, "тринадцать": 13,
	"четырнадцать": 14, "пятнадцать": 15, "шестнадцать": 16,
	"семнадцать": 17, "восемнадцать": 18, "девятнадцать": 19,

	"двадцать": 20, "тридцать": 30, "сорок": 40,
	"пятьдесят": 50, "шестьдесят": 60, "семьдесят": 70,
	"восемьдесят": 80, "девяносто": 90,

	"сто": 100, "двести": 200, "триста": 300, "четыреста": 400,
	"пятьсот": 500, "шестьсот": 600, "семьсот": 700,
	"восемьсот": 800, "девятьсот": 900,

	"тысяч": 1000, "тысяча": 1000, "тысячи": 1000, "тыс": 1000,
	"млн": 1_000_000, "миллион": 1_000_000, "миллиона": 1_000_000,
	"полмиллиона": 500_000,
}

// scaleMultipliers maps digit-suffix scale words to their magnitude.
// ASCII shorthand ("20k", "1.5mln") is handled here alongside the
// Russian/Uzbek abbreviations.
var scaleMultipliers = map[string]int64{
	"млн": 1_000_000, "миллион": 1_000_000, "миллиона": 1_000_000,
	"миллионов": 1_000_000, "million": 1_000_000, "mln": 1_000_000,
	"тыс": 1000, "тысяча": 1000, "тысячи": 1000, "тысяч": 1000,
	"ming": 1000, "минг": 1000,
	"k": 1000, "к": 1000,
}
