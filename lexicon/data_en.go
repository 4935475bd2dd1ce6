package lexicon

// Встроенные словари для английского/латинского ввода. Этот же набор
// служит generic-фолбэком для неподдерживаемых языков: платежные тексты
// смешивают латиницу с кириллическими маркерами, поэтому часть маркеров
// дублируется из славянских таблиц.

func buildEnglish() *Lexicon {
	given := map[string]GivenName{
		"john":      {Canonical: "John", Gender: GenderMasc},
		"peter":     {Canonical: "Peter", Gender: GenderMasc},
		"michael":   {Canonical: "Michael", Gender: GenderMasc},
		"alexander": {Canonical: "Alexander", Gender: GenderMasc},
		"andrew":    {Canonical: "Andrew", Gender: GenderMasc},
		"sergei":    {Canonical: "Sergei", Gender: GenderMasc},
		"ivan":      {Canonical: "Ivan", Gender: GenderMasc},
		"dmytro":    {Canonical: "Dmytro", Gender: GenderMasc},
		"taras":     {Canonical: "Taras", Gender: GenderMasc},

		"mary":      {Canonical: "Mary", Gender: GenderFemn},
		"anna":      {Canonical: "Anna", Gender: GenderFemn},
		"maria":     {Canonical: "Maria", Gender: GenderFemn},
		"olena":     {Canonical: "Olena", Gender: GenderFemn},
		"liudmyla":  {Canonical: "Liudmyla", Gender: GenderFemn},
		"daria":     {Canonical: "Daria", Gender: GenderFemn},
		"kateryna":  {Canonical: "Kateryna", Gender: GenderFemn},
		"elizabeth": {Canonical: "Elizabeth", Gender: GenderFemn},
	}

	surnames := setOf(
		"smith", "johnson", "brown", "wilson", "miller",
		"ivanov", "ivanova", "petrov", "petrova", "shevchenko", "kovalenko",
		"holoborodko", "pavlova", "pavlov",
	)

	diminutives := map[string]string{
		"mike":  "Michael",
		"alex":  "Alexander",
		"andy":  "Andrew",
		"liz":   "Elizabeth",
		"kate":  "Kateryna",
		"johny": "John",
	}

	return &Lexicon{
		Language:    LangEN,
		given:       given,
		surnames:    surnames,
		diminutives: diminutives,

		// Транслитерированные славянские суффиксы: латинский ввод
		// в платежных текстах почти всегда транслитерация
		patronymicSuffixes: []string{
			"ovych", "ovich", "evich", "yevich", "ivna", "yivna", "ovna", "evna",
		},
		surnameSuffixes: []string{
			"ov", "ev", "in", "ova", "eva", "ina",
			"sky", "skyi", "skiy", "ska", "skaya",
			"enko", "uk", "yuk", "chuk", "ko", "ich",
		},
		feminineSurname: map[string]string{
			"ov":   "ova",
			"ev":   "eva",
			"in":   "ina",
			"skyi": "ska",
			"skiy": "skaya",
		},
		masculineSurname: map[string]string{
			"ova":   "ov",
			"eva":   "ev",
			"ina":   "in",
			"ska":   "skyi",
			"skaya": "skiy",
		},

		legalForms: setOf(
			"llc", "ltd", "inc", "corp", "co", "plc", "gmbh", "ag", "sa",
			"llp", "lp", "pc", "pllc", "bv", "oy", "ab",
		),
		// Snowball-стеммер сводит словоформы к этим базам,
		// поэтому в списке храним стемы ("pay" ловит payment/payments)
		stopwords: setOf(
			"payment", "pay", "transfer", "invoice", "contract", "order",
			"for", "from", "the", "of", "to", "per", "under", "vat",
			"goods", "servic", "advanc", "purpos",
		),
		idMarkers: map[string]string{
			"inn":      "inn",
			"tin":      "inn",
			"ipn":      "inn",
			"іпн":      "inn",
			"инн":      "inn",
			"edrpou":   "edrpou",
			"passport": "passport",
			"reg":      "registration",
			"regno":    "registration",
			"id":       "id",
			"tax":      "inn",
		},
		birthMarkers: setOf("dob", "born", "birthdate", "др", "нар"),
		birthMarkerPhrase: [][]string{
			{"date", "of", "birth"},
			{"дата", "рождения"},
			{"дата", "народження"},
		},
		months: map[string]int{
			"january": 1, "february": 2, "march": 3, "april": 4,
			"may": 5, "june": 6, "july": 7, "august": 8,
			"september": 9, "october": 10, "november": 11, "december": 12,
			"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7,
			"aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
		},
		separators: setOf("and", "&"),
	}
}
