package lexicon

// Встроенные словари для украинского языка.

func buildUkrainian() *Lexicon {
	given := map[string]GivenName{
		"іван":      {Canonical: "Іван", Gender: GenderMasc},
		"петро":     {Canonical: "Петро", Gender: GenderMasc},
		"микола":    {Canonical: "Микола", Gender: GenderMasc},
		"олександр": {Canonical: "Олександр", Gender: GenderMasc},
		"олексій":   {Canonical: "Олексій", Gender: GenderMasc},
		"дмитро":    {Canonical: "Дмитро", Gender: GenderMasc},
		"сергій":    {Canonical: "Сергій", Gender: GenderMasc},
		"андрій":    {Canonical: "Андрій", Gender: GenderMasc},
		"михайло":   {Canonical: "Михайло", Gender: GenderMasc},
		"володимир": {Canonical: "Володимир", Gender: GenderMasc},
		"тарас":     {Canonical: "Тарас", Gender: GenderMasc},
		"богдан":    {Canonical: "Богдан", Gender: GenderMasc},

		"марія":     {Canonical: "Марія", Gender: GenderFemn},
		"ганна":     {Canonical: "Ганна", Gender: GenderFemn},
		"олена":     {Canonical: "Олена", Gender: GenderFemn},
		"ольга":     {Canonical: "Ольга", Gender: GenderFemn},
		"наталія":   {Canonical: "Наталія", Gender: GenderFemn},
		"ірина":     {Canonical: "Ірина", Gender: GenderFemn},
		"тетяна":    {Canonical: "Тетяна", Gender: GenderFemn},
		"дарія":     {Canonical: "Дарія", Gender: GenderFemn},
		"дарья":     {Canonical: "Дарья", Gender: GenderFemn},
		"катерина":  {Canonical: "Катерина", Gender: GenderFemn},
		"людмила":   {Canonical: "Людмила", Gender: GenderFemn},
		"оксана":    {Canonical: "Оксана", Gender: GenderFemn},
		"світлана":  {Canonical: "Світлана", Gender: GenderFemn},
	}

	surnames := setOf(
		"шевченко", "коваленко", "бондаренко", "ткаченко", "кравченко",
		"голобородько", "павлова", "павлов", "мельник", "шевчук", "бойко",
	)

	diminutives := map[string]string{
		"петрик": "Петро",
		"сашко":  "Олександр",
		"міша":   "Михайло",
		"володя": "Володимир",
		"оля":    "Ольга",
		"наталя": "Наталія",
		"катя":   "Катерина",
		"люда":   "Людмила",
	}

	return &Lexicon{
		Language:    LangUK,
		given:       given,
		surnames:    surnames,
		diminutives: diminutives,

		patronymicSuffixes: []string{
			"ович", "йович", "ьович", "евич", "івна", "ївна", "івни", "ївни",
			"овича", "овичу", "овичем", "івні", "ївні", "івну", "ївну",
		},
		surnameSuffixes: []string{
			"енко", "ук", "юк", "чук", "ко", "ич",
			"ський", "ська", "цький", "цька",
			"ов", "ова", "ів", "ева", "ин", "ина",
			"ського", "ському", "ським", "ської", "ській",
			"ової", "овій", "ову", "овим",
		},
		feminineSurname: map[string]string{
			"ов":    "ова",
			"ів":    "ова",
			"ин":    "ина",
			"ський": "ська",
			"цький": "цька",
		},
		masculineSurname: map[string]string{
			"ова":  "ов",
			"ина":  "ин",
			"ська": "ський",
			"цька": "цький",
		},

		legalForms: setOf(
			"тов", "пп", "фоп", "пат", "прат", "кп", "дп",
			"llc", "ltd", "inc", "gmbh",
		),
		stopwords: setOf(
			"оплата", "платіж", "переказ", "коштів", "рахунок", "договором",
			"згідно", "від", "за", "по", "для", "без", "пдв", "призначення",
			"послуги", "товар", "аванс",
		),
		idMarkers: map[string]string{
			"іпн":     "inn",
			"інн":     "inn",
			"рнокпп":  "inn",
			"єдрпоу":  "edrpou",
			"едрпоу":  "edrpou",
			"паспорт": "passport",
			"рег":     "registration",
		},
		birthMarkers: setOf("др", "нар", "народження"),
		birthMarkerPhrase: [][]string{
			{"дата", "народження"},
			{"рік", "народження"},
		},
		months: map[string]int{
			"січня": 1, "лютого": 2, "березня": 3, "квітня": 4,
			"травня": 5, "червня": 6, "липня": 7, "серпня": 8,
			"вересня": 9, "жовтня": 10, "листопада": 11, "грудня": 12,
		},
		separators: setOf("і", "та", "й"),
	}
}
