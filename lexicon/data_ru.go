package lexicon

// Встроенные словари для русского языка. Таблицы намеренно компактные:
// полные справочники подгружаются из внешней БД через WithSQLite.

func buildRussian() *Lexicon {
	given := map[string]GivenName{
		"иван":      {Canonical: "Иван", Gender: GenderMasc},
		"петр":      {Canonical: "Петр", Gender: GenderMasc},
		"пётр":      {Canonical: "Петр", Gender: GenderMasc},
		"николай":   {Canonical: "Николай", Gender: GenderMasc},
		"александр": {Canonical: "Александр", Gender: GenderMasc},
		"алексей":   {Canonical: "Алексей", Gender: GenderMasc},
		"дмитрий":   {Canonical: "Дмитрий", Gender: GenderMasc},
		"сергей":    {Canonical: "Сергей", Gender: GenderMasc},
		"андрей":    {Canonical: "Андрей", Gender: GenderMasc},
		"михаил":    {Canonical: "Михаил", Gender: GenderMasc},
		"владимир":  {Canonical: "Владимир", Gender: GenderMasc},
		"евгений":   {Canonical: "Евгений", Gender: GenderMasc},
		"павел":     {Canonical: "Павел", Gender: GenderMasc},
		"олег":      {Canonical: "Олег", Gender: GenderMasc},
		"игорь":     {Canonical: "Игорь", Gender: GenderMasc},
		"юрий":      {Canonical: "Юрий", Gender: GenderMasc},
		"виктор":    {Canonical: "Виктор", Gender: GenderMasc},

		"мария":     {Canonical: "Мария", Gender: GenderFemn},
		"анна":      {Canonical: "Анна", Gender: GenderFemn},
		"елена":     {Canonical: "Елена", Gender: GenderFemn},
		"ольга":     {Canonical: "Ольга", Gender: GenderFemn},
		"наталья":   {Canonical: "Наталья", Gender: GenderFemn},
		"ирина":     {Canonical: "Ирина", Gender: GenderFemn},
		"татьяна":   {Canonical: "Татьяна", Gender: GenderFemn},
		"дарья":     {Canonical: "Дарья", Gender: GenderFemn},
		"екатерина": {Canonical: "Екатерина", Gender: GenderFemn},
		"светлана":  {Canonical: "Светлана", Gender: GenderFemn},
		"людмила":   {Canonical: "Людмила", Gender: GenderFemn},
		"евгения":   {Canonical: "Евгения", Gender: GenderFemn},
		"ксения":    {Canonical: "Ксения", Gender: GenderFemn},
	}

	surnames := setOf(
		"иванов", "иванова", "петров", "петрова", "сидоров", "сидорова",
		"смирнов", "смирнова", "кузнецов", "кузнецова", "попов", "попова",
		"васильев", "васильева", "соколов", "соколова", "михайлов", "михайлова",
	)

	diminutives := map[string]string{
		"ваня":   "Иван",
		"петя":   "Петр",
		"коля":   "Николай",
		"саша":   "Александр",
		"дима":   "Дмитрий",
		"серёжа": "Сергей",
		"сережа": "Сергей",
		"миша":   "Михаил",
		"вова":   "Владимир",
		"женя":   "Евгений",
		"паша":   "Павел",
		"маша":   "Мария",
		"аня":    "Анна",
		"лена":   "Елена",
		"оля":    "Ольга",
		"наташа": "Наталья",
		"таня":   "Татьяна",
		"даша":   "Дарья",
		"катя":   "Екатерина",
		"света":  "Светлана",
		"люда":   "Людмила",
	}

	return &Lexicon{
		Language:    LangRU,
		given:       given,
		surnames:    surnames,
		diminutives: diminutives,

		// Суффиксы отчеств специфичнее фамильных: при конфликте
		// двух таблиц приоритет всегда у отчества.
		patronymicSuffixes: []string{
			"ович", "евич", "ьевич", "иевич",
			"овна", "евна", "ьевна", "иевна", "инична",
			// Косвенные формы, чтобы суффиксное правило срабатывало
			// до морфологической нормализации
			"овича", "евича", "овичу", "евичу", "овичем", "евичем",
			"овны", "евны", "овне", "евне", "овну", "евну", "овной", "евной",
		},
		surnameSuffixes: []string{
			"ов", "ев", "ёв", "ин", "ын", "ова", "ева", "ёва", "ина", "ына",
			"ский", "ская", "цкий", "цкая", "ской", "цкой",
			"ич", "ко", "ук", "юк", "енко",
			// Косвенные формы
			"ова", "овой", "ову", "овым", "ове", "еву", "евой", "евым",
			"ину", "иной", "иным", "ского", "скому", "ским", "цкого",
		},
		feminineSurname: map[string]string{
			"ов":   "ова",
			"ев":   "ева",
			"ёв":   "ёва",
			"ин":   "ина",
			"ын":   "ына",
			"ский": "ская",
			"цкий": "цкая",
		},
		masculineSurname: map[string]string{
			"ова":  "ов",
			"ева":  "ев",
			"ёва":  "ёв",
			"ина":  "ин",
			"ына":  "ын",
			"ская": "ский",
			"цкая": "цкий",
		},

		legalForms: setOf(
			"ооо", "зао", "оао", "ао", "пао", "ип", "чп", "нко", "гуп", "муп",
			"ooo", "llc", "ltd", "inc", "gmbh", "corp",
		),
		stopwords: setOf(
			"оплата", "платеж", "платёж", "перевод", "средств", "счет", "счёт",
			"договор", "договору", "согласно", "от", "за", "по", "для", "без",
			"ндс", "назначение", "платежа", "услуги", "товар", "аванс",
		),
		idMarkers: map[string]string{
			"инн":     "inn",
			"ипн":     "inn",
			"кпп":     "kpp",
			"огрн":    "ogrn",
			"огрнип":  "ogrn",
			"снилс":   "snils",
			"паспорт": "passport",
			"рег":     "registration",
			"счет":    "account",
			"счёт":    "account",
		},
		birthMarkers: setOf("др", "рожд", "рождения"),
		birthMarkerPhrase: [][]string{
			{"дата", "рождения"},
			{"год", "рождения"},
		},
		months: map[string]int{
			"января": 1, "январь": 1,
			"февраля": 2, "февраль": 2,
			"марта": 3, "март": 3,
			"апреля": 4, "апрель": 4,
			"мая": 5, "май": 5,
			"июня": 6, "июнь": 6,
			"июля": 7, "июль": 7,
			"августа": 8, "август": 8,
			"сентября": 9, "сентябрь": 9,
			"октября": 10, "октябрь": 10,
			"ноября": 11, "ноябрь": 11,
			"декабря": 12, "декабрь": 12,
		},
		separators: setOf("и", "а", "также"),
	}
}

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
