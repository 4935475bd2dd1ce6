package lexicon

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
)

// Language код языка, для которого загружены словари
type Language string

const (
	LangRU   Language = "ru"
	LangUK   Language = "uk"
	LangEN   Language = "en"
	LangAuto Language = "auto"
)

// Gender грамматический род, выводимый из словарей и морфологии
type Gender string

const (
	GenderMasc    Gender = "masc"
	GenderFemn    Gender = "femn"
	GenderUnknown Gender = "unknown"
)

// GivenName словарная запись личного имени
type GivenName struct {
	Canonical string // Каноническая (именительная) форма
	Gender    Gender
}

// Lexicon неизменяемый набор словарей для одного языка.
// После построения Store словари только читаются, поэтому никакой
// синхронизации для конкурентного доступа не требуется.
type Lexicon struct {
	Language Language

	given       map[string]GivenName
	surnames    map[string]struct{}
	diminutives map[string]string

	patronymicSuffixes []string
	surnameSuffixes    []string

	// Таблица подстановки суффиксов фамилий по роду:
	// мужской суффикс -> женский и обратная таблица
	feminineSurname  map[string]string
	masculineSurname map[string]string

	legalForms map[string]struct{}
	stopwords  map[string]struct{}

	// Слова-маркеры идентификаторов: маркер -> тип идентификатора
	idMarkers map[string]string

	birthMarkers      map[string]struct{}
	birthMarkerPhrase [][]string

	months     map[string]int
	separators map[string]struct{}
}

// Store процессный набор лексиконов, строится один раз на старте
// и разделяется между всеми запросами только для чтения.
type Store struct {
	langs   map[Language]*Lexicon
	generic *Lexicon
}

// Option настройка построения Store
type Option func(*storeOptions)

type storeOptions struct {
	sqlitePath string
}

// WithSQLite дополняет встроенные словари записями из файла SQLite
// (внешний справочник, загрузка лексиконов — внешняя забота).
func WithSQLite(path string) Option {
	return func(o *storeOptions) {
		o.sqlitePath = path
	}
}

// NewStore создает хранилище лексиконов из встроенных таблиц.
// Ошибка здесь фатальна и возможна только на старте процесса.
func NewStore(opts ...Option) (*Store, error) {
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}

	store := &Store{
		langs: map[Language]*Lexicon{
			LangRU: buildRussian(),
			LangUK: buildUkrainian(),
			LangEN: buildEnglish(),
		},
	}
	store.generic = store.langs[LangEN]

	if o.sqlitePath != "" {
		if err := store.extendFromSQLite(o.sqlitePath); err != nil {
			return nil, fmt.Errorf("lexicon: sqlite extension failed: %w", err)
		}
	}

	for lang, lex := range store.langs {
		if err := lex.validate(); err != nil {
			return nil, fmt.Errorf("lexicon: corrupted tables for %q: %w", lang, err)
		}
	}
	return store, nil
}

// ForLanguage возвращает лексикон языка. Для неподдерживаемого языка
// возвращается generic-набор и false — вызывающий фиксирует fallback.
func (s *Store) ForLanguage(lang Language) (*Lexicon, bool) {
	if lex, ok := s.langs[lang]; ok {
		return lex, true
	}
	return s.generic, false
}

// Generic возвращает общий набор правил (используется как fallback)
func (s *Store) Generic() *Lexicon {
	return s.generic
}

// Languages возвращает список поддерживаемых языков
func (s *Store) Languages() []Language {
	out := make([]Language, 0, len(s.langs))
	for lang := range s.langs {
		out = append(out, lang)
	}
	return out
}

func (l *Lexicon) validate() error {
	if len(l.legalForms) == 0 {
		return fmt.Errorf("empty legal form set")
	}
	if len(l.idMarkers) == 0 {
		return fmt.Errorf("empty identifier marker set")
	}
	for dim, canon := range l.diminutives {
		if canon == "" {
			return fmt.Errorf("diminutive %q maps to empty canonical form", dim)
		}
	}
	return nil
}

// LookupGiven ищет токен в словаре личных имен
func (l *Lexicon) LookupGiven(token string) (GivenName, bool) {
	g, ok := l.given[strings.ToLower(token)]
	return g, ok
}

// IsSurname проверяет точное вхождение в словарь фамилий
func (l *Lexicon) IsSurname(token string) bool {
	_, ok := l.surnames[strings.ToLower(token)]
	return ok
}

// Diminutive возвращает каноническую форму для уменьшительного имени
func (l *Lexicon) Diminutive(token string) (string, bool) {
	canon, ok := l.diminutives[strings.ToLower(token)]
	return canon, ok
}

// MatchPatronymicSuffix проверяет совпадение с таблицей суффиксов отчеств.
// Возвращает самый длинный совпавший суффикс.
func (l *Lexicon) MatchPatronymicSuffix(token string) (string, bool) {
	return matchLongestSuffix(strings.ToLower(token), l.patronymicSuffixes)
}

// MatchSurnameSuffix проверяет совпадение с таблицей суффиксов фамилий
func (l *Lexicon) MatchSurnameSuffix(token string) (string, bool) {
	return matchLongestSuffix(strings.ToLower(token), l.surnameSuffixes)
}

// FeminineSurname возвращает женскую форму для фамилии с мужским суффиксом
func (l *Lexicon) FeminineSurname(surname string) (string, bool) {
	return substituteSuffix(surname, l.feminineSurname)
}

// MasculineSurname возвращает мужскую форму для фамилии с женским суффиксом
func (l *Lexicon) MasculineSurname(surname string) (string, bool) {
	return substituteSuffix(surname, l.masculineSurname)
}

// IsLegalForm проверяет, является ли токен маркером организационно-правовой формы
func (l *Lexicon) IsLegalForm(token string) bool {
	_, ok := l.legalForms[normalizeMarker(token)]
	return ok
}

// IsStopword проверяет, является ли токен стоп-словом/шумом домена.
// Для английского дополнительно сверяется стем Snowball, чтобы
// словоформы шума ("payments", "transfers") находили базовую запись.
func (l *Lexicon) IsStopword(token string) bool {
	lower := strings.ToLower(token)
	if _, ok := l.stopwords[lower]; ok {
		return true
	}
	if l.Language == LangEN {
		if stem, err := snowball.Stem(lower, "english", false); err == nil && stem != lower {
			_, ok := l.stopwords[stem]
			return ok
		}
	}
	return false
}

// IDMarkerType возвращает тип идентификатора для слова-маркера
// ("инн" -> "inn", "паспорт" -> "passport" и т.д.)
func (l *Lexicon) IDMarkerType(token string) (string, bool) {
	t, ok := l.idMarkers[normalizeMarker(token)]
	return t, ok
}

// IsBirthMarker проверяет однословный маркер даты рождения ("д.р.")
func (l *Lexicon) IsBirthMarker(token string) bool {
	_, ok := l.birthMarkers[normalizeMarker(token)]
	return ok
}

// BirthMarkerPhrases возвращает многословные маркеры даты рождения
// ("дата рождения", "date of birth") в нижнем регистре
func (l *Lexicon) BirthMarkerPhrases() [][]string {
	return l.birthMarkerPhrase
}

// MonthNumber возвращает номер месяца по его названию в любом падеже
func (l *Lexicon) MonthNumber(token string) (int, bool) {
	m, ok := l.months[strings.ToLower(token)]
	return m, ok
}

// IsSeparator проверяет слово-разделитель персон ("и", "та", "and")
func (l *Lexicon) IsSeparator(token string) bool {
	_, ok := l.separators[strings.ToLower(token)]
	return ok
}

// IsNameCandidate сообщает, что токен известен словарям как компонент имени.
// Такие токены никогда не удаляются фильтром шума.
func (l *Lexicon) IsNameCandidate(token string) bool {
	if _, ok := l.LookupGiven(token); ok {
		return true
	}
	if l.IsSurname(token) {
		return true
	}
	if _, ok := l.Diminutive(token); ok {
		return true
	}
	if _, ok := l.MatchPatronymicSuffix(token); ok {
		return true
	}
	return false
}

// normalizeMarker убирает точки и регистр: "д.р." и "ДР" дают один ключ
func normalizeMarker(token string) string {
	return strings.ToLower(strings.ReplaceAll(token, ".", ""))
}

func matchLongestSuffix(lower string, suffixes []string) (string, bool) {
	best := ""
	for _, suf := range suffixes {
		if len(suf) > len(best) && len(lower) > len(suf) && strings.HasSuffix(lower, suf) {
			best = suf
		}
	}
	return best, best != ""
}

func substituteSuffix(word string, table map[string]string) (string, bool) {
	lower := strings.ToLower(word)
	bestFrom, bestTo := "", ""
	for from, to := range table {
		if len(from) > len(bestFrom) && len(lower) > len(from) && strings.HasSuffix(lower, from) {
			bestFrom, bestTo = from, to
		}
	}
	if bestFrom == "" {
		return word, false
	}
	return word[:len(word)-len(bestFrom)] + bestTo, true
}
