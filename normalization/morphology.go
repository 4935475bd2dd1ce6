package normalization

import (
	"strings"
	"unicode"

	"entitynorm/lexicon"
	"entitynorm/morph"
)

// morphOutcome результат нормализации одного персонального токена
type morphOutcome struct {
	Normalized   string
	Fallback     bool
	Gender       lexicon.Gender
	GenderWeight float64
	Notes        []string
	Err          *AppError
}

// Morphologizer приводит персональные токены к канонической
// именительной форме и собирает свидетельства рода
type Morphologizer struct {
	lex      *lexicon.Lexicon
	analyzer morph.Analyzer
	lang     lexicon.Language
	flags    Flags
}

// NewMorphologizer создает морфологизатор для словаря и бэкенда анализа
func NewMorphologizer(lex *lexicon.Lexicon, analyzer morph.Analyzer, lang lexicon.Language, flags Flags) *Morphologizer {
	return &Morphologizer{lex: lex, analyzer: analyzer, lang: lang, flags: flags}
}

// NormalizeToken нормализует токен согласно его роли. Ошибка бэкенда
// не фатальна: токен сохраняется в исходном виде с флагом fallback.
func (m *Morphologizer) NormalizeToken(tok Token, role Role) morphOutcome {
	switch role {
	case RoleInitial:
		return morphOutcome{Normalized: normalizeInitial(tok.Text)}
	case RoleGiven:
		return m.normalizeGiven(tok)
	case RoleSurname:
		return m.normalizeDeclined(tok)
	case RolePatronymic:
		return m.normalizeDeclined(tok)
	default:
		return morphOutcome{Normalized: tok.Text}
	}
}

// normalizeGiven проходит цепочку: уменьшительная форма, словарь
// канонических имен, морфологический анализ
func (m *Morphologizer) normalizeGiven(tok Token) morphOutcome {
	if m.flags.EnableDiminutives {
		if canonical, ok := m.lex.Diminutive(tok.Text); ok {
			out := morphOutcome{Normalized: canonical}
			if name, found := m.lex.LookupGiven(canonical); found {
				out.Gender = name.Gender
				out.GenderWeight = 1.0
			}
			out.Notes = append(out.Notes, "раскрыта уменьшительная форма")
			return out
		}
	}

	if name, ok := m.lex.LookupGiven(tok.Text); ok {
		return morphOutcome{Normalized: name.Canonical, Gender: name.Gender, GenderWeight: 1.0}
	}

	return m.analyzeDeclined(tok, func(lemma string) (string, bool) {
		// Лемма незнакомого имени могла совпасть со словарной формой.
		if name, ok := m.lex.LookupGiven(lemma); ok {
			return name.Canonical, true
		}
		return "", false
	})
}

// normalizeDeclined обрабатывает фамилии и отчества
func (m *Morphologizer) normalizeDeclined(tok Token) morphOutcome {
	return m.analyzeDeclined(tok, nil)
}

// analyzeDeclined выполняет морфологический анализ с выбором лучшего
// именительного разбора. postLookup дает шанс уточнить лемму по словарю.
func (m *Morphologizer) analyzeDeclined(tok Token, postLookup func(string) (string, bool)) morphOutcome {
	if tok.Script == ScriptLatin {
		// Латиница проходит без морфологии: транслитерированные
		// формы не склоняются предсказуемо.
		return morphOutcome{Normalized: titleCase(tok.Text)}
	}

	parses, err := m.analyzer.Analyze(tok.Text, m.lang)
	if err != nil {
		return morphOutcome{
			Normalized: tok.Text,
			Fallback:   true,
			Err:        NewMorphBackendError(tok.Text, err),
		}
	}

	best, ok := morph.SelectNominative(parses)
	if !ok {
		return morphOutcome{Normalized: tok.Text, Fallback: true}
	}

	normalized := best.Lemma
	if postLookup != nil {
		if refined, found := postLookup(normalized); found {
			normalized = refined
		}
	}

	return morphOutcome{
		Normalized:   titleCase(normalized),
		Gender:       best.Gender,
		GenderWeight: best.Score,
	}
}

// normalizeInitial приводит инициал к форме "X."
func normalizeInitial(text string) string {
	trimmed := strings.TrimSuffix(text, ".")
	return strings.ToUpper(trimmed) + "."
}

// titleCase капитализирует слово с учетом дефисов и апострофов
// двойных фамилий ("петрова-сидорова" -> "Петрова-Сидорова")
func titleCase(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	upperNext := true
	for _, r := range word {
		switch {
		case r == '-' || r == '\'':
			b.WriteRune(r)
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
