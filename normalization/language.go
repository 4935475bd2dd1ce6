package normalization

import (
	"unicode"

	"entitynorm/lexicon"
)

// ukMarkers буквы, встречающиеся в украинском и отсутствующие в русском
var ukMarkers = map[rune]struct{}{
	'і': {}, 'ї': {}, 'є': {}, 'ґ': {},
	'І': {}, 'Ї': {}, 'Є': {}, 'Ґ': {},
}

// ruMarkers буквы, встречающиеся в русском и отсутствующие в украинском
var ruMarkers = map[rune]struct{}{
	'ы': {}, 'э': {}, 'ъ': {}, 'ё': {},
	'Ы': {}, 'Э': {}, 'Ъ': {}, 'Ё': {},
}

// DetectLanguage определяет язык текста по составу букв. Украинские
// маркерные буквы имеют приоритет над общекириллическими, так как
// тексты платежей часто смешивают оба языка.
func DetectLanguage(text string) lexicon.Language {
	var ukHits, ruHits, cyrillic, latin int
	for _, r := range text {
		if _, ok := ukMarkers[r]; ok {
			ukHits++
		}
		if _, ok := ruMarkers[r]; ok {
			ruHits++
		}
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}

	switch {
	case ukHits > ruHits:
		return lexicon.LangUK
	case ruHits > ukHits:
		return lexicon.LangRU
	case latin > cyrillic:
		// Кириллические маркеры ("д.р.") в латинском тексте не
		// меняют язык всего текста.
		return lexicon.LangEN
	case cyrillic > 0:
		return lexicon.LangRU
	default:
		return lexicon.LangEN
	}
}

// resolveLanguage применяет подсказку запроса либо автоопределение
func resolveLanguage(text string, hint lexicon.Language) lexicon.Language {
	if hint == "" || hint == lexicon.LangAuto {
		return DetectLanguage(text)
	}
	return hint
}
