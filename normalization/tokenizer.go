package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"entitynorm/lexicon"
)

// Пары гомоглифов латиница <-> кириллица, визуально неразличимые
// в большинстве шрифтов.
var latinToCyrillic = map[rune]rune{
	'a': 'а', 'e': 'е', 'o': 'о', 'p': 'р', 'c': 'с', 'x': 'х', 'y': 'у', 'i': 'і', 'k': 'к',
	'A': 'А', 'B': 'В', 'C': 'С', 'E': 'Е', 'H': 'Н', 'K': 'К', 'M': 'М', 'O': 'О',
	'P': 'Р', 'T': 'Т', 'X': 'Х', 'Y': 'У', 'I': 'І',
}

var cyrillicToLatin = func() map[rune]rune {
	m := make(map[rune]rune, len(latinToCyrillic))
	for lat, cyr := range latinToCyrillic {
		m[cyr] = lat
	}
	return m
}()

// Tokenizer разбивает текст на токены, определяет письменность и
// отмечает кавычки и гомоглифы. Удаление стоп-слов происходит здесь же,
// до классификации, чтобы шумовые слова не попадали в трассировку.
type Tokenizer struct {
	lex   *lexicon.Lexicon
	flags Flags
}

// NewTokenizer создает токенизатор для словаря языка и флагов запроса
func NewTokenizer(lex *lexicon.Lexicon, flags Flags) *Tokenizer {
	return &Tokenizer{lex: lex, flags: flags}
}

// Tokenize возвращает токены и множество жестких границ: boundaries[i]
// означает разрыв между токенами i-1 и i (запятая, точка с запятой,
// слеш). Границы закрывают последовательности персональных токенов
// при группировке.
func (t *Tokenizer) Tokenize(text string) ([]Token, map[int]bool) {
	normalized := norm.NFC.String(text)

	tokens := make([]Token, 0, 16)
	boundaries := make(map[int]bool)

	var (
		builder    strings.Builder
		start      = -1
		inQuotes   bool
		pendingCut bool
	)

	flush := func(end int) {
		if builder.Len() == 0 {
			return
		}
		raw := builder.String()
		builder.Reset()
		trimmed := trimTrailingDot(raw)
		end -= len(raw) - len(trimmed)
		if trimmed == "" {
			start = -1
			return
		}
		tok := t.makeToken(trimmed, start, end, inQuotes)
		start = -1
		if t.shouldDrop(tok) {
			return
		}
		if pendingCut {
			boundaries[len(tokens)] = true
			pendingCut = false
		}
		tokens = append(tokens, tok)
	}

	for i, r := range normalized {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '\'':
			if builder.Len() == 0 {
				start = i
			}
			builder.WriteRune(r)
		case r == '«' || r == '“':
			flush(i)
			inQuotes = true
		case r == '"':
			// Прямая кавычка не имеет парной формы и переключает
			// состояние.
			flush(i)
			inQuotes = !inQuotes
		case r == '»' || r == '”':
			flush(i)
			inQuotes = false
		case r == ',' || r == ';' || r == '/' || r == '\n':
			flush(i)
			pendingCut = true
			// Закрывающая прямая кавычка без парной формы снимается
			// на разделителе.
			inQuotes = false
		default:
			flush(i)
		}
	}
	flush(len(normalized))

	return tokens, boundaries
}

// makeToken определяет письменность и гомоглифы для одного токена
func (t *Tokenizer) makeToken(text string, start, end int, quoted bool) Token {
	script, mixed := detectScript(text)

	tok := Token{
		Text:     text,
		Start:    start,
		End:      end,
		Script:   script,
		IsQuoted: quoted,
	}

	if mixed && isHomoglyphMix(text) {
		tok.HomoglyphDetected = true
		if t.flags.SecureNormalize {
			tok.Text = foldToMajorityScript(text)
			tok.Script, _ = detectScript(tok.Text)
		}
	}
	return tok
}

// shouldDrop решает судьбу стоп-слова. Кандидаты в имена никогда не
// удаляются, иначе фамилия Счетчиков пропала бы из-за префикса "счет".
func (t *Tokenizer) shouldDrop(tok Token) bool {
	if !t.flags.RemoveStopWords {
		return false
	}
	if !t.lex.IsStopword(tok.Text) {
		return false
	}
	if t.flags.PreserveNames && t.lex.IsNameCandidate(tok.Text) {
		return false
	}
	// Слово может быть одновременно шумом и маркером ("счет" как
	// стоп-слово и как маркер номера счета); маркеры сохраняются.
	if _, ok := t.lex.IDMarkerType(tok.Text); ok {
		return false
	}
	if t.lex.IsBirthMarker(tok.Text) || t.lex.IsLegalForm(tok.Text) {
		return false
	}
	return true
}

// detectScript определяет письменность токена; второй результат
// сообщает о смешении латиницы и кириллицы внутри одного слова
func detectScript(text string) (Script, bool) {
	var hasLatin, hasCyrillic, hasDigit, hasOther bool
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Latin, r):
			hasLatin = true
		case unicode.Is(unicode.Cyrillic, r):
			hasCyrillic = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasOther = true
		}
	}

	switch {
	case hasLatin && hasCyrillic:
		return ScriptMixed, true
	case hasCyrillic:
		return ScriptCyrillic, false
	case hasLatin:
		return ScriptLatin, false
	case hasDigit && !hasOther:
		return ScriptDigit, false
	default:
		return ScriptOther, false
	}
}

// isHomoglyphMix проверяет, что все символы меньшинственной
// письменности входят в таблицу гомоглифов
func isHomoglyphMix(text string) bool {
	latin, cyrillic := scriptCounts(text)
	if latin == 0 || cyrillic == 0 {
		return false
	}
	minorityIsLatin := latin < cyrillic
	for _, r := range text {
		if minorityIsLatin && unicode.Is(unicode.Latin, r) {
			if _, ok := latinToCyrillic[r]; !ok {
				return false
			}
		}
		if !minorityIsLatin && unicode.Is(unicode.Cyrillic, r) {
			if _, ok := cyrillicToLatin[r]; !ok {
				return false
			}
		}
	}
	return true
}

// foldToMajorityScript приводит символы-гомоглифы к письменности
// большинства символов токена
func foldToMajorityScript(text string) string {
	latin, cyrillic := scriptCounts(text)
	toCyrillic := cyrillic >= latin

	out := []rune(text)
	for i, r := range out {
		if toCyrillic {
			if folded, ok := latinToCyrillic[r]; ok {
				out[i] = folded
			}
		} else {
			if folded, ok := cyrillicToLatin[r]; ok {
				out[i] = folded
			}
		}
	}
	return string(out)
}

func scriptCounts(text string) (latin, cyrillic int) {
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Latin, r):
			latin++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		}
	}
	return latin, cyrillic
}

// trimTrailingDot убирает завершающую точку предложения, сохраняя
// внутренние точки сокращений ("д.р.", "12.11.1968") и инициалы ("И.")
func trimTrailingDot(tok string) string {
	if !strings.HasSuffix(tok, ".") {
		return tok
	}
	if strings.Count(tok, ".") > 1 {
		return tok
	}
	if len([]rune(tok)) <= 2 {
		return tok
	}
	return strings.TrimSuffix(tok, ".")
}
