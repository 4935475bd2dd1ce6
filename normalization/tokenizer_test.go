package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitynorm/lexicon"
)

func testLexicon(t *testing.T, lang lexicon.Language) *lexicon.Lexicon {
	t.Helper()
	store, err := lexicon.NewStore()
	require.NoError(t, err)
	lex, _ := store.ForLanguage(lang)
	return lex
}

func tokenTexts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	tk := NewTokenizer(lex, Flags{})

	tokens, boundaries := tk.Tokenize("Иванов Иван Иванович")
	assert.Equal(t, []string{"Иванов", "Иван", "Иванович"}, tokenTexts(tokens))
	assert.Empty(t, boundaries)

	for _, tok := range tokens {
		assert.Equal(t, ScriptCyrillic, tok.Script)
		assert.False(t, tok.IsQuoted)
	}
}

func TestTokenizeKeepsAbbreviationsAndDates(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	tk := NewTokenizer(lex, Flags{})

	tokens, boundaries := tk.Tokenize("Петров П.П., д.р. 12.11.1968")
	assert.Equal(t, []string{"Петров", "П.П.", "д.р.", "12.11.1968"}, tokenTexts(tokens))
	assert.True(t, boundaries[2], "запятая дает жесткую границу перед д.р.")
}

func TestTokenizeTrailingDot(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	tk := NewTokenizer(lex, Flags{})

	// Точка конца предложения отрезается, точки сокращений и
	// инициалов сохраняются.
	tokens, _ := tk.Tokenize("Иванов.")
	assert.Equal(t, []string{"Иванов"}, tokenTexts(tokens))

	tokens, _ = tk.Tokenize("И.")
	assert.Equal(t, []string{"И."}, tokenTexts(tokens))

	tokens, _ = tk.Tokenize("П.П.")
	assert.Equal(t, []string{"П.П."}, tokenTexts(tokens))
}

func TestTokenizeQuotes(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	tk := NewTokenizer(lex, Flags{})

	tokens, _ := tk.Tokenize("ООО «Ромашка» Иванов")
	require.Len(t, tokens, 3)
	assert.False(t, tokens[0].IsQuoted)
	assert.True(t, tokens[1].IsQuoted)
	assert.False(t, tokens[2].IsQuoted)
}

func TestTokenizeStopwordRemoval(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)

	tk := NewTokenizer(lex, Flags{RemoveStopWords: true, PreserveNames: true})
	tokens, _ := tk.Tokenize("Оплата за товар Иванов Иван")
	assert.Equal(t, []string{"Иванов", "Иван"}, tokenTexts(tokens))

	// Без флага стоп-слова сохраняются.
	tkAll := NewTokenizer(lex, Flags{})
	tokens, _ = tkAll.Tokenize("Оплата за товар Иванов Иван")
	assert.Len(t, tokens, 5)
}

func TestTokenizeStopwordKeepsMarkers(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	tk := NewTokenizer(lex, Flags{RemoveStopWords: true, PreserveNames: true})

	// "счет" одновременно стоп-слово и маркер идентификатора.
	tokens, _ := tk.Tokenize("счет 40817810099910004312")
	assert.Equal(t, []string{"счет", "40817810099910004312"}, tokenTexts(tokens))
}

func TestTokenizeEnglishStemmedStopwords(t *testing.T) {
	lex := testLexicon(t, lexicon.LangEN)
	tk := NewTokenizer(lex, Flags{RemoveStopWords: true, PreserveNames: true})

	tokens, _ := tk.Tokenize("Payments for services Holoborodko Liudmyla")
	assert.Equal(t, []string{"Holoborodko", "Liudmyla"}, tokenTexts(tokens))
}

func TestHomoglyphDetection(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)

	// "Ивaнов" с латинской "a" внутри кириллицы.
	mixed := "Ивaнов"

	tk := NewTokenizer(lex, Flags{})
	tokens, _ := tk.Tokenize(mixed)
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].HomoglyphDetected)
	assert.Equal(t, ScriptMixed, tokens[0].Script)

	secure := NewTokenizer(lex, Flags{SecureNormalize: true})
	tokens, _ = secure.Tokenize(mixed)
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].HomoglyphDetected)
	assert.Equal(t, "Иванов", tokens[0].Text)
	assert.Equal(t, ScriptCyrillic, tokens[0].Script)
}

func TestTokenizeEmpty(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	tk := NewTokenizer(lex, Flags{})

	tokens, boundaries := tk.Tokenize("")
	assert.Empty(t, tokens)
	assert.Empty(t, boundaries)
}
