package morph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitynorm/lexicon"
)

func TestAnalyzeToNominative(t *testing.T) {
	analyzer := NewRuleAnalyzer()

	tests := []struct {
		name   string
		token  string
		lang   lexicon.Language
		lemma  string
		gender lexicon.Gender
	}{
		{"russian surname genitive", "Ивановой", lexicon.LangRU, "иванова", lexicon.GenderFemn},
		{"russian surname dative", "Иванову", lexicon.LangRU, "иванов", lexicon.GenderMasc},
		{"russian surname instrumental", "Ивановым", lexicon.LangRU, "иванов", lexicon.GenderMasc},
		{"russian patronymic genitive", "Петровича", lexicon.LangRU, "петрович", lexicon.GenderMasc},
		{"russian patronymic feminine", "Ивановны", lexicon.LangRU, "ивановна", lexicon.GenderFemn},
		{"adjectival surname genitive", "Покровского", lexicon.LangRU, "покровский", lexicon.GenderMasc},
		{"adjectival surname feminine", "Покровской", lexicon.LangRU, "покровская", lexicon.GenderFemn},
		{"ukrainian patronymic genitive", "Шевченковича", lexicon.LangUK, "шевченкович", lexicon.GenderMasc},
		{"ukrainian surname enko genitive", "Голобородька", lexicon.LangUK, "голобородько", lexicon.GenderUnknown},
		{"ukrainian adjectival genitive", "Хмельницького", lexicon.LangUK, "хмельницький", lexicon.GenderMasc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parses, err := analyzer.Analyze(tt.token, tt.lang)
			require.NoError(t, err)
			require.NotEmpty(t, parses)

			best, ok := SelectNominative(parses)
			require.True(t, ok)
			assert.Equal(t, tt.lemma, best.Lemma)
			assert.Equal(t, tt.gender, best.Gender)
		})
	}
}

func TestNominativeRoundTrip(t *testing.T) {
	// Forms already nominative must survive analysis unchanged even
	// when an oblique reading of another paradigm also matches.
	analyzer := NewRuleAnalyzer()

	tests := []struct {
		token string
		lang  lexicon.Language
	}{
		{"Иванова", lexicon.LangRU},
		{"Иванов", lexicon.LangRU},
		{"Петрович", lexicon.LangRU},
		{"Ивановна", lexicon.LangRU},
		{"Ковальська", lexicon.LangUK},
		{"Шевченко", lexicon.LangUK},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			parses, err := analyzer.Analyze(tt.token, tt.lang)
			require.NoError(t, err)

			best, ok := SelectNominative(parses)
			require.True(t, ok)
			assert.Equal(t, CaseNominative, best.Case)
			assert.Equal(t, strings.ToLower(tt.token), best.Lemma)
		})
	}
}

func TestAnalyzeUnknownToken(t *testing.T) {
	analyzer := NewRuleAnalyzer()

	parses, err := analyzer.Analyze("Трактор", lexicon.LangRU)
	require.NoError(t, err)
	require.NotEmpty(t, parses)

	best, _ := SelectNominative(parses)
	assert.Equal(t, "трактор", best.Lemma)
	assert.Equal(t, CaseNominative, best.Case)
	assert.Equal(t, lexicon.GenderUnknown, best.Gender)
}

func TestAnalyzeErrors(t *testing.T) {
	analyzer := NewRuleAnalyzer()

	_, err := analyzer.Analyze("", lexicon.LangRU)
	assert.Error(t, err)

	_, err = analyzer.Analyze("Smith", lexicon.LangEN)
	assert.Error(t, err, "латиница обрабатывается без морфологии")
}

func TestCachedAnalyzer(t *testing.T) {
	cached, err := NewCachedAnalyzer(NewRuleAnalyzer(), 16)
	require.NoError(t, err)

	first, err := cached.Analyze("Ивановой", lexicon.LangRU)
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Len())

	second, err := cached.Analyze("Ивановой", lexicon.LangRU)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cached.Len())

	// Errors are not cached.
	_, err = cached.Analyze("Smith", lexicon.LangEN)
	require.Error(t, err)
	assert.Equal(t, 1, cached.Len())
}
