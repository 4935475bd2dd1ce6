package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore()
	require.NoError(t, err)
	return store
}

func TestStoreForLanguage(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name      string
		lang      Language
		supported bool
	}{
		{"russian", LangRU, true},
		{"ukrainian", LangUK, true},
		{"english", LangEN, true},
		{"unsupported falls back to generic", Language("de"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, ok := store.ForLanguage(tt.lang)
			require.NotNil(t, lex)
			assert.Equal(t, tt.supported, ok)
			if !tt.supported {
				assert.Equal(t, store.Generic(), lex)
			}
		})
	}
}

func TestLookupGiven(t *testing.T) {
	store := newTestStore(t)
	ru, _ := store.ForLanguage(LangRU)

	name, ok := ru.LookupGiven("Дарья")
	require.True(t, ok)
	assert.Equal(t, "Дарья", name.Canonical)
	assert.Equal(t, GenderFemn, name.Gender)

	name, ok = ru.LookupGiven("иван")
	require.True(t, ok)
	assert.Equal(t, "Иван", name.Canonical)
	assert.Equal(t, GenderMasc, name.Gender)

	_, ok = ru.LookupGiven("трактор")
	assert.False(t, ok)
}

func TestDiminutives(t *testing.T) {
	store := newTestStore(t)
	ru, _ := store.ForLanguage(LangRU)

	canonical, ok := ru.Diminutive("Саша")
	require.True(t, ok)
	assert.Equal(t, "Александр", canonical)

	canonical, ok = ru.Diminutive("катя")
	require.True(t, ok)
	assert.Equal(t, "Екатерина", canonical)

	// Forward direction only: canonical names are not diminutives.
	_, ok = ru.Diminutive("Александр")
	assert.False(t, ok)
}

func TestSuffixMatching(t *testing.T) {
	store := newTestStore(t)
	ru, _ := store.ForLanguage(LangRU)

	suf, ok := ru.MatchPatronymicSuffix("Иванович")
	require.True(t, ok)
	assert.Equal(t, "ович", suf)

	suf, ok = ru.MatchSurnameSuffix("Сидорова")
	require.True(t, ok)
	assert.Equal(t, "ова", suf)

	// The token must be longer than the suffix itself.
	_, ok = ru.MatchSurnameSuffix("ов")
	assert.False(t, ok)

	uk, _ := store.ForLanguage(LangUK)
	suf, ok = uk.MatchSurnameSuffix("Голобородько")
	require.True(t, ok)
	assert.Equal(t, "ко", suf)
}

func TestSurnameGenderForms(t *testing.T) {
	store := newTestStore(t)
	ru, _ := store.ForLanguage(LangRU)

	femn, ok := ru.FeminineSurname("Иванов")
	require.True(t, ok)
	assert.Equal(t, "Иванова", femn)

	masc, ok := ru.MasculineSurname("Сидорова")
	require.True(t, ok)
	assert.Equal(t, "Сидоров", masc)

	femn, ok = ru.FeminineSurname("Покровский")
	require.True(t, ok)
	assert.Equal(t, "Покровская", femn)

	// Invariant surnames have no counterpart form.
	_, ok = ru.FeminineSurname("Шевченко")
	assert.False(t, ok)
}

func TestMarkers(t *testing.T) {
	store := newTestStore(t)

	ru, _ := store.ForLanguage(LangRU)
	idType, ok := ru.IDMarkerType("ИНН")
	require.True(t, ok)
	assert.Equal(t, "inn", idType)

	assert.True(t, ru.IsLegalForm("ООО"))
	assert.True(t, ru.IsLegalForm("О.О.О."))
	assert.True(t, ru.IsBirthMarker("д.р."))
	assert.True(t, ru.IsBirthMarker("др"))

	uk, _ := store.ForLanguage(LangUK)
	idType, ok = uk.IDMarkerType("ІПН")
	require.True(t, ok)
	assert.Equal(t, "inn", idType)
	assert.True(t, uk.IsLegalForm("ТОВ"))

	en, _ := store.ForLanguage(LangEN)
	assert.True(t, en.IsLegalForm("LLC"))
	assert.True(t, en.IsBirthMarker("д.р."))
}

func TestMonths(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		lang  Language
		token string
		month int
	}{
		{LangRU, "ноября", 11},
		{LangRU, "января", 1},
		{LangUK, "листопада", 11},
		{LangEN, "November", 11},
		{LangEN, "nov", 11},
	}

	for _, tt := range tests {
		lex, _ := store.ForLanguage(tt.lang)
		month, ok := lex.MonthNumber(tt.token)
		require.True(t, ok, "месяц %q (%s)", tt.token, tt.lang)
		assert.Equal(t, tt.month, month)
	}
}

func TestStopwords(t *testing.T) {
	store := newTestStore(t)

	ru, _ := store.ForLanguage(LangRU)
	assert.True(t, ru.IsStopword("оплата"))
	assert.True(t, ru.IsStopword("Перевод"))
	assert.False(t, ru.IsStopword("Иван"))

	// English stopwords match through stemming.
	en, _ := store.ForLanguage(LangEN)
	assert.True(t, en.IsStopword("payment"))
	assert.True(t, en.IsStopword("services"))
	assert.False(t, en.IsStopword("Holoborodko"))
}

func TestIsNameCandidate(t *testing.T) {
	store := newTestStore(t)
	ru, _ := store.ForLanguage(LangRU)

	assert.True(t, ru.IsNameCandidate("Иван"))
	assert.True(t, ru.IsNameCandidate("Саша"))
	assert.True(t, ru.IsNameCandidate("Петрович"))
	assert.False(t, ru.IsNameCandidate("оплата"))
}

func TestSeparators(t *testing.T) {
	store := newTestStore(t)

	ru, _ := store.ForLanguage(LangRU)
	assert.True(t, ru.IsSeparator("и"))

	uk, _ := store.ForLanguage(LangUK)
	assert.True(t, uk.IsSeparator("та"))
	assert.False(t, uk.IsSeparator("Іван"))
}
