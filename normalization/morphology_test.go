package normalization

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitynorm/lexicon"
	"entitynorm/morph"
)

// failingAnalyzer имитирует недоступный морфологический бэкенд
type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(string, lexicon.Language) ([]morph.Parse, error) {
	return nil, errors.New("backend down")
}

func TestMorphologizerSurname(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	m := NewMorphologizer(lex, morph.NewRuleAnalyzer(), lexicon.LangRU, DefaultFlags())

	out := m.NormalizeToken(Token{Text: "Ивановой", Script: ScriptCyrillic}, RoleSurname)
	assert.Equal(t, "Иванова", out.Normalized)
	assert.Equal(t, lexicon.GenderFemn, out.Gender)
	assert.False(t, out.Fallback)
}

func TestMorphologizerGivenObliqueCaseRefinedByDict(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	m := NewMorphologizer(lex, morph.NewRuleAnalyzer(), lexicon.LangRU, DefaultFlags())

	out := m.NormalizeToken(Token{Text: "Дарье", Script: ScriptCyrillic}, RoleGiven)
	assert.Equal(t, "Дарья", out.Normalized)
}

func TestMorphologizerLatinSkipsBackend(t *testing.T) {
	lex := testLexicon(t, lexicon.LangEN)
	// Падающий бэкенд не должен быть вызван для латиницы.
	m := NewMorphologizer(lex, failingAnalyzer{}, lexicon.LangEN, DefaultFlags())

	out := m.NormalizeToken(Token{Text: "holoborodko", Script: ScriptLatin}, RoleSurname)
	assert.Equal(t, "Holoborodko", out.Normalized)
	assert.False(t, out.Fallback)
	require.Nil(t, out.Err)
}

func TestMorphologizerBackendErrorFallsBack(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	m := NewMorphologizer(lex, failingAnalyzer{}, lexicon.LangRU, DefaultFlags())

	out := m.NormalizeToken(Token{Text: "Ивановой", Script: ScriptCyrillic}, RoleSurname)
	assert.Equal(t, "Ивановой", out.Normalized)
	assert.True(t, out.Fallback)
	require.NotNil(t, out.Err)
	assert.Equal(t, CodeMorphBackend, out.Err.Code)
}

func TestMorphologizerInitial(t *testing.T) {
	lex := testLexicon(t, lexicon.LangRU)
	m := NewMorphologizer(lex, morph.NewRuleAnalyzer(), lexicon.LangRU, DefaultFlags())

	out := m.NormalizeToken(Token{Text: "И", Script: ScriptCyrillic}, RoleInitial)
	assert.Equal(t, "И.", out.Normalized)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"иванова", "Иванова"},
		{"ПЕТРОВ", "Петров"},
		{"петрова-сидорова", "Петрова-Сидорова"},
		{"o'brien", "O'Brien"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in))
	}
}
