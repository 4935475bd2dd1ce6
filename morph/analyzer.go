// Package morph implements the morphological analysis backend for
// person-name tokens. It deliberately covers only name morphology:
// oblique-case endings of Slavic surnames, patronymics and given names
// are mapped back to the nominative with a grammatical gender tag.
//
// The analyzer is table-driven (see tables.go): every rule rewrites a
// word-final suffix and reports the case and gender of the matched
// form together with a score. Callers pick the best parse with
// SelectNominative, which prefers the highest score and breaks ties in
// favour of parses already tagged nominative.
//
// All methods are safe for concurrent use: the rule tables are
// immutable after construction.
package morph

import (
	"fmt"
	"sort"
	"strings"

	"entitynorm/lexicon"
)

// Case grammatical case tag of a parse
type Case string

const (
	CaseNominative   Case = "nomn"
	CaseGenitive     Case = "gent"
	CaseDative       Case = "datv"
	CaseAccusative   Case = "accs"
	CaseInstrumental Case = "ablt"
	CasePrepositive  Case = "loct"
	CaseUnknown      Case = "unkn"
)

// Parse is a single analysis candidate for a token.
type Parse struct {
	Lemma  string
	Case   Case
	Gender lexicon.Gender
	Score  float64
}

// Analyzer is the backend contract consumed by the normalizer.
// Implementations must never panic; unavailability is reported as an
// error and recovered per-token by the caller.
type Analyzer interface {
	Analyze(token string, lang lexicon.Language) ([]Parse, error)
}

// RuleAnalyzer is the built-in suffix-table backend.
type RuleAnalyzer struct {
	tables map[lexicon.Language][]suffixRule
}

// NewRuleAnalyzer builds the analyzer with the compiled rule tables.
func NewRuleAnalyzer() *RuleAnalyzer {
	return &RuleAnalyzer{
		tables: map[lexicon.Language][]suffixRule{
			lexicon.LangRU: russianRules(),
			lexicon.LangUK: ukrainianRules(),
		},
	}
}

// Analyze returns all parse candidates for the token, best-scored
// first. A bare "already nominative" candidate is always included so
// that unknown tokens survive the pipeline unchanged.
func (a *RuleAnalyzer) Analyze(token string, lang lexicon.Language) ([]Parse, error) {
	if token == "" {
		return nil, fmt.Errorf("morph: empty token")
	}
	rules, ok := a.tables[lang]
	if !ok {
		return nil, fmt.Errorf("morph: no rule table for language %q", lang)
	}

	lower := strings.ToLower(token)
	parses := make([]Parse, 0, 4)
	for _, rule := range rules {
		if len(lower) > len(rule.suffix) && strings.HasSuffix(lower, rule.suffix) {
			lemma := lower[:len(lower)-len(rule.suffix)] + rule.replace
			parses = append(parses, Parse{
				Lemma:  lemma,
				Case:   rule.caseTag,
				Gender: rule.gender,
				Score:  rule.score,
			})
		}
	}

	// Bare candidate: treat the surface form as nominative.
	parses = append(parses, Parse{
		Lemma:  lower,
		Case:   CaseNominative,
		Gender: lexicon.GenderUnknown,
		Score:  0.3,
	})

	sortParses(parses)
	return parses, nil
}

// SelectNominative picks the most probable nominative-case parse:
// highest score wins, ties go to the parse already tagged nominative.
func SelectNominative(parses []Parse) (Parse, bool) {
	if len(parses) == 0 {
		return Parse{}, false
	}
	sorted := make([]Parse, len(parses))
	copy(sorted, parses)
	sortParses(sorted)
	return sorted[0], true
}

func sortParses(parses []Parse) {
	sort.SliceStable(parses, func(i, j int) bool {
		if parses[i].Score != parses[j].Score {
			return parses[i].Score > parses[j].Score
		}
		if (parses[i].Case == CaseNominative) != (parses[j].Case == CaseNominative) {
			return parses[i].Case == CaseNominative
		}
		// Deterministic order for equal candidates.
		return parses[i].Lemma < parses[j].Lemma
	})
}
