package normalization

import (
	"strings"

	"entitynorm/lexicon"
)

// assembler собирает итоговый результат: трассировку, нормализованный
// текст и агрегированную уверенность
type assembler struct {
	lang lexicon.Language
}

// Assemble строит NormalizationResult из выходов всех стадий.
// Согласованные формы фамилий из записей персон переносятся обратно в
// потокенные выходы, чтобы трассировка и текст совпадали с записями.
func (a assembler) Assemble(
	requestID string,
	originalText string,
	tokens []Token,
	cls classification,
	outcomes []morphOutcome,
	persons []PersonRecord,
	orgs []OrganizationRecord,
	unlinked []LinkedID,
	pipelineErrors []string,
) *NormalizationResult {
	finalOutput := make([]string, len(tokens))
	for i := range tokens {
		finalOutput[i] = outcomes[i].Normalized
	}
	for _, p := range persons {
		for j, idx := range p.TokenIndexes {
			finalOutput[idx] = p.NormalizedTokens[j]
		}
	}

	trace := make([]TokenTrace, len(tokens))
	tokenTexts := make([]string, len(tokens))
	var confidenceSum float64
	for i, tok := range tokens {
		assignment := cls.roles[i]
		entry := TokenTrace{
			Token:            tok.Text,
			Role:             assignment.Role,
			Confidence:       assignment.Confidence,
			RuleID:           assignment.RuleID,
			NormalizedOutput: finalOutput[i],
			Fallback:         outcomes[i].Fallback,
			Notes:            append(assignment.Notes, outcomes[i].Notes...),
		}
		if assignment.Role.IsPersonRole() && tok.Script != ScriptLatin {
			entry.MorphLang = a.lang
		}
		if tok.HomoglyphDetected {
			entry.Notes = append(entry.Notes, "обнаружены символы-гомоглифы")
		}
		trace[i] = entry
		tokenTexts[i] = tok.Text
		confidenceSum += assignment.Confidence
	}

	confidence := 1.0
	if len(tokens) > 0 {
		confidence = confidenceSum / float64(len(tokens))
	}

	return &NormalizationResult{
		RequestID:           requestID,
		OriginalText:        originalText,
		NormalizedText:      buildNormalizedText(cls, finalOutput),
		Tokens:              tokenTexts,
		Persons:             persons,
		Organizations:       orgs,
		UnlinkedIdentifiers: unlinked,
		Trace:               trace,
		Language:            a.lang,
		Confidence:          confidence,
		Success:             true,
		Errors:              pipelineErrors,
	}
}

// buildNormalizedText склеивает нормализованные токены, опуская
// маркеры документов: они служат привязке идентификаторов, но не
// являются частью имени
func buildNormalizedText(cls classification, finalOutput []string) string {
	parts := make([]string, 0, len(finalOutput))
	for i, out := range finalOutput {
		if cls.roles[i].Role == RoleDocMarker {
			continue
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, " ")
}
