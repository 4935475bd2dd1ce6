package normalization

import (
	"entitynorm/lexicon"
)

// genderGapThreshold минимальный разрыв свидетельств, при котором род
// считается определенным
const genderGapThreshold = 0.3

// Grouper собирает персоны и организации из классифицированных и
// нормализованных токенов
type Grouper struct {
	lex *lexicon.Lexicon
}

// NewGrouper создает группировщик поверх словаря языка
func NewGrouper(lex *lexicon.Lexicon) *Grouper {
	return &Grouper{lex: lex}
}

// GroupPersons собирает непрерывные последовательности персональных
// токенов в записи персон. Разделители, границы и токены других ролей
// закрывают текущую последовательность.
func (g *Grouper) GroupPersons(tokens []Token, cls classification, outcomes []morphOutcome, boundaries map[int]bool) []PersonRecord {
	var persons []PersonRecord
	segStart := -1

	flush := func(end int) {
		if segStart < 0 {
			return
		}
		if rec, ok := g.buildPerson(tokens, cls, outcomes, segStart, end); ok {
			persons = append(persons, rec)
		}
		segStart = -1
	}

	for i := range tokens {
		if boundaries[i] {
			flush(i)
		}
		if !cls.roles[i].Role.IsPersonRole() {
			flush(i)
			continue
		}
		if segStart < 0 {
			segStart = i
		}
	}
	flush(len(tokens))
	return persons
}

// buildPerson строит одну запись персоны с подсчетом рода и
// согласованием формы фамилии
func (g *Grouper) buildPerson(tokens []Token, cls classification, outcomes []morphOutcome, start, end int) (PersonRecord, bool) {
	rec := PersonRecord{Gender: lexicon.GenderUnknown}

	for i := start; i < end; i++ {
		rec.TokenIndexes = append(rec.TokenIndexes, i)
		rec.OriginalTokens = append(rec.OriginalTokens, tokens[i].Text)
		rec.NormalizedTokens = append(rec.NormalizedTokens, outcomes[i].Normalized)
		rec.Roles = append(rec.Roles, cls.roles[i].Role)

		// Род группы считается только по именам и отчествам: форма
		// фамилии сама подлежит согласованию и свидетельством не служит.
		role := cls.roles[i].Role
		if role != RoleGiven && role != RolePatronymic {
			continue
		}
		switch outcomes[i].Gender {
		case lexicon.GenderMasc:
			rec.GenderScores.ScoreMale += outcomes[i].GenderWeight
		case lexicon.GenderFemn:
			rec.GenderScores.ScoreFemale += outcomes[i].GenderWeight
		}
	}
	if len(rec.TokenIndexes) == 0 {
		return rec, false
	}

	gap := rec.GenderScores.ScoreMale - rec.GenderScores.ScoreFemale
	if gap < 0 {
		gap = -gap
	}
	rec.GenderScores.Gap = gap
	if gap >= genderGapThreshold {
		if rec.GenderScores.ScoreMale > rec.GenderScores.ScoreFemale {
			rec.Gender = lexicon.GenderMasc
		} else {
			rec.Gender = lexicon.GenderFemn
		}
	}

	g.adjustSurnameForms(&rec)
	return rec, true
}

// adjustSurnameForms согласует форму фамилии с определенным родом
// группы. При неопределенном роде фамилия не меняется.
func (g *Grouper) adjustSurnameForms(rec *PersonRecord) {
	if rec.Gender == lexicon.GenderUnknown {
		return
	}
	for i, role := range rec.Roles {
		if role != RoleSurname {
			continue
		}
		surname := rec.NormalizedTokens[i]
		switch rec.Gender {
		case lexicon.GenderFemn:
			if adjusted, ok := g.lex.FeminineSurname(surname); ok {
				rec.NormalizedTokens[i] = adjusted
			}
		case lexicon.GenderMasc:
			if adjusted, ok := g.lex.MasculineSurname(surname); ok {
				rec.NormalizedTokens[i] = adjusted
			}
		}
	}
}

// GroupOrganizations собирает организации вокруг маркеров
// организационно-правовых форм. Ядро уже размечено классификатором
// ролью organization_core; маркер без ядра записи не порождает.
func (g *Grouper) GroupOrganizations(tokens []Token, cls classification) []OrganizationRecord {
	var orgs []OrganizationRecord
	claimed := make(map[int]bool)

	for i := range tokens {
		if cls.roles[i].Role != RoleOrgMarker || claimed[i] {
			continue
		}

		rec := OrganizationRecord{LegalFormPresent: true}
		claimed[i] = true

		// Ядро после маркера: ООО «Рога и Копыта».
		for j := i + 1; j < len(tokens) && cls.roles[j].Role == RoleOrgCore && !claimed[j]; j++ {
			rec.TokenIndexes = append(rec.TokenIndexes, j)
			rec.CoreTokens = append(rec.CoreTokens, tokens[j].Text)
			claimed[j] = true
		}
		if len(rec.CoreTokens) > 0 {
			rec.TokenIndexes = append([]int{i}, rec.TokenIndexes...)
		}

		// Ядро перед маркером: «Рога и Копыта» ООО. Индексы записи
		// идут в порядке текста, маркер оказывается последним.
		if len(rec.CoreTokens) == 0 {
			first := i
			for j := i - 1; j >= 0 && cls.roles[j].Role == RoleOrgCore && !claimed[j]; j-- {
				first = j
			}
			for j := first; j < i; j++ {
				rec.TokenIndexes = append(rec.TokenIndexes, j)
				rec.CoreTokens = append(rec.CoreTokens, tokens[j].Text)
				claimed[j] = true
			}
			rec.TokenIndexes = append(rec.TokenIndexes, i)
		}

		if len(rec.CoreTokens) > 0 {
			orgs = append(orgs, rec)
		}
	}
	return orgs
}
