package morph

import "entitynorm/lexicon"

// suffixRule rewrites a word-final suffix and tags the matched surface
// form. Longer suffixes carry higher scores so the most specific match
// wins; identity rules (suffix == replace) pin the nominative reading
// of forms that look oblique in another paradigm.
type suffixRule struct {
	suffix  string
	replace string
	caseTag Case
	gender  lexicon.Gender
	score   float64
}

func russianRules() []suffixRule {
	return []suffixRule{
		// Patronymics. The nominative forms are kept via identity
		// rules so the gender tag survives even when no rewriting
		// is needed.
		{"овича", "ович", CaseGenitive, lexicon.GenderMasc, 0.9},
		{"евича", "евич", CaseGenitive, lexicon.GenderMasc, 0.9},
		{"овичу", "ович", CaseDative, lexicon.GenderMasc, 0.9},
		{"евичу", "евич", CaseDative, lexicon.GenderMasc, 0.9},
		{"овичем", "ович", CaseInstrumental, lexicon.GenderMasc, 0.9},
		{"евичем", "евич", CaseInstrumental, lexicon.GenderMasc, 0.9},
		{"овны", "овна", CaseGenitive, lexicon.GenderFemn, 0.9},
		{"евны", "евна", CaseGenitive, lexicon.GenderFemn, 0.9},
		{"овне", "овна", CaseDative, lexicon.GenderFemn, 0.9},
		{"евне", "евна", CaseDative, lexicon.GenderFemn, 0.9},
		{"овной", "овна", CaseInstrumental, lexicon.GenderFemn, 0.92},
		{"евной", "евна", CaseInstrumental, lexicon.GenderFemn, 0.92},
		{"ович", "ович", CaseNominative, lexicon.GenderMasc, 0.85},
		{"евич", "евич", CaseNominative, lexicon.GenderMasc, 0.85},
		{"ична", "ична", CaseNominative, lexicon.GenderFemn, 0.8},
		{"овна", "овна", CaseNominative, lexicon.GenderFemn, 0.85},
		{"евна", "евна", CaseNominative, lexicon.GenderFemn, 0.85},

		// Surnames in -ов/-ев/-ин. The feminine nominative -ова and
		// the masculine genitive -ова collide; both readings are
		// emitted at equal score and the nominative tie-break keeps
		// feminine surnames intact.
		{"овой", "ова", CaseGenitive, lexicon.GenderFemn, 0.75},
		{"евой", "ева", CaseGenitive, lexicon.GenderFemn, 0.75},
		{"иной", "ина", CaseGenitive, lexicon.GenderFemn, 0.72},
		{"овым", "ов", CaseInstrumental, lexicon.GenderMasc, 0.72},
		{"евым", "ев", CaseInstrumental, lexicon.GenderMasc, 0.72},
		{"иным", "ин", CaseInstrumental, lexicon.GenderMasc, 0.7},
		{"ову", "ов", CaseDative, lexicon.GenderMasc, 0.65},
		{"еву", "ев", CaseDative, lexicon.GenderMasc, 0.65},
		{"ину", "ин", CaseDative, lexicon.GenderMasc, 0.62},
		{"ове", "ов", CasePrepositive, lexicon.GenderMasc, 0.6},
		{"ова", "ова", CaseNominative, lexicon.GenderFemn, 0.6},
		{"ова", "ов", CaseGenitive, lexicon.GenderMasc, 0.6},
		{"ева", "ева", CaseNominative, lexicon.GenderFemn, 0.6},
		{"ева", "ев", CaseGenitive, lexicon.GenderMasc, 0.6},
		{"ина", "ина", CaseNominative, lexicon.GenderFemn, 0.55},
		{"ина", "ин", CaseGenitive, lexicon.GenderMasc, 0.55},
		{"ов", "ов", CaseNominative, lexicon.GenderMasc, 0.55},
		{"ев", "ев", CaseNominative, lexicon.GenderMasc, 0.55},
		{"ин", "ин", CaseNominative, lexicon.GenderMasc, 0.5},

		// Adjectival surnames -ский/-ская.
		{"ского", "ский", CaseGenitive, lexicon.GenderMasc, 0.8},
		{"цкого", "цкий", CaseGenitive, lexicon.GenderMasc, 0.8},
		{"скому", "ский", CaseDative, lexicon.GenderMasc, 0.8},
		{"ским", "ский", CaseInstrumental, lexicon.GenderMasc, 0.75},
		{"ской", "ская", CaseGenitive, lexicon.GenderFemn, 0.72},
		{"цкой", "цкая", CaseGenitive, lexicon.GenderFemn, 0.72},
		{"скую", "ская", CaseAccusative, lexicon.GenderFemn, 0.72},
		{"ский", "ский", CaseNominative, lexicon.GenderMasc, 0.7},
		{"цкий", "цкий", CaseNominative, lexicon.GenderMasc, 0.7},
		{"ская", "ская", CaseNominative, lexicon.GenderFemn, 0.7},
		{"цкая", "цкая", CaseNominative, lexicon.GenderFemn, 0.7},

		// Given names. Only the unambiguous oblique endings are
		// rewritten; dictionary lookup handles the rest upstream.
		{"ье", "ья", CaseDative, lexicon.GenderFemn, 0.5},
		{"ьи", "ья", CaseGenitive, lexicon.GenderFemn, 0.5},
		{"ью", "ья", CaseAccusative, lexicon.GenderFemn, 0.5},
		{"ьей", "ья", CaseInstrumental, lexicon.GenderFemn, 0.52},
		{"ии", "ия", CaseGenitive, lexicon.GenderFemn, 0.5},
		{"ию", "ия", CaseDative, lexicon.GenderFemn, 0.5},
	}
}

func ukrainianRules() []suffixRule {
	return []suffixRule{
		// Patronymics.
		{"овича", "ович", CaseGenitive, lexicon.GenderMasc, 0.9},
		{"йовича", "йович", CaseGenitive, lexicon.GenderMasc, 0.92},
		{"овичу", "ович", CaseDative, lexicon.GenderMasc, 0.9},
		{"овичем", "ович", CaseInstrumental, lexicon.GenderMasc, 0.9},
		{"івни", "івна", CaseGenitive, lexicon.GenderFemn, 0.9},
		{"ївни", "ївна", CaseGenitive, lexicon.GenderFemn, 0.92},
		{"івні", "івна", CaseDative, lexicon.GenderFemn, 0.9},
		{"івною", "івна", CaseInstrumental, lexicon.GenderFemn, 0.92},
		{"ович", "ович", CaseNominative, lexicon.GenderMasc, 0.85},
		{"йович", "йович", CaseNominative, lexicon.GenderMasc, 0.87},
		{"івна", "івна", CaseNominative, lexicon.GenderFemn, 0.85},
		{"ївна", "ївна", CaseNominative, lexicon.GenderFemn, 0.87},

		// Surnames in -ов/-ова, shared with Russian paradigms.
		{"овой", "ова", CaseGenitive, lexicon.GenderFemn, 0.75},
		{"овою", "ова", CaseInstrumental, lexicon.GenderFemn, 0.75},
		{"овим", "ов", CaseInstrumental, lexicon.GenderMasc, 0.72},
		{"ову", "ов", CaseDative, lexicon.GenderMasc, 0.65},
		{"ова", "ова", CaseNominative, lexicon.GenderFemn, 0.6},
		{"ова", "ов", CaseGenitive, lexicon.GenderMasc, 0.6},
		{"ов", "ов", CaseNominative, lexicon.GenderMasc, 0.55},

		// Surnames in -енко/-ук decline only in oblique cases and
		// carry no grammatical gender.
		{"енка", "енко", CaseGenitive, lexicon.GenderUnknown, 0.7},
		{"енку", "енко", CaseDative, lexicon.GenderUnknown, 0.7},
		{"енком", "енко", CaseInstrumental, lexicon.GenderUnknown, 0.7},
		{"енко", "енко", CaseNominative, lexicon.GenderUnknown, 0.65},
		{"ька", "ько", CaseGenitive, lexicon.GenderUnknown, 0.6},
		{"ьку", "ько", CaseDative, lexicon.GenderUnknown, 0.6},
		{"ьком", "ько", CaseInstrumental, lexicon.GenderUnknown, 0.6},
		{"ько", "ько", CaseNominative, lexicon.GenderUnknown, 0.55},
		{"ука", "ук", CaseGenitive, lexicon.GenderUnknown, 0.55},
		{"уку", "ук", CaseDative, lexicon.GenderUnknown, 0.55},
		{"чука", "чук", CaseGenitive, lexicon.GenderUnknown, 0.6},
		{"чуку", "чук", CaseDative, lexicon.GenderUnknown, 0.6},

		// Adjectival surnames -ський/-ська.
		{"ського", "ський", CaseGenitive, lexicon.GenderMasc, 0.8},
		{"цького", "цький", CaseGenitive, lexicon.GenderMasc, 0.8},
		{"ському", "ський", CaseDative, lexicon.GenderMasc, 0.8},
		{"цькому", "цький", CaseDative, lexicon.GenderMasc, 0.8},
		{"ським", "ський", CaseInstrumental, lexicon.GenderMasc, 0.75},
		{"цьким", "цький", CaseInstrumental, lexicon.GenderMasc, 0.75},
		{"ської", "ська", CaseGenitive, lexicon.GenderFemn, 0.72},
		{"цької", "цька", CaseGenitive, lexicon.GenderFemn, 0.72},
		{"ською", "ська", CaseInstrumental, lexicon.GenderFemn, 0.72},
		{"ський", "ський", CaseNominative, lexicon.GenderMasc, 0.7},
		{"цький", "цький", CaseNominative, lexicon.GenderMasc, 0.7},
		{"ська", "ська", CaseNominative, lexicon.GenderFemn, 0.7},
		{"цька", "цька", CaseNominative, lexicon.GenderFemn, 0.7},

		// Given names.
		{"ії", "ія", CaseGenitive, lexicon.GenderFemn, 0.5},
		{"ією", "ія", CaseInstrumental, lexicon.GenderFemn, 0.52},
	}
}
