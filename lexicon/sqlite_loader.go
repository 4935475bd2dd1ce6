package lexicon

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// extendFromSQLite дополняет встроенные словари записями из внешнего
// справочника. Схема таблицы:
//
//	CREATE TABLE lexicon_entries (
//	    language  TEXT NOT NULL,  -- ru | uk | en
//	    kind      TEXT NOT NULL,  -- given | surname | diminutive | legal_form |
//	                              -- stopword | id_marker | birth_marker | separator
//	    value     TEXT NOT NULL,
//	    canonical TEXT,           -- для diminutive: формальное имя;
//	                              -- для id_marker: тип идентификатора
//	    gender    TEXT            -- для given: masc | femn
//	);
//
// Загрузка выполняется один раз при построении Store; после этого
// словари неизменяемы. Любая ошибка здесь трактуется как повреждение
// справочника и фатальна для старта.
func (s *Store) extendFromSQLite(path string) error {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT language, kind, value, COALESCE(canonical, ''), COALESCE(gender, '') FROM lexicon_entries`)
	if err != nil {
		return fmt.Errorf("query lexicon_entries: %w", err)
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var language, kind, value, canonical, gender string
		if err := rows.Scan(&language, &kind, &value, &canonical, &gender); err != nil {
			return fmt.Errorf("scan lexicon_entries: %w", err)
		}

		lex, ok := s.langs[Language(language)]
		if !ok {
			return fmt.Errorf("row for unsupported language %q", language)
		}
		if err := lex.addEntry(kind, value, canonical, gender); err != nil {
			return fmt.Errorf("row (%s, %s, %s): %w", language, kind, value, err)
		}
		loaded++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate lexicon_entries: %w", err)
	}
	if loaded == 0 {
		return fmt.Errorf("lexicon_entries is empty")
	}
	return nil
}

func (l *Lexicon) addEntry(kind, value, canonical, gender string) error {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return fmt.Errorf("empty value")
	}

	switch kind {
	case "given":
		g := Gender(gender)
		if g != GenderMasc && g != GenderFemn {
			g = GenderUnknown
		}
		canon := canonical
		if canon == "" {
			canon = titleCase(lower)
		}
		l.given[lower] = GivenName{Canonical: canon, Gender: g}
	case "surname":
		l.surnames[lower] = struct{}{}
	case "diminutive":
		if canonical == "" {
			return fmt.Errorf("diminutive without canonical form")
		}
		l.diminutives[lower] = canonical
	case "legal_form":
		l.legalForms[normalizeMarker(lower)] = struct{}{}
	case "stopword":
		l.stopwords[lower] = struct{}{}
	case "id_marker":
		if canonical == "" {
			return fmt.Errorf("id_marker without identifier type")
		}
		l.idMarkers[normalizeMarker(lower)] = canonical
	case "birth_marker":
		l.birthMarkers[normalizeMarker(lower)] = struct{}{}
	case "separator":
		l.separators[lower] = struct{}{}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	return nil
}

func titleCase(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
