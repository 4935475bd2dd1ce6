// Package normalization реализует конвейер нормализации имен и
// наименований из свободного текста платежных назначений: токенизация,
// классификация ролей, приведение к именительному падежу, согласование
// фамилий по роду, группировка персон и организаций, привязка
// идентификаторов и дат рождения.
package normalization

import (
	"github.com/google/uuid"

	"entitynorm/lexicon"
)

// Script тип письменности токена
type Script string

const (
	ScriptLatin    Script = "latin"
	ScriptCyrillic Script = "cyrillic"
	ScriptMixed    Script = "mixed"
	ScriptDigit    Script = "digit"
	ScriptOther    Script = "other"
)

// Role роль токена в тексте
type Role string

const (
	RoleGiven      Role = "given"
	RoleSurname    Role = "surname"
	RolePatronymic Role = "patronymic"
	RoleInitial    Role = "initial"
	RoleOrgMarker  Role = "organization_marker"
	RoleOrgCore    Role = "organization_core"
	RoleIdentifier Role = "identifier"
	RoleDateFrag   Role = "date_fragment"
	RoleDocMarker  Role = "document_marker"
	RoleSeparator  Role = "separator"
	RoleUnknown    Role = "unknown"
)

// IsPersonRole сообщает, относится ли роль к персональному имени
func (r Role) IsPersonRole() bool {
	switch r {
	case RoleGiven, RoleSurname, RolePatronymic, RoleInitial:
		return true
	}
	return false
}

// Token токен исходного текста с позиционной информацией
type Token struct {
	Text              string `json:"text"`
	Start             int    `json:"start"`
	End               int    `json:"end"`
	Script            Script `json:"script"`
	IsQuoted          bool   `json:"is_quoted"`
	HomoglyphDetected bool   `json:"homoglyph_detected,omitempty"`
}

// TokenTrace запись трассировки: что произошло с токеном на каждом шаге
type TokenTrace struct {
	Token            string           `json:"token"`
	Role             Role             `json:"role"`
	Confidence       float64          `json:"confidence"`
	RuleID           string           `json:"rule_id"`
	NormalizedOutput string           `json:"normalized_output"`
	Fallback         bool             `json:"fallback"`
	MorphLang        lexicon.Language `json:"morph_lang,omitempty"`
	Notes            []string         `json:"notes,omitempty"`
}

// GenderScores накопленные свидетельства рода для группы персональных токенов
type GenderScores struct {
	ScoreMale   float64 `json:"score_male"`
	ScoreFemale float64 `json:"score_female"`
	Gap         float64 `json:"gap"`
}

// LinkedID идентификатор, привязанный к персоне или организации
type LinkedID struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// PersonRecord сгруппированная персона с нормализованными токенами
type PersonRecord struct {
	TokenIndexes     []int          `json:"token_indexes"`
	OriginalTokens   []string       `json:"original_tokens"`
	NormalizedTokens []string       `json:"normalized_tokens"`
	Roles            []Role         `json:"roles"`
	Gender           lexicon.Gender `json:"gender"`
	GenderScores     GenderScores   `json:"gender_scores"`
	IDs              []LinkedID     `json:"ids,omitempty"`
	DOB              *string        `json:"dob,omitempty"`
}

// OrganizationRecord сгруппированная организация
type OrganizationRecord struct {
	TokenIndexes     []int      `json:"token_indexes"`
	CoreTokens       []string   `json:"core_tokens"`
	LegalFormPresent bool       `json:"legal_form_present"`
	IDs              []LinkedID `json:"ids,omitempty"`
}

// NormalizationResult итоговый результат обработки одного текста
type NormalizationResult struct {
	RequestID            string               `json:"request_id"`
	OriginalText         string               `json:"original_text"`
	NormalizedText       string               `json:"normalized_text"`
	Tokens               []string             `json:"tokens"`
	Persons              []PersonRecord       `json:"persons"`
	Organizations        []OrganizationRecord `json:"organizations"`
	UnlinkedIdentifiers  []LinkedID           `json:"unlinked_identifiers,omitempty"`
	Trace                []TokenTrace         `json:"trace"`
	Language             lexicon.Language     `json:"language"`
	Confidence           float64              `json:"confidence"`
	Success              bool                 `json:"success"`
	Errors               []string             `json:"errors,omitempty"`
}

// Flags флаги управления конвейером
type Flags struct {
	RemoveStopWords        bool `json:"remove_stop_words"`
	PreserveNames          bool `json:"preserve_names"`
	EnableAdvancedFeatures bool `json:"enable_advanced_features"`
	EnableDiminutives      bool `json:"enable_diminutives"`
	SecureNormalize        bool `json:"secure_normalize"`
}

// DefaultFlags возвращает флаги по умолчанию
func DefaultFlags() Flags {
	return Flags{
		RemoveStopWords:        true,
		PreserveNames:          true,
		EnableAdvancedFeatures: true,
		EnableDiminutives:      true,
		SecureNormalize:        false,
	}
}

// Request запрос на нормализацию одного текста
type Request struct {
	Text         string           `json:"text"`
	LanguageHint lexicon.Language `json:"language_hint,omitempty"`
	Flags        Flags            `json:"flags"`
}

// newRequestID генерирует идентификатор запроса для трассировки в логах
func newRequestID() string {
	return uuid.NewString()
}
