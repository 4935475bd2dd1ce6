package normalization

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"entitynorm/lexicon"
)

// Идентификаторы правил классификации, попадают в трассировку
const (
	RuleDictGiven      = "dict_given"
	RuleDictSurname    = "dict_surname"
	RuleSuffixPatron   = "suffix_patronymic"
	RuleSuffixSurname  = "suffix_surname"
	RuleSuffixConflict = "suffix_conflict"
	RuleLegalForm      = "legal_form"
	RuleOrgCore        = "org_context"
	RuleDigitID        = "digit_identifier"
	RuleDocMarker      = "document_marker"
	RuleBirthMarker    = "birth_marker"
	RuleDateFragment   = "date_fragment"
	RuleInitial        = "initial"
	RuleSeparator      = "separator"
	RulePosFirst       = "pos_first_given"
	RulePosLast        = "pos_last_surname"
	RulePosMiddle      = "pos_middle_patronymic"
	RuleVerbatim       = "verbatim"
)

var (
	reDottedDate = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	reISODate    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reDigits     = regexp.MustCompile(`^\d+$`)
)

// roleAssignment результат классификации одного токена
type roleAssignment struct {
	Role       Role
	Confidence float64
	RuleID     string
	Notes      []string
	IDType     string
	IsBirth    bool
}

// dateEntity распознанная дата, собранная из одного или трех токенов
type dateEntity struct {
	TokenIndexes []int
	ISO          string
	Birth        bool
}

// identifierEntity числовой идентификатор до привязки к записи
type identifierEntity struct {
	TokenIndex int
	Value      string
	IDType     string
	Confidence float64
	Source     string
}

// classification полный выход классификатора
type classification struct {
	roles       []roleAssignment
	dates       []dateEntity
	identifiers []identifierEntity
}

// Classifier присваивает токенам роли по словарям, суффиксам,
// маркерам и позиционной эвристике
type Classifier struct {
	lex *lexicon.Lexicon
}

// NewClassifier создает классификатор поверх словаря языка
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify проходит по токенам в четыре этапа: словарные и маркерные
// правила, сборка дат, многословные маркеры рождения, позиционный
// фолбэк для оставшихся неизвестных токенов.
func (c *Classifier) Classify(tokens []Token, boundaries map[int]bool) classification {
	roles := make([]roleAssignment, len(tokens))
	for i, tok := range tokens {
		roles[i] = c.classifyToken(tok)
	}

	cls := classification{roles: roles}
	c.markBirthPhrases(tokens, &cls)
	c.collectDates(tokens, &cls)
	c.collectIdentifiers(tokens, &cls)
	c.markOrgCores(tokens, boundaries, &cls)
	c.positionalFallback(tokens, boundaries, &cls)
	return cls
}

// markOrgCores помечает ядро названия организации вокруг маркера
// правовой формы, чтобы эти токены не попали в позиционный фолбэк.
// После маркера ядром считаются неизвестные и закавыченные токены до
// первой границы; перед маркером только закавыченные.
func (c *Classifier) markOrgCores(tokens []Token, boundaries map[int]bool, cls *classification) {
	coreRole := roleAssignment{Role: RoleOrgCore, Confidence: 0.7, RuleID: RuleOrgCore}

	for i := range tokens {
		if cls.roles[i].Role != RoleOrgMarker {
			continue
		}

		for j := i + 1; j < len(tokens); j++ {
			if boundaries[j] {
				break
			}
			role := cls.roles[j].Role
			quotedNameLike := tokens[j].IsQuoted &&
				(role == RoleSeparator || role.IsPersonRole())
			if role != RoleUnknown && !quotedNameLike {
				break
			}
			cls.roles[j] = coreRole
		}

		for j := i - 1; j >= 0; j-- {
			if !tokens[j].IsQuoted {
				break
			}
			role := cls.roles[j].Role
			if role != RoleUnknown && role != RoleSeparator && !role.IsPersonRole() {
				break
			}
			cls.roles[j] = coreRole
			if boundaries[j] {
				break
			}
		}
	}
}

// classifyToken применяет пословные правила в порядке убывания
// надежности
func (c *Classifier) classifyToken(tok Token) roleAssignment {
	text := tok.Text
	lower := strings.ToLower(text)

	if c.lex.IsSeparator(lower) && !strings.Contains(text, ".") {
		return roleAssignment{Role: RoleSeparator, Confidence: 1.0, RuleID: RuleSeparator}
	}

	if isInitial(text) {
		return roleAssignment{Role: RoleInitial, Confidence: 0.9, RuleID: RuleInitial}
	}

	if c.lex.IsLegalForm(text) {
		return roleAssignment{Role: RoleOrgMarker, Confidence: 0.95, RuleID: RuleLegalForm}
	}

	if c.lex.IsBirthMarker(text) {
		return roleAssignment{Role: RoleDocMarker, Confidence: 0.9, RuleID: RuleBirthMarker, IsBirth: true}
	}

	if idType, ok := c.lex.IDMarkerType(text); ok {
		return roleAssignment{Role: RoleDocMarker, Confidence: 0.9, RuleID: RuleDocMarker, IDType: idType}
	}

	if _, ok := c.lex.LookupGiven(text); ok {
		return roleAssignment{Role: RoleGiven, Confidence: 0.95, RuleID: RuleDictGiven}
	}
	if canonical, ok := c.lex.Diminutive(text); ok {
		return roleAssignment{
			Role:       RoleGiven,
			Confidence: 0.9,
			RuleID:     RuleDictGiven,
			Notes:      []string{fmt.Sprintf("уменьшительное от %s", canonical)},
		}
	}
	if c.lex.IsSurname(text) {
		return roleAssignment{Role: RoleSurname, Confidence: 0.9, RuleID: RuleDictSurname}
	}

	patronSuf, hasPatron := c.lex.MatchPatronymicSuffix(text)
	surnameSuf, hasSurname := c.lex.MatchSurnameSuffix(text)
	switch {
	case hasPatron && hasSurname:
		// При конфликте суффиксов отчество побеждает: его суффиксы
		// длиннее и специфичнее фамильных.
		return roleAssignment{
			Role:       RolePatronymic,
			Confidence: 0.75,
			RuleID:     RuleSuffixConflict,
			Notes: []string{fmt.Sprintf(
				"суффикс отчества %q превалирует над фамильным %q", patronSuf, surnameSuf)},
		}
	case hasPatron:
		return roleAssignment{Role: RolePatronymic, Confidence: 0.8, RuleID: RuleSuffixPatron}
	case hasSurname:
		return roleAssignment{Role: RoleSurname, Confidence: 0.75, RuleID: RuleSuffixSurname}
	}

	if reDigits.MatchString(text) && len(text) >= 6 && len(text) <= 20 {
		return roleAssignment{Role: RoleIdentifier, Confidence: 0.7, RuleID: RuleDigitID}
	}

	if reDottedDate.MatchString(text) || reISODate.MatchString(text) {
		return roleAssignment{Role: RoleDateFrag, Confidence: 0.9, RuleID: RuleDateFragment}
	}

	return roleAssignment{Role: RoleUnknown, Confidence: 0.3, RuleID: RuleVerbatim}
}

// markBirthPhrases распознает многословные маркеры рождения
// ("дата рождения", "date of birth") и помечает все их токены
func (c *Classifier) markBirthPhrases(tokens []Token, cls *classification) {
	for _, phrase := range c.lex.BirthMarkerPhrases() {
		for i := 0; i+len(phrase) <= len(tokens); i++ {
			if cls.roles[i].Role != RoleUnknown && cls.roles[i].Role != RoleDocMarker {
				continue
			}
			match := true
			for j, word := range phrase {
				if strings.ToLower(tokens[i+j].Text) != word {
					match = false
					break
				}
			}
			if !match {
				continue
			}
			for j := range phrase {
				cls.roles[i+j] = roleAssignment{
					Role:       RoleDocMarker,
					Confidence: 0.9,
					RuleID:     RuleBirthMarker,
					IsBirth:    true,
				}
			}
		}
	}
}

// collectDates собирает даты из однотокенных форм (12.11.1968,
// 1968-11-12) и трехтокенных (12 ноября 1968). Дата считается датой
// рождения, если в двух предыдущих токенах есть маркер рождения.
func (c *Classifier) collectDates(tokens []Token, cls *classification) {
	for i, tok := range tokens {
		if cls.roles[i].Role == RoleDateFrag {
			iso, ok := parseSingleDate(tok.Text)
			if !ok {
				cls.roles[i] = roleAssignment{Role: RoleUnknown, Confidence: 0.3, RuleID: RuleVerbatim,
					Notes: []string{"дата вне допустимого диапазона"}}
				continue
			}
			cls.dates = append(cls.dates, dateEntity{
				TokenIndexes: []int{i},
				ISO:          iso,
				Birth:        c.birthMarkerNearby(cls, i),
			})
			continue
		}

		// Трехтокенная форма: день, название месяца, год.
		if i+2 < len(tokens) && cls.roles[i].Role == RoleUnknown {
			day, okDay := parseDayToken(tokens[i].Text)
			month, okMonth := c.lex.MonthNumber(tokens[i+1].Text)
			year, okYear := parseYearToken(tokens[i+2].Text)
			if okDay && okMonth && okYear && validDate(year, month, day) {
				for j := i; j <= i+2; j++ {
					cls.roles[j] = roleAssignment{Role: RoleDateFrag, Confidence: 0.85, RuleID: RuleDateFragment}
				}
				cls.dates = append(cls.dates, dateEntity{
					TokenIndexes: []int{i, i + 1, i + 2},
					ISO:          fmt.Sprintf("%04d-%02d-%02d", year, month, day),
					Birth:        c.birthMarkerNearby(cls, i),
				})
			}
		}
	}
}

// birthMarkerNearby ищет маркер рождения в двух предыдущих токенах
func (c *Classifier) birthMarkerNearby(cls *classification, idx int) bool {
	for j := idx - 1; j >= 0 && j >= idx-2; j-- {
		if cls.roles[j].IsBirth {
			return true
		}
	}
	return false
}

// collectIdentifiers превращает цифровые токены в сущности
// идентификаторов. Тип берется из предшествующего маркера документа,
// который одновременно повышает уверенность.
func (c *Classifier) collectIdentifiers(tokens []Token, cls *classification) {
	for i := range tokens {
		if cls.roles[i].Role != RoleIdentifier {
			continue
		}
		ent := identifierEntity{
			TokenIndex: i,
			Value:      tokens[i].Text,
			IDType:     "unknown",
			Confidence: cls.roles[i].Confidence,
			Source:     RuleDigitID,
		}
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			if cls.roles[j].Role == RoleDocMarker && cls.roles[j].IDType != "" {
				ent.IDType = cls.roles[j].IDType
				ent.Confidence = 0.9
				ent.Source = RuleDocMarker
				break
			}
		}
		cls.identifiers = append(cls.identifiers, ent)
	}
}

// positionalFallback назначает роли неизвестным токенам внутри
// непрерывных именных сегментов: первый токен считается именем,
// последний фамилией, середина трехтокенного сегмента отчеством.
// В более длинных сегментах середины остаются неизвестными.
func (c *Classifier) positionalFallback(tokens []Token, boundaries map[int]bool, cls *classification) {
	segStart := -1
	flush := func(end int) {
		if segStart < 0 {
			return
		}
		c.assignPositional(tokens, cls, segStart, end)
		segStart = -1
	}

	for i := range tokens {
		if boundaries[i] {
			flush(i)
		}
		role := cls.roles[i].Role
		eligible := role.IsPersonRole() || role == RoleUnknown
		if eligible && (!letterToken(tokens[i].Text) || tokens[i].IsQuoted) {
			eligible = false
		}
		if !eligible {
			flush(i)
			continue
		}
		if segStart < 0 {
			segStart = i
		}
	}
	flush(len(tokens))
}

// assignPositional обрабатывает один сегмент [start, end)
func (c *Classifier) assignPositional(tokens []Token, cls *classification, start, end int) {
	length := end - start
	if length < 2 {
		return
	}
	hasKnown := false
	for i := start; i < end; i++ {
		if cls.roles[i].Role.IsPersonRole() {
			hasKnown = true
			break
		}
	}
	// Сегмент из одних неизвестных токенов длиной больше четырех
	// скорее описание платежа, чем ФИО.
	if !hasKnown && length > 4 {
		return
	}

	hasPatronymic := false
	hasSurname := false
	for i := start; i < end; i++ {
		switch cls.roles[i].Role {
		case RolePatronymic:
			hasPatronymic = true
		case RoleSurname:
			hasSurname = true
		}
	}

	for i := start; i < end; i++ {
		if cls.roles[i].Role != RoleUnknown {
			continue
		}
		switch {
		case i == start:
			cls.roles[i] = roleAssignment{Role: RoleGiven, Confidence: 0.5, RuleID: RulePosFirst}
		case i == end-1 && hasSurname:
			// Фамилия в сегменте уже есть, значит порядок обратный
			// ("Фамилия Имя") и последний неизвестный токен это имя.
			cls.roles[i] = roleAssignment{Role: RoleGiven, Confidence: 0.45, RuleID: RulePosLast,
				Notes: []string{"фамилия в сегменте уже найдена, последний токен считается именем"}}
		case i == end-1:
			cls.roles[i] = roleAssignment{Role: RoleSurname, Confidence: 0.5, RuleID: RulePosLast}
		case length == 3 && !hasPatronymic:
			cls.roles[i] = roleAssignment{Role: RolePatronymic, Confidence: 0.5, RuleID: RulePosMiddle}
		case length == 3:
			cls.roles[i] = roleAssignment{Role: RoleGiven, Confidence: 0.45, RuleID: RulePosMiddle,
				Notes: []string{"отчество в сегменте уже найдено, середина считается именем"}}
		default:
			cls.roles[i].Notes = append(cls.roles[i].Notes,
				"середина длинного именного сегмента оставлена без роли")
		}
	}
}

// isInitial распознает инициал: одна заглавная буква с необязательной
// точкой
func isInitial(text string) bool {
	trimmed := strings.TrimSuffix(text, ".")
	if utf8.RuneCountInString(trimmed) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.IsUpper(r)
}

// letterToken проверяет, что токен состоит из букв (допуская дефис и
// апостроф двойных фамилий)
func letterToken(text string) bool {
	hasLetter := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == '-' || r == '\'':
		default:
			return false
		}
	}
	return hasLetter
}

// parseSingleDate разбирает однотокенные формы дат и валидирует
// диапазоны
func parseSingleDate(text string) (string, bool) {
	if m := reDottedDate.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
		}
		return "", false
	}
	if m := reISODate.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return text, true
		}
	}
	return "", false
}

func parseDayToken(text string) (int, bool) {
	if !reDigits.MatchString(text) || len(text) > 2 {
		return 0, false
	}
	day, err := strconv.Atoi(text)
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}

func parseYearToken(text string) (int, bool) {
	if !reDigits.MatchString(text) || len(text) != 4 {
		return 0, false
	}
	year, _ := strconv.Atoi(text)
	if year < 1900 || year > 2100 {
		return 0, false
	}
	return year, true
}

func validDate(year, month, day int) bool {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 {
		return false
	}
	daysIn := [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	return day <= daysIn[month-1]
}
