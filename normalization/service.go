package normalization

import (
	"context"
	"log/slog"
	"time"

	"entitynorm/internal/workers"
	"entitynorm/lexicon"
	"entitynorm/morph"
)

// MaxInputLength предел длины входного текста в символах; более
// длинные тексты не являются платежными назначениями
const MaxInputLength = 10000

// Service оркестрирует конвейер нормализации: токенизация,
// классификация, морфология, группировка, привязка, сборка результата
type Service struct {
	store    *lexicon.Store
	analyzer morph.Analyzer
	pool     *workers.Pool
	logger   *slog.Logger
}

// AsyncResult результат фоновой нормализации
type AsyncResult struct {
	Result *NormalizationResult
	Err    error
}

// NewService создает сервис нормализации. Пул может быть nil, тогда
// доступен только блокирующий вызов Normalize.
func NewService(store *lexicon.Store, analyzer morph.Analyzer, pool *workers.Pool) *Service {
	return &Service{
		store:    store,
		analyzer: analyzer,
		pool:     pool,
		logger:   slog.Default().With("component", "normalization"),
	}
}

// Normalize обрабатывает один текст синхронно. Пустой и сверхдлинный
// вход дают пустой успешный результат; деградации конвейера
// накапливаются в поле errors, не прерывая обработку.
func (s *Service) Normalize(ctx context.Context, req Request) (*NormalizationResult, error) {
	start := time.Now()
	requestID := newRequestID()
	log := s.logger.With("request_id", requestID)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if req.Text == "" {
		return emptyResult(requestID, req.Text, lexicon.LangEN, nil), nil
	}
	if len([]rune(req.Text)) > MaxInputLength {
		log.Warn("входной текст превышает предел", "length", len(req.Text))
		appErr := NewValidationError("входной текст превышает предел длины", nil)
		return emptyResult(requestID, "", lexicon.LangEN, []string{appErr.Message}), nil
	}

	var pipelineErrors []string

	lang := resolveLanguage(req.Text, req.LanguageHint)
	lex, supported := s.store.ForLanguage(lang)
	if !supported {
		appErr := NewUnsupportedLanguageError(string(lang))
		pipelineErrors = append(pipelineErrors, appErr.Message)
		log.Warn("язык не поддерживается, используется универсальный словарь", "language", lang)
	}

	tokenizer := NewTokenizer(lex, req.Flags)
	tokens, boundaries := tokenizer.Tokenize(req.Text)

	classifier := NewClassifier(lex)
	cls := classifier.Classify(tokens, boundaries)

	morpher := NewMorphologizer(lex, s.analyzer, lang, req.Flags)
	outcomes := make([]morphOutcome, len(tokens))
	for i, tok := range tokens {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		outcomes[i] = morpher.NormalizeToken(tok, cls.roles[i].Role)
		if outcomes[i].Err != nil {
			pipelineErrors = append(pipelineErrors, outcomes[i].Err.Message)
		}
	}

	grouper := NewGrouper(lex)
	persons := grouper.GroupPersons(tokens, cls, outcomes, boundaries)
	orgs := grouper.GroupOrganizations(tokens, cls)

	unlinked := NewLinker().Link(cls, persons, orgs)

	result := assembler{lang: lang}.Assemble(
		requestID, req.Text, tokens, cls, outcomes, persons, orgs, unlinked, pipelineErrors)

	log.Info("текст нормализован",
		"language", lang,
		"tokens", len(tokens),
		"persons", len(persons),
		"organizations", len(orgs),
		"confidence", result.Confidence,
		"duration", time.Since(start),
	)
	return result, nil
}

// NormalizeAsync планирует обработку на пуле воркеров и возвращает
// канал с единственным результатом. Отмена контекста до завершения
// задачи оставляет канал пустым.
func (s *Service) NormalizeAsync(ctx context.Context, req Request) <-chan AsyncResult {
	out := make(chan AsyncResult, 1)

	if s.pool == nil {
		out <- AsyncResult{Err: NewInternalError("пул воркеров не настроен", nil)}
		close(out)
		return out
	}

	err := s.pool.Submit(ctx, func(taskCtx context.Context) {
		defer close(out)
		result, err := s.Normalize(taskCtx, req)
		select {
		case out <- AsyncResult{Result: result, Err: err}:
		case <-taskCtx.Done():
		}
	})
	if err != nil {
		out <- AsyncResult{Err: err}
		close(out)
	}
	return out
}

// emptyResult возвращает пустой успешный результат для вырожденного
// входа
func emptyResult(requestID, text string, lang lexicon.Language, errs []string) *NormalizationResult {
	return &NormalizationResult{
		RequestID:    requestID,
		OriginalText: text,
		Language:     lang,
		Confidence:   1.0,
		Success:      true,
		Errors:       errs,
	}
}
