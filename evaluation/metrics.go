// Package evaluation собирает пакетную статистику качества
// нормализации и экспортирует результаты в JSON/CSV/Excel для
// ручного контроля качества словарей и правил.
package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entitynorm/lexicon"
	"entitynorm/normalization"
)

// Item строка пакетного отчета по одному входному тексту
type Item struct {
	ID             int              `json:"id"`
	SourceText     string           `json:"source_text"`
	NormalizedText string           `json:"normalized_text"`
	Language       lexicon.Language `json:"language"`
	Persons        int              `json:"persons"`
	Organizations  int              `json:"organizations"`
	LinkedIDs      int              `json:"linked_ids"`
	Confidence     float64          `json:"confidence"`
	Fallbacks      int              `json:"fallbacks"`
	Errors         string           `json:"errors"`
}

// BatchStats агрегированная статистика пакета
type BatchStats struct {
	Total           int                        `json:"total"`
	RoleCounts      map[normalization.Role]int `json:"role_counts"`
	LanguageCounts  map[lexicon.Language]int   `json:"language_counts"`
	ConfidenceHist  [10]int                    `json:"confidence_hist"`
	MeanConfidence  float64                    `json:"mean_confidence"`
	FallbackTokens  int                        `json:"fallback_tokens"`
	ResultsWithErrs int                        `json:"results_with_errors"`
}

// Report итог пакетного прогона
type Report struct {
	Items []Item     `json:"items"`
	Stats BatchStats `json:"stats"`
}

// Runner прогоняет пакет текстов через сервис нормализации
type Runner struct {
	svc    *normalization.Service
	flags  normalization.Flags
	logger *slog.Logger
}

// NewRunner создает пакетный прогонщик
func NewRunner(svc *normalization.Service, flags normalization.Flags) *Runner {
	return &Runner{
		svc:    svc,
		flags:  flags,
		logger: slog.Default().With("component", "evaluation"),
	}
}

// Evaluate обрабатывает тексты последовательно и собирает отчет.
// Ошибка одного текста не прерывает пакет.
func (r *Runner) Evaluate(ctx context.Context, texts []string) (*Report, error) {
	report := &Report{
		Stats: BatchStats{
			RoleCounts:     make(map[normalization.Role]int),
			LanguageCounts: make(map[lexicon.Language]int),
		},
	}

	var confidenceSum float64
	for i, text := range texts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := r.svc.Normalize(ctx, normalization.Request{Text: text, Flags: r.flags})
		if err != nil {
			return nil, fmt.Errorf("evaluation: текст %d: %w", i, err)
		}

		item := buildItem(i+1, text, result)
		report.Items = append(report.Items, item)
		accumulate(&report.Stats, result, item)
		confidenceSum += result.Confidence
	}

	report.Stats.Total = len(report.Items)
	if report.Stats.Total > 0 {
		report.Stats.MeanConfidence = confidenceSum / float64(report.Stats.Total)
	}

	r.logger.Info("пакет обработан",
		"total", report.Stats.Total,
		"mean_confidence", report.Stats.MeanConfidence,
		"fallback_tokens", report.Stats.FallbackTokens,
	)
	return report, nil
}

func buildItem(id int, text string, result *normalization.NormalizationResult) Item {
	linked := 0
	for _, p := range result.Persons {
		linked += len(p.IDs)
	}
	for _, o := range result.Organizations {
		linked += len(o.IDs)
	}

	fallbacks := 0
	for _, tr := range result.Trace {
		if tr.Fallback {
			fallbacks++
		}
	}

	return Item{
		ID:             id,
		SourceText:     text,
		NormalizedText: result.NormalizedText,
		Language:       result.Language,
		Persons:        len(result.Persons),
		Organizations:  len(result.Organizations),
		LinkedIDs:      linked,
		Confidence:     result.Confidence,
		Fallbacks:      fallbacks,
		Errors:         strings.Join(result.Errors, "; "),
	}
}

func accumulate(stats *BatchStats, result *normalization.NormalizationResult, item Item) {
	stats.LanguageCounts[result.Language]++
	for _, tr := range result.Trace {
		stats.RoleCounts[tr.Role]++
	}
	stats.FallbackTokens += item.Fallbacks
	if len(result.Errors) > 0 {
		stats.ResultsWithErrs++
	}

	bucket := int(result.Confidence * 10)
	if bucket > 9 {
		bucket = 9
	}
	if bucket < 0 {
		bucket = 0
	}
	stats.ConfidenceHist[bucket]++
}
