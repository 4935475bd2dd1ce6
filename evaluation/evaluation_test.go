package evaluation

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitynorm/lexicon"
	"entitynorm/morph"
	"entitynorm/normalization"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	store, err := lexicon.NewStore()
	require.NoError(t, err)
	analyzer, err := morph.NewCachedAnalyzer(morph.NewRuleAnalyzer(), 256)
	require.NoError(t, err)
	svc := normalization.NewService(store, analyzer, nil)
	return NewRunner(svc, normalization.DefaultFlags())
}

func TestEvaluateBatch(t *testing.T) {
	runner := newTestRunner(t)

	texts := []string{
		"Иванов Петр и Сидорова Мария",
		"Дарья Павлова ІПН 2839403975",
		"ООО «Ромашка» ИНН 7707083893",
		"",
	}

	report, err := runner.Evaluate(context.Background(), texts)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Stats.Total)
	require.Len(t, report.Items, 4)

	assert.Equal(t, 2, report.Items[0].Persons)
	assert.Equal(t, 1, report.Items[1].LinkedIDs)
	assert.Equal(t, 1, report.Items[2].Organizations)
	assert.Equal(t, 1.0, report.Items[3].Confidence)

	assert.Positive(t, report.Stats.RoleCounts[normalization.RoleGiven])
	assert.Positive(t, report.Stats.RoleCounts[normalization.RoleSurname])
	assert.Positive(t, report.Stats.MeanConfidence)
}

func TestEvaluateGeneratedNoise(t *testing.T) {
	// Синтетический шум не должен ронять конвейер, каждая строка
	// обязана дать результат с трассировкой по каждому токену.
	runner := newTestRunner(t)
	faker := gofakeit.New(42)

	texts := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		texts = append(texts, fmt.Sprintf("%s %s %s",
			faker.FirstName(), faker.LastName(), faker.Sentence(3)))
	}

	report, err := runner.Evaluate(context.Background(), texts)
	require.NoError(t, err)
	assert.Equal(t, 30, report.Stats.Total)
	for _, item := range report.Items {
		assert.GreaterOrEqual(t, item.Confidence, 0.0)
		assert.LessOrEqual(t, item.Confidence, 1.0)
	}
}

func TestExportCSV(t *testing.T) {
	runner := newTestRunner(t)
	report, err := runner.Evaluate(context.Background(), []string{"Иванов Иван Иванович"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, NewExporter().Export(report, path, FormatCSV))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Source Text", rows[0][1])
	assert.Equal(t, "Иванов Иван Иванович", rows[1][1])
}

func TestExportJSONAndExcel(t *testing.T) {
	runner := newTestRunner(t)
	report, err := runner.Evaluate(context.Background(), []string{"Дарья Павлова ІПН 2839403975"})
	require.NoError(t, err)

	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "report.json")
	require.NoError(t, NewExporter().Export(report, jsonPath, FormatJSON))
	info, err := os.Stat(jsonPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	xlsxPath := filepath.Join(dir, "report.xlsx")
	require.NoError(t, NewExporter().Export(report, xlsxPath, FormatExcel))
	info, err = os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportUnknownFormat(t *testing.T) {
	err := NewExporter().Export(&Report{}, "out.bin", ExportFormat("parquet"))
	assert.Error(t, err)
}
