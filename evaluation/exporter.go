package evaluation

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportFormat формат экспорта отчета
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
)

// Exporter экспортер пакетных отчетов
type Exporter struct{}

// NewExporter создает новый экспортер
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export сохраняет отчет в указанном формате
func (e *Exporter) Export(report *Report, filename string, format ExportFormat) error {
	switch format {
	case FormatJSON:
		return e.ExportToJSON(report, filename)
	case FormatCSV:
		return e.ExportToCSV(report, filename)
	case FormatExcel:
		return e.ExportToExcel(report, filename)
	default:
		return fmt.Errorf("неизвестный формат экспорта %q", format)
	}
}

// ExportToJSON экспортирует отчет в JSON
func (e *Exporter) ExportToJSON(report *Report, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	result := map[string]interface{}{
		"exported_at": time.Now().Format(time.RFC3339),
		"total":       len(report.Items),
		"stats":       report.Stats,
		"items":       report.Items,
	}

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ExportToCSV экспортирует строки отчета в CSV
func (e *Exporter) ExportToCSV(report *Report, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"ID", "Source Text", "Normalized Text", "Language",
		"Persons", "Organizations", "Linked IDs", "Confidence",
		"Fallbacks", "Errors",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, item := range report.Items {
		record := []string{
			fmt.Sprintf("%d", item.ID),
			item.SourceText,
			item.NormalizedText,
			string(item.Language),
			fmt.Sprintf("%d", item.Persons),
			fmt.Sprintf("%d", item.Organizations),
			fmt.Sprintf("%d", item.LinkedIDs),
			fmt.Sprintf("%.2f", item.Confidence),
			fmt.Sprintf("%d", item.Fallbacks),
			item.Errors,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// ExportToExcel экспортирует отчет в Excel
func (e *Exporter) ExportToExcel(report *Report, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Normalization Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{
		"ID", "Source Text", "Normalized Text", "Language",
		"Persons", "Organizations", "Linked IDs", "Confidence",
		"Fallbacks", "Errors",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, item := range report.Items {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.SourceText)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.NormalizedText)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(item.Language))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.Persons)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), item.Organizations)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.LinkedIDs)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), item.Confidence)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), item.Fallbacks)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), item.Errors)
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}
