package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"entitynorm/evaluation"
)

var batchCmd = &cobra.Command{
	Use:   "batch [файл]",
	Short: "Прогнать пакет строк (файл или stdin) и выгрузить отчет",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&flagOutput, "output", "", "Файл отчета; пустое значение выводит JSON в stdout")
	f.StringVar(&flagFormat, "format", "json", "Формат отчета: json, csv, excel")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	var reader io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("открытие входного файла: %w", err)
		}
		defer file.Close()
		reader = file
	}

	texts, err := readLines(reader)
	if err != nil {
		return fmt.Errorf("чтение входных строк: %w", err)
	}

	svc, err := buildService()
	if err != nil {
		return err
	}

	runner := evaluation.NewRunner(svc, requestFlags())
	report, err := runner.Evaluate(context.Background(), texts)
	if err != nil {
		return fmt.Errorf("пакетная обработка: %w", err)
	}

	if flagOutput == "" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
	return evaluation.NewExporter().Export(report, flagOutput, evaluation.ExportFormat(flagFormat))
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
