package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"entitynorm/lexicon"
	"entitynorm/normalization"
)

var textCmd = &cobra.Command{
	Use:   "text [строка]",
	Short: "Нормализовать одну строку и вывести результат в JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	result, err := svc.Normalize(context.Background(), normalization.Request{
		Text:         strings.Join(args, " "),
		LanguageHint: lexicon.Language(flagLanguage),
		Flags:        requestFlags(),
	})
	if err != nil {
		return fmt.Errorf("нормализация: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
