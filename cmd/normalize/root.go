package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"entitynorm/internal/config"
	"entitynorm/internal/workers"
	"entitynorm/lexicon"
	"entitynorm/morph"
	"entitynorm/normalization"
)

var (
	flagLanguage   string
	flagKeepStops  bool
	flagNoDim      bool
	flagSecure     bool
	flagSQLitePath string
	flagOutput     string
	flagFormat     string
)

var rootCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Нормализация имен и наименований из платежных текстов",
	Long: "Разбирает свободный текст платежного назначения: выделяет персон и " +
		"организации, приводит имена к именительному падежу, привязывает " +
		"идентификаторы и даты рождения.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLanguage, "language", "", "Язык текста: ru, uk, en (по умолчанию автоопределение)")
	pf.BoolVar(&flagKeepStops, "keep-stopwords", false, "Не удалять стоп-слова")
	pf.BoolVar(&flagNoDim, "no-diminutives", false, "Не раскрывать уменьшительные имена")
	pf.BoolVar(&flagSecure, "secure", false, "Приводить символы-гомоглифы к письменности большинства")
	pf.StringVar(&flagSQLitePath, "lexicon-db", os.Getenv("LEXICON_SQLITE_PATH"), "Путь к SQLite с дополнениями словарей")
}

// buildService собирает сервис нормализации из конфигурации и флагов
func buildService() (*normalization.Service, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.LogLevel)

	var opts []lexicon.Option
	sqlitePath := flagSQLitePath
	if sqlitePath == "" {
		sqlitePath = cfg.LexiconSQLitePath
	}
	if sqlitePath != "" {
		opts = append(opts, lexicon.WithSQLite(sqlitePath))
	}

	store, err := lexicon.NewStore(opts...)
	if err != nil {
		return nil, fmt.Errorf("загрузка словарей: %w", err)
	}

	analyzer, err := morph.NewCachedAnalyzer(morph.NewRuleAnalyzer(), cfg.MorphCacheSize)
	if err != nil {
		return nil, fmt.Errorf("инициализация морфологии: %w", err)
	}

	var poolOpts []workers.Option
	if cfg.RateLimitPerSecond > 0 {
		poolOpts = append(poolOpts, workers.WithRateLimit(cfg.RateLimitPerSecond, cfg.RateBurst))
	}
	pool, err := workers.NewPool(cfg.WorkerPoolSize, poolOpts...)
	if err != nil {
		return nil, fmt.Errorf("создание пула воркеров: %w", err)
	}

	return normalization.NewService(store, analyzer, pool), nil
}

// requestFlags переводит флаги командной строки во флаги конвейера
func requestFlags() normalization.Flags {
	flags := normalization.DefaultFlags()
	flags.RemoveStopWords = !flagKeepStops
	flags.EnableDiminutives = !flagNoDim
	flags.SecureNormalize = flagSecure
	return flags
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
