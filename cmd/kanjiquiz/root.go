package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"go_4_kanji_quiz/internal/config"
	"go_4_kanji_quiz/internal/middleware"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "漢字の読みと意味を覚える単語帳クイズ",
	Version:       config.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 設定ファイル読み込み用の一時的なロガー
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

		paths := []string{"configs"}
		if configDir != "" {
			paths = []string{configDir}
		}
		if err := config.LoadConfig(paths...); err != nil {
			return err
		}

		logger := newLogger(os.Stderr, config.Cfg.Log.Level, os.Getenv("APP_ENV"))
		slog.SetDefault(logger)
		cmd.SetContext(middleware.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config.yaml を置いたディレクトリ (既定: ./configs)")
}

// parseLevel は設定のログレベルを slog のレベルに変換します。不明な値は Info です。
func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON でログを出します
func newLogger(w io.Writer, level, appEnv string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	lvl, known := parseLevel(level)
	logLevel.Set(lvl)

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	if !known {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger
}
