package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"go_4_kanji_quiz/internal/config"
	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/repository"
	"go_4_kanji_quiz/internal/service"
)

// app はコマンド間で共有する依存一式です
type app struct {
	logger *slog.Logger
	db     *gorm.DB
	sqlDB  *sql.DB
	words  service.WordService
	quiz   service.QuizService
}

// newApp は設定に従ってDBに接続し、サービスを組み立てます
func newApp(ctx context.Context) (*app, error) {
	logger := middleware.GetLogger(ctx)
	cfg := config.Cfg

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	repo := repository.NewGormWordRepository(db, repository.WithLocation(loc))
	words := service.NewWordService(repo)
	return &app{
		logger: logger,
		db:     db,
		sqlDB:  sqlDB,
		words:  words,
		quiz:   service.NewQuizService(repo, words),
	}, nil
}

func (a *app) Close() {
	if err := a.sqlDB.Close(); err != nil {
		a.logger.Error("Error closing database connection", slog.Any("error", err))
		return
	}
	a.logger.Debug("Database connection closed.")
}
