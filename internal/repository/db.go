package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/driver/sqlite"                 // ローカル・テスト用
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go_4_kanji_quiz/internal/model"
)

const sqliteScheme = "sqlite://"

// dialectorFor は接続URLからドライバを選びます。
// "sqlite://" で始まる場合は SQLite、それ以外は PostgreSQL とみなします。
func dialectorFor(databaseURL string) (gorm.Dialector, bool) {
	if strings.HasPrefix(databaseURL, sqliteScheme) {
		return sqlite.Open(strings.TrimPrefix(databaseURL, sqliteScheme)), true
	}
	return postgres.Open(databaseURL), false
}

// インスタンス
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("NewDB: %w: database url is empty", model.ErrInvalidInput)
	}

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	dialector, isSQLite := dialectorFor(databaseURL)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if isSQLite {
		// SQLite は書き込みが1本なので接続を1つに絞る (:memory: でも同じDBを見るため)
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.Bool("sqlite", isSQLite))
	return db, nil
}

// AutoMigrate は単語テーブルを作成します (ローカル・テスト用)。
// 本番のスキーマ変更はこのアプリの管理外です。
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Word{}); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return nil
}
