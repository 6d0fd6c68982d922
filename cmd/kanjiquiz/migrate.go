package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go_4_kanji_quiz/internal/config"
	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "単語テーブルを作成します (ローカル用)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := repository.NewDB(config.Cfg.Database.URL, middleware.GetLogger(cmd.Context()))
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "マイグレーションが完了しました。")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
