package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"go_4_kanji_quiz/internal/config"
	"go_4_kanji_quiz/internal/handlers"
	"go_4_kanji_quiz/internal/reading"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API サーバーを起動します",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		deps := handlers.RouterDeps{
			Logger:      a.logger,
			WordService: a.words,
			QuizService: a.quiz,
			DB:          a.sqlDB,
			SingleUser:  config.Cfg.App.SingleUser,
			CORS: cors.Options{
				AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
				AllowedMethods:   config.Cfg.CORS.AllowedMethods,
				AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
				ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
				AllowCredentials: config.Cfg.CORS.AllowCredentials,
				MaxAge:           config.Cfg.CORS.MaxAge,
			},
		}
		// 辞書が読めなくても単語帳とクイズは動かす
		if suggester, err := reading.NewSuggester(); err != nil {
			a.logger.Warn("Reading suggestions disabled", slog.Any("error", err))
		} else {
			deps.Suggester = suggester
		}

		server := &http.Server{
			Addr:         config.Cfg.Server.Port,
			Handler:      handlers.NewRouter(deps),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				a.logger.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
				return err
			}
		case <-ctx.Done():
		}

		a.logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Server forced to shutdown", slog.Any("error", err))
			return err
		}
		a.logger.Info("Server exiting")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
