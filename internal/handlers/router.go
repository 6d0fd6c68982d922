package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/service"
)

// Pinger はヘルスチェックで使うDB接続です (*sql.DB が満たします)
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はルーターの組み立てに必要な依存です
type RouterDeps struct {
	Logger      *slog.Logger
	WordService service.WordService
	QuizService service.QuizService
	Suggester   ReadingSuggester // nil なら /readings は登録しない
	DB          Pinger
	SingleUser  bool
	CORS        cors.Options
}

func NewRouter(deps RouterDeps) http.Handler {
	wordHandler := NewWordHandler(deps.WordService)
	quizHandler := NewQuizHandler(deps.QuizService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(deps.Logger))
	r.Use(cors.New(deps.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.DisplayNameMiddleware(deps.SingleUser))

		r.Route("/words", func(r chi.Router) {
			r.Get("/", wordHandler.GetWords)
			r.Post("/", wordHandler.PostWord)
			r.Get("/days", wordHandler.GetDays)
			r.Delete("/{word_id}", wordHandler.DeleteWord)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Post("/", quizHandler.StartQuiz)
			r.Get("/", quizHandler.GetQuiz)
			r.Delete("/", quizHandler.ResetQuiz)
			r.Post("/answer", quizHandler.SubmitAnswer)
			r.Post("/next", quizHandler.NextQuestion)
			r.Post("/retry", quizHandler.RetryMissed)
		})

		if deps.Suggester != nil {
			r.Get("/readings", NewReadingHandler(deps.Suggester).GetReading)
		}
	})

	r.Get("/health", healthCheck(deps.DB))
	return r
}

func healthCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLogger(r.Context())
		if db == nil {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
			return
		}
		if err := db.PingContext(r.Context()); err != nil {
			logger.Error("Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
