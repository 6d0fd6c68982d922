// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/service"
	"go_4_kanji_quiz/internal/vocab"
	"go_4_kanji_quiz/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// requestScope はリクエストのロガーと表示名を取り出します
func requestScope(w http.ResponseWriter, r *http.Request, handler string) (*slog.Logger, string, bool) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", handler))
	owner, err := middleware.GetOwnerFromContext(r.Context())
	if err != nil {
		logger.Error("Display name missing in context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return logger, "", false
	}
	return logger, owner, true
}

// PostWord は単語を追加します
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "PostWord")
	if !ok {
		return
	}

	var req model.PostWordRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid request body", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.AddWord(r.Context(), owner, &req)
	if err != nil {
		logger.Warn("Error adding word", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は並び順と表示モードを指定して単語一覧を返します
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "GetWords")
	if !ok {
		return
	}

	q := r.URL.Query()
	order, err := vocab.ParseSortOrder(q.Get("sort"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	mode, err := vocab.ParseViewMode(q.Get("mode"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.View(r.Context(), owner, model.ViewState{
		Mode:        mode,
		SortOrder:   order,
		SelectedDay: q.Get("day"),
	})
	if err != nil {
		logger.Warn("Error listing words", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// GetDays は単語がある日付を新しい順に返します
func (h *WordHandler) GetDays(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "GetDays")
	if !ok {
		return
	}
	days, err := h.service.Days(r.Context(), owner)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string][]string{"days": days}, logger)
}

// DeleteWord は単語を削除します。既に削除済みなら 404 です。
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "DeleteWord")
	if !ok {
		return
	}

	wordID, err := uuid.Parse(chi.URLParam(r, "word_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewValidationError("word_id", "単語IDの形式が正しくありません。"))
		return
	}

	if err := h.service.RemoveWord(r.Context(), owner, wordID); err != nil {
		logger.Warn("Error removing word", slog.Any("error", err), slog.String("word_id", wordID.String()))
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
