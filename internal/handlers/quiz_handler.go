package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/service"
	"go_4_kanji_quiz/internal/vocab"
	"go_4_kanji_quiz/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(s service.QuizService) *QuizHandler {
	return &QuizHandler{service: s}
}

// StartQuiz は全単語、指定日の単語、または指定IDの単語でクイズを始めます。
// ボディは省略できます。
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "StartQuiz")
	if !ok {
		return
	}

	// Content-Length が無い (chunked) 空ボディも省略とみなす
	var req model.StartQuizRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil && !errors.Is(err, webutil.ErrEmptyBody) {
		webutil.HandleError(w, logger, err)
		return
	}

	status, err := h.service.Start(r.Context(), owner, &req)
	if err != nil {
		logger.Warn("Error starting quiz", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, status, logger)
}

func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "GetQuiz")
	if !ok {
		return
	}
	status, err := h.service.Current(r.Context(), owner)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, status, logger)
}

// SubmitAnswer は現在の問題を採点します
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "SubmitAnswer")
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.Submit(r.Context(), owner, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "NextQuestion")
	if !ok {
		return
	}
	status, err := h.service.Advance(r.Context(), owner)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, status, logger)
}

// RetryMissed は間違えた単語だけで次の周回を始めます
func (h *QuizHandler) RetryMissed(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "RetryMissed")
	if !ok {
		return
	}
	status, err := h.service.Retry(r.Context(), owner)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, status, logger)
}

// ResetQuiz はクイズを終了し、最新の単語一覧 (新しい順) を返します
func (h *QuizHandler) ResetQuiz(w http.ResponseWriter, r *http.Request) {
	logger, owner, ok := requestScope(w, r, "ResetQuiz")
	if !ok {
		return
	}
	snap, err := h.service.Reset(r.Context(), owner)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	view := vocab.Project(snap, model.ViewState{Mode: model.ViewAll, SortOrder: model.SortNewest})
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}
