package handlers

import (
	"net/http"

	"go_4_kanji_quiz/internal/webutil"
)

// ReadingSuggester は漢字の読み候補を返します
type ReadingSuggester interface {
	Suggest(text string) (string, error)
}

type ReadingHandler struct {
	suggester ReadingSuggester
}

func NewReadingHandler(s ReadingSuggester) *ReadingHandler {
	return &ReadingHandler{suggester: s}
}

type readingResponse struct {
	Kanji    string `json:"kanji"`
	Yomigana string `json:"yomigana"`
}

// GetReading は ?kanji= の読み候補を返します。あくまで入力補助です。
func (h *ReadingHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	logger, _, ok := requestScope(w, r, "GetReading")
	if !ok {
		return
	}
	kanji := r.URL.Query().Get("kanji")
	yomigana, err := h.suggester.Suggest(kanji)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, readingResponse{Kanji: kanji, Yomigana: yomigana}, logger)
}
