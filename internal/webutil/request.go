package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go_4_kanji_quiz/internal/model"
)

// maxBodyBytes はリクエストボディの上限です
const maxBodyBytes = 1 << 20

// ErrEmptyBody はボディが空だったことを表します。ボディを省略できるAPIはこれを無視します。
var ErrEmptyBody = errors.New("empty request body")

// DecodeJSONBody はリクエストボディをデコードし、validate タグで検証します。
// 未知のフィールドはエラーにします。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return emptyBodyError()
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return emptyBodyError()
		}
		return model.NewAppError("INVALID_JSON", "リクエストボディのJSONが正しくありません。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return ValidateStruct(dst)
}

func emptyBodyError() error {
	return model.NewAppError("INVALID_JSON", "リクエストボディが必要です。", "", errors.Join(model.ErrInvalidInput, ErrEmptyBody))
}
