package service

import (
	"errors"

	"go_4_kanji_quiz/internal/model"
)

// storeError はリポジトリのエラーを利用者向けのエラーに変換します。
// 入力エラー (AppError) はそのまま返します。
func storeError(op string, err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("この単語は既に削除されています。")
	}
	return model.NewStoreError(op, err)
}
