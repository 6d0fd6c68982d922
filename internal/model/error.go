// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrStore          = errors.New("word store failure")
	ErrBusy           = errors.New("another action is in progress")
	ErrInvalidState   = errors.New("action not allowed in current quiz state")
)

// AppError はクライアントに返すエラー情報と根本原因を保持します
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はレスポンス用のエラー詳細を返します
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{Code: e.Code, Message: e.Message, Field: e.Field}
}

// NewValidationError は必須項目の不足など、入力起因のエラーです。状態は変更されません。
func NewValidationError(field, message string) *AppError {
	return NewAppError("VALIDATION_ERROR", message, field, ErrInvalidInput)
}

// NewStoreError はストア側の失敗をそのままの文言でユーザーに伝えます
func NewStoreError(op string, cause error) *AppError {
	return NewAppError("STORE_ERROR", cause.Error(), "", fmt.Errorf("%s: %w: %w", op, ErrStore, cause))
}

// NewNotFoundError は対象が既に削除されている場合のエラーです
func NewNotFoundError(message string) *AppError {
	return NewAppError("NOT_FOUND", message, "", ErrNotFound)
}

// ErrorDetail はAPIエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
