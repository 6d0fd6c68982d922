package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/webutil"
)

// DisplayNameHeader は利用者の表示名を受け取るヘッダーです。
// 日本語名はパーセントエンコードして送ります。
const DisplayNameHeader = "X-Display-Name"

const maxDisplayNameLength = 64

type ownerCtxKey struct{}

// DisplayNameMiddleware は表示名をコンテキストに格納します。
// 認証ではなく、単語の持ち主を区別するためだけのものです。
// singleUser の場合はヘッダーを見ずに空の表示名 (全単語が対象) を使います。
func DisplayNameMiddleware(singleUser bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			if singleUser {
				next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), "")))
				return
			}

			name, err := parseDisplayName(r.Header.Get(DisplayNameHeader))
			if err != nil {
				logger.Warn("Display name rejected", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}

			ctx := WithOwner(r.Context(), name)
			ctx = WithLogger(ctx, logger.With("owner", name))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseDisplayName(raw string) (string, error) {
	name, err := url.PathUnescape(strings.TrimSpace(raw))
	if err != nil {
		return "", model.NewAppError("INVALID_DISPLAY_NAME", "表示名の形式が正しくありません。", DisplayNameHeader, model.ErrForbidden)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", model.NewAppError("DISPLAY_NAME_REQUIRED", "表示名を設定してください。", DisplayNameHeader, model.ErrForbidden)
	}
	if utf8.RuneCountInString(name) > maxDisplayNameLength {
		return "", model.NewValidationError(DisplayNameHeader, "表示名が長すぎます。")
	}
	return name, nil
}

// WithOwner は表示名をコンテキストに格納します
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerCtxKey{}, owner)
}

// GetOwnerFromContext はコンテキストから表示名を取得します。
// 空文字は単一ユーザー運用を表します。
func GetOwnerFromContext(ctx context.Context) (string, error) {
	owner, ok := ctx.Value(ownerCtxKey{}).(string)
	if !ok {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストから表示名を取得できませんでした。", "", model.ErrInternalServer)
	}
	return owner, nil
}
