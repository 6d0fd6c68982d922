package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// maxLoggedBody を超えるボディはデバッグログで切り詰めます
const maxLoggedBody = 4096

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名です (小文字)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// responseRecorder はステータスコードとレスポンスボディを記録します。
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int
	body       *bytes.Buffer // デバッグ時のみ
}

func (rr *responseRecorder) WriteHeader(statusCode int) {
	rr.statusCode = statusCode
	rr.ResponseWriter.WriteHeader(statusCode)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	if rr.body != nil {
		rr.body.Write(b)
	}
	n, err := rr.ResponseWriter.Write(b)
	rr.written += n
	return n, err
}

// LoggingMiddleware はリクエストごとのロガーを用意し、開始と完了をログに出します。
// chi の RequestID ミドルウェアより後に置いてください。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBody []byte
			if debug && r.Body != nil {
				reqBody, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBody))
			}

			rr := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			if debug {
				rr.body = new(bytes.Buffer)
			}

			next.ServeHTTP(rr, r)

			logLevel := slog.LevelInfo
			if rr.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rr.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			// 表示名はこの後段のミドルウェアで付与されるため、ここではリクエスト時のロガーを使う
			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"status", rr.statusCode,
				"latency_ms", float64(time.Since(startTime).Nanoseconds())/1e6,
				"bytes_out", rr.written,
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", truncate(string(reqBody)),
				)
				requestLogger.Debug("Response detail",
					"status", rr.statusCode,
					"headers", formatHeaders(rr.Header()),
					"body", truncate(rr.body.String()),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します。HTTP 以外 (ターミナル版) からも使います。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "...(truncated)"
}
