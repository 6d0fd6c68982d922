// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_4_kanji_quiz/internal/handlers"
	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/service/mocks"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Owner   string // 空ならヘッダーを付けない
	Headers map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode      int
	ExpectedErrorCode string
}

type testServer struct {
	server *httptest.Server
	words  *mocks.WordService
	quiz   *mocks.QuizService
}

// newTestServer はサービスをモックにしたルーターでサーバーを立てます
func newTestServer(t *testing.T, suggester handlers.ReadingSuggester) *testServer {
	t.Helper()
	words := mocks.NewWordService(t)
	quiz := mocks.NewQuizService(t)
	router := handlers.NewRouter(handlers.RouterDeps{
		Logger:      testLogger,
		WordService: words,
		QuizService: quiz,
		Suggester:   suggester,
		CORS:        cors.Options{AllowedOrigins: []string{"*"}},
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{server: srv, words: words, quiz: quiz}
}

// sendRequest はHTTPリクエストを送信し、ステータスコードを検証してボディを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) []byte {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.Owner != "" {
		req.Header.Set(middleware.DisplayNameHeader, url.PathEscape(details.Owner))
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	verifyErrorResponse(t, respBodyBytes, expectations.ExpectedErrorCode)
	return respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのコードを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()
	if expectedCode == "" {
		return
	}
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "raw body: %s", string(bodyBytes))
	assert.Equal(t, expectedCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}

// decodeBody はレスポンスボディを指定の型にデコードします
func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "raw body: %s", string(body))
	return v
}
