package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestNoCacheHeaders は全ての分岐でキャッシュ無効化ヘッダーが付与される
// ことをテストする
func TestNoCacheHeaders(t *testing.T) {
	router := newTestRouter(t)

	// ルート、モックAPI、スタブ、静的ファイル、404の全てを確認する
	paths := []string{
		"/",
		"/api/hardware",
		"/api/unknown-thing",
		"/socket.io/socket.io.js",
		"/css/app.css",
		"/missing.txt",
	}

	expectedHeaders := map[string]string{
		"Cache-Control": "no-cache, no-store, must-revalidate",
		"Pragma":        "no-cache",
		"Expires":       "0",
	}

	for _, path := range paths {
		w := doRequest(router, http.MethodGet, path)

		for key, expected := range expectedHeaders {
			if got := w.Header().Get(key); got != expected {
				t.Errorf("%s: ヘッダー %s が不正: got %q, want %q", path, key, got, expected)
			}
		}
	}
}

// TestRequestIDHeader はリクエストIDヘッダーの付与をテストする
func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	// 指定がない場合は新しいIDが付与される
	w := doRequest(router, http.MethodGet, "/api/hardware")
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Idヘッダーが付与されていません")
	}

	// クライアントが指定したIDは引き継がれる
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hardware", nil)
	req.Header.Set("X-Request-Id", "test-request-id")
	router.ServeHTTP(w2, req)
	if got := w2.Header().Get("X-Request-Id"); got != "test-request-id" {
		t.Errorf("X-Request-Idが引き継がれていません: got %q", got)
	}
}
