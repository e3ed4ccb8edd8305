package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// モックAPIレスポンス
// バックエンド互換性のためバイト単位で固定の文字列定数として保持する
// （JSONコーデックを通すとキーの順序や空白が変わるため再エンコードしない）
const (
	mockSessionsBody = `{"success": true, "sessions": []}`
	mockHardwareBody = `{"success": true, "hardware": {"debuggers": [], "platforms": []}}`
	mockMachinesBody = `{"success": true, "machines": []}`
	mockScheduleBody = `{"success": true, "schedule": {"timeSlots": [], "assignments": []}}`
	mockFailureBody  = `{"success": false, "error": "Node.js backend not available"}`
)

// socketIOStub はSocket.IOクライアントの代替スタブ
// connectイベントのみ100ミリ秒後にコールバックを呼び、他はログ出力のみ行う
const socketIOStub = `window.io = function() {
    return {
        on: function(event, callback) {
            console.log("Mock Socket.IO: Listening for", event);
            if (event === 'connect') {
                setTimeout(() => callback(), 100);
            }
        },
        emit: function(event, data) {
            console.log("Mock Socket.IO: Emitting", event, data);
        }
    };
};
`

// handleMockAPI は/api/*へのリクエストにモックJSONを返す
// 未知のパスでも互換性のためステータスは200のまま失敗ボディを返す
func handleMockAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", []byte(mockBodyFor(c.Request.URL.Path)))
}

// mockBodyFor はパスに対応するモックレスポンスボディを返す
// 部分一致で判定し、最初に一致したものを採用する
func mockBodyFor(path string) string {
	switch {
	case strings.Contains(path, "/api/csv/sessions"):
		return mockSessionsBody
	case strings.Contains(path, "/api/hardware"):
		return mockHardwareBody
	case strings.Contains(path, "/api/machines"):
		return mockMachinesBody
	case strings.Contains(path, "/api/schedule"):
		return mockScheduleBody
	default:
		return mockFailureBody
	}
}

// handleSocketIOStub は/socket.io/*へのリクエストにクライアントスタブを返す
// サブパスに関わらず同じスタブを配信する
func handleSocketIOStub(c *gin.Context) {
	c.Data(http.StatusOK, "application/javascript", []byte(socketIOStub))
}
