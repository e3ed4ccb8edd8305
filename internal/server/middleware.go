package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// noCacheMiddleware は全レスポンスにキャッシュ無効化ヘッダーを付与する
// フロントエンド開発中に古いアセットが残らないよう、静的配信と404を含む
// 全ての分岐でハンドラの書き込み前にヘッダーを設定する
func noCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}

// requestIDMiddleware は各レスポンスにリクエストIDを付与する
// クライアントがX-Request-Idを指定した場合はそれを引き継ぐ
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
