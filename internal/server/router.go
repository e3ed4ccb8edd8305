package server

import (
	"daiyaku/internal/config"

	"github.com/gin-gonic/gin"
)

// newRouter はHTTPルートを設定したginエンジンを作成する
func newRouter(cfg *config.Config) *gin.Engine {
	engine := gin.New()

	// 末尾スラッシュの自動リダイレクトを無効化する
	// "/api"（スラッシュなし）はモックAPIではなく静的配信にフォールスルーさせる
	engine.RedirectTrailingSlash = false

	// 全レスポンス共通のミドルウェア
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(noCacheMiddleware())

	// モックAPIエンドポイント
	engine.GET("/api/*path", handleMockAPI)
	engine.HEAD("/api/*path", handleMockAPI)

	// Socket.IOクライアントスタブ
	engine.GET("/socket.io/*path", handleSocketIOStub)
	engine.HEAD("/socket.io/*path", handleSocketIOStub)

	// それ以外は静的ファイル配信にフォールバック
	engine.NoRoute(staticHandler(cfg.Static.Dir, cfg.Static.Index))

	return engine
}
