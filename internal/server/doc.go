// Package server は、フロントエンド配信用HTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// モックAPIレスポンスの返却、静的ファイルの配信を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - モックAPIレスポンスの返却（/api/* への固定JSON）
//   - Socket.IOクライアントスタブの配信（/socket.io/*）
//   - 静的ファイル（HTML/CSS/JS）の配信
//   - 全レスポンスへのキャッシュ無効化ヘッダーの付与
//
// 仕様:
//   - ルーティングとミドルウェアはgin-gonic/ginを使用
//   - モックレスポンスはコンパイル時定数（バイト単位で固定）
//   - グレースフルシャットダウンに対応
//   - ポート競合（EADDRINUSE）を専用エラーとして報告
package server
