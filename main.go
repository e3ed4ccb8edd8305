package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"daiyaku/internal/browser"
	"daiyaku/internal/config"
	"daiyaku/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// 位置引数でポートを指定できる（デフォルト: 3000）
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("無効なポート番号です: %s", os.Args[1])
		}
		cfg.Server.Port = port
	}

	// サーバーを作成し、先にリスナーを確保する
	// バインドエラーを起動メッセージより前に検出するため
	srv := server.New(cfg)
	if err := srv.Listen(); err != nil {
		if errors.Is(err, server.ErrAddrInUse) {
			fmt.Printf("ポート %d は既に使用されています\n", cfg.Server.Port)
			fmt.Printf("別のポートを指定して再実行してください: daiyaku %d\n", cfg.Server.Port+1)
			os.Exit(1)
		}
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}

	printStartupInfo(cfg)

	// ブラウザの起動はベストエフォート（失敗しても継続する）
	if cfg.Browser.AutoOpen {
		fmt.Println("ブラウザを起動しています...")
		if err := browser.Open(cfg.BaseURL()); err != nil {
			fmt.Println("ブラウザを自動起動できませんでした")
		}
	}

	// サーバーを起動（シグナル受信まで待機する）
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーでエラーが発生しました: %v", err)
	}

	fmt.Println("サーバーを停止しました")
}

// printStartupInfo は起動時のステータスをオペレーター向けに表示する
func printStartupInfo(cfg *config.Config) {
	dir, err := filepath.Abs(cfg.Static.Dir)
	if err != nil {
		dir = cfg.Static.Dir
	}

	fmt.Println("Jenkins Test Scheduler（フロントエンドのみ）")
	fmt.Printf("配信ディレクトリ: %s\n", dir)
	fmt.Printf("サーバーURL: %s\n", cfg.BaseURL())
	fmt.Println("注意: バックエンド機能にはNode.jsサーバーが必要です")
	fmt.Println("停止するにはCtrl+Cを押してください")
}
