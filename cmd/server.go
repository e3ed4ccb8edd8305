// Package main はDaiyakuサーバーコマンドの実装です
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"daiyaku/internal/browser"
	"daiyaku/internal/config"
	"daiyaku/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host       = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port       = flag.Int("port", 0, "サーバーのポート (デフォルト: 3000)")
		dir        = flag.String("dir", "", "静的ファイルの配信ディレクトリ (デフォルト: public)")
		configPath = flag.String("config", "", "設定ファイル(YAML)のパス")
		noBrowser  = flag.Bool("no-browser", false, "起動時にブラウザを開かない")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Daiyaku - Jenkins Test Scheduler フロントエンド代替サーバー")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む（-config指定時はファイルも読み込む）
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dir != "" {
		cfg.Static.Dir = *dir
	}
	if *noBrowser {
		cfg.Browser.AutoOpen = false
	}

	// サーバーを作成してリスナーを確保する
	srv := server.New(cfg)
	if err := srv.Listen(); err != nil {
		if errors.Is(err, server.ErrAddrInUse) {
			log.Printf("ポート %d は既に使用されています", cfg.Server.Port)
			log.Fatalf("別のポートを指定して再実行してください: server -port %d", cfg.Server.Port+1)
		}
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}

	log.Printf("Daiyaku サーバーを起動します: %s", cfg.ServerAddress())
	log.Printf("配信ディレクトリ: %s", cfg.Static.Dir)
	log.Printf("注意: バックエンド機能にはNode.jsサーバーが必要です")

	if cfg.Browser.AutoOpen {
		if err := browser.Open(cfg.BaseURL()); err != nil {
			log.Printf("ブラウザを自動起動できませんでした: %v", err)
		}
	}

	// サーバーを起動
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーでエラーが発生しました: %v", err)
	}
}
