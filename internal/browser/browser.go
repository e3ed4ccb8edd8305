// Package browser はローカルブラウザの起動を担う
//
// 起動はベストエフォートであり、失敗してもサーバーの動作には影響しない。
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open は既定のブラウザで指定したURLを開く
// プロセスの起動のみ行い、終了は待たない
func Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		// Linux/BSD系はxdg-openに任せる
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ブラウザの起動に失敗: %w", err)
	}
	return nil
}
