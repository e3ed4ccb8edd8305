package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// staticHandler は配信ディレクトリ配下の静的ファイルを配信するハンドラを作成する
// MIMEタイプの推定と404の扱いはhttp.FileServerに委譲する
func staticHandler(dir, index string) gin.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := filepath.Join(dir, index)

	return func(c *gin.Context) {
		p := c.Request.URL.Path

		// ルートはインデックスファイルの要求として扱う
		// "/index.html" を直接指定した場合も同じ内容を返す
		// （http.FileServerの "/index.html" → "./" リダイレクトを避けるため自前で配信する）
		if p == "/" || p == "/"+index {
			serveIndex(c, indexPath, index)
			return
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

// serveIndex はインデックスファイルの内容をそのまま配信する
func serveIndex(c *gin.Context, path, name string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	defer f.Close()

	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), f)
}
