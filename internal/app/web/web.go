// Package web serves the browser client for the API.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var content embed.FS

// Static returns the embedded client files rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Register serves the client at / and its assets under /assets.
func Register(r *gin.Engine) {
	files := Static()

	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(files))
	})
	r.StaticFS("/assets", http.FS(mustSub(files, "assets")))
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
