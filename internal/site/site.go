// Package site serves the bundled web form and the OpenAPI document.
package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// FS returns the embedded static tree rooted at static/.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Only possible if the embed directive and the directory drift apart.
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Handler serves the embedded files. "/" resolves to index.html and
// unknown paths get 404.
func Handler() http.Handler {
	return http.FileServer(FS())
}
