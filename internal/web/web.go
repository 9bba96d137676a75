// Package web embeds the browser poller page.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// Handler serves the embedded page with static/ mounted at the root.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static/ is embedded at build time; Sub only fails on a bad path.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
