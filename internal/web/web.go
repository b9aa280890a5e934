// Package web serves the embedded single-page UI: every UI path gets
// index.html and unmatched routes get 404.html. The page talks to /api with
// the key it obtained at signup.
package web

import (
	"embed"
	"net/http"
)

//go:embed static/index.html static/404.html
var content embed.FS

func page(name string) []byte {
	b, err := content.ReadFile("static/" + name)
	if err != nil {
		panic(err) // embedded file missing means a broken build
	}
	return b
}

var (
	indexPage    = page("index.html")
	notFoundPage = page("404.html")
)

func Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(notFoundPage)
}
