// Package web holds the HTML views and the public assets, both embedded in
// the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-app/internal/domains/movie"
)

// IndexTemplate is the name of the movie listing template.
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed public
var publicFS embed.FS

// IndexPage is the data rendered by IndexTemplate.
type IndexPage struct {
	Title  string
	Movies []movie.Movie
}

// Templates parses every embedded template.
func Templates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// MustTemplates is Templates for program start-up.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// RenderIndex writes the listing page to w.
func RenderIndex(w io.Writer, tmpl *template.Template, page IndexPage) error {
	return tmpl.ExecuteTemplate(w, IndexTemplate, page)
}

// PublicFS returns the public directory with "public/" stripped.
func PublicFS() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		// the directory is embedded at compile time
		panic(err)
	}
	return sub
}

// RegisterStatic mounts every file of the public directory at its own path,
// for example public/css/style.css at /css/style.css.
func RegisterStatic(routes gin.IRoutes, files fs.FS) error {
	httpFS := http.FS(files)

	return fs.WalkDir(files, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		routes.StaticFileFS("/"+name, name, httpFS)
		return nil
	})
}
