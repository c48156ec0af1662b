// Package templates embeds the HTML views so the binary and the tests run
// from any working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse returns the parsed view set.
func Parse() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
