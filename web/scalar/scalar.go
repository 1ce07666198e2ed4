// Package scalar serves interactive API reference documentation rendered by
// Scalar from the service's OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/JaimeStill/ots-portal/pkg/module"
	"github.com/JaimeStill/ots-portal/pkg/web"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// NewModule creates the docs module at prefix, pointing the reference UI at specURL.
func NewModule(prefix, title, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{title, specURL})
	if err != nil {
		return nil, err
	}

	r := web.NewRouter()
	r.HandleFunc("GET /{$}", web.ServeEmbeddedFile(buf.Bytes(), "text/html; charset=utf-8"))

	return module.New(prefix, r), nil
}
