// Package page статичная страница edge-сервиса. Шаблон рендерится один раз при создании.
package page

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"
)

const (
	DefaultTitle = "DevSecOps Microservices Demo"
	indexName    = "index.html"
)

//go:embed templates/*.html
var templates embed.FS

// Params значения, подставляемые в страницу
type Params struct {
	Title    string
	Service  string
	Version  string
	DataPath string
}

type Page struct {
	body []byte
}

// New собирает страницу; ошибка только если шаблон поврежден
func New(p Params) (*Page, error) {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.DataPath == "" {
		p.DataPath = "/api/data"
	}

	tpl, err := template.New(indexName).Funcs(sprig.HtmlFuncMap()).ParseFS(templates, "templates/"+indexName)
	if err != nil {
		return nil, errors.Wrap(err, "parse page template")
	}

	var buf bytes.Buffer
	if err = tpl.Execute(&buf, p); err != nil {
		return nil, errors.Wrap(err, "execute page template")
	}

	return &Page{body: buf.Bytes()}, nil
}

// Bytes готовая разметка
func (p *Page) Bytes() []byte {
	return p.body
}

func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(p.body)))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(p.body)
}
