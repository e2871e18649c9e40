// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server is the local preview server: paste BibTeX or RIS text
// into a form, pick a style, and read the rendered bibliography in the
// browser.
package server

import (
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/kemu-chem/bibcite/internal/bibtex"
	"github.com/kemu-chem/bibcite/internal/cite"
	"github.com/kemu-chem/bibcite/internal/markup"
	"github.com/kemu-chem/bibcite/internal/ris"
	"github.com/kemu-chem/bibcite/pkg/types"
)

const pageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>bibcite preview</title>
<style>
body { font-family: Georgia, serif; max-width: 50em; margin: 2em auto; }
textarea { width: 100%; height: 14em; font-family: monospace; }
ol.bib li { margin-bottom: 0.6em; }
.error { color: #a00; }
</style>
</head>
<body>
<h1>bibcite preview</h1>
<form method="post" action="/render">
<p>
<select name="format">
<option value="bibtex">BibTeX</option>
<option value="ris">RIS</option>
</select>
<select name="style">
{{range .Styles}}<option value="{{.}}"{{if eq . $.Selected}} selected{{end}}>{{.}}</option>
{{end}}</select>
<select name="sort">
<option value="appearance">Order of appearance</option>
<option value="author-asc">Author (A–Z)</option>
<option value="author-desc">Author (Z–A)</option>
<option value="year-asc">Year (old→new)</option>
<option value="year-desc">Year (new→old)</option>
</select>
</p>
<p><textarea name="source" placeholder="Paste entries here">{{.Source}}</textarea></p>
<p><button type="submit">Render</button></p>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Citations}}
<h2>{{.Selected}}</h2>
<ol class="bib">
{{range .Citations}}<li>{{.}}</li>
{{end}}</ol>
{{end}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Styles    []string
	Selected  string
	Source    string
	Error     string
	Citations []template.HTML
}

// Handler returns the preview server's routes.
func Handler(cfg types.RenderConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writePage(w, pageData{Styles: cite.ReferenceStyleKeys(), Selected: defaultStyle(cfg)})
	})
	mux.HandleFunc("/render", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		handleRender(w, r, cfg)
	})
	return mux
}

func defaultStyle(cfg types.RenderConfig) string {
	if cfg.Style != "" {
		return cfg.Style
	}
	return "ACS"
}

func handleRender(w http.ResponseWriter, r *http.Request, cfg types.RenderConfig) {
	source := r.FormValue("source")
	styleKey := r.FormValue("style")
	if styleKey == "" {
		styleKey = defaultStyle(cfg)
	}

	data := pageData{
		Styles:   cite.ReferenceStyleKeys(),
		Selected: styleKey,
		Source:   source,
	}

	entries, err := parseSource(source, r.FormValue("format"))
	if err == nil {
		err = cite.SortEntries(entries, cite.Order(r.FormValue("sort")))
	}
	if err != nil {
		data.Error = err.Error()
		writePage(w, data)
		return
	}

	style, err := cite.ReferenceStyle(styleKey)
	if err != nil {
		data.Error = err.Error()
		writePage(w, data)
		return
	}

	opts := cite.Options{
		MaxAuthors:     cfg.MaxAuthors,
		OmitTitle:      cfg.OmitTitle,
		ReverseAuthors: cfg.ReverseAuthors,
	}
	for i, e := range entries {
		rendered := style(cite.ExtractFields(e), i+1, opts)
		// The marked-up encoding is transcoded rather than re-derived, the
		// same path the CLI takes for HTML output.
		data.Citations = append(data.Citations, template.HTML(markup.ToHTML(rendered.Markup)))
	}
	writePage(w, data)
}

func parseSource(source, format string) ([]types.Entry, error) {
	switch format {
	case "ris":
		return ris.Parse(source)
	default:
		return bibtex.Parse(source)
	}
}

func writePage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		fmt.Fprintf(os.Stderr, "rendering preview page: %v\n", err)
	}
}
