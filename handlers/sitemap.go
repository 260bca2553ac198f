package handlers

import (
	"html/template"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

type sitemapEntry struct {
	Method string
	Path   string
	Link   bool
}

var (
	sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Star Wars API</title></head>
<body style="font-family: sans-serif;">
<h1>Star Wars API</h1>
<p>Endpoints:</p>
<ul>
{{- range . }}
<li><code>{{ .Method }}</code> {{ if .Link }}<a href="{{ .Path }}">{{ .Path }}</a>{{ else }}{{ .Path }}{{ end }}</li>
{{- end }}
</ul>
</body>
</html>
`))

	// {people_id:[0-9]+} -> {people_id}
	paramPattern = regexp.MustCompile(`\{([^}:]+):[^}]*\}`)
)

// Sitemap lists every route of routes. GET routes without parameters are
// rendered as links.
func Sitemap(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := collectRoutes(routes)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = sitemapTemplate.Execute(w, entries)
	}
}

func collectRoutes(routes chi.Routes) ([]sitemapEntry, error) {
	seen := map[string]bool{}
	var entries []sitemapEntry

	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := paramPattern.ReplaceAllString(route, "{$1}")
		path = strings.ReplaceAll(path, "/*/", "/")
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		key := method + " " + path
		if seen[key] || method == http.MethodHead || method == http.MethodOptions {
			return nil
		}
		seen[key] = true
		entries = append(entries, sitemapEntry{
			Method: method,
			Path:   path,
			Link:   method == http.MethodGet && !strings.Contains(path, "{"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Method < entries[j].Method
	})
	return entries, nil
}
