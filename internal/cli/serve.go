package cli

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dfscope/pkg/pipeline"
	"github.com/matzehuels/dfscope/pkg/render"
)

// previewPage is the HTML template for the browser preview.
var previewPage = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<title>dfscope preview</title>
<style>
  body { font-family: monospace; margin: 2rem; background: #fafafa; }
  h1 { font-size: 1.2rem; }
  img { max-width: 100%; border: 1px solid #ccc; background: white; }
  table { border-collapse: collapse; margin-top: 1rem; }
  td, th { border: 1px solid #ccc; padding: 0.2rem 0.6rem; text-align: left; }
  .Tree { color: black; }
  .Back { color: red; }
  .Forward { color: blue; }
  .Cross { color: dimgray; }
</style>
</head>
<body>
<h1>dfscope · {{.Vertices}} vertices · {{.EdgeCount}} edges</h1>
<img src="/image" alt="classified graph">
<table>
<tr><th>Edge</th><th>Kind</th></tr>
{{range .Edges}}<tr><td>{{.U}} &rarr; {{.V}}</td><td class="{{.Kind}}">{{.Kind}}</td></tr>
{{end}}</table>
<p><a href="/dot">DOT source</a></p>
</body>
</html>
`))

// previewRouter builds the HTTP handler for the browser preview.
func previewRouter(result *pipeline.Result, format render.Format) http.Handler {
	contentType := "image/png"
	if format == render.FormatSVG {
		contentType = "image/svg+xml"
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = previewPage.Execute(w, map[string]any{
			"Vertices":  result.Stats.VertexCount,
			"EdgeCount": result.Stats.EdgeCount,
			"Edges":     result.Edges,
		})
	})
	r.Get("/image", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(result.Artifact)
	})
	r.Get("/dot", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(result.DOT))
	})

	return r
}

// servePreview serves the rendered artifact and the classification report
// over HTTP until the context is cancelled.
func (c *CLI) servePreview(ctx context.Context, addr string, result *pipeline.Result, format render.Format) error {
	srv := &http.Server{Addr: addr, Handler: previewRouter(result, format)}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printInfo("Serving preview on %s (ctrl+c to stop)", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("preview server: %w", err)
		}
		return nil
	}
}
