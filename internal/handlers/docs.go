package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"commandr-api/internal/contextutil"
)

//go:embed docs.md
var docsMarkdown []byte

// DocsHandler serves the API reference, rendered once from the embedded
// markdown at construction time.
type DocsHandler struct {
	page []byte
}

// docsPageData holds template data for the rendered docs page.
type docsPageData struct {
	Model   string
	Content template.HTML
}

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Command-R API</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
    }
    code, pre {
      font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
      background: #f4f4f5;
      border-radius: 4px;
    }
    pre {
      padding: 1rem;
      overflow-x: auto;
    }
    table {
      border-collapse: collapse;
    }
    th, td {
      border: 1px solid #d4d4d8;
      padding: 0.4rem 0.8rem;
    }
  </style>
</head>
<body>
<header><strong>Model:</strong> {{.Model}}</header>
<article>{{.Content}}</article>
</body>
</html>`))

// NewDocsHandler creates a DocsHandler with the API reference pre-rendered.
func NewDocsHandler(model string) (*DocsHandler, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(ghhtml.WithUnsafe()),
	)

	var content bytes.Buffer
	if err := md.Convert(docsMarkdown, &content); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	err := docsTemplate.Execute(&page, docsPageData{
		Model:   model,
		Content: template.HTML(content.String()),
	})
	if err != nil {
		return nil, err
	}

	return &DocsHandler{page: page.Bytes()}, nil
}

// ServeHTTP serves the rendered API reference.
func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.page); err != nil {
		logger.ErrorContext(ctx, "failed to write docs page", "error", err)
	}
}
