package report

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"MarketIntel/internal/domain/models"
	drepo "MarketIntel/internal/domain/repository"
	domsvc "MarketIntel/internal/domain/service"
)

//go:embed templates/report.html
var templatesFS embed.FS

const defaultTemplate = "templates/report.html"

// ErrRender wraps template execution failures.
var ErrRender = errors.New("render report")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._\-]`)

var _ domsvc.ReportRenderer = (*Renderer)(nil)

// Renderer executes the report template and saves the result to a ReportStore.
type Renderer struct {
	tmpl  *template.Template
	store drepo.ReportStore
	now   func() time.Time
}

type view struct {
	Tickers     []string
	GeneratedAt time.Time
	Data        *models.OrderedMap[models.TickerData]
	Benchmark   *models.OrderedMap[models.KpiSet]
}

// NewRenderer parses the template at path, or the embedded default when path is empty.
func NewRenderer(store drepo.ReportStore, path string) (*Renderer, error) {
	funcs := template.FuncMap{"join": strings.Join}
	var (
		tmpl *template.Template
		err  error
	)
	if path == "" {
		tmpl, err = template.New("report.html").Funcs(funcs).ParseFS(templatesFS, defaultTemplate)
	} else {
		tmpl, err = template.New(filepath.Base(path)).Funcs(funcs).ParseFiles(path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl, store: store, now: time.Now}, nil
}

// FileName derives the report name from the requested tickers.
func FileName(tickers []string) string {
	return "competitive_report_" + unsafeChars.ReplaceAllString(strings.Join(tickers, "_"), "-") + ".html"
}

// Render writes the report and returns its file name.
func (r *Renderer) Render(ctx context.Context, tickers []string, data *models.OrderedMap[models.TickerData], benchmark *models.OrderedMap[models.KpiSet]) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, view{
		Tickers:     tickers,
		GeneratedAt: r.now().UTC(),
		Data:        data,
		Benchmark:   benchmark,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	name := FileName(tickers)
	if err := r.store.Save(ctx, name, buf.Bytes()); err != nil {
		return "", fmt.Errorf("save report %s: %w", name, err)
	}
	return name, nil
}
