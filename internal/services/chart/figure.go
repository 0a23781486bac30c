package chart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"MarketIntel/internal/domain/models"
	"MarketIntel/pkg/util"
)

const (
	Title      = "Competitive Stock Price Analysis"
	Template   = "plotly_dark"
	XAxisTitle = "Date"
	YAxisTitle = "Stock Price (USD)"
	HoverMode  = "x unified"
)

// Figure is a Plotly figure description.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one line series.
type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode"`
	Name          string    `json:"name"`
	X             []string  `json:"x"`
	Y             []float64 `json:"y"`
	HoverTemplate string    `json:"hovertemplate"`
}

type Layout struct {
	Title     Text   `json:"title"`
	Template  string `json:"template"`
	XAxis     Axis   `json:"xaxis"`
	YAxis     Axis   `json:"yaxis"`
	HoverMode string `json:"hovermode"`
}

type Axis struct {
	Title Text `json:"title"`
}

type Text struct {
	Text string `json:"text"`
}

// Build creates one trace per series in the series map order. Each hover label carries the ticker's Sharpe ratio.
func Build(series *models.OrderedMap[models.PriceSeries], kpis *models.OrderedMap[models.KpiSet]) Figure {
	fig := Figure{
		Data: make([]Trace, 0, series.Len()),
		Layout: Layout{
			Title:     Text{Text: Title},
			Template:  Template,
			XAxis:     Axis{Title: Text{Text: XAxisTitle}},
			YAxis:     Axis{Title: Text{Text: YAxisTitle}},
			HoverMode: HoverMode,
		},
	}

	for _, e := range series.Entries() {
		var sharpe float64
		if k, ok := kpis.Get(e.Key); ok {
			sharpe = k.SharpeRatio
		}
		x := make([]string, 0, e.Value.Len())
		for _, d := range e.Value.Dates() {
			x = append(x, d.UTC().Format(util.DateLayout))
		}
		fig.Data = append(fig.Data, Trace{
			Type:          "scatter",
			Mode:          "lines",
			Name:          e.Key,
			X:             x,
			Y:             e.Value.Closes(),
			HoverTemplate: hoverTemplate(e.Key, sharpe),
		})
	}
	return fig
}

func hoverTemplate(ticker string, sharpe float64) string {
	return fmt.Sprintf("<b>%s</b><br>Price: %%{y:.2f}<br>Sharpe Ratio: %.2f<extra></extra>", ticker, sharpe)
}

// JSON encodes the figure without HTML escaping so the hover markup stays readable.
func (f Figure) JSON() (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
