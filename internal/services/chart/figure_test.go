package chart

import (
	"encoding/json"
	"testing"
	"time"

	"MarketIntel/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSeries(ticker string, closes ...float64) models.PriceSeries {
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := models.PriceSeries{Ticker: ticker}
	for i, c := range closes {
		s.Points = append(s.Points, models.PricePoint{Date: base.AddDate(0, 0, i), Close: c})
	}
	return s
}

func TestBuildKeepsSeriesOrder(t *testing.T) {
	series := models.NewOrderedMap[models.PriceSeries]()
	series.Set("B", mkSeries("B", 1, 2))
	series.Set("A", mkSeries("A", 3, 4, 5))
	kpis := models.NewOrderedMap[models.KpiSet]()
	kpis.Set("B", models.KpiSet{SharpeRatio: 1.234})
	kpis.Set("A", models.KpiSet{SharpeRatio: -0.5})

	fig := Build(series, kpis)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "B", fig.Data[0].Name)
	assert.Equal(t, "A", fig.Data[1].Name)
	assert.Equal(t, []string{"2024-02-01", "2024-02-02", "2024-02-03"}, fig.Data[1].X)
	assert.Equal(t, []float64{3, 4, 5}, fig.Data[1].Y)
	assert.Equal(t, "<b>B</b><br>Price: %{y:.2f}<br>Sharpe Ratio: 1.23<extra></extra>", fig.Data[0].HoverTemplate)
	assert.Equal(t, "<b>A</b><br>Price: %{y:.2f}<br>Sharpe Ratio: -0.50<extra></extra>", fig.Data[1].HoverTemplate)
}

func TestFigureJSONLayout(t *testing.T) {
	series := models.NewOrderedMap[models.PriceSeries]()
	series.Set("A", mkSeries("A", 1))

	raw, err := Build(series, models.NewOrderedMap[models.KpiSet]()).JSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	layout := doc["layout"].(map[string]interface{})
	assert.Equal(t, "plotly_dark", layout["template"])
	assert.Equal(t, "x unified", layout["hovermode"])
	assert.Equal(t, Title, layout["title"].(map[string]interface{})["text"])
	assert.Contains(t, string(raw), "<b>A</b>")

	trace := doc["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "scatter", trace["type"])
	assert.Equal(t, "lines", trace["mode"])
}

func TestBuildIsDeterministic(t *testing.T) {
	series := models.NewOrderedMap[models.PriceSeries]()
	series.Set("X", mkSeries("X", 1, 2))
	kpis := models.NewOrderedMap[models.KpiSet]()

	a, err := Build(series, kpis).JSON()
	require.NoError(t, err)
	b, err := Build(series, kpis).JSON()
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
