package features

import (
	"math"

	"MarketIntel/internal/domain/models"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear annualizes the daily Sharpe ratio.
const TradingDaysPerYear = 252

// zeroStdDev treats a return deviation below this as no variance.
const zeroStdDev = 1e-12

// DailyReturns converts closes to simple returns: r[i] = close[i]/close[i-1] - 1.
// A zero previous close yields a zero return.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return []float64{}
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] != 0 {
			out[i-1] = closes[i]/closes[i-1] - 1
		}
	}
	return out
}

// ComputeKPIs derives the summary statistics of a price series.
// An empty series yields a zero KpiSet.
func ComputeKPIs(s models.PriceSeries) models.KpiSet {
	if s.Empty() {
		return models.KpiSet{}
	}
	closes := s.Closes()
	volumes := s.Volumes()

	return models.KpiSet{
		AveragePrice:          finite(stat.Mean(closes, nil)),
		Volatility:            finite(sampleStdDev(closes)),
		PriceChangePercentage: finite(PriceChangePercentage(closes)),
		AverageVolume:         finite(stat.Mean(volumes, nil)),
		SharpeRatio:           finite(SharpeRatio(DailyReturns(closes))),
	}
}

// PriceChangePercentage is (last-first)/first*100, or 0 with fewer than 2 closes or a zero first close.
func PriceChangePercentage(closes []float64) float64 {
	if len(closes) < 2 || closes[0] == 0 {
		return 0
	}
	first, last := closes[0], closes[len(closes)-1]
	return (last - first) / first * 100
}

// SharpeRatio is mean/stdev of returns scaled by sqrt(252), or 0 when undefined.
func SharpeRatio(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	mean, std := stat.MeanStdDev(returns, nil)
	if std < zeroStdDev || math.IsNaN(std) {
		return 0
	}
	return mean / std * math.Sqrt(TradingDaysPerYear)
}

func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
