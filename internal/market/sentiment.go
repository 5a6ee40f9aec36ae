package market

import (
	"fmt"
	"math"
	"sort"
)

// volWindow is the realized-volatility lookback in trading days.
const volWindow = 30

// Sentiment classifies the latest 30-day realized volatility of a daily close
// series against the 90th percentile of its rolling 30-day volatility over the
// trailing year, rendered as "<Magnitude> move expected".
func Sentiment(closes []float64) (string, error) {
	vols, err := rollingVolatility(closes, volWindow)
	if err != nil {
		return "", err
	}

	latest := vols[len(vols)-1]
	p90 := quantile(vols, 0.9)
	if p90 == 0 {
		return "", fmt.Errorf("flat price history")
	}

	ratio := latest / p90

	var magnitude string
	switch {
	case ratio < 0.3:
		magnitude = "Small"
	case ratio < 0.6:
		magnitude = "Moderate"
	default:
		magnitude = "Large"
	}

	return magnitude + " move expected", nil
}

// rollingVolatility computes the rolling sample standard deviation of daily
// returns over the given window.
func rollingVolatility(closes []float64, window int) ([]float64, error) {
	if len(closes) < window+1 {
		return nil, fmt.Errorf("insufficient history: %d closes, need at least %d", len(closes), window+1)
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			return nil, fmt.Errorf("zero close in history")
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}

	vols := make([]float64, 0, len(returns)-window+1)
	for i := window; i <= len(returns); i++ {
		vols = append(vols, stddev(returns[i-window:i]))
	}
	return vols, nil
}

// stddev is the sample standard deviation.
func stddev(xs []float64) float64 {
	n := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / n

	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return math.Sqrt(sq / (n - 1))
}

// quantile returns the q-th quantile of xs using linear interpolation between
// the two nearest order statistics.
func quantile(xs []float64, q float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}
