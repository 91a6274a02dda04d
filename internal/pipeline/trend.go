package pipeline

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"habitlens/domain/student"
)

// FitTrend fits y = a + b*x by ordinary least squares. It returns nil when
// fewer than two points are given or all x values coincide, since no line
// is defined in either case.
func FitTrend(xs, ys []float64) *student.Trend {
	if len(xs) < 2 || len(xs) != len(ys) {
		return nil
	}
	if stat.Variance(xs, nil) == 0 {
		return nil
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil
	}

	trend := &student.Trend{
		Slope:     beta,
		Intercept: alpha,
		N:         len(xs),
		XMin:      floats.Min(xs),
		XMax:      floats.Max(xs),
	}
	if stat.Variance(ys, nil) > 0 {
		r2 := stat.RSquared(xs, ys, nil, alpha, beta)
		trend.RSquared = &r2
	}
	return trend
}

// fitPoints fits a trend through the x/y of the given points
func fitPoints(points []student.Point) *student.Trend {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return FitTrend(xs, ys)
}
