package splice

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fit holds the diagnostics of a single-regressor least squares fit
// y = Alpha + Beta*x (Alpha fixed at zero when HasIntercept is false).
type Fit struct {
	Alpha        float64
	Beta         float64
	R2           float64
	AlphaPValue  float64 // NaN when the intercept is absent or untestable
	HasIntercept bool
}

// Predict applies the fitted model to x.
func (f Fit) Predict(x float64) float64 {
	return f.Alpha + f.Beta*x
}

// fitOLS performs ordinary least squares of y on x. With origin set, the fit
// is constrained through zero and R2 is the uncentered coefficient of
// determination, matching the convention for no-intercept regressions.
func fitOLS(x, y []float64, origin bool) Fit {
	alpha, beta := stat.LinearRegression(x, y, nil, origin)

	n := len(y)
	sse := 0.0
	for i := range y {
		r := y[i] - alpha - beta*x[i]
		sse += r * r
	}

	fit := Fit{
		Alpha:        alpha,
		Beta:         beta,
		AlphaPValue:  math.NaN(),
		HasIntercept: !origin,
	}

	if origin {
		tss := 0.0
		for _, v := range y {
			tss += v * v
		}
		if tss > 0 {
			fit.R2 = 1 - sse/tss
		}
		return fit
	}

	fit.R2 = stat.RSquared(x, y, nil, alpha, beta)

	// Two-sided t-test on the intercept. With fewer than three points the
	// residual degrees of freedom vanish and the p-value stays NaN, which
	// callers treat as "not significant".
	if n > 2 {
		xMean := stat.Mean(x, nil)
		sxx := 0.0
		for _, v := range x {
			d := v - xMean
			sxx += d * d
		}
		s2 := sse / float64(n-2)
		if sxx > 0 {
			switch {
			case s2 > 0:
				se := math.Sqrt(s2 * (1/float64(n) + xMean*xMean/sxx))
				t := alpha / se
				dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
				fit.AlphaPValue = 2 * dist.CDF(-math.Abs(t))
			case alpha != 0:
				// Exact fit with a nonzero intercept: the intercept is
				// maximally distinguishable from zero.
				fit.AlphaPValue = 0
			default:
				fit.AlphaPValue = 1
			}
		}
	}

	return fit
}
