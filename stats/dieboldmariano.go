package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosplice/timeseries"
)

// Loss criteria for forecast comparison.
const (
	CriterionMSE  = "MSE"
	CriterionMAE  = "MAE"
	CriterionMAPE = "MAPE"
)

// DMResult holds the outcome of a Diebold-Mariano comparison.
type DMResult struct {
	Statistic float64
	PValue    float64
	Verdict   string
}

// DieboldMariano compares the forecast accuracy of two predictors of the same
// target under the given loss criterion, with forecast horizon h >= 1. The
// statistic uses the long-run variance of the loss differential through lag
// h-1 and the Harvey small-sample adjustment.
func DieboldMariano(target, pred1, pred2 *timeseries.Series, h int, criterion string) (*DMResult, error) {
	if target.Len() != pred1.Len() || target.Len() != pred2.Len() {
		return nil, fmt.Errorf("series lengths differ: target %d, pred1 %d, pred2 %d",
			target.Len(), pred1.Len(), pred2.Len())
	}
	if h < 1 {
		h = 1
	}

	n := target.Len()
	if n < h+2 {
		return nil, fmt.Errorf("series too short for horizon %d: %d observations", h, n)
	}

	d := make([]float64, n)
	switch criterion {
	case CriterionMSE:
		for i := 0; i < n; i++ {
			e1 := target.Values[i] - pred1.Values[i]
			e2 := target.Values[i] - pred2.Values[i]
			d[i] = e1*e1 - e2*e2
		}
	case CriterionMAE:
		for i := 0; i < n; i++ {
			d[i] = math.Abs(target.Values[i]-pred1.Values[i]) - math.Abs(target.Values[i]-pred2.Values[i])
		}
	case CriterionMAPE:
		for i := 0; i < n; i++ {
			d[i] = math.Abs(1-pred1.Values[i]/target.Values[i]) - math.Abs(1-pred2.Values[i]/target.Values[i])
		}
	default:
		return nil, &ConfigurationError{Got: criterion, Valid: []string{CriterionMSE, CriterionMAE, CriterionMAPE}}
	}

	mean := stat.Mean(d, nil)

	// Long-run variance of the loss differential: autocovariances through
	// lag h-1, the off-zero lags counted twice.
	vd := autocovariance(d, 0)
	for k := 1; k < h; k++ {
		vd += 2 * autocovariance(d, k)
	}
	vd /= float64(n)
	if vd <= 0 {
		return nil, fmt.Errorf("non-positive long-run variance of loss differential")
	}

	dm := mean / math.Sqrt(vd)

	// Harvey, Leybourne and Newbold (1997) small-sample adjustment.
	nf := float64(n)
	hf := float64(h)
	dm *= math.Sqrt((nf + 1 - 2*hf + hf*(hf-1)/nf) / nf)

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nf - 1}
	p := 2 * dist.CDF(-math.Abs(dm))

	verdict := "the second prediction is not shown to be more accurate than the first at the 5% level"
	if p <= 0.05 {
		verdict = "the second prediction is more accurate than the first at the 5% level"
	}

	return &DMResult{
		Statistic: dm,
		PValue:    p,
		Verdict:   verdict,
	}, nil
}

// autocovariance returns the lag-k autocovariance of x, normalized by len(x).
func autocovariance(x []float64, k int) float64 {
	n := len(x)
	if k >= n {
		return 0
	}
	mean := stat.Mean(x, nil)
	sum := 0.0
	for i := k; i < n; i++ {
		sum += (x[i] - mean) * (x[i-k] - mean)
	}
	return sum / float64(n)
}
