// Package stats provides hypothesis tests operating on time series.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosplice/timeseries"
)

// Recognized random-walk test methods.
const (
	MethodNormal        = "normal"
	MethodVarianceRatio = "variance-ratio"
)

// ConfigurationError indicates an unrecognized method or criterion name.
type ConfigurationError struct {
	Got   string
	Valid []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unrecognized option %q, must be one of %v", e.Got, e.Valid)
}

// TestResult holds the outcome of a hypothesis test.
type TestResult struct {
	Name           string
	NullHypothesis string
	Method         string
	Statistic      float64
	PValue         float64
	Alpha          float64
	RejectNull     bool
	Decision       string
	Warnings       []string
}

// RandomWalkTester tests whether a level series is consistent with a
// random-walk generating process. The method is fixed at construction; each
// Test call is independent and side-effect-free.
type RandomWalkTester struct {
	method string
}

// NewRandomWalkTester creates a tester using the given method, either
// "normal" (dispersion-equality F-test) or "variance-ratio" (Lo-MacKinlay).
func NewRandomWalkTester(method string) (*RandomWalkTester, error) {
	switch method {
	case MethodNormal, MethodVarianceRatio:
		return &RandomWalkTester{method: method}, nil
	default:
		return nil, &ConfigurationError{Got: method, Valid: []string{MethodNormal, MethodVarianceRatio}}
	}
}

// Test runs the configured method on the series with downsampling stride q
// and significance level alpha. Non-positive q defaults to 2; non-positive
// alpha defaults to 0.05.
func (rw *RandomWalkTester) Test(series *timeseries.Series, q int, alpha float64) (*TestResult, error) {
	if q <= 0 {
		q = 2
	}
	if alpha <= 0 {
		alpha = 0.05
	}
	if q < 2 {
		return nil, fmt.Errorf("stride q must be at least 2, got %d", q)
	}

	switch rw.method {
	case MethodNormal:
		return rw.testNormal(series, q, alpha)
	case MethodVarianceRatio:
		return rw.testVarianceRatio(series, q, alpha)
	}
	return nil, &ConfigurationError{Got: rw.method, Valid: []string{MethodNormal, MethodVarianceRatio}}
}

// testNormal compares the variance of the first-differenced full series
// against the variance of the first-differenced stride-q subsample rescaled
// by 1/q. Under a random walk both estimate the one-period innovation
// variance, so their ratio follows an F distribution.
func (rw *RandomWalkTester) testNormal(series *timeseries.Series, q int, alpha float64) (*TestResult, error) {
	full := series.Diff().Values
	sub := series.Subsample(q).Diff().Values
	if len(full) < 2 || len(sub) < 2 {
		return nil, fmt.Errorf("series too short for dispersion test: %d observations", series.Len())
	}

	v1 := stat.Variance(full, nil)
	v2 := stat.Variance(sub, nil) / float64(q)
	if v1 == 0 || v2 == 0 {
		return nil, fmt.Errorf("zero variance in differenced series")
	}

	// Larger variance over smaller, degrees of freedom following the ratio.
	f := v1 / v2
	d1, d2 := float64(len(full)-1), float64(len(sub)-1)
	if f < 1 {
		f = 1 / f
		d1, d2 = d2, d1
	}

	dist := distuv.F{D1: d1, D2: d2}
	p := dist.Survival(f)

	return assembleResult(
		"random walk test",
		"series variance scales linearly with holding period (random walk)",
		MethodNormal,
		f, p, alpha, nil,
	), nil
}

// testVarianceRatio runs the Lo-MacKinlay heteroskedasticity-robust variance
// ratio test on a price-like level series.
func (rw *RandomWalkTester) testVarianceRatio(series *timeseries.Series, q int, alpha float64) (*TestResult, error) {
	var warnings []string

	s := series
	if rem := (s.Len() - 1) % q; rem != 0 {
		s = s.Truncate(s.Len() - rem)
		warnings = append(warnings, fmt.Sprintf("sample count minus one is not divisible by q=%d; dropped the trailing %d observations", q, rem))
	}

	n := s.Len()
	if n-1 < 2*q {
		return nil, fmt.Errorf("series too short for variance ratio test: %d observations with q=%d", series.Len(), q)
	}

	returns := s.Log().Diff().Values
	nq := float64(len(returns))
	mu := stat.Mean(returns, nil)

	dev := make([]float64, len(returns))
	ssq := 0.0
	for i, r := range returns {
		dev[i] = r - mu
		ssq += dev[i] * dev[i]
	}
	if ssq == 0 {
		return nil, fmt.Errorf("zero return variance")
	}

	// VR(q) from the return autocorrelations at lags 1..q-1 with Bartlett
	// weights, and its asymptotic variance from the fourth-moment delta
	// terms; see Lo and MacKinlay (1988).
	vr := 1.0
	theta := 0.0
	for k := 1; k < q; k++ {
		num := 0.0
		for j := k; j < len(dev); j++ {
			num += dev[j] * dev[j-k]
		}
		rho := num / ssq

		deltaNum := 0.0
		for j := k; j < len(dev); j++ {
			deltaNum += dev[j] * dev[j] * dev[j-k] * dev[j-k]
		}
		delta := nq * deltaNum / (ssq * ssq)

		w := 2 * (1 - float64(k)/float64(q))
		vr += w * rho
		theta += w * w * delta
	}

	if theta <= 0 {
		return nil, fmt.Errorf("degenerate asymptotic variance")
	}

	z := math.Sqrt(nq) * (vr - 1) / math.Sqrt(theta)
	p := 2 * distuv.UnitNormal.Survival(math.Abs(z))

	return assembleResult(
		"random walk test",
		"the series follows a random walk (variance ratio equals one)",
		fmt.Sprintf("%s (q=%d)", MethodVarianceRatio, q),
		z, p, alpha, warnings,
	), nil
}

// assembleResult produces the uniform summary shared by both methods.
func assembleResult(name, null, method string, statistic, p, alpha float64, warnings []string) *TestResult {
	reject := p < alpha
	decision := fmt.Sprintf("fail to reject the null hypothesis at the %.0f%% significance level", alpha*100)
	if reject {
		decision = fmt.Sprintf("reject the null hypothesis at the %.0f%% significance level", alpha*100)
	}
	return &TestResult{
		Name:           name,
		NullHypothesis: null,
		Method:         method,
		Statistic:      statistic,
		PValue:         p,
		Alpha:          alpha,
		RejectNull:     reject,
		Decision:       decision,
		Warnings:       warnings,
	}
}
