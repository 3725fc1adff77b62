// Package splice reconciles overlapping time-series segments into one
// continuously-scaled series.
package splice

import (
	"fmt"

	"github.com/sartorproj/gosplice/timeseries"
)

// Direction selects which series keeps its observed scale in a splice.
type Direction string

const (
	// Forward extends the base series' scale later in time: the base is the
	// target and the extension is calibrated onto it.
	Forward Direction = "forward"
	// Backward extends the extension series' scale earlier in time: the
	// extension is the target and the base is calibrated onto it.
	Backward Direction = "backward"
)

// KnitOptions holds the reconciliation parameters.
type KnitOptions struct {
	MinOverlap            int     // minimum shared timestamps (default 30)
	MaxZeros              int     // exact-zero observations tolerated per series in the overlap (default 10)
	InterceptSignificance float64 // two-sided level below which the intercept is retained (default 0.05)
}

// DefaultKnitOptions returns the default reconciliation parameters.
func DefaultKnitOptions() *KnitOptions {
	return &KnitOptions{
		MinOverlap:            30,
		MaxZeros:              10,
		InterceptSignificance: 0.05,
	}
}

// Result holds a completed pairwise reconciliation.
type Result struct {
	Series            *timeseries.Series
	R2                float64
	InterceptRetained bool

	// InterceptFit is the first-pass fit with an intercept term; FinalFit is
	// the retained model. They coincide when the intercept is retained.
	InterceptFit Fit
	FinalFit     Fit
}

// Knit reconciles two overlapping series into one continuous series covering
// the union of their observation periods. The overlap region calibrates a
// linear relationship between the two sources; the fitted model then maps the
// non-target series' out-of-overlap observations onto the target's scale.
// The overlap region itself is populated from the target series only.
func Knit(base, extension *timeseries.Series, dir Direction, opts *KnitOptions) (*Result, error) {
	if opts == nil {
		opts = DefaultKnitOptions()
	}
	if dir != Forward && dir != Backward {
		return nil, fmt.Errorf("unknown direction %q", dir)
	}

	if base.Start().After(extension.Start()) {
		return nil, &OrderingError{BaseStart: base.Start(), ExtensionStart: extension.Start()}
	}

	overlap := timeseries.Intersection(base, extension)
	if len(overlap) < opts.MinOverlap {
		return nil, &InsufficientOverlapError{Got: len(overlap), Want: opts.MinOverlap}
	}

	baseOverlap := base.Restrict(overlap)
	extOverlap := extension.Restrict(overlap)
	zb, ze := baseOverlap.CountZeros(), extOverlap.CountZeros()
	if zb > opts.MaxZeros || ze > opts.MaxZeros {
		return nil, &DegenerateDataError{BaseZeros: zb, ExtensionZeros: ze, Max: opts.MaxZeros}
	}

	// The target determines the final scale; the other series is regressed
	// against it over the overlap and extended beyond it.
	target, other := base, extension
	y, x := baseOverlap.Values, extOverlap.Values
	if dir == Backward {
		target, other = extension, base
		y, x = extOverlap.Values, baseOverlap.Values
	}

	interceptFit := fitOLS(x, y, false)
	finalFit := interceptFit
	// The intercept survives only when statistically distinguishable from
	// zero. A NaN p-value (degenerate fit) also drops it.
	if !(interceptFit.AlphaPValue < opts.InterceptSignificance) {
		finalFit = fitOLS(x, y, true)
	}

	outside := other.Without(overlap)
	predicted := outside.Copy()
	for i, v := range outside.Values {
		predicted.Values[i] = finalFit.Predict(v)
	}
	predicted.Name = target.Name

	merged, err := timeseries.Merge(target, predicted)
	if err != nil {
		return nil, fmt.Errorf("assemble spliced series: %w", err)
	}

	return &Result{
		Series:            merged,
		R2:                finalFit.R2,
		InterceptRetained: finalFit.HasIntercept,
		InterceptFit:      interceptFit,
		FinalFit:          finalFit,
	}, nil
}
