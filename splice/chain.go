package splice

import (
	"errors"
	"fmt"
	"time"

	"github.com/sartorproj/gosplice/timeseries"
)

// StepSummary records the diagnostics of one splice step in a chain.
type StepSummary struct {
	StartDate         time.Time
	EndDate           time.Time
	R2                float64
	InterceptRetained bool
}

// ChainOptions holds the sequence-wide reconciliation parameters.
type ChainOptions struct {
	Knit      *KnitOptions
	Normalize bool // rescale the final series so its maximum is 100
}

// DefaultChainOptions returns the default chain parameters.
func DefaultChainOptions() *ChainOptions {
	return &ChainOptions{
		Knit:      DefaultKnitOptions(),
		Normalize: true,
	}
}

// Chainer folds an ordered sequence of overlapping segments into one
// continuous series by repeated Knit calls. In forward mode the segments must
// be sorted by increasing coverage start date; in backward mode the same
// ordering applies and the fold runs from the end. A per-step summary is
// retained for inspection after a successful chain.
type Chainer struct {
	segments []*timeseries.Series
	summary  []StepSummary
}

// NewChainer creates a chainer over an ordered segment sequence. At least two
// segments are required.
func NewChainer(segments []*timeseries.Series) (*Chainer, error) {
	if len(segments) < 2 {
		return nil, errors.New("chaining requires at least two segments")
	}
	copied := make([]*timeseries.Series, len(segments))
	for i, s := range segments {
		copied[i] = s.Copy()
	}
	return &Chainer{segments: copied}, nil
}

// Knit reconciles the full segment sequence into one continuous series. Any
// step failure aborts the whole chain: no partial series is returned and the
// partial summary is discarded.
func (c *Chainer) Knit(dir Direction, opts *ChainOptions) (*timeseries.Series, error) {
	if opts == nil {
		opts = DefaultChainOptions()
	}

	c.summary = nil

	var running *timeseries.Series
	var summary []StepSummary

	switch dir {
	case Forward:
		running = c.segments[0].Copy()
		for i, next := range c.segments[1:] {
			start := next.Start()
			end := running.End()

			res, err := Knit(running, next, Forward, opts.Knit)
			if err != nil {
				return nil, fmt.Errorf("splice step %d: %w", i, err)
			}

			summary = append(summary, StepSummary{
				StartDate:         start,
				EndDate:           end,
				R2:                res.R2,
				InterceptRetained: res.InterceptRetained,
			})
			running = res.Series
		}

	case Backward:
		running = c.segments[len(c.segments)-1].Copy()
		for i := len(c.segments) - 2; i >= 0; i-- {
			earlier := c.segments[i]
			start := running.Start()
			end := earlier.End()

			res, err := Knit(earlier, running, Backward, opts.Knit)
			if err != nil {
				return nil, fmt.Errorf("splice step %d: %w", len(c.segments)-2-i, err)
			}

			summary = append(summary, StepSummary{
				StartDate:         start,
				EndDate:           end,
				R2:                res.R2,
				InterceptRetained: res.InterceptRetained,
			})
			running = res.Series
		}

	default:
		return nil, fmt.Errorf("unknown direction %q", dir)
	}

	if opts.Normalize {
		running = Normalize(running)
	}

	c.summary = summary
	return running, nil
}

// Summary returns the per-step diagnostics of the last successful chain, in
// splice order. Nil before the first successful call or after a failure.
func (c *Chainer) Summary() []StepSummary {
	return c.summary
}

// Normalize rescales a series so its maximum value is 100.
func Normalize(s *timeseries.Series) *timeseries.Series {
	max := s.Max()
	if max == 0 {
		return s.Copy()
	}
	return s.Scale(100 / max)
}
