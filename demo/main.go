// Package main demonstrates splicing overlapping segments and testing the
// result against the random-walk hypothesis, using synthetic data.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sartorproj/gosplice/splice"
	"github.com/sartorproj/gosplice/stats"
	"github.com/sartorproj/gosplice/timeseries"
)

func main() {
	rng := rand.New(rand.NewSource(7))

	// makeSegment samples the latent series over [from, to) and rescales it,
	// the way a provider would report the same quantity on its own index,
	// with a little observation noise.
	makeSegment := func(latent *timeseries.Series, from, to int, scale, offset float64, name string) *timeseries.Series {
		seg := latent.Copy()
		seg.Timestamps = seg.Timestamps[from:to]
		seg.Values = seg.Values[from:to]
		for i, v := range seg.Values {
			seg.Values[i] = scale*v + offset + 0.1*scale*rng.NormFloat64()
		}
		seg.Name = name
		return seg
	}

	// Latent daily series: a geometric random walk.
	n := 900
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := make([]time.Time, n)
	values := make([]float64, n)
	level := 100.0
	for i := 0; i < n; i++ {
		timestamps[i] = start.AddDate(0, 0, i)
		level *= 1 + 0.01*rng.NormFloat64()
		values[i] = level
	}
	latent, err := timeseries.NewWithTimestamps(timestamps, values)
	if err != nil {
		panic(err)
	}

	// Three overlapping segments reported on different scales.
	segments := []*timeseries.Series{
		makeSegment(latent, 0, 400, 1.0, 0, "provider-a"),
		makeSegment(latent, 340, 700, 0.25, 3, "provider-b"),
		makeSegment(latent, 640, 900, 7.0, 0, "provider-c"),
	}

	fmt.Println("=== Splicing ===")
	chainer, err := splice.NewChainer(segments)
	if err != nil {
		panic(err)
	}
	spliced, err := chainer.Knit(splice.Forward, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("spliced %d segments into %d observations (%s .. %s)\n",
		len(segments), spliced.Len(),
		spliced.Start().Format("2006-01-02"), spliced.End().Format("2006-01-02"))
	for i, step := range chainer.Summary() {
		fmt.Printf("  step %d: %s..%s  r2=%.4f  intercept=%v\n",
			i, step.StartDate.Format("2006-01-02"), step.EndDate.Format("2006-01-02"),
			step.R2, step.InterceptRetained)
	}

	fmt.Println("\n=== Random-walk tests ===")
	for _, method := range []string{"normal", "variance-ratio"} {
		tester, err := stats.NewRandomWalkTester(method)
		if err != nil {
			panic(err)
		}
		res, err := tester.Test(spliced, 4, 0.05)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-22s statistic=%8.4f  p=%.4f  %s\n",
			res.Method, res.Statistic, res.PValue, res.Decision)
		for _, w := range res.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}

	fmt.Println("\n=== Forecast comparison ===")
	// Naive forecast (yesterday's value) against a noisier competitor.
	target := spliced.Copy()
	target.Timestamps = target.Timestamps[1:]
	target.Values = target.Values[1:]
	naive := spliced.Copy()
	naive.Timestamps = spliced.Timestamps[1:]
	naive.Values = spliced.Values[:spliced.Len()-1]
	noisy := naive.Copy()
	for i := range noisy.Values {
		noisy.Values[i] += 2 * rng.NormFloat64()
	}

	dm, err := stats.DieboldMariano(target, noisy, naive, 1, "MSE")
	if err != nil {
		panic(err)
	}
	fmt.Printf("DM statistic=%.4f  p=%.4f\n%s\n", dm.Statistic, dm.PValue, dm.Verdict)
}
