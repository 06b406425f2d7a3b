package mask

import (
	"gonum.org/v1/gonum/floats"
)

// otsuBins is the histogram resolution used for threshold estimation.
// 256 equal-width bins spanning the data's [min, max] range.
const otsuBins = 256

// OtsuThreshold computes the intensity cutoff that maximizes the
// between-class variance of the grid's histogram.
//
// The histogram uses 256 equal-width bins over [min, max] of the data, and
// the returned threshold is the center of the bin at the optimal split, so
// identical input always yields an identical threshold. Classes are split at
// bin boundaries; splits that leave either class empty are skipped.
//
// Fails with *DegenerateInputError when the data holds a single distinct
// intensity, since no split separates two classes.
func OtsuThreshold(g *Grid) (float64, error) {
	lo := floats.Min(g.pix)
	hi := floats.Max(g.pix)
	if lo == hi {
		return 0, &DegenerateInputError{Value: lo}
	}

	span := hi - lo
	var counts [otsuBins]float64
	for _, v := range g.pix {
		bin := int((v - lo) / span * otsuBins)
		if bin > otsuBins-1 {
			bin = otsuBins - 1
		}
		counts[bin]++
	}

	binWidth := span / otsuBins
	center := func(i int) float64 { return lo + (float64(i)+0.5)*binWidth }

	total := float64(len(g.pix))
	totalSum := 0.0
	for i, c := range counts {
		totalSum += c * center(i)
	}

	// Sweep split points; class 0 is bins [0, t], class 1 is bins (t, 255].
	best := 0
	bestVariance := -1.0
	weight0 := 0.0
	sum0 := 0.0
	for t := 0; t < otsuBins-1; t++ {
		weight0 += counts[t]
		sum0 += counts[t] * center(t)
		weight1 := total - weight0
		if weight0 == 0 || weight1 == 0 {
			continue
		}
		mean0 := sum0 / weight0
		mean1 := (totalSum - sum0) / weight1
		variance := weight0 * weight1 * (mean0 - mean1) * (mean0 - mean1)
		if variance > bestVariance {
			bestVariance = variance
			best = t
		}
	}

	return center(best), nil
}
