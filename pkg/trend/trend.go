// Package trend classifies short-term traffic direction from recent rate
// samples.
package trend

import "github.com/irctrakz/netwatch/pkg/core"

const (
	// DefaultWindow is the number of most recent samples inspected.
	DefaultWindow = 5

	// DefaultTolerance is the relative band within which traffic counts as
	// stable (0.10 = ±10%). The window and band are display tuning
	// constants, not a measured property of the traffic.
	DefaultTolerance = 0.10
)

// Classifier compares the first and second half of a window of recent samples.
// Construct with New; the zero value classifies nothing.
type Classifier struct {
	window    int
	tolerance float64
}

// New returns a classifier over the given window size and tolerance band.
// A window below 2 or a non-positive tolerance falls back to the defaults.
func New(window int, tolerance float64) *Classifier {
	if window < 2 {
		window = DefaultWindow
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Classifier{window: window, tolerance: tolerance}
}

// Classify returns the trend of the most recent samples. Histories shorter
// than two samples classify as stable. The comparison is between the average
// combined rate (sent+recv) of the first and the second half of the window;
// the halves are window/2 samples each, so the middle sample of an odd window
// is ignored. A relative change within the tolerance band is stable.
//
// Classify is pure: it depends only on its input, never on the wall clock.
func (c *Classifier) Classify(samples []core.RateSample) core.Trend {
	n := len(samples)
	if n < 2 {
		return core.TrendStable
	}
	w := c.window
	if n < w {
		w = n
	}
	window := samples[n-w:]
	half := w / 2
	first := avgCombined(window[:half])
	second := avgCombined(window[w-half:])
	if first == 0 {
		if second == 0 {
			return core.TrendStable
		}
		// Any traffic after silence is a rise.
		return core.TrendRising
	}
	change := (second - first) / first
	switch {
	case change > c.tolerance:
		return core.TrendRising
	case change < -c.tolerance:
		return core.TrendFalling
	default:
		return core.TrendStable
	}
}

func avgCombined(samples []core.RateSample) float64 {
	var sum float64
	for _, s := range samples {
		sum += s.Combined()
	}
	return sum / float64(len(samples))
}
