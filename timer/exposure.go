package timer

import "math"

// ExposureDuration returns base * 2^stops seconds.
func ExposureDuration(base, stops float64) float64 {
	return base * math.Pow(2, stops)
}

// BurnDuration returns the extra time needed to bring base up by burn stops.
func BurnDuration(base, burn float64) float64 {
	return base*math.Pow(2, burn) - base
}

// TestTargets returns the absolute exposure of every strip, left to right:
// the darkest under-exposure first, base in the middle, the longest last.
func TestTargets(base float64, steps int, interval float64) []float64 {
	if steps < 1 {
		return nil
	}
	side := (steps - 1) / 2
	targets := make([]float64, 0, steps)
	for k := side; k >= 1; k-- {
		targets = append(targets, ExposureDuration(base, -float64(k)*interval))
	}
	targets = append(targets, base)
	for k := 1; k <= side; k++ {
		targets = append(targets, ExposureDuration(base, float64(k)*interval))
	}
	return targets
}

// TestStepDuration returns how long strip index (0-based) must be exposed so
// that, added to everything exposed before it, the strip reaches its target.
func TestStepDuration(base float64, steps int, interval float64, index int) float64 {
	targets := TestTargets(base, steps, interval)
	if index < 0 || index >= len(targets) {
		return 0
	}
	var sum float64
	var inc float64
	for i := 0; i <= index; i++ {
		inc = targets[i] - sum
		sum += inc
	}
	return inc
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampMin(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}
