package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of a uniformly sampled
// series. The mean is removed first so the zero-frequency bin does not
// swamp the orbital peaks. Only the first half of the bins come back;
// for real input the rest mirrors them.
func PowerSpectrum(series []float64) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range series {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod estimates the strongest oscillation period in a series
// sampled every dt. Returns 0 when nothing periodic stands out: a flat
// series, fewer than four samples, or a non-positive dt.
func DominantPeriod(series []float64, dt float64) float64 {
	if len(series) < 4 || dt <= 0 {
		return 0
	}

	ps := PowerSpectrum(series)
	peak, best := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			best = ps[k]
			peak = k
		}
	}
	if peak == 0 || best == 0 {
		return 0
	}
	return float64(len(series)) * dt / float64(peak)
}
