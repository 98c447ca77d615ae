// Package audio sonifies the running simulation. A portaudio output
// stream renders a filtered pad chord; published kinetic energy opens
// the filter and net momentum widens the stereo detune, so a hot
// collapsing cloud sounds bright and restless while a settled orbit
// hums. Input values are auto-gained, which keeps the mapping usable
// across presets whose energies differ by forty orders of magnitude.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Pad chord, a minor add9 stack. Low enough to sit under the HUD, close
// enough voicings that the filter sweep reads as one instrument.
var padFreqs = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

// Sonifier owns the output stream and the synthesis state. All fields
// below mu are written by UpdatePhysics from the render loop and read
// by the audio callback; everything else is callback-private.
type Sonifier struct {
	stream *portaudio.Stream

	time        float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int

	complexBuf []complex128

	mu       sync.Mutex
	kinetic  float64
	momentum float64
	centroid float64

	// Auto-gain peaks. Rise instantly, decay slowly, so the filter
	// mapping tracks whatever scale the running preset produces.
	kineticPeak  float64
	momentumPeak float64

	kineticSmooth  float64
	momentumSmooth float64

	Active bool
}

func NewSonifier() *Sonifier {
	delayLen := int(float64(SampleRate) * 0.6)
	return &Sonifier{
		delayLine:  [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		complexBuf: make([]complex128, BufferSize),
	}
}

// Start opens the default output device. Failure leaves the sonifier
// inactive; the caller decides whether that is fatal (it never is for
// the shipped front-ends, they just show AUDIO OFF).
func (a *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	a.stream = stream
	a.Active = true
	return nil
}

func (a *Sonifier) Stop() {
	if a.stream != nil {
		a.stream.Stop()
		a.stream.Close()
		a.stream = nil
	}
	portaudio.Terminate()
	a.Active = false
}

// UpdatePhysics hands the latest snapshot measures to the callback.
// Call it once per rendered frame; values are raw simulation units.
func (a *Sonifier) UpdatePhysics(kinetic, momentum float64) {
	a.mu.Lock()
	a.kinetic = kinetic
	a.momentum = momentum
	a.mu.Unlock()
}

// Centroid reports the spectral centroid of the last rendered buffer
// in Hz, for the HUD tone readout.
func (a *Sonifier) Centroid() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.centroid
}

// Triangle wave. Smooth enough that the filter turns it sine-ish.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One-pole low pass.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// normalize runs the auto-gain: the peak follows the largest value seen
// and decays, and the return value is the input on a 0..1 scale.
func normalize(v float64, peak *float64) float64 {
	if v > *peak {
		*peak = v
	} else {
		*peak *= 0.9995
	}
	if *peak < 1e-30 {
		return 0
	}
	n := v / *peak
	if n > 1 {
		n = 1
	}
	return n
}

func (a *Sonifier) process(out [][]float32) {
	a.mu.Lock()
	kinetic := a.kinetic
	momentum := a.momentum
	a.mu.Unlock()

	kNorm := normalize(kinetic, &a.kineticPeak)
	mNorm := normalize(momentum, &a.momentumPeak)

	// Slow morph so per-step jitter never clicks.
	a.kineticSmooth = a.kineticSmooth*0.995 + kNorm*0.005
	a.momentumSmooth = a.momentumSmooth*0.995 + mNorm*0.005

	// Kinetic energy opens the filter, 300 Hz at rest up to 1.5 kHz.
	cutoff := 300.0 + a.kineticSmooth*1200.0
	// Momentum spreads the stereo detune.
	detune := 0.001 + a.momentumSmooth*0.004
	dt := 1.0 / float64(SampleRate)
	vol := 0.25

	for i := 0; i < len(out[0]); i++ {
		sampleL := 0.0
		sampleR := 0.0

		for j, f := range padFreqs {
			oscL := triangle(a.time * f * (1.0 - detune))
			oscR := triangle(a.time * f * (1.0 + detune))

			g := 1.0 / float64(len(padFreqs))
			lfo := math.Sin(a.time*0.2 + float64(j))

			sampleL += oscL * g * (0.7 + 0.3*lfo)
			sampleR += oscR * g * (0.7 + 0.3*lfo)
		}

		var outL, outR float64
		outL, a.filterState[0] = lpf(sampleL, cutoff, dt, a.filterState[0])
		outR, a.filterState[1] = lpf(sampleR, cutoff, dt, a.filterState[1])

		// Ping-pong delay. Each side hears a little of the other,
		// which smears the image without a real reverb.
		delayL := a.delayLine[0][a.delayHead]
		delayR := a.delayLine[1][a.delayHead]

		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1

		a.delayLine[0][a.delayHead] = mixL * 0.7
		a.delayLine[1][a.delayHead] = mixR * 0.7
		a.delayHead = (a.delayHead + 1) % len(a.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		a.time += dt
	}

	a.analyze(out[0])
}

// analyze runs a windowed FFT over the rendered left channel and
// updates the spectral centroid readout.
func (a *Sonifier) analyze(rendered []float32) {
	n := len(rendered)
	if n > len(a.complexBuf) {
		n = len(a.complexBuf)
	}
	for i := 0; i < n; i++ {
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		a.complexBuf[i] = complex(float64(rendered[i])*window, 0)
	}
	for i := n; i < len(a.complexBuf); i++ {
		a.complexBuf[i] = 0
	}
	spectrum := fft.FFT(a.complexBuf)

	var weighted, total float64
	binHz := float64(SampleRate) / float64(len(a.complexBuf))
	for i := 1; i < len(a.complexBuf)/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		weighted += float64(i) * binHz * mag
		total += mag
	}

	a.mu.Lock()
	if total > 0 {
		a.centroid = weighted / total
	} else {
		a.centroid = 0
	}
	a.mu.Unlock()
}
