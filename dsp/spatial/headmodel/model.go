package headmodel

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir/reduce"
)

const (
	sincHalfWidth  = 8   // taps on each side of the fractional-delay kernel
	pulseHalfWidth = 6.0 // low-frequency pulse half width in samples
	shadowGain     = 0.5 // scale applied to the head-shadow factor
	echoGain       = -0.3
	echoBase       = 3.0 // pinna echo delay at +90° elevation, samples
	echoSpan       = 2.0 // extra echo delay per unit of (1 - sin el)
	ringGain       = 0.08
	ringDecay      = 12.0 // resonance time constant, samples
	ringFreq       = 0.9  // resonance frequency, radians per sample
)

// Model is a spherical-head HRIR generator. It is immutable and safe for
// concurrent use.
type Model struct {
	cfg  config
	fade []float64
}

// New creates a model.
func New(opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	m := &Model{cfg: cfg}
	latest := cfg.onset + m.maxDelay() + echoBase + 2*echoSpan + sincHalfWidth
	if fadeStart := cfg.samples * 3 / 4; latest >= float64(fadeStart) {
		return nil, fmt.Errorf("headmodel: %d samples cannot hold arrivals up to sample %.1f", cfg.samples, latest)
	}
	m.fade = fadeWindow(cfg.samples)
	return m, nil
}

// SampleRate returns the model sample rate in Hz.
func (m *Model) SampleRate() float64 {
	return m.cfg.sampleRate
}

// Samples returns the length of every generated response.
func (m *Model) Samples() int {
	return m.cfg.samples
}

// Measurements returns the full grid, elevation ring by elevation ring, with
// azimuths counting up from 0° in [0, 360).
func (m *Model) Measurements() ([]reduce.Measurement, error) {
	steps := int(math.Round(360 / m.cfg.azimuthStep))
	out := make([]reduce.Measurement, 0, steps*len(m.cfg.elevations))
	for _, el := range m.cfg.elevations {
		for i := range steps {
			az := float64(i) * m.cfg.azimuthStep
			left, right := m.Response(az, el)
			out = append(out, reduce.Measurement{
				Azimuth:   az,
				Elevation: el,
				Left:      left,
				Right:     right,
			})
		}
	}
	return out, nil
}

// Response returns the left and right ear responses for a source at the
// given azimuth and elevation in degrees.
func (m *Model) Response(azimuth, elevation float64) (left, right []float64) {
	az := azimuth * math.Pi / 180
	el := elevation * math.Pi / 180

	// Projection of the source direction onto the interaural axis; the left
	// ear points to +90° azimuth.
	lateral := math.Cos(el) * math.Sin(az)

	// The pinna favours sources in front; this is the only front/back cue.
	pinna := 0.75 + 0.25*math.Cos(el)*math.Cos(az)

	left = m.ear(lateral, el, pinna)
	right = m.ear(-lateral, el, pinna)
	return left, right
}

func (m *Model) ear(cosIncidence, el, pinna float64) []float64 {
	cfg := m.cfg
	psi := math.Acos(math.Max(-1, math.Min(1, cosIncidence)))

	delay := cfg.onset + m.woodworth(psi)*cfg.sampleRate
	alpha := 1.05 + 0.95*math.Cos(1.2*psi)

	h := make([]float64, cfg.samples)
	addSinc(h, delay, shadowGain*alpha)
	addPulse(h, delay, shadowGain)
	addSinc(h, delay+echoBase+echoSpan*(1-math.Sin(el)), echoGain*shadowGain*alpha*pinna)

	for n := int(math.Ceil(delay)); n < len(h); n++ {
		t := float64(n) - delay
		h[n] += ringGain * alpha * pinna * approx.FastExp(-t/ringDecay) * math.Sin(ringFreq*t)
	}

	vecmath.MulBlockInPlace(h, m.fade)
	return h
}

// woodworth returns the arrival delay in seconds relative to the head centre
// for an ear at incidence angle psi.
func (m *Model) woodworth(psi float64) float64 {
	scale := m.cfg.headRadius / m.cfg.speedOfSound
	if psi < math.Pi/2 {
		return scale * (1 - math.Cos(psi))
	}
	return scale * (1 + psi - math.Pi/2)
}

func (m *Model) maxDelay() float64 {
	return m.woodworth(math.Pi) * m.cfg.sampleRate
}

// addSinc adds a Hann-windowed fractional-delay sinc centred at center.
func addSinc(h []float64, center, gain float64) {
	base := int(math.Floor(center))
	for n := base - sincHalfWidth; n <= base+sincHalfWidth; n++ {
		if n < 0 || n >= len(h) {
			continue
		}
		t := float64(n) - center
		if math.Abs(t) >= sincHalfWidth {
			continue
		}
		h[n] += gain * sinc(t) * 0.5 * (1 + math.Cos(math.Pi*t/sincHalfWidth))
	}
}

// addPulse adds a unit-area Hann pulse centred at center.
func addPulse(h []float64, center, gain float64) {
	lo := int(math.Floor(center - pulseHalfWidth))
	hi := int(math.Ceil(center + pulseHalfWidth))
	for n := lo; n <= hi; n++ {
		if n < 0 || n >= len(h) {
			continue
		}
		t := float64(n) - center
		if math.Abs(t) >= pulseHalfWidth {
			continue
		}
		h[n] += gain * 0.5 * (1 + math.Cos(math.Pi*t/pulseHalfWidth)) / pulseHalfWidth
	}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// fadeWindow is flat for the first three quarters and falls to zero along a
// raised cosine over the last quarter.
func fadeWindow(n int) []float64 {
	w := make([]float64, n)
	start := n * 3 / 4
	span := float64(n - start)
	for i := range w {
		if i < start {
			w[i] = 1
			continue
		}
		w[i] = 0.5 * (1 + math.Cos(math.Pi*float64(i-start)/span))
	}
	return w
}
