package binaural

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
)

// ErrOrder is returned for ambisonic orders outside [MinOrder, MaxOrder].
var ErrOrder = errors.New("binaural: unsupported ambisonic order")

// Supported ambisonic orders.
const (
	MinOrder = 1
	MaxOrder = 3
)

const maxAmbiChannels = (MaxOrder + 1) * (MaxOrder + 1)

// maxREAlpha is the 3D max-rE constant; weights are cos(alpha/(2(N+1)))^l.
const maxREAlpha = 2.406184877014388

// Virtual speaker ring for the ambisonic decoder, horizontal at 45° steps.
var ambiSpeakerAzimuths = [...]float64{0, 45, 90, 135, 180, -135, -90, -45}

const numAmbiSpeakers = len(ambiSpeakerAzimuths)

// AmbisonicChannels returns the channel count of an order, (order+1)².
func AmbisonicChannels(order int) int {
	return (order + 1) * (order + 1)
}

func checkOrder(order int) error {
	if order < MinOrder || order > MaxOrder {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrOrder, order, MinOrder, MaxOrder)
	}
	return nil
}

// EncodePlaneWave returns the ACN/SN3D gains for a plane wave arriving from
// azimuth and elevation in degrees. Multiplying a mono signal by the gains
// yields an ambisonic stream of the given order.
func EncodePlaneWave(order int, azimuth, elevation float64) ([]float32, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) || math.IsNaN(elevation) || math.IsInf(elevation, 0) {
		return nil, fmt.Errorf("binaural: plane wave direction must be finite")
	}
	var sh [maxAmbiChannels]float64
	sphericalHarmonics(order, azimuth, elevation, &sh)
	gains := make([]float32, AmbisonicChannels(order))
	for i := range gains {
		gains[i] = float32(sh[i])
	}
	return gains, nil
}

// sphericalHarmonics fills dst with real SN3D harmonics in ACN order up to
// order. Angles are in degrees.
func sphericalHarmonics(order int, azimuth, elevation float64, dst *[maxAmbiChannels]float64) {
	az := azimuth * math.Pi / 180
	el := elevation * math.Pi / 180
	sinAz, cosAz := math.Sincos(az)
	sinEl, cosEl := math.Sincos(el)

	dst[0] = 1
	dst[1] = cosEl * sinAz
	dst[2] = sinEl
	dst[3] = cosEl * cosAz
	if order < 2 {
		return
	}

	const (
		k2  = 0.8660254037844386 // sqrt(3)/2
		k30 = 0.7905694150420949 // sqrt(5/8)
		k31 = 1.9364916731037085 // sqrt(15)/2
		k32 = 0.6123724356957945 // sqrt(3/8)
	)
	sin2Az, cos2Az := math.Sincos(2 * az)
	sin2El := 2 * sinEl * cosEl
	cos2El := cosEl * cosEl
	dst[4] = k2 * cos2El * sin2Az
	dst[5] = k2 * sin2El * sinAz
	dst[6] = 0.5 * (3*sinEl*sinEl - 1)
	dst[7] = k2 * sin2El * cosAz
	dst[8] = k2 * cos2El * cos2Az
	if order < 3 {
		return
	}

	sin3Az, cos3Az := math.Sincos(3 * az)
	cos3El := cos2El * cosEl
	p := 5*sinEl*sinEl - 1
	dst[9] = k30 * cos3El * sin3Az
	dst[10] = k31 * cos2El * sinEl * sin2Az
	dst[11] = k32 * cosEl * p * sinAz
	dst[12] = 0.5 * sinEl * (5*sinEl*sinEl - 3)
	dst[13] = k32 * cosEl * p * cosAz
	dst[14] = k31 * cos2El * sinEl * cos2Az
	dst[15] = k30 * cos3El * cos3Az
}

// maxREWeights returns the per-degree max-rE taper for order, index l being
// the weight of degree l.
func maxREWeights(order int) [MaxOrder + 1]float64 {
	var w [MaxOrder + 1]float64
	w[0] = 1
	base := math.Cos(maxREAlpha / float64(2*(order+1)))
	for l := 1; l <= order && l <= MaxOrder; l++ {
		w[l] = math.Pow(base, float64(l))
	}
	return w
}

// AmbisonicDecoder renders an ACN/SN3D ambisonic stream through a ring of
// eight virtual speakers on the horizontal plane. Speaker feeds use a max-rE
// weighted projection decoder and the binaural sum is scaled by 1/sqrt(8).
type AmbisonicDecoder struct {
	order    int
	channels int
	norm     float32
	gains    [numAmbiSpeakers][maxAmbiChannels]float32
	pairs    [numAmbiSpeakers]hrir.FilterPair
	dirs     [numAmbiSpeakers]hrir.Direction
	hist     [numAmbiSpeakers]history
	pos      int
}

// NewAmbisonicDecoder creates a decoder for order 1 to 3. Each virtual
// speaker uses the filter pair its azimuth classifies to.
func NewAmbisonicDecoder(order int, opts ...Option) (*AmbisonicDecoder, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	d := &AmbisonicDecoder{
		order:    order,
		channels: AmbisonicChannels(order),
		norm:     float32(1 / math.Sqrt(float64(numAmbiSpeakers))),
	}
	w := maxREWeights(order)
	var sh [maxAmbiChannels]float64
	for s, az := range ambiSpeakerAzimuths {
		sphericalHarmonics(order, az, 0, &sh)
		for ch := 0; ch < d.channels; ch++ {
			d.gains[s][ch] = float32(sh[ch] * w[acnDegree(ch)])
		}
		d.dirs[s], _ = hrir.Classify(az)
		d.pairs[s] = cfg.table.Pair(d.dirs[s])
	}
	return d, nil
}

func acnDegree(ch int) int {
	return int(math.Sqrt(float64(ch)))
}

// Order returns the ambisonic order.
func (d *AmbisonicDecoder) Order() int {
	return d.order
}

// Channels returns the number of input channels, (order+1)².
func (d *AmbisonicDecoder) Channels() int {
	return d.channels
}

// Speakers returns the virtual speaker azimuths.
func (d *AmbisonicDecoder) Speakers() []float64 {
	return append([]float64(nil), ambiSpeakerAzimuths[:]...)
}

// SpeakerDirection returns the canonical direction used for virtual speaker
// s. It reports false when s is out of range.
func (d *AmbisonicDecoder) SpeakerDirection(s int) (hrir.Direction, bool) {
	if s < 0 || s >= numAmbiSpeakers {
		return hrir.Fallback, false
	}
	return d.dirs[s], true
}

// ProcessFrame renders one sample per ambisonic channel.
func (d *AmbisonicDecoder) ProcessFrame(frame []float32) (left, right float32, err error) {
	if len(frame) != d.channels {
		return 0, 0, fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(frame), d.channels)
	}
	left, right = d.processFrame(frame)
	return left, right, nil
}

func (d *AmbisonicDecoder) processFrame(frame []float32) (float32, float32) {
	var l, r float32
	for s := range d.hist {
		var feed float32
		g := &d.gains[s]
		for ch := 0; ch < d.channels; ch++ {
			feed += frame[ch] * g[ch]
		}
		d.hist[s].buf[d.pos] = feed
		sl, sr := d.hist[s].convolve(d.pos, d.pairs[s])
		l += sl
		r += sr
	}
	d.pos++
	if d.pos == hrir.Length {
		d.pos = 0
	}
	return l * d.norm, r * d.norm
}

// ProcessBlock renders planar ambisonic channels into left and right. All
// buffers must have the same length.
func (d *AmbisonicDecoder) ProcessBlock(inputs [][]float32, left, right []float32) error {
	if err := checkPlanar(inputs, d.channels, left, right); err != nil {
		return err
	}
	var frame [maxAmbiChannels]float32
	for i := range left {
		for ch := 0; ch < d.channels; ch++ {
			frame[ch] = inputs[ch][i]
		}
		left[i], right[i] = d.processFrame(frame[:d.channels])
	}
	return nil
}

// Reset clears all speaker histories.
func (d *AmbisonicDecoder) Reset() {
	for i := range d.hist {
		d.hist[i].reset()
	}
	d.pos = 0
}

func checkPlanar(inputs [][]float32, channels int, left, right []float32) error {
	if len(inputs) != channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(inputs), channels)
	}
	n := len(left)
	if len(right) != n {
		return fmt.Errorf("%w: left=%d right=%d", ErrLengthMismatch, len(left), len(right))
	}
	for ch, in := range inputs {
		if len(in) != n {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrLengthMismatch, ch, len(in), n)
		}
	}
	return nil
}
