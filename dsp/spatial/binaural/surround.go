package binaural

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
)

// Layout is a loudspeaker channel layout.
type Layout int

const (
	// Layout51 is ITU-R BS.775: L, R, C, LFE, Ls, Rs.
	Layout51 Layout = iota
	// Layout71 is ITU-R BS.2051: L, R, C, LFE, Ls, Rs, Lrs, Rrs.
	Layout71
)

const maxSpeakers = 8

// Speaker azimuths in channel order. LFE sits at the front so it reaches
// both ears equally.
var (
	azimuths51 = []float64{30, -30, 0, 0, 110, -110}
	azimuths71 = []float64{30, -30, 0, 0, 90, -90, 150, -150}
)

// Azimuths returns the speaker azimuths in channel order.
func (l Layout) Azimuths() []float64 {
	switch l {
	case Layout51:
		return append([]float64(nil), azimuths51...)
	case Layout71:
		return append([]float64(nil), azimuths71...)
	default:
		return nil
	}
}

// Channels returns the number of input channels.
func (l Layout) Channels() int {
	return len(l.Azimuths())
}

func (l Layout) String() string {
	switch l {
	case Layout51:
		return "5.1"
	case Layout71:
		return "7.1"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// SurroundDecoder renders a channel bed through one virtual speaker per
// channel and sums the result, scaled by 1/sqrt(channels) to keep headroom.
type SurroundDecoder struct {
	layout   Layout
	channels int
	norm     float32
	pairs    [maxSpeakers]hrir.FilterPair
	dirs     [maxSpeakers]hrir.Direction
	hist     [maxSpeakers]history
	pos      int
}

// NewSurroundDecoder creates a decoder for layout.
func NewSurroundDecoder(layout Layout, opts ...Option) (*SurroundDecoder, error) {
	azimuths := layout.Azimuths()
	if len(azimuths) == 0 {
		return nil, fmt.Errorf("binaural: unsupported surround layout: %s", layout)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	d := &SurroundDecoder{
		layout:   layout,
		channels: len(azimuths),
		norm:     float32(1 / math.Sqrt(float64(len(azimuths)))),
	}
	for i, az := range azimuths {
		d.dirs[i], _ = hrir.Classify(az)
		d.pairs[i] = cfg.table.Pair(d.dirs[i])
	}
	return d, nil
}

// Layout returns the decoder layout.
func (d *SurroundDecoder) Layout() Layout {
	return d.layout
}

// SpeakerDirection returns the canonical direction used for channel ch. It
// reports false when ch is not a channel of the layout.
func (d *SurroundDecoder) SpeakerDirection(ch int) (hrir.Direction, bool) {
	if ch < 0 || ch >= d.channels {
		return hrir.Fallback, false
	}
	return d.dirs[ch], true
}

// ProcessFrame renders one sample per channel.
func (d *SurroundDecoder) ProcessFrame(frame []float32) (left, right float32, err error) {
	if len(frame) != d.channels {
		return 0, 0, fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(frame), d.channels)
	}
	left, right = d.processFrame(frame)
	return left, right, nil
}

func (d *SurroundDecoder) processFrame(frame []float32) (float32, float32) {
	var l, r float32
	for ch := 0; ch < d.channels; ch++ {
		d.hist[ch].buf[d.pos] = frame[ch]
		cl, cr := d.hist[ch].convolve(d.pos, d.pairs[ch])
		l += cl
		r += cr
	}
	d.pos++
	if d.pos == hrir.Length {
		d.pos = 0
	}
	return l * d.norm, r * d.norm
}

// ProcessBlock renders planar channel buffers into left and right. All
// buffers must have the same length.
func (d *SurroundDecoder) ProcessBlock(inputs [][]float32, left, right []float32) error {
	if err := checkPlanar(inputs, d.channels, left, right); err != nil {
		return err
	}

	var frame [maxSpeakers]float32
	for i := range left {
		for ch := 0; ch < d.channels; ch++ {
			frame[ch] = inputs[ch][i]
		}
		left[i], right[i] = d.processFrame(frame[:d.channels])
	}
	return nil
}

// Reset clears all speaker histories.
func (d *SurroundDecoder) Reset() {
	for i := range d.hist {
		d.hist[i].reset()
	}
	d.pos = 0
}
