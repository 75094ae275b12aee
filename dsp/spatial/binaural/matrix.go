package binaural

import (
	"fmt"
	"math"
)

// Ear gains per ACN channel for the matrix decoder, before the 1/√2 scale.
// The right row mirrors the left one with every sin(m·az) harmonic negated.
var matrixLeft = [MaxOrder + 1][]float64{
	1: {0.5, 0.5, 0.1, 0.35},
	2: {0.45, 0.45, 0.09, 0.32, 0.25, 0.08, 0.05, 0.08, 0.15},
	3: {0.42, 0.42, 0.08, 0.30, 0.22, 0.07, 0.04, 0.07, 0.13, 0.15, 0.10, 0.05, 0.03, 0.05, 0.10, 0.10},
}

// MatrixDecoder folds an ambisonic stream straight to two ears with a fixed
// gain matrix. It has no filter state and no HRIR cues, which makes it a
// cheap fallback for previews and low-power paths.
type MatrixDecoder struct {
	order    int
	channels int
	left     [maxAmbiChannels]float32
	right    [maxAmbiChannels]float32
}

// NewMatrixDecoder creates a matrix decoder for order 1 to 3.
func NewMatrixDecoder(order int) (*MatrixDecoder, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	d := &MatrixDecoder{order: order, channels: AmbisonicChannels(order)}
	scale := 1 / math.Sqrt2
	for ch, g := range matrixLeft[order] {
		d.left[ch] = float32(g * scale)
		d.right[ch] = d.left[ch]
		if antisymmetric(ch) {
			d.right[ch] = -d.left[ch]
		}
	}
	return d, nil
}

// antisymmetric reports whether ACN channel ch changes sign when the sound
// field is mirrored left to right, which holds for the sin(m·az) terms.
func antisymmetric(ch int) bool {
	l := acnDegree(ch)
	return ch-l*l < l
}

// Order returns the ambisonic order.
func (d *MatrixDecoder) Order() int {
	return d.order
}

// Channels returns the number of input channels.
func (d *MatrixDecoder) Channels() int {
	return d.channels
}

// ProcessFrame decodes one sample per ambisonic channel.
func (d *MatrixDecoder) ProcessFrame(frame []float32) (left, right float32, err error) {
	if len(frame) != d.channels {
		return 0, 0, fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(frame), d.channels)
	}
	left, right = d.processFrame(frame)
	return left, right, nil
}

func (d *MatrixDecoder) processFrame(frame []float32) (float32, float32) {
	var l, r float32
	for ch, x := range frame {
		l += x * d.left[ch]
		r += x * d.right[ch]
	}
	return l, r
}

// ProcessBlock decodes planar ambisonic channels into left and right.
func (d *MatrixDecoder) ProcessBlock(inputs [][]float32, left, right []float32) error {
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
