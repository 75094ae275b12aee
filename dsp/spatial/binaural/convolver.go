package binaural

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
)

// ErrEmptyInput is returned when there is nothing to render.
var ErrEmptyInput = errors.New("binaural: empty input")

// Convolver renders whole signals with one filter pair using FFT
// overlap-add. Each block is transformed once and multiplied by both ear
// spectra.
type Convolver struct {
	blockSize int
	fftSize   int

	plan     *algofft.Plan[complex128]
	leftFFT  []complex128
	rightFFT []complex128

	block   []complex128
	scratch []complex128
}

// NewConvolver prepares the spectra of pair.
func NewConvolver(pair hrir.FilterPair) (*Convolver, error) {
	blockSize := hrir.Length
	fftSize := nextPowerOf2(blockSize + hrir.Length - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("binaural: failed to create FFT plan: %w", err)
	}

	c := &Convolver{
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		leftFFT:   make([]complex128, fftSize),
		rightFFT:  make([]complex128, fftSize),
		block:     make([]complex128, fftSize),
		scratch:   make([]complex128, fftSize),
	}
	if err := c.kernelSpectrum(c.leftFFT, pair.Left); err != nil {
		return nil, err
	}
	if err := c.kernelSpectrum(c.rightFFT, pair.Right); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Convolver) kernelSpectrum(dst []complex128, kernel *hrir.Buffer) error {
	padded := make([]complex128, c.fftSize)
	for i, v := range kernel {
		padded[i] = complex(float64(v), 0)
	}
	if err := c.plan.Forward(dst, padded); err != nil {
		return fmt.Errorf("binaural: failed to compute kernel FFT: %w", err)
	}
	return nil
}

// Process returns the full linear convolution of signal with both ears,
// each of length len(signal) + hrir.Length - 1.
func (c *Convolver) Process(signal []float64) (left, right []float64, err error) {
	if len(signal) == 0 {
		return nil, nil, ErrEmptyInput
	}

	outputLen := len(signal) + hrir.Length - 1
	left = make([]float64, outputLen)
	right = make([]float64, outputLen)

	for start := 0; start < len(signal); start += c.blockSize {
		end := min(start+c.blockSize, len(signal))

		for i := range c.block {
			c.block[i] = 0
		}
		for i := start; i < end; i++ {
			c.block[i-start] = complex(signal[i], 0)
		}
		if err := c.plan.Forward(c.block, c.block); err != nil {
			return nil, nil, fmt.Errorf("binaural: forward FFT failed: %w", err)
		}

		resultLen := end - start + hrir.Length - 1
		if err := c.accumulate(left[start:], c.leftFFT, resultLen); err != nil {
			return nil, nil, err
		}
		if err := c.accumulate(right[start:], c.rightFFT, resultLen); err != nil {
			return nil, nil, err
		}
	}
	return left, right, nil
}

func (c *Convolver) accumulate(dst []float64, kernel []complex128, n int) error {
	for i := range c.scratch {
		c.scratch[i] = c.block[i] * kernel[i]
	}
	if err := c.plan.Inverse(c.scratch, c.scratch); err != nil {
		return fmt.Errorf("binaural: inverse FFT failed: %w", err)
	}
	for i := 0; i < n && i < len(dst); i++ {
		dst[i] += real(c.scratch[i])
	}
	return nil
}

// Render convolves signal with pair in one call.
func Render(signal []float64, pair hrir.FilterPair) (left, right []float64, err error) {
	c, err := NewConvolver(pair)
	if err != nil {
		return nil, nil, err
	}
	return c.Process(signal)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
