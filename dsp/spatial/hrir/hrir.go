package hrir

import "errors"

const (
	// Length is the number of samples in every impulse response buffer.
	Length = 256

	// MaxLength is the largest impulse response the binaural renderer accepts.
	MaxLength = 512

	// DefaultSampleRate is the sample rate of the embedded default table.
	DefaultSampleRate = 44100
)

// Length must fit the renderer's history buffers.
var _ [MaxLength - Length]struct{}

// Errors returned by table construction, decoding and classification.
var (
	ErrNonFiniteAzimuth = errors.New("hrir: azimuth is not finite")
	ErrBufferLength     = errors.New("hrir: impulse response length mismatch")
	ErrDirection        = errors.New("hrir: invalid direction")
	ErrMissingDirection = errors.New("hrir: table is missing a direction")
	ErrDuplicate        = errors.New("hrir: direction defined more than once")
	ErrSampleRate       = errors.New("hrir: sample rate must be positive")
	ErrFormat           = errors.New("hrir: malformed table data")
	ErrChecksum         = errors.New("hrir: table checksum mismatch")
)

// Buffer is one ear's impulse response.
type Buffer [Length]float32

// FilterPair holds the left and right ear responses for one direction.
// Both buffers point into the owning [Table].
type FilterPair struct {
	Left  *Buffer
	Right *Buffer
}

// Energy returns the sum of squared samples of b.
func (b *Buffer) Energy() float64 {
	var sum float64
	for _, v := range b {
		sum += float64(v) * float64(v)
	}
	return sum
}
