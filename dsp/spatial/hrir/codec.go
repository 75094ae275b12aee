package hrir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
)

// HRTB layout, little-endian:
//
//	magic "HRTB" | version u16 | directions u16 | length u32 | sample rate u32
//	directions × (tag u16 | left Length×f32 | right Length×f32)
//	crc32 (IEEE) of everything above
const (
	tableMagic   = "HRTB"
	tableVersion = 1

	headerSize = 4 + 2 + 2 + 4 + 4
	entrySize  = 2 + 2*Length*4
	tableSize  = headerSize + NumDirections*entrySize + 4
)

// MarshalBinary encodes t in the HRTB format.
func (t *Table) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, tableSize)
	buf = append(buf, tableMagic...)
	buf = binary.LittleEndian.AppendUint16(buf, tableVersion)
	buf = binary.LittleEndian.AppendUint16(buf, NumDirections)
	buf = binary.LittleEndian.AppendUint32(buf, Length)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(t.sampleRate))

	for d := range t.pairs {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(d))
		buf = appendSamples(buf, t.pairs[d].left[:])
		buf = appendSamples(buf, t.pairs[d].right[:])
	}

	return binary.LittleEndian.AppendUint32(buf, crc32.ChecksumIEEE(buf)), nil
}

// WriteTable writes t to w in the HRTB format.
func WriteTable(w io.Writer, t *Table) error {
	data, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("hrir: write table: %w", err)
	}
	return nil
}

// ReadTable decodes an HRTB table from r.
func ReadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(io.LimitReader(r, tableSize+1))
	if err != nil {
		return nil, fmt.Errorf("hrir: read table: %w", err)
	}
	return UnmarshalTable(data)
}

// UnmarshalTable decodes an HRTB table from data.
func UnmarshalTable(data []byte) (*Table, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrFormat, len(data))
	}
	if !bytes.Equal(data[:4], []byte(tableMagic)) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, data[:4])
	}

	le := binary.LittleEndian
	if v := le.Uint16(data[4:]); v != tableVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, v)
	}
	if n := le.Uint16(data[6:]); n != NumDirections {
		return nil, fmt.Errorf("%w: %d directions, want %d", ErrFormat, n, NumDirections)
	}
	if n := le.Uint32(data[8:]); n != Length {
		return nil, fmt.Errorf("%w: %d samples per response, want %d", ErrBufferLength, n, Length)
	}
	if len(data) != tableSize {
		return nil, fmt.Errorf("%w: size %d, want %d", ErrFormat, len(data), tableSize)
	}

	body := data[:tableSize-4]
	if got, want := crc32.ChecksumIEEE(body), le.Uint32(data[tableSize-4:]); got != want {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrChecksum, got, want)
	}

	sampleRate := int(le.Uint32(data[12:]))
	entries := make([]Entry, 0, NumDirections)
	off := headerSize
	for range NumDirections {
		e := Entry{
			Direction: Direction(le.Uint16(data[off:])),
			Left:      make([]float32, Length),
			Right:     make([]float32, Length),
		}
		off += 2
		off = readSamples(e.Left, data, off)
		off = readSamples(e.Right, data, off)
		entries = append(entries, e)
	}

	return NewTable(sampleRate, entries)
}

func appendSamples(buf []byte, samples []float32) []byte {
	for _, v := range samples {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

func readSamples(dst []float32, data []byte, off int) int {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
		off += 4
	}
	return off
}
