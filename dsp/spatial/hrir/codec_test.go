package hrir

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"testing"
)

func TestTableRoundTrip(t *testing.T) {
	table := mustTable(t)

	var buf bytes.Buffer
	if err := WriteTable(&buf, table); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	if buf.Len() != tableSize {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), tableSize)
	}

	got, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if got.SampleRate() != table.SampleRate() {
		t.Fatalf("SampleRate() = %d, want %d", got.SampleRate(), table.SampleRate())
	}
	for _, d := range Directions() {
		if *got.Pair(d).Left != *table.Pair(d).Left || *got.Pair(d).Right != *table.Pair(d).Right {
			t.Errorf("%s responses differ after round trip", d)
		}
	}
}

// reseal recomputes the trailing checksum after a deliberate edit.
func reseal(data []byte) {
	body := data[:len(data)-4]
	binary.LittleEndian.PutUint32(data[len(data)-4:], crc32.ChecksumIEEE(body))
}

func TestUnmarshalTableRejectsCorruption(t *testing.T) {
	good, err := mustTable(t).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		want   error
	}{
		{"short", func(b []byte) []byte { return b[:10] }, ErrFormat},
		{"magic", func(b []byte) []byte { b[0] = 'X'; return b }, ErrFormat},
		{"version", func(b []byte) []byte { b[4] = 9; reseal(b); return b }, ErrFormat},
		{"directions", func(b []byte) []byte { b[6] = 7; reseal(b); return b }, ErrFormat},
		{"length", func(b []byte) []byte { b[8] = 0; b[9] = 2; reseal(b); return b }, ErrBufferLength},
		{"truncated", func(b []byte) []byte { return b[:len(b)-100] }, ErrFormat},
		{"trailing", func(b []byte) []byte { return append(b, 0) }, ErrFormat},
		{"sample flipped", func(b []byte) []byte { b[headerSize+10] ^= 0xff; return b }, ErrChecksum},
		{"duplicate tag", func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[headerSize+entrySize:], 0)
			reseal(b)
			return b
		}, ErrDuplicate},
		{"zero sample rate", func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[12:], 0)
			reseal(b)
			return b
		}, ErrSampleRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(append([]byte(nil), good...))
			if _, err := UnmarshalTable(data); !errors.Is(err, tt.want) {
				t.Fatalf("UnmarshalTable() error = %v, want %v", err, tt.want)
			}
		})
	}
}
