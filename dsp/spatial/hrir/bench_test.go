package hrir

import "testing"

var benchSink FilterPair

func BenchmarkForAzimuth(b *testing.B) {
	table := Default()
	b.ReportAllocs()
	for i := range b.N {
		benchSink = table.ForAzimuth(float64(i%720) - 360.5)
	}
}

func BenchmarkClassify(b *testing.B) {
	var d Direction
	for i := range b.N {
		d, _ = Classify(float64(i%720) - 360.5)
	}
	_ = d
}
