// Package reduce selects, for each target azimuth, the closest measurement in
// a dense HRIR set and extracts its responses at a fixed length.
//
// The search works on the horizontal plane. Candidates are scored with
//
//	score = azimuthDiff² + (2·elevationDiff)²
//
// where azimuthDiff is the shortest angular distance on the circle and
// elevationDiff the distance from 0°. Doubling the elevation term biases the
// choice toward on-plane measurements. The lowest score wins and ties go to
// the earliest measurement.
//
// # Usage
//
//	red, err := reduce.Reduce(measurements, reduce.DefaultTargets())
//	if err != nil {
//		return err
//	}
//	table, err := red.Table(44100)
//
// Configuration problems (no measurements, duplicate target names, malformed
// waveforms, an output length the renderer cannot hold) abort the whole
// reduction with a [*ConfigError].
package reduce
