// Package binaural renders signals to headphones with HRIR filter pairs.
//
// Included processors:
//   - Panner: streaming mono-to-binaural FIR for one source azimuth.
//   - SurroundDecoder: 5.1 / 7.1 channel beds through virtual speakers.
//   - AmbisonicDecoder: first to third order ACN/SN3D streams through an
//     eight speaker horizontal ring with max-rE weighting.
//   - MatrixDecoder: a stateless gain matrix from ambisonics to two ears.
//   - Convolver: offline FFT overlap-add rendering of whole signals.
//
// Panner, SurroundDecoder and AmbisonicDecoder allocate only at construction;
// their per-sample paths are safe to run on an audio callback. Changing the azimuth switches
// filter pairs immediately, without crossfading.
package binaural
