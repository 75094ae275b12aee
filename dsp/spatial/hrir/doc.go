// Package hrir serves precomputed head-related impulse response (HRIR)
// filter pairs for binaural rendering on the horizontal plane.
//
// A table stores eight canonical [Direction] pairs, but the azimuth circle is
// split into seven sectors. Six are 45° wide and centred on their direction.
// The rear sector covers everything outside [-157.5°, 112.5°), so the left
// half of the back hemisphere renders with the rear pair and [RearLeft] is
// only reachable through [Table.Pair]. A lookup normalises the azimuth, picks
// the sector and returns the [FilterPair] stored for it:
//
//	pair := hrir.ForAzimuth(-100) // right
//	left, right := pair.Left, pair.Right
//
// Azimuth follows the listener convention: 0° is straight ahead and positive
// angles turn to the listener's left.
//
// # Tables
//
// Filter pairs live in a [Table], a fixed arena indexed by [Direction]. The
// package embeds a default table generated offline by cmd/hrirgen (see the
// reduce subpackage); [ReadTable] loads other artifacts in the same HRTB
// format.
//
// Lookups never allocate, never lock and never fail for finite input. A table
// is immutable after construction, so one table can be shared by any number
// of audio goroutines. The returned buffers point into the table and must not
// be modified.
package hrir
