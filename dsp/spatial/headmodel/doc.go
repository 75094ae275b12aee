// Package headmodel synthesizes a dense HRIR measurement set from a rigid
// spherical head.
//
// Each ear response combines
//
//   - an interaural time difference from Woodworth's ray-tracing formula,
//   - an interaural level difference from the Brown–Duda head-shadow factor
//     α(ψ) = 1.05 + 0.95·cos(1.2ψ), where ψ is the angle between the source
//     and the ear axis,
//   - a pinna echo whose delay shrinks as the source rises and whose level
//     drops for sources behind the head,
//   - a short decaying resonance and a raised-cosine fade-out.
//
// The model is deterministic and implements reduce.Source, so it can stand
// in for a measured database when generating tables:
//
//	m, err := headmodel.New(headmodel.WithAzimuthStep(5))
//	red, err := reduce.ReduceSource(m, reduce.DefaultTargets())
package headmodel
