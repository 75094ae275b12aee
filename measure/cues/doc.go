// Package cues measures the interaural cues carried by an HRIR pair.
//
// The analyzer reports:
//
//   - EnergyLeft, EnergyRight: sum of squared samples per ear
//   - ILD: broadband interaural level difference, left over right, in dB
//   - HighBandILD: level difference above 1.5 kHz, where head shadowing dominates
//   - ITD: interaural time difference from the cross-correlation peak,
//     positive when the left ear leads
//   - PeakLeft, PeakRight: sample index of each ear's absolute maximum
//
// # Usage
//
//	analyzer := cues.NewAnalyzer(44100)
//	m, err := analyzer.Analyze(pair.Left[:], pair.Right[:])
//	fmt.Printf("ILD = %.1f dB, ITD = %.0f µs\n", m.ILD, m.ITD*1e6)
package cues
