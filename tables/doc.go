// Package tables detects tabular structure on manifest pages.
//
// Manifests rarely draw gridlines; detection works from the positions of
// text tokens alone. Detection is performed by types implementing the
// [Detector] interface. The package provides:
//
//   - [AlignmentDetector] - clusters token X coordinates into columns
//
// Detectors are registered globally and can be retrieved by name:
//
//	detector := tables.GetDetector("alignment")
//	tbls, err := detector.Detect(page)
//
// # Alignment Detection
//
// The [AlignmentDetector] uses a multi-step algorithm:
//
//  1. Group tokens into visual rows
//  2. Split rows into blocks at large vertical gaps
//  3. Cluster token X positions into column starts
//  4. Assign tokens to cells by column
//  5. Score confidence from alignment quality
//
// # Configuration
//
// Detector behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.MinRows = 3
//	detector.Configure(config)
package tables
