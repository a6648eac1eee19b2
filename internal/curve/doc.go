// Package curve provides the keyframe sample type and the primitives the
// merge policies are built from.
//
// A curve is a []Sample sorted ascending by time, interpreted as a
// piecewise-linear function. The package evaluates linear interpolations
// between bracketing samples and extracts the overlap region between a
// committed curve and an incoming one.
//
// Key responsibilities:
//   - Locate the pair of samples bracketing an arbitrary query time
//   - Interpolate a curve's value at times between its samples
//   - Extract the suffix of a committed curve that an incoming curve overlaps
package curve
