// Package merge implements the overlap-resolution policies that combine a
// committed keyframe curve with an incoming one.
//
// Every policy takes the committed sequence and the incoming sequence, both
// sorted ascending by time with the committed curve starting no later than
// the incoming one, and returns a freshly built merged sequence, also
// ascending. Input slices are never modified; after a merge the returned
// sequence is the sole source of truth for the curve. Callers typically
// chain merges, feeding each result back in as the next committed curve.
//
// Key responsibilities:
//   - Resolve the overlapping time region per policy (sum, clamp, keep,
//     displace, crossfade, or trim)
//   - Stitch the two sequences back into one ascending sequence, stable on
//     time ties (committed samples come first)
//   - Degrade to a plain sorted merge whenever the overlap is empty
package merge
