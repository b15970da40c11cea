// Package sampler draws points uniformly from the square [-1, 1]² and tags
// each one with whether it lies inside a circle of fixed radius centred on
// the origin.
//
// A Sampler is a pull interface over an injected Source: every call to Next
// is independent of the previous ones, and the sequence never ends on its
// own. The only failure is the Source running dry, which callers must treat
// as fatal.
//
// A Sampler is not safe for concurrent use; it is owned by the single frame
// loop that drives it.
package sampler
