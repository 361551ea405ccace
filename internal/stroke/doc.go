// Package stroke expands closed outlines into the filled outline of their
// stroke.
//
// Each contour is offset by half the stroke width to both sides. The left
// offset is emitted as one closed contour and the right offset as a second,
// reversed one, so filling the result with the nonzero winding rule covers
// exactly the band swept by the stroke.
//
// Curves are flattened before offsetting. Round joins are emitted as cubic
// arcs.
package stroke
