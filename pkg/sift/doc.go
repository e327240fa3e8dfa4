// Package sift implements scale-invariant keypoint detection and
// description: Gaussian scale-space pyramid construction, difference-of-
// Gaussians extrema detection, sub-pixel/sub-scale refinement, dominant
// orientation assignment, and 128-dimensional gradient descriptor
// construction.
package sift
