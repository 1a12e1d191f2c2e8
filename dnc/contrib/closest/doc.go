// Package closest finds the closest pair among a set of planar points with
// the O(n log n) divide-and-conquer algorithm.
//
// The points are ordered by x and by y once, up front. Each recursive step
// splits the x-ordering at its midpoint, splits the y-ordering to match in a
// single stable pass, solves both halves, and then scans the strip of points
// within the best distance so far of the dividing line. The strip scan stops
// for each point as soon as the y-gap reaches that distance.
//
// Ranges of three points or fewer are solved by brute force.
//
//	pair, err := closest.Find([]closest.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
//	// pair.Distance() == 1
//
// Coordinates may repeat; coincident points give a distance of 0.
package closest
