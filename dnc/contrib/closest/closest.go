// Copyright 2025 go-divconq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package closest

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/ajroetker/go-divconq/dnc"
)

// bruteForceThreshold: ranges this size or smaller are solved pairwise.
const bruteForceThreshold = 3

// Find returns the closest pair among points.
func Find(points []Point) (Pair, error) {
	return FindWithCounters(points, nil)
}

// FindWithCounters is Find recording its work in c. The x- and y-orderings
// and the x-rank table count as 3n allocations; each recursive level counts
// its split and strip storage.
func FindWithCounters(points []Point, c *dnc.Counters) (Pair, error) {
	n := len(points)
	if n < 2 {
		return Pair{}, fmt.Errorf("%w: closest pair needs at least 2 points, got %d", dnc.ErrDomain, n)
	}

	c.Start()
	defer c.Stop()

	// Points are handled by index so coincident points stay distinct.
	byX := make([]int, n)
	byY := make([]int, n)
	for i := range n {
		byX[i] = i
		byY[i] = i
	}
	slices.SortStableFunc(byX, func(a, b int) int { return cmp.Compare(points[a].X, points[b].X) })
	slices.SortStableFunc(byY, func(a, b int) int { return cmp.Compare(points[a].Y, points[b].Y) })

	rank := make([]int, n)
	for pos, i := range byX {
		rank[i] = pos
	}
	c.AddAllocations(3 * int64(n))
	c.AddArrayAccesses(4 * int64(n))

	s := solver{points: points, byX: byX, rank: rank, c: c}
	return s.solve(0, n-1, byY), nil
}

// BruteForce returns the closest pair by checking every pair. It is the
// reference the divide-and-conquer result is measured against.
func BruteForce(points []Point) (Pair, error) {
	n := len(points)
	if n < 2 {
		return Pair{}, fmt.Errorf("%w: closest pair needs at least 2 points, got %d", dnc.ErrDomain, n)
	}
	best := NewPair(points[0], points[1])
	for i := range n {
		for j := i + 1; j < n; j++ {
			if d := points[i].DistanceTo(points[j]); d < best.distance {
				best = NewPair(points[i], points[j])
			}
		}
	}
	return best, nil
}

type solver struct {
	points []Point
	byX    []int // point indices ordered by x
	rank   []int // rank[i] is the position of point i in byX
	c      *dnc.Counters
}

func (s *solver) at(i int) Point {
	return s.points[i]
}

// solve returns the closest pair among byX[left..right]; ys holds the same
// point indices ordered by y.
func (s *solver) solve(left, right int, ys []int) Pair {
	n := right - left + 1
	if n <= bruteForceThreshold {
		return s.bruteForce(left, right)
	}

	s.c.EnterRecursion()
	defer s.c.ExitRecursion()

	mid := left + (right-left)/2
	midX := s.at(s.byX[mid]).X

	// Splitting on x-rank rather than raw x keeps the halves exact when
	// several points share the midpoint's x.
	leftYs := make([]int, 0, mid-left+1)
	rightYs := make([]int, 0, right-mid)
	for _, i := range ys {
		s.c.Compare(1)
		if s.rank[i] <= mid {
			leftYs = append(leftYs, i)
		} else {
			rightYs = append(rightYs, i)
		}
	}
	s.c.AddAllocations(int64(n))
	s.c.AddArrayAccesses(int64(n))

	best := s.solve(left, mid, leftYs)
	if rp := s.solve(mid+1, right, rightYs); rp.distance < best.distance {
		best = rp
	}

	strip := make([]int, 0, n)
	for _, i := range ys {
		s.c.Compare(1)
		if math.Abs(s.at(i).X-midX) < best.distance {
			strip = append(strip, i)
		}
	}
	s.c.AddAllocations(int64(n))
	s.c.AddArrayAccesses(int64(len(strip)))

	if sp, ok := s.stripClosest(strip, best.distance); ok {
		best = sp
	}
	return best
}

// stripClosest scans a y-ordered strip for a pair closer than d. Each point
// is compared only with successors whose y-gap is below the best distance
// found so far.
func (s *solver) stripClosest(strip []int, d float64) (Pair, bool) {
	var best Pair
	found := false
	for i := range strip {
		pi := s.at(strip[i])
		for j := i + 1; j < len(strip); j++ {
			pj := s.at(strip[j])
			if pj.Y-pi.Y >= d {
				break
			}
			s.c.Compare(4)
			if dist := pi.DistanceTo(pj); dist < d {
				d = dist
				best = NewPair(pi, pj)
				found = true
			}
		}
	}
	return best, found
}

func (s *solver) bruteForce(left, right int) Pair {
	best := Pair{distance: math.Inf(1)}
	for i := left; i <= right; i++ {
		pi := s.at(s.byX[i])
		for j := i + 1; j <= right; j++ {
			pj := s.at(s.byX[j])
			s.c.Compare(4)
			if dist := pi.DistanceTo(pj); dist < best.distance {
				best = NewPair(pi, pj)
			}
		}
	}
	return best
}
