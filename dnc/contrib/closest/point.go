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
	"fmt"
	"math"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(q))
}

// DistanceSquaredTo returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Pair is two points and the distance between them.
type Pair struct {
	p1, p2   Point
	distance float64
}

// NewPair returns the pair (p1, p2); its distance is p1.DistanceTo(p2).
func NewPair(p1, p2 Point) Pair {
	return Pair{p1: p1, p2: p2, distance: p1.DistanceTo(p2)}
}

func (p Pair) P1() Point         { return p.p1 }
func (p Pair) P2() Point         { return p.p2 }
func (p Pair) Distance() float64 { return p.distance }

func (p Pair) String() string {
	return fmt.Sprintf("Pair{%v, %v, distance=%g}", p.p1, p.p2, p.distance)
}
