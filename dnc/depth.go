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

package dnc

import (
	"fmt"

	"go.uber.org/atomic"
)

// DepthTracker records the current and maximum recursion depth of a call
// tree. Enter and Exit must be paired on every exit path of a frame.
type DepthTracker struct {
	current atomic.Int32
	max     atomic.Int32
}

// Enter increments the current depth and returns it.
func (d *DepthTracker) Enter() int {
	if d == nil {
		return 0
	}
	depth := d.current.Inc()
	for {
		m := d.max.Load()
		if depth <= m || d.max.CompareAndSwap(m, depth) {
			break
		}
	}
	return int(depth)
}

// Exit decrements the current depth and returns it.
func (d *DepthTracker) Exit() int {
	if d == nil {
		return 0
	}
	return int(d.current.Dec())
}

// Current returns the number of frames currently active.
func (d *DepthTracker) Current() int {
	if d == nil {
		return 0
	}
	return int(d.current.Load())
}

// Max returns the deepest nesting seen since the last Reset.
func (d *DepthTracker) Max() int {
	if d == nil {
		return 0
	}
	return int(d.max.Load())
}

// Reset zeroes both depths.
func (d *DepthTracker) Reset() {
	if d == nil {
		return
	}
	d.current.Store(0)
	d.max.Store(0)
}

func (d *DepthTracker) String() string {
	return fmt.Sprintf("CurrentDepth: %d, MaxDepth: %d", d.Current(), d.Max())
}
