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

import "errors"

// ErrDomain is returned (wrapped) when an argument has no sensible answer:
// a rank outside [0, n-1], a nil sequence passed to selection, or fewer than
// two points passed to closest pair. It is always raised before any counting
// or mutation takes place.
var ErrDomain = errors.New("dnc: domain error")
