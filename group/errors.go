// Copyright © 2024 The ElectionGuard-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package group

import "errors"

var (
	// ErrInvalidArgument is returned for caller errors such as a negative
	// minimum passed to a safe conversion.
	ErrInvalidArgument = errors.New("group: invalid argument")
	// ErrOutOfRange is returned when a strict conversion is asked to
	// represent an integer that is >= the element's modulus.
	ErrOutOfRange = errors.New("group: value out of range")
	// ErrIncompatibleContext is returned when an operation mixes elements
	// from contexts with different Strength.
	ErrIncompatibleContext = errors.New("group: incompatible contexts")
	// ErrDomain signals an internal-invariant violation, e.g. inverting
	// zero. Callers should treat it as a bug, not an expected outcome.
	ErrDomain = errors.New("group: domain error")
)
