// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

// BitMask is a set of small enumeration values, stored as one bit per value.
// Only values below 64 can be represented.
type BitMask[T ~uint8] struct {
	value uint64
}

// NewBitMask creates a new typed [BitMask] instance with the specified values enabled.
func NewBitMask[T ~uint8](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set enables or disables the specified value.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable adds the value to the set.
func (b *BitMask[T]) Enable(flag T) {
	b.value |= 1 << flag
}

// Disable removes the value from the set.
func (b *BitMask[T]) Disable(flag T) {
	b.value &^= 1 << flag
}

// Enabled checks if the specified value is in the set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&(1<<flag) != 0
}
