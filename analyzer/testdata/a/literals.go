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

package a

type point struct{ x, y int }

func sizes() {
	_ = []int{}               // want "LG001"
	_ = []int{1, 2, 3}        // want "LG001"
	_ = []int{1, 2, 3, 4}     // want "LG001" "LG002"
	_ = []int{10, 20, 30, 40} // want "LG001" "LG002" "LG003"
	_ = []int64{123456789}    // want "LG001"
	_ = []int64{1234567890}   // want "LG001"
	_ = []int64{12345678901}  // want "LG001" "LG003"
	_ = []int{ /* empty */ }  // want "LG001" "LG003"
}

func kinds() {
	_ = [...]string{"a", "b", "c", "d"} // want "LG001" "LG002" "LG003"
	_ = [2]int{}                        // want "LG001"
	_ = map[string]int{"a": 1}          // want "LG001"
	_ = map[int]int{1: 2, 3: 4}         // want "LG001"
	_ = point{1, 2}
	_ = &point{x: 1, y: 2}
	_ = make([]int, 3)
}

func nested() {
	_ = [][]int{{1}, {2, 3}} // want "LG001" "LG003" "LG001" "LG001"
	_ = []*point{{1, 2}}     // want "LG001"
	_ = []*[]int{{}}         // want "LG001" "LG001"
}

func multiline() {
	_ = []int{ // want "LG001" "LG003" "LG004"
		1, 2,
	}

	_ = /* want "LG001" "LG004" */ []int{1,
		2}
}

func nolint() {
	_ = []int{1, 2, 3, 4, 5, 6} //nolint:litguard
	_ = []int{1, 2, 3, 4, 5, 6} //nolint:all
	_ = []int{ /* inner */ 1, 2, 3, 4} //nolint:litguard
}

func generic[S ~[]E, E any](e E) S {
	return S{e} // want "LG001"
}

var table = map[string]int{"one": 1} // want "LG001"
