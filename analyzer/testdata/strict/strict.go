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

package strict

func strict() {
	_ = []int{}                            // want "LG001"
	_ = []int{1}                           // want "LG001" "LG005"
	_ = []int{10, 20, 30, 40}              // want "LG001" "LG002" "LG005"
	_ = []string{"a", "bb", "ccc", "dddd"} // want "LG001" "LG002" "LG003" "LG005"
	_ = []int{ // want "LG001" "LG003" "LG005"
		1,
	}
}
