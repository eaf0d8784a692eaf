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

package suppress

var before = []int{1} // want "LG001"

//litguard:disable LG001
var disabled = []int{1}

var stillReported = []int{1, 2, 3, 4} // want "LG002"

//litguard:disable elements
var bothDisabled = []int{1, 2, 3, 4}

//litguard:enable
var after = []int{1, 2, 3, 4} // want "LG001" "LG002"

//litguard:disable LG009 // want `Unknown rule "LG009" in litguard directive`
var unknown = []int{} // want "LG001"
