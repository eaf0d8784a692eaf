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

package rules

import (
	"fmt"
	"iter"
	"slices"
)

// Set is an immutable, ordered selection of rules.
type Set struct {
	rules []Rule
}

// NewSet returns the rules of the [Catalogue] for which enabled returns true.
// A nil enabled function selects all rules.
func NewSet(t Thresholds, enabled func(id ID) bool) *Set {
	rules := Catalogue(t)
	if enabled != nil {
		rules = slices.DeleteFunc(rules, func(r Rule) bool { return !enabled(r.id) })
	}

	return &Set{rules: slices.Clip(rules)}
}

// All enumerates the rules of the set in declaration order.
func (s *Set) All() iter.Seq[Rule] {
	return slices.Values(s.rules)
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Evaluate runs every rule of the set against e and returns the firing ones
// in declaration order.
//
// Evaluate panics on an invalid [Expression], which indicates a bug in the caller.
func (s *Set) Evaluate(e Expression) []Rule {
	if !e.Valid() {
		panic(fmt.Sprintf("litguard: invalid expression view %+v", e))
	}

	var firing []Rule

	for _, r := range s.rules {
		if r.fires(e) {
			firing = append(firing, r)
		}
	}

	return firing
}
