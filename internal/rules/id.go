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
	"iter"
	"strings"
)

// ID identifies a rule of the catalogue. The string form is the stable rule code.
type ID uint8

//go:generate go tool stringer -type ID -linecomment
const (
	// Literal reports every collection literal.
	Literal ID = iota // LG001

	// Elements reports collection literals with too many elements.
	Elements // LG002

	// Length reports collection literals with too long source text.
	Length // LG003

	// Multiline reports collection literals spanning more than one line.
	Multiline // LG004

	// NonEmpty reports collection literals with any element.
	NonEmpty // LG005

	numIDs = iota
)

// IDs enumerates all rule IDs in declaration order.
func IDs() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for id := range ID(numIDs) {
			if !yield(id) {
				return
			}
		}
	}
}

// Name returns the short configuration name of the rule.
func (i ID) Name() string {
	switch i {
	case Literal:
		return "literal"

	case Elements:
		return "elements"

	case Length:
		return "length"

	case Multiline:
		return "multiline"

	case NonEmpty:
		return "nonempty"

	default:
		return i.String()
	}
}

// ParseID resolves a rule code ("LG002") or name ("elements"), ignoring case.
func ParseID(s string) (ID, bool) {
	s = strings.TrimSpace(s)

	for id := range IDs() {
		if strings.EqualFold(s, id.String()) || strings.EqualFold(s, id.Name()) {
			return id, true
		}
	}

	return 0, false
}
