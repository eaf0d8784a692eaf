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

import "fmt"

// Default thresholds.
const (
	// DefaultMaxElements is the maximum number of elements not reported by [Elements].
	DefaultMaxElements = 3

	// DefaultMaxLength is the maximum text length not reported by [Length].
	DefaultMaxLength = 12
)

// Thresholds configures the rules with a numeric limit.
type Thresholds struct {
	// MaxElements is the largest element count allowed by [Elements].
	MaxElements int

	// MaxLength is the largest text length allowed by [Length].
	MaxLength int
}

// DefaultThresholds returns the default [Thresholds].
func DefaultThresholds() Thresholds {
	return Thresholds{MaxElements: DefaultMaxElements, MaxLength: DefaultMaxLength}
}

// Rule is a single diagnostic rule. The zero value is not usable, use [Catalogue].
type Rule struct {
	id      ID
	title   string
	message string
	fires   func(e Expression) bool
}

// ID returns the rule's identifier.
func (r Rule) ID() ID { return r.id }

// Title returns a short description of what the rule disallows.
func (r Rule) Title() string { return r.title }

// Message returns the diagnostic message.
func (r Rule) Message() string { return r.message }

// Fires reports whether the rule applies to e.
func (r Rule) Fires(e Expression) bool { return r.fires(e) }

// Catalogue returns every rule configured with t, in declaration order.
func Catalogue(t Thresholds) []Rule {
	maxElements, maxLength := t.MaxElements, t.MaxLength

	return []Rule{
		newRule(Literal,
			"Collection literals are disallowed",
			"Collection literals are not allowed",
			func(Expression) bool { return true }),

		newRule(Elements,
			fmt.Sprintf("Collection literals with more than %d elements are disallowed", maxElements),
			fmt.Sprintf("Collection literal must have at most %d elements", maxElements),
			func(e Expression) bool { return e.Elements > maxElements }),

		newRule(Length,
			fmt.Sprintf("Collection literals longer than %d characters are disallowed", maxLength),
			fmt.Sprintf("Collection literal text length must be %d or fewer characters", maxLength),
			func(e Expression) bool { return e.TextLength > maxLength }),

		newRule(Multiline,
			"Multiline collection literals are disallowed",
			"Collection literal must not span multiple lines",
			Expression.Multiline),

		newRule(NonEmpty,
			"Non-empty collection literals are disallowed",
			"Collection literal must be empty",
			func(e Expression) bool { return e.Elements > 0 }),
	}
}

func newRule(id ID, title, message string, fires func(Expression) bool) Rule {
	return Rule{
		id:      id,
		title:   title,
		message: message + " (" + id.String() + ")",
		fires:   fires,
	}
}
