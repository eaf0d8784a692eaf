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

package gclplugin

import litguard "fillmore-labs.com/litguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Literal enables reporting every collection literal.
	Literal *bool `json:"literal,omitzero"`
	// Elements enables reporting literals with too many elements.
	Elements *bool `json:"elements,omitzero"`
	// Length enables reporting literals with too long text.
	Length *bool `json:"length,omitzero"`
	// Multiline enables reporting multiline literals.
	Multiline *bool `json:"multiline,omitzero"`
	// NonEmpty enables reporting every non-empty literal.
	NonEmpty *bool `json:"nonempty,omitzero"`
	// MaxElements sets the maximum number of elements of a literal.
	MaxElements *int `json:"max-elements,omitzero"`
	// MaxLength sets the maximum text length of a literal.
	MaxLength *int `json:"max-length,omitzero"`
}

// Options converts [Settings] into a list of [litguard.Option] for the litguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []litguard.Option {
	var opts []litguard.Option

	opts = appendOption(opts, s.Literal, litguard.WithLiteral)
	opts = appendOption(opts, s.Elements, litguard.WithElements)
	opts = appendOption(opts, s.Length, litguard.WithLength)
	opts = appendOption(opts, s.Multiline, litguard.WithMultiline)
	opts = appendOption(opts, s.NonEmpty, litguard.WithNonEmpty)
	opts = appendOption(opts, s.MaxElements, litguard.WithMaxElements)
	opts = appendOption(opts, s.MaxLength, litguard.WithMaxLength)

	return opts
}

// appendOption appends a non-nil setting to a [litguard.Option] list.
func appendOption[T any](opts []litguard.Option, value *T, constructor func(T) litguard.Option) []litguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
