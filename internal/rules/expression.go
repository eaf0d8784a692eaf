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

// Expression is the normalized view of one collection literal.
type Expression struct {
	// Elements is the number of syntactic elements. A keyed element or a nested
	// literal counts as one.
	Elements int

	// TextLength is the number of characters of the verbatim source text between
	// and including the delimiters.
	TextLength int

	// StartLine and EndLine are the 1-based lines of the opening and closing delimiter.
	StartLine, EndLine int
}

// Multiline reports whether the delimiters are on different lines.
func (e Expression) Multiline() bool {
	return e.StartLine != e.EndLine
}

// Valid reports whether e describes a possible literal: an empty
// delimiter pair is at least two characters long and ends where it starts or later.
func (e Expression) Valid() bool {
	return e.Elements >= 0 && e.TextLength >= 2 && e.StartLine >= 1 && e.EndLine >= e.StartLine
}
