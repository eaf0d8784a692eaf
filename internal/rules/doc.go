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

// Package rules holds the litguard rule catalogue.
//
// A [Rule] is an immutable, stateless predicate over the normalized view of a
// collection literal ([Expression]). A [Set] is the ordered selection of enabled
// rules used for one analyzer configuration; it is built once and shared read-only.
//
// The catalogue, in declaration order:
//
//	LG001  literal    every collection literal
//	LG002  elements   more than MaxElements elements (default 3)
//	LG003  length     source text longer than MaxLength characters (default 12)
//	LG004  multiline  opening and closing brace on different lines
//	LG005  nonempty   any element at all (disabled by default)
//
// Rules are independent: every enabled rule is evaluated for every literal, and
// all that fire are reported.
package rules
