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

// Package analyzer implements the litguard static analysis pass.
//
// # Overview
//
// litguard reports composite literals of slice, array and map type, including
// nested literals with elided types. Each literal is measured by its number of
// elements, the character length of its source text from the opening to the
// closing brace, and the lines its braces are on.
//
// # Rules
//
//	LG001  literal    every collection literal
//	LG002  elements   more than -max-elements elements (default 3)
//	LG003  length     text longer than -max-length characters (default 12)
//	LG004  multiline  braces on different lines
//	LG005  nonempty   any element at all (disabled by default)
//
// Every enabled rule is checked for every literal, so a single literal can be
// reported by several rules:
//
//	values := []int{10, 20, 30, 40} // LG001, LG002, LG003
//
// # Suppression
//
// Besides //nolint:litguard comments, rules can be disabled for a region:
//
//	//litguard:disable LG001,multiline
//	var table = []string{
//	    "a",
//	}
//	//litguard:enable
//
// # Configuration
//
// Rules and thresholds are configured with [Option]s, command line flags or a
// YAML file passed with -config:
//
//	max-elements: 5
//	rules:
//	  literal: false
//	  nonempty: true
package analyzer
