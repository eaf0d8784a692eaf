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

// Package suppress tracks source regions where rules are disabled by directive comments.
//
//	//litguard:disable              disables all rules from this line on
//	//litguard:disable LG002,length disables the listed rules
//	//litguard:enable [rules]       re-enables rules from this line on
//
// Rules are referenced by code or name. Suppression is applied to findings after
// evaluation and never influences rule predicates.
package suppress

import (
	"fmt"
	"go/ast"
	"math"
	"strings"

	"fillmore-labs.com/litguard/internal/astutil"
	"fillmore-labs.com/litguard/internal/rules"
)

const directivePrefix = "//litguard:"

// lineRange is a half-open range of lines.
type lineRange struct{ from, to int }

// Regions records the disabled line ranges of one file per rule.
type Regions struct {
	disabled map[rules.ID][]lineRange
}

// Problem is a malformed directive.
type Problem struct {
	Comment *ast.Comment
	Message string
}

// Scan collects the suppression directives of file.
func Scan(file astutil.CurrentFile) (Regions, []Problem) {
	s := scanner{
		file:   file,
		open:   make(map[rules.ID]int),
		ranges: make(map[rules.ID][]lineRange),
	}

	if f := file.File(); f != nil {
		for _, group := range f.Comments {
			for _, comment := range group.List {
				s.comment(comment)
			}
		}
	}

	for id, from := range s.open {
		s.ranges[id] = append(s.ranges[id], lineRange{from, math.MaxInt})
	}

	return Regions{disabled: s.ranges}, s.problems
}

// Suppressed reports whether rule id is disabled on line.
func (r Regions) Suppressed(id rules.ID, line int) bool {
	for _, rng := range r.disabled[id] {
		if rng.from <= line && line < rng.to {
			return true
		}
	}

	return false
}

type scanner struct {
	file     astutil.CurrentFile
	open     map[rules.ID]int
	ranges   map[rules.ID][]lineRange
	problems []Problem
}

func (s *scanner) comment(comment *ast.Comment) {
	directive, ok := strings.CutPrefix(comment.Text, directivePrefix)
	if !ok {
		return
	}

	verb, args, _ := strings.Cut(directive, " ")

	var disable bool
	switch verb {
	case "disable":
		disable = true

	case "enable":
		disable = false

	default:
		s.problem(comment, "Unknown litguard directive %q", verb)

		return
	}

	ids, ok := s.parseIDs(comment, args)
	if !ok {
		return
	}

	line := s.file.Line(comment.Pos())
	for _, id := range ids {
		from, open := s.open[id]

		switch {
		case disable && !open:
			s.open[id] = line

		case !disable && open:
			delete(s.open, id)
			s.ranges[id] = append(s.ranges[id], lineRange{from, line})
		}
	}
}

func (s *scanner) parseIDs(comment *ast.Comment, args string) ([]rules.ID, bool) {
	args, _, _ = strings.Cut(args, "//") // trailing comment
	fields := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })

	if len(fields) == 0 {
		var all []rules.ID
		for id := range rules.IDs() {
			all = append(all, id)
		}

		return all, true
	}

	ids := make([]rules.ID, 0, len(fields))
	for _, field := range fields {
		id, ok := rules.ParseID(field)
		if !ok {
			s.problem(comment, "Unknown rule %q in litguard directive", field)

			return nil, false
		}

		ids = append(ids, id)
	}

	return ids, true
}

func (s *scanner) problem(comment *ast.Comment, format string, args ...any) {
	s.problems = append(s.problems, Problem{Comment: comment, Message: fmt.Sprintf(format, args...)})
}
