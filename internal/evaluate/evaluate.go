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

// Package evaluate builds the normalized view of a collection literal and runs the rule set against it.
package evaluate

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/litguard/internal/astutil"
	"fillmore-labs.com/litguard/internal/rules"
)

// ErrInvalidView is returned when a literal has no consistent source span.
var ErrInvalidView = errors.New("invalid literal view")

// Finding is a rule firing for a literal. The span covers the literal's braces.
type Finding struct {
	Rule     rules.Rule
	Pos, End token.Pos
}

// Evaluator runs a rule set against collection literals.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	rules *rules.Set
}

// New creates an [Evaluator] for the given rule set.
func New(set *rules.Set) Evaluator {
	return Evaluator{rules: set}
}

// View returns the normalized view of lit. lit must be a node of file.
func View(file astutil.CurrentFile, lit *ast.CompositeLit) rules.Expression {
	return rules.Expression{
		Elements:   len(lit.Elts),
		TextLength: file.TextLength(lit.Lbrace, lit.Rbrace+1),
		StartLine:  file.Line(lit.Lbrace),
		EndLine:    file.Line(lit.Rbrace),
	}
}

// Evaluate runs all rules against lit and returns the findings in rule order.
// The caller is responsible for lit being a collection literal.
func (e Evaluator) Evaluate(file astutil.CurrentFile, lit *ast.CompositeLit) ([]Finding, error) {
	if !lit.Lbrace.IsValid() || !lit.Rbrace.IsValid() {
		return nil, fmt.Errorf("literal without braces: %w", ErrInvalidView)
	}

	view := View(file, lit)
	if !view.Valid() {
		return nil, fmt.Errorf("%+v: %w", view, ErrInvalidView)
	}

	firing := e.rules.Evaluate(view)

	pos, end := lit.Lbrace, lit.Rbrace+1

	findings := make([]Finding, 0, len(firing))
	for _, r := range firing {
		findings = append(findings, Finding{Rule: r, Pos: pos, End: end})
	}

	return findings, nil
}
