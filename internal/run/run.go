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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/litguard/internal/astutil"
	"fillmore-labs.com/litguard/internal/evaluate"
	"fillmore-labs.com/litguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the litguard analyzer on a package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("litguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LitGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	ev := evaluate.New(o.RuleSet())

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file, p.ReadFile)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Generated {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		checkFile(ctx, p, ev, currentFile, f)
	}

	return nil, nil
}

// checkFile evaluates all collection literals of a file.
func checkFile(ctx context.Context, p *analysis.Pass, ev evaluate.Evaluator, currentFile astutil.CurrentFile, f inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	r := report.New(p, currentFile)

	for c := range f.Preorder((*ast.CompositeLit)(nil)) {
		lit := c.Node().(*ast.CompositeLit)

		if !astutil.IsCollection(p.TypesInfo, lit) {
			continue
		}

		findings, err := ev.Evaluate(currentFile, lit)
		if err != nil {
			astutil.InternalError(p, lit, "Collection literal: %v", err)

			continue
		}

		r.Report(findings)
	}
}
