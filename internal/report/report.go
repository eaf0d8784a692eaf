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

// Package report converts findings into analysis diagnostics.
package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/litguard/internal/astutil"
	"fillmore-labs.com/litguard/internal/evaluate"
	"fillmore-labs.com/litguard/internal/suppress"
)

// Reporter reports the findings of one file.
type Reporter struct {
	pass    *analysis.Pass
	file    astutil.CurrentFile
	regions suppress.Regions
}

// New scans file for suppression directives, reports malformed ones and returns a [Reporter] for the file.
func New(p *analysis.Pass, file astutil.CurrentFile) Reporter {
	regions, problems := suppress.Scan(file)

	for _, problem := range problems {
		p.Report(analysis.Diagnostic{
			Pos:     problem.Comment.Pos(),
			End:     problem.Comment.End(),
			Message: problem.Message,
		})
	}

	return Reporter{pass: p, file: file, regions: regions}
}

// Report reports all findings of a literal that are not suppressed.
func (r Reporter) Report(findings []evaluate.Finding) {
	if len(findings) == 0 {
		return
	}

	// findings of a literal share their position
	pos := findings[0].Pos
	if r.file.NoLintComment(pos) {
		return
	}

	line := r.file.Line(pos)

	for _, f := range findings {
		id := f.Rule.ID()
		if r.regions.Suppressed(id, line) {
			continue
		}

		r.pass.Report(diagnostic(f, id.String()))
	}
}

func diagnostic(f evaluate.Finding, category string) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: category,
		Message:  f.Rule.Message(),
	}
}

