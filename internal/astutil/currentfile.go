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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const litguard = "litguard"

// CurrentFile holds information about the file under analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	src       []byte
	generated bool
}

// NewCurrentFile creates a new [CurrentFile]. The source content is read with readFile, which
// might be nil. Without matching source content text lengths are measured in bytes.
func NewCurrentFile(fset *token.FileSet, file *ast.File, readFile func(filename string) ([]byte, error)) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	var src []byte
	if readFile != nil {
		if content, err := readFile(handle.Name()); err == nil && len(content) == handle.Size() {
			src = content
		}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, src, generated}
}

// Valid reports whether the file has position information.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// File returns the syntax tree of the file.
func (c CurrentFile) File() *ast.File {
	return c.file
}

// Generated reports whether the file is generated code.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Line returns the 1-based line of pos, ignoring //line directives.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// TextLength returns the number of characters in the source text from start up to, but not including, end.
func (c CurrentFile) TextLength(start, end token.Pos) int {
	from, to := c.handle.Offset(start), c.handle.Offset(end)
	if c.src == nil {
		return to - from
	}

	return utf8.RuneCount(c.src[from:to])
}

// NoLintComment reports whether a nolint comment starts after pos on the same line.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after pos
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })

	line := c.Line(pos)
	for _, group := range c.file.Comments[i:] {
		for _, comment := range group.List {
			if c.Line(comment.Pos()) != line {
				return false // past this line
			}

			if CommentHasNoLint(comment) {
				return true
			}
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether the comment disables litguard or all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == litguard || l == "all" {
			return true
		}
	}

	return false
}
