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

package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Source is a parsed test file.
type Source struct {
	Fset    *token.FileSet
	File    *ast.File
	Content []byte
}

// ReadFile returns the file content, as [analysis.Pass.ReadFile] does.
func (s Source) ReadFile(string) ([]byte, error) {
	return s.Content, nil
}

// Parse parses src as declarations of a test package.
func Parse(tb testing.TB, src string) Source {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()
	content := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, content, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return Source{Fset: fset, File: f, Content: content}
}

// Check type checks the source.
func Check(tb testing.TB, s Source) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, s.Fset, []*ast.File{s.File}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Literals returns all composite literals of the source in preorder.
func (s Source) Literals() []*ast.CompositeLit {
	var lits []*ast.CompositeLit

	root := inspector.New([]*ast.File{s.File}).Root()
	for c := range root.Preorder((*ast.CompositeLit)(nil)) {
		lits = append(lits, c.Node().(*ast.CompositeLit))
	}

	return lits
}

func wrapSource(src string) []byte {
	const header = "package " + testpkg + "\n\n"

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return srcFile.Bytes()
}
