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
	"go/types"
)

// IsCollection reports whether lit is a slice, array or map literal.
//
// The type is taken from info when available, including elided element types of nested
// literals. Without type information only the literal's own type expression is considered.
func IsCollection(info *types.Info, lit *ast.CompositeLit) bool {
	if info != nil {
		if t := info.TypeOf(lit); t != nil {
			return isCollectionType(t)
		}
	}

	switch ast.Unparen(lit.Type).(type) {
	case *ast.ArrayType, *ast.MapType:
		return true

	default: // elided types are unknown without type information
		return false
	}
}

func isCollectionType(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Slice, *types.Array, *types.Map:
		return true

	case *types.Pointer:
		return isCollectionType(u.Elem()) // elided &T in []*T{{...}}

	case *types.Interface:
		return typeSetIsCollection(u)

	default:
		return false
	}
}

// typeSetIsCollection reports whether every term of a type parameter constraint is a collection type.
func typeSetIsCollection(iface *types.Interface) bool {
	found := false

	for embedded := range iface.EmbeddedTypes() {
		switch e := embedded.(type) {
		case *types.Union:
			for term := range e.Terms() {
				if !isCollectionType(term.Type()) {
					return false
				}
			}

			found = true

		default:
			if i, ok := e.Underlying().(*types.Interface); ok && i.IsMethodSet() {
				continue // methods only, no type restriction
			}

			if !isCollectionType(e) {
				return false
			}

			found = true
		}
	}

	return found
}
