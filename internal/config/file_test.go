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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "fillmore-labs.com/litguard/internal/config"
	"fillmore-labs.com/litguard/internal/rules"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	const src = `
generated: true
max-elements: 5
max-length: 20
rules:
  LG001: false
  nonempty: true
`

	file, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if file.Generated == nil || !*file.Generated {
		t.Errorf("Generated = %v, want true", file.Generated)
	}

	if file.MaxElements == nil || *file.MaxElements != 5 {
		t.Errorf("MaxElements = %v, want 5", file.MaxElements)
	}

	if file.MaxLength == nil || *file.MaxLength != 20 {
		t.Errorf("MaxLength = %v, want 20", file.MaxLength)
	}

	r := DefaultRules()
	file.ApplyRules(&r)

	want := map[rules.ID]bool{
		rules.Literal:   false,
		rules.Elements:  true,
		rules.Length:    true,
		rules.Multiline: true,
		rules.NonEmpty:  true,
	}

	for id, enabled := range want {
		if got := r.Enabled(id); got != enabled {
			t.Errorf("Rule %s enabled = %t, want %t", id, got, enabled)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	file, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if file.Generated != nil || file.MaxElements != nil || file.MaxLength != nil || len(file.Rules) != 0 {
		t.Errorf("Got non-empty configuration %+v", file)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown_rule", "rules:\n  LG999: true\n", ErrUnknownRule},
		{"duplicate_rule", "rules:\n  LG002: true\n  elements: false\n", ErrDuplicateRule},
		{"negative_elements", "max-elements: -1\n", ErrNegativeThreshold},
		{"negative_length", "max-length: -3\n", ErrNegativeThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Decode(strings.NewReader(tt.src)); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := Decode(strings.NewReader("max-lines: 3\n")); err == nil {
		t.Error("Decode() accepted an unknown field")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "litguard.yaml")
	if err := os.WriteFile(path, []byte("max-length: 0\n"), 0o600); err != nil {
		t.Fatalf("Can't write config: %v", err)
	}

	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if file.MaxLength == nil || *file.MaxLength != 0 {
		t.Errorf("MaxLength = %v, want 0", file.MaxLength)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want %v", err, os.ErrNotExist)
	}
}
