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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/litguard/internal/rules"
)

var (
	// ErrUnknownRule is returned for a rule key that is neither a rule code nor a rule name.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrDuplicateRule is returned when a rule is configured more than once.
	ErrDuplicateRule = errors.New("duplicate rule")

	// ErrNegativeThreshold is returned for a negative threshold.
	ErrNegativeThreshold = errors.New("negative threshold")
)

// File is the content of a litguard YAML configuration file.
// Unset fields keep their previous values.
type File struct {
	// Generated enables checking generated files.
	Generated *bool `yaml:"generated"`

	// MaxElements is the largest element count allowed by the elements rule.
	MaxElements *int `yaml:"max-elements"`

	// MaxLength is the largest text length allowed by the length rule.
	MaxLength *int `yaml:"max-length"`

	// Rules enables or disables rules by code or name.
	Rules map[string]bool `yaml:"rules"`

	rules map[rules.ID]bool
}

// Load reads and validates the configuration file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return file, nil
}

// Decode reads and validates a configuration from r. An empty document is a valid configuration.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := file.validate(); err != nil {
		return nil, err
	}

	return &file, nil
}

func (f *File) validate() error {
	if f.MaxElements != nil && *f.MaxElements < 0 {
		return fmt.Errorf("max-elements %d: %w", *f.MaxElements, ErrNegativeThreshold)
	}

	if f.MaxLength != nil && *f.MaxLength < 0 {
		return fmt.Errorf("max-length %d: %w", *f.MaxLength, ErrNegativeThreshold)
	}

	f.rules = make(map[rules.ID]bool, len(f.Rules))
	for key, enabled := range f.Rules {
		id, ok := rules.ParseID(key)
		if !ok {
			return fmt.Errorf("rule %q: %w", key, ErrUnknownRule)
		}

		if _, seen := f.rules[id]; seen {
			return fmt.Errorf("rule %q (%s): %w", key, id, ErrDuplicateRule)
		}

		f.rules[id] = enabled
	}

	return nil
}

// ApplyRules sets the rules configured in f on r.
func (f *File) ApplyRules(r *Rules) {
	for id, enabled := range f.rules {
		r.Set(id, enabled)
	}
}
