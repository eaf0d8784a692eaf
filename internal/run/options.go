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
	"sync"

	"fillmore-labs.com/litguard/internal/config"
	"fillmore-labs.com/litguard/internal/rules"
)

// Options represent configuration options for the litguard analyzer.
type Options struct {
	// Rules represents the rules to be enabled.
	Rules config.Rules

	// Thresholds holds the limits of the elements and length rules.
	Thresholds rules.Thresholds

	// Generated enables checking generated files.
	Generated bool

	ruleSet func() *rules.Set
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	o := &Options{
		Rules:      config.DefaultRules(),
		Thresholds: rules.DefaultThresholds(),
	}

	o.ruleSet = sync.OnceValue(func() *rules.Set {
		return rules.NewSet(o.Thresholds, o.Rules.Enabled)
	})

	return o
}

// RuleSet returns the rule set for these options. It is built on first use,
// so later changes of the options have no effect.
func (o *Options) RuleSet() *rules.Set {
	return o.ruleSet()
}

// ApplyFile overrides the options with the values set in a configuration file.
func (o *Options) ApplyFile(f *config.File) {
	if f.Generated != nil {
		o.Generated = *f.Generated
	}

	if f.MaxElements != nil {
		o.Thresholds.MaxElements = *f.MaxElements
	}

	if f.MaxLength != nil {
		o.Thresholds.MaxLength = *f.MaxLength
	}

	f.ApplyRules(&o.Rules)
}
