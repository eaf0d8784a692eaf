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

package run_test

import (
	"strings"
	"testing"

	"fillmore-labs.com/litguard/internal/config"
	"fillmore-labs.com/litguard/internal/rules"
	. "fillmore-labs.com/litguard/internal/run"
)

func TestApplyFile(t *testing.T) {
	t.Parallel()

	f, err := config.Decode(strings.NewReader("generated: true\nmax-length: 30\nrules:\n  LG004: false\n"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	o := DefaultOptions()
	o.ApplyFile(f)

	if !o.Generated {
		t.Error("Generated not set")
	}

	want := rules.Thresholds{MaxElements: rules.DefaultMaxElements, MaxLength: 30}
	if o.Thresholds != want {
		t.Errorf("Thresholds = %+v, want %+v", o.Thresholds, want)
	}

	if o.Rules.Enabled(rules.Multiline) {
		t.Error("Multiline rule still enabled")
	}
}

func TestRuleSet(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.Rules.Set(rules.Length, false)

	set := o.RuleSet()

	// changes after first use are ignored
	o.Rules.Set(rules.NonEmpty, true)

	if o.RuleSet() != set {
		t.Error("RuleSet not built once")
	}

	var got []rules.ID
	for r := range set.All() {
		got = append(got, r.ID())
	}

	want := []rules.ID{rules.Literal, rules.Elements, rules.Multiline}
	if len(got) != len(want) {
		t.Fatalf("Got rules %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rule %d = %s, want %s", i, got[i], want[i])
		}
	}
}
