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

package analyzer

import (
	"flag"

	"fillmore-labs.com/litguard/internal/config"
	"fillmore-labs.com/litguard/internal/rules"
	"fillmore-labs.com/litguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(o *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.BoolVar(&o.Generated, "generated", o.Generated, "check generated files")
	flags.Var(newThresholdValue(&o.Thresholds.MaxElements), "max-elements", "maximum number of elements of a collection literal")
	flags.Var(newThresholdValue(&o.Thresholds.MaxLength), "max-length", "maximum text length of a collection literal")

	for _, r := range rules.Catalogue(o.Thresholds) {
		id := r.ID()
		flags.Var(newRuleValue(&o.Rules, id), id.Name(), "enable "+id.String()+": "+r.Title())
	}

	flags.Func("config", "read configuration from YAML `file`", func(path string) error {
		f, err := config.Load(path)
		if err != nil {
			return err
		}

		o.ApplyFile(f)

		return nil
	})
}
