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
	"log/slog"

	"fillmore-labs.com/litguard/internal/rules"
	"fillmore-labs.com/litguard/internal/run"
)

// Option configures specific behavior of a [New] litguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Generated = o.generated
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMaxElements is an [Option] to configure the maximum number of elements allowed by the elements rule.
func WithMaxElements(maxElements int) Option { return maxElementsOption{maxElements: maxElements} }

type maxElementsOption struct{ maxElements int }

func (o maxElementsOption) apply(r *run.Options) {
	r.Thresholds.MaxElements = o.maxElements
}

func (o maxElementsOption) LogAttr() slog.Attr {
	return slog.Int("max-elements", o.maxElements)
}

// WithMaxLength is an [Option] to configure the maximum text length allowed by the length rule.
func WithMaxLength(maxLength int) Option { return maxLengthOption{maxLength: maxLength} }

type maxLengthOption struct{ maxLength int }

func (o maxLengthOption) apply(r *run.Options) {
	r.Thresholds.MaxLength = o.maxLength
}

func (o maxLengthOption) LogAttr() slog.Attr {
	return slog.Int("max-length", o.maxLength)
}

// WithLiteral is an [Option] to configure whether all collection literals are reported (LG001).
func WithLiteral(literal bool) Option { return ruleOption{id: rules.Literal, enabled: literal} }

// WithElements is an [Option] to configure whether literals with too many elements are reported (LG002).
func WithElements(elements bool) Option { return ruleOption{id: rules.Elements, enabled: elements} }

// WithLength is an [Option] to configure whether literals with too long text are reported (LG003).
func WithLength(length bool) Option { return ruleOption{id: rules.Length, enabled: length} }

// WithMultiline is an [Option] to configure whether multiline literals are reported (LG004).
func WithMultiline(multiline bool) Option { return ruleOption{id: rules.Multiline, enabled: multiline} }

// WithNonEmpty is an [Option] to configure whether all non-empty literals are reported (LG005).
func WithNonEmpty(nonEmpty bool) Option { return ruleOption{id: rules.NonEmpty, enabled: nonEmpty} }

type ruleOption struct {
	id      rules.ID
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Set(o.id, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.id.Name(), o.enabled)
}
