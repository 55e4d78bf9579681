//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package pipeline

import (
	"trpc.group/trpc-go/trpc-agent-judge/aggregator"
	"trpc.group/trpc-go/trpc-agent-judge/judge"
	"trpc.group/trpc-go/trpc-agent-judge/rulecheck"
)

type options struct {
	checker    *rulecheck.Checker
	judge      *judge.Judge
	aggregator *aggregator.Aggregator
}

// Option configures the pipeline.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	if opts.checker == nil {
		opts.checker = rulecheck.New()
	}
	if opts.judge == nil {
		opts.judge = judge.New()
	}
	if opts.aggregator == nil {
		opts.aggregator = aggregator.New(aggregator.WithDefaultWeights())
	}
	return opts
}

// WithChecker replaces the rule-based checker.
func WithChecker(c *rulecheck.Checker) Option {
	return func(o *options) {
		o.checker = c
	}
}

// WithJudge replaces the LLM judge.
func WithJudge(j *judge.Judge) Option {
	return func(o *options) {
		o.judge = j
	}
}

// WithAggregator replaces the score aggregator.
func WithAggregator(a *aggregator.Aggregator) Option {
	return func(o *options) {
		o.aggregator = a
	}
}
