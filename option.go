//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"time"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
	"trpc.group/trpc-go/trpc-agent-judge/heuristic"
	"trpc.group/trpc-go/trpc-agent-judge/judge/provider"
)

type options struct {
	providerName    string
	providerOptions []provider.Option
	provider        provider.Provider
	judgeTimeout    time.Duration
	weights         dimension.WeightConfig
	simpleAverage   bool
	heuristicOpts   []heuristic.Option
	chunkSize       int
	concurrency     int
	manager         evalresult.Manager
}

// Option configures the evaluator.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{
		weights: dimension.DefaultWeights(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithProviderName selects and constructs a judge backend from the provider
// registry, e.g. "openai", "anthropic" or "gemini". Without a provider the
// judge dimensions are scored heuristically.
func WithProviderName(name string, opt ...provider.Option) Option {
	return func(o *options) {
		o.providerName = name
		o.providerOptions = opt
	}
}

// WithProvider injects an already constructed judge backend. It takes
// precedence over WithProviderName.
func WithProvider(p provider.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithJudgeTimeout bounds each judge provider call.
func WithJudgeTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.judgeTimeout = timeout
	}
}

// WithWeights sets the aggregation weight config.
func WithWeights(weights dimension.WeightConfig) Option {
	return func(o *options) {
		o.weights = weights
	}
}

// WithSimpleAverage aggregates by arithmetic mean instead of weighted
// averaging.
func WithSimpleAverage() Option {
	return func(o *options) {
		o.simpleAverage = true
	}
}

// WithHeuristicOptions configures the heuristic fallback scorer.
func WithHeuristicOptions(opt ...heuristic.Option) Option {
	return func(o *options) {
		o.heuristicOpts = opt
	}
}

// WithChunkSize sets how many inputs one batch worker takes at a time.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithConcurrency bounds the number of batch workers.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithResultManager enables persistence of evaluation results.
func WithResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.manager = m
	}
}
