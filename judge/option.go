//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package judge

import (
	"time"

	"trpc.group/trpc-go/trpc-agent-judge/heuristic"
	"trpc.group/trpc-go/trpc-agent-judge/judge/provider"
)

const defaultTimeout = 30 * time.Second

type options struct {
	provider provider.Provider
	fallback *heuristic.Fallback
	timeout  time.Duration
}

// Option configures the judge.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{
		timeout: defaultTimeout,
	}
	for _, o := range opt {
		o(opts)
	}
	if opts.fallback == nil {
		opts.fallback = heuristic.New()
	}
	return opts
}

// WithProvider sets the LLM backend. Without a provider every verdict comes
// from the heuristic fallback.
func WithProvider(p provider.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithFallback replaces the heuristic fallback scorer.
func WithFallback(f *heuristic.Fallback) Option {
	return func(o *options) {
		o.fallback = f
	}
}

// WithTimeout bounds each provider call. A timed-out call counts as a
// provider failure and triggers the fallback.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}
