//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
	"trpc.group/trpc-go/trpc-agent-judge/pipeline"
)

const (
	defaultChunkSize   = 10
	defaultConcurrency = 4
)

type options struct {
	chunkSize   int
	concurrency int
	pipeline    *pipeline.Pipeline
	manager     evalresult.Manager
}

// Option configures the batch coordinator.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{
		chunkSize:   defaultChunkSize,
		concurrency: defaultConcurrency,
	}
	for _, o := range opt {
		o(opts)
	}
	if opts.pipeline == nil {
		opts.pipeline = pipeline.New()
	}
	return opts
}

// WithChunkSize sets how many inputs one worker takes at a time.
func WithChunkSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.chunkSize = size
		}
	}
}

// WithConcurrency bounds the number of workers processing chunks. The
// bound exists to respect external provider rate limits.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithPipeline replaces the per-input evaluation pipeline.
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(o *options) {
		o.pipeline = p
	}
}

// WithResultManager enables result persistence. Saving happens off the
// processing path; persistence failures are logged, never surfaced.
func WithResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.manager = m
	}
}
