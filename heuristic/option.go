//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package heuristic

// rougeAccuracyType is the ROUGE variant used by the ROUGE accuracy strategy.
const rougeAccuracyType = "rouge1"

type options struct {
	rougeAccuracy bool
}

// Option configures the heuristic fallback scorer.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithRougeAccuracy scores the accuracy dimension with ROUGE-1 recall
// against the reference instead of plain keyword overlap. Both strategies
// are deterministic; ROUGE counts repeated tokens, keyword overlap does not.
func WithRougeAccuracy() Option {
	return func(o *options) {
		o.rougeAccuracy = true
	}
}
