//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package aggregator

import "trpc.group/trpc-go/trpc-agent-judge/dimension"

type options struct {
	weighted bool
	weights  dimension.WeightConfig
}

// Option configures the aggregator.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithWeights enables weighted averaging with the given weight config.
// Weights need not sum to one; the aggregate is normalized by their sum.
// A dimension missing from the config contributes with weight zero.
func WithWeights(weights dimension.WeightConfig) Option {
	return func(o *options) {
		o.weighted = true
		o.weights = weights
	}
}

// WithDefaultWeights enables weighted averaging with the default weight
// config.
func WithDefaultWeights() Option {
	return WithWeights(dimension.DefaultWeights())
}
