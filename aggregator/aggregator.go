//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package aggregator combines per-dimension scores into a single scalar in
// [0, 1], either by simple arithmetic mean or by weighted averaging.
package aggregator

import (
	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/log"
)

// Aggregator combines dimension scores into one aggregate score.
type Aggregator struct {
	opts options
}

// New creates an aggregator. Without options it uses the simple arithmetic
// mean; WithWeights enables weighted averaging.
func New(opt ...Option) *Aggregator {
	return &Aggregator{opts: *newOptions(opt...)}
}

// Aggregate combines the given dimension scores into one scalar in [0, 1].
// Weighted mode normalizes by the sum of configured weights; if every
// configured weight is zero the aggregator falls back to the simple mean
// rather than dividing by zero.
func (a *Aggregator) Aggregate(scores map[dimension.Dimension]*dimension.Score) float64 {
	if len(scores) == 0 {
		return 0
	}
	if !a.opts.weighted {
		return simpleMean(scores)
	}
	var weightedSum, weightSum float64
	for dim, s := range scores {
		if s == nil {
			continue
		}
		weight := a.opts.weights[dim]
		weightedSum += s.Score * weight
		weightSum += weight
	}
	if weightSum <= 0 {
		log.Warnf("aggregator: configured weights sum to zero, falling back to simple mean")
		return simpleMean(scores)
	}
	return dimension.Clamp(weightedSum / weightSum)
}

// RequestAverage returns the arithmetic mean of per-input aggregate scores.
// Inputs are weighted equally regardless of how many dimensions each scored.
func RequestAverage(aggregates []float64) float64 {
	if len(aggregates) == 0 {
		return 0
	}
	var sum float64
	for _, score := range aggregates {
		sum += score
	}
	return sum / float64(len(aggregates))
}

func simpleMean(scores map[dimension.Dimension]*dimension.Score) float64 {
	var sum float64
	var count int
	for _, s := range scores {
		if s == nil {
			continue
		}
		sum += s.Score
		count++
	}
	if count == 0 {
		return 0
	}
	return dimension.Clamp(sum / float64(count))
}
