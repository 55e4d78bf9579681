//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"trpc.group/trpc-go/trpc-agent-judge/dimension"
)

func scoreSet(values map[dimension.Dimension]float64) map[dimension.Dimension]*dimension.Score {
	scores := make(map[dimension.Dimension]*dimension.Score, len(values))
	for dim, value := range values {
		scores[dim] = &dimension.Score{Dimension: dim, Score: value}
	}
	return scores
}

func TestSimpleMean(t *testing.T) {
	a := New()
	got := a.Aggregate(scoreSet(map[dimension.Dimension]float64{
		dimension.InstructionFollowing:    1.0,
		dimension.HallucinationPrevention: 0.5,
		dimension.AssumptionPrevention:    0.5,
		dimension.Coherence:               1.0,
		dimension.Accuracy:                0.0,
	}))
	assert.InDelta(t, 0.6, got, 1e-9)
}

func TestWeightedDefaultWeights(t *testing.T) {
	a := New(WithDefaultWeights())
	got := a.Aggregate(scoreSet(map[dimension.Dimension]float64{
		dimension.InstructionFollowing:    0.9,
		dimension.HallucinationPrevention: 0.8,
		dimension.AssumptionPrevention:    0.85,
		dimension.Coherence:               0.9,
		dimension.Accuracy:                0.8,
	}))
	assert.InDelta(t, 0.8425, got, 1e-9)
}

func TestWeightedNormalizesBySum(t *testing.T) {
	// Weights sum to 2; the aggregate must still land in [0, 1].
	a := New(WithWeights(dimension.WeightConfig{
		dimension.InstructionFollowing: 1.0,
		dimension.Coherence:            1.0,
	}))
	got := a.Aggregate(scoreSet(map[dimension.Dimension]float64{
		dimension.InstructionFollowing: 0.8,
		dimension.Coherence:            0.4,
		dimension.Accuracy:             1.0, // weight 0, ignored
	}))
	assert.InDelta(t, 0.6, got, 1e-9)
}

func TestWeightedAllZeroFallsBackToSimple(t *testing.T) {
	a := New(WithWeights(dimension.WeightConfig{}))
	got := a.Aggregate(scoreSet(map[dimension.Dimension]float64{
		dimension.InstructionFollowing: 1.0,
		dimension.Coherence:            0.0,
	}))
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, 0.0, New().Aggregate(nil))
	assert.Equal(t, 0.0, New(WithDefaultWeights()).Aggregate(nil))
}

func TestRequestAverage(t *testing.T) {
	assert.Equal(t, 0.0, RequestAverage(nil))
	assert.InDelta(t, 0.75, RequestAverage([]float64{0.5, 1.0}), 1e-9)
}
