//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-judge/dimension"
)

func TestDistributionBuckets(t *testing.T) {
	d := &Distribution{}
	d.Add(0.95) // excellent
	d.Add(0.90) // excellent, boundary
	d.Add(0.89) // good
	d.Add(0.70) // good, boundary
	d.Add(0.69) // fair
	d.Add(0.50) // fair, boundary
	d.Add(0.49) // poor
	d.Add(0.0)  // poor

	assert.Equal(t, 2, d.Excellent)
	assert.Equal(t, 2, d.Good)
	assert.Equal(t, 2, d.Fair)
	assert.Equal(t, 2, d.Poor)
	assert.Equal(t, 8, d.Total())
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{
			Score: 0.8,
			DimensionScores: map[dimension.Dimension]*dimension.Score{
				dimension.Coherence: {Dimension: dimension.Coherence, Score: 0.9},
				dimension.Accuracy:  {Dimension: dimension.Accuracy, Score: 0.7},
			},
		},
		{
			Score: 0.4,
			DimensionScores: map[dimension.Dimension]*dimension.Score{
				dimension.Coherence: {Dimension: dimension.Coherence, Score: 0.5},
				dimension.Accuracy:  {Dimension: dimension.Accuracy, Score: 0.3},
			},
		},
	}
	summary := Summarize("batch-1", "agent-x", results)
	require.NotNil(t, summary)
	assert.Equal(t, "batch-1", summary.BatchID)
	assert.Equal(t, "agent-x", summary.ModelName)
	assert.Equal(t, 2, summary.TotalEvaluated)
	assert.InDelta(t, 0.6, summary.AverageScore, 1e-9)
	assert.InDelta(t, 0.7, summary.DimensionAverages[dimension.Coherence], 1e-9)
	assert.InDelta(t, 0.5, summary.DimensionAverages[dimension.Accuracy], 1e-9)
	assert.Equal(t, 2, summary.ScoreDistribution.Total())
	assert.Equal(t, 1, summary.ScoreDistribution.Good)
	assert.Equal(t, 1, summary.ScoreDistribution.Poor)
	assert.NotEmpty(t, summary.Summary)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize("batch-1", "agent-x", nil)
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.TotalEvaluated)
	assert.Equal(t, 0.0, summary.AverageScore)
	assert.Equal(t, 0, summary.ScoreDistribution.Total())
}
