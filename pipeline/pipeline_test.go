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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/evalinput"
)

func TestEvaluateProducesAllDimensions(t *testing.T) {
	p := New()
	result := p.Evaluate(context.Background(), &evalinput.Input{
		Prompt:        "Explain how photosynthesis converts sunlight into energy.",
		AgentResponse: "Photosynthesis converts sunlight into chemical energy stored in glucose.",
	})

	require.Len(t, result.DimensionScores, len(dimension.All()))
	for _, dim := range dimension.All() {
		require.Contains(t, result.DimensionScores, dim)
		s := result.DimensionScores[dim]
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	require.NotNil(t, result.CreationTimestamp)
}

func TestEvaluateEmptyResponsePenalized(t *testing.T) {
	p := New()
	result := p.Evaluate(context.Background(), &evalinput.Input{
		Prompt:        "Summarize the article.",
		AgentResponse: " ",
	})

	assert.InDelta(t, 0.4, result.DimensionScores[dimension.InstructionFollowing].Score, 1e-9)
	assert.InDelta(t, 0.35, result.DimensionScores[dimension.Coherence].Score, 1e-9)
}

func TestEvaluateDeterministicWithoutProvider(t *testing.T) {
	p := New()
	input := &evalinput.Input{
		Prompt:        "Describe the deployment process.",
		AgentResponse: "Probably the pipeline builds, assuming tests pass.",
		Reference:     "The pipeline builds and deploys after tests pass.",
	}

	first := p.Evaluate(context.Background(), input)
	for i := 0; i < 5; i++ {
		again := p.Evaluate(context.Background(), input)
		assert.Equal(t, first.Score, again.Score)
	}
}
