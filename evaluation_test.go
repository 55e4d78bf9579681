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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-judge/batch"
	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/evalinput"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult/inmemory"
)

type scriptedProvider struct {
	response string
	err      error
}

func (s *scriptedProvider) Name() string { return "scripted" }

func (s *scriptedProvider) Generate(context.Context, string) (string, error) {
	return s.response, s.err
}

func TestEvaluateReturnsResultsInInputOrder(t *testing.T) {
	e, err := New(context.Background())
	require.NoError(t, err)
	defer e.Close()

	req := &evalinput.Request{
		ID:        "req-1",
		ModelName: "agent-x",
		Inputs: []*evalinput.Input{
			{Prompt: "First question?", AgentResponse: "A thorough first answer."},
			{Prompt: "Second question?", AgentResponse: "A thorough second answer."},
		},
	}
	results, err := e.Evaluate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for i, res := range results {
		assert.Equal(t, "req-1", res.RequestID)
		assert.Equal(t, i, res.InputIndex)
		assert.Equal(t, "agent-x", res.ModelName)
		assert.Len(t, res.DimensionScores, len(dimension.All()))
	}
}

func TestEvaluateValidation(t *testing.T) {
	e, err := New(context.Background())
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Evaluate(context.Background(), nil)
	assert.ErrorIs(t, err, evalinput.ErrNilRequest)

	_, err = e.Evaluate(context.Background(), &evalinput.Request{})
	assert.ErrorIs(t, err, evalinput.ErrEmptyInputs)
}

func TestEvaluateUsesProviderScores(t *testing.T) {
	p := &scriptedProvider{response: `{
		"hallucination_prevention": 1.0,
		"assumption_prevention": 1.0,
		"accuracy": 1.0
	}`}
	e, err := New(context.Background(), WithProvider(p))
	require.NoError(t, err)
	defer e.Close()

	results, err := e.Evaluate(context.Background(), &evalinput.Request{
		ID: "req-1",
		Inputs: []*evalinput.Input{
			{Prompt: "Explain caching strategy tradeoffs.", AgentResponse: "Caching strategy tradeoffs include staleness versus latency."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, results[0].DimensionScores[dimension.Accuracy].Score)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestProviderFailureNeverSurfaces(t *testing.T) {
	p := &scriptedProvider{err: errors.New("auth failure")}
	e, err := New(context.Background(), WithProvider(p))
	require.NoError(t, err)
	defer e.Close()

	results, err := e.Evaluate(context.Background(), &evalinput.Request{
		ID:     "req-1",
		Inputs: []*evalinput.Input{{Prompt: "p", AgentResponse: "A complete response sentence."}},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	for _, s := range results[0].DimensionScores {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
}

func TestBatchLifecycle(t *testing.T) {
	e, err := New(context.Background(), WithChunkSize(1), WithConcurrency(2))
	require.NoError(t, err)
	defer e.Close()

	progress, err := e.SubmitBatch(context.Background(), &evalinput.Request{
		ID: "batch-1",
		Inputs: []*evalinput.Input{
			{Prompt: "First question?", AgentResponse: "A thorough first answer."},
			{Prompt: "Second question?", AgentResponse: "A thorough second answer."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, batch.StatusQueued, progress.Status)

	require.Eventually(t, func() bool {
		p, err := e.BatchStatus("batch-1")
		return err == nil && p.Status == batch.StatusCompleted
	}, 5*time.Second, 5*time.Millisecond)

	summary, err := e.BatchResult("batch-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalEvaluated)
	assert.Equal(t, 2, summary.ScoreDistribution.Total())
}

func TestEvaluatePersistsResults(t *testing.T) {
	store := inmemory.NewManager()
	e, err := New(context.Background(), WithResultManager(store))
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Evaluate(context.Background(), &evalinput.Request{
		ID:     "req-store",
		Inputs: []*evalinput.Input{{Prompt: "p", AgentResponse: "A complete response sentence."}},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		results, err := store.List(context.Background(), "req-store")
		return err == nil && len(results) == 1
	}, 5*time.Second, 5*time.Millisecond)
}

func TestNewUnknownProviderName(t *testing.T) {
	_, err := New(context.Background(), WithProviderName("no-such-backend"))
	assert.Error(t, err)
}
