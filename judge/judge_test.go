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
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-judge/dimension"
)

type fakeProvider struct {
	response  string
	err       error
	gotPrompt string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.response, f.err
}

const validJudgeJSON = `{
	"hallucination_prevention": 0.9,
	"assumption_prevention": 0.8,
	"accuracy": 0.95,
	"hallucination_prevention_reason": "no fabrications",
	"assumption_prevention_reason": "one mild assumption",
	"accuracy_reason": "matches reference"
}`

func TestScoreParsesProviderJSON(t *testing.T) {
	p := &fakeProvider{response: validJudgeJSON}
	j := New(WithProvider(p))

	v := j.Score(context.Background(), "prompt", "response", "reference")
	require.False(t, v.Fallback)
	require.NoError(t, v.Cause)
	assert.Equal(t, 0.9, v.Scores[dimension.HallucinationPrevention].Score)
	assert.Equal(t, 0.8, v.Scores[dimension.AssumptionPrevention].Score)
	assert.Equal(t, 0.95, v.Scores[dimension.Accuracy].Score)
	assert.Equal(t, "no fabrications", v.Scores[dimension.HallucinationPrevention].Reason)
}

func TestScoreToleratesCodeFences(t *testing.T) {
	p := &fakeProvider{response: "```json\n" + validJudgeJSON + "\n```"}
	j := New(WithProvider(p))

	v := j.Score(context.Background(), "prompt", "response", "")
	assert.False(t, v.Fallback)
}

func TestScoreToleratesSurroundingProse(t *testing.T) {
	p := &fakeProvider{response: "Here is my evaluation:\n" + validJudgeJSON + "\nHope that helps!"}
	j := New(WithProvider(p))

	v := j.Score(context.Background(), "prompt", "response", "")
	assert.False(t, v.Fallback)
}

func TestScoreClampsOutOfRange(t *testing.T) {
	p := &fakeProvider{response: `{"hallucination_prevention": 1.4, "assumption_prevention": -0.2, "accuracy": 0.5}`}
	j := New(WithProvider(p))

	v := j.Score(context.Background(), "prompt", "response", "")
	require.False(t, v.Fallback)
	assert.Equal(t, 1.0, v.Scores[dimension.HallucinationPrevention].Score)
	assert.Equal(t, 0.0, v.Scores[dimension.AssumptionPrevention].Score)
}

func TestScoreProviderErrorFallsBack(t *testing.T) {
	p := &fakeProvider{err: errors.New("connection refused")}
	j := New(WithProvider(p))

	v := j.Score(context.Background(), "prompt", "The answer is 42.", "")
	require.True(t, v.Fallback)
	assert.Error(t, v.Cause)
	require.Len(t, v.Scores, 3)
	for _, s := range v.Scores {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
}

func TestScoreNonJSONFallsBack(t *testing.T) {
	p := &fakeProvider{response: "I cannot evaluate this."}
	j := New(WithProvider(p))

	v := j.Score(context.Background(), "prompt", "response", "")
	assert.True(t, v.Fallback)
	assert.Error(t, v.Cause)
}

func TestScoreMissingFieldFallsBack(t *testing.T) {
	p := &fakeProvider{response: `{"hallucination_prevention": 0.9, "accuracy": 0.5}`}
	j := New(WithProvider(p))

	v := j.Score(context.Background(), "prompt", "response", "")
	assert.True(t, v.Fallback)
}

func TestScoreNoProviderFallsBack(t *testing.T) {
	j := New()

	v := j.Score(context.Background(), "prompt", "Maybe it works.", "")
	require.True(t, v.Fallback)
	assert.ErrorIs(t, v.Cause, ErrNoProvider)
	assert.InDelta(t, 0.85, v.Scores[dimension.HallucinationPrevention].Score, 1e-9)
}

func TestFallbackDeterminism(t *testing.T) {
	p := &fakeProvider{err: errors.New("timeout")}
	j := New(WithProvider(p))

	first := j.Score(context.Background(), "prompt", "Probably fine, assuming the cache is warm.", "ref text")
	for i := 0; i < 5; i++ {
		again := j.Score(context.Background(), "prompt", "Probably fine, assuming the cache is warm.", "ref text")
		for dim, want := range first.Scores {
			assert.Equal(t, want.Score, again.Scores[dim].Score)
		}
	}
}

func TestPromptIncludesReferenceOnlyWhenPresent(t *testing.T) {
	withRef := buildPrompt("p", "r", "the reference")
	assert.Contains(t, withRef, "Reference answer:")
	assert.Contains(t, withRef, "the reference")

	withoutRef := buildPrompt("p", "r", "  ")
	assert.NotContains(t, withoutRef, "Reference answer:")
	assert.Contains(t, withoutRef, "internal plausibility")
}

func TestExtractJSONObject(t *testing.T) {
	got, err := extractJSONObject("```json\n{\"a\": 1}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)

	_, err = extractJSONObject("no json here")
	assert.Error(t, err)
}

func TestPromptRequestsStrictJSON(t *testing.T) {
	prompt := buildPrompt("p", "r", "")
	for _, field := range []string{"hallucination_prevention", "assumption_prevention", "accuracy"} {
		assert.True(t, strings.Contains(prompt, field), field)
	}
}
