//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package rulecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-judge/dimension"
)

func TestEmptyResponsePenalties(t *testing.T) {
	c := New()

	inst := c.InstructionFollowing("Summarize the article.", "")
	assert.InDelta(t, 0.4, inst.Score, 1e-9)
	assert.ElementsMatch(t,
		[]string{issueEmptyResponse, issueShortResponse, issueLowKeywordOverlap},
		inst.Issues)

	coh := c.Coherence("Summarize the article.", "")
	assert.InDelta(t, 0.35, coh.Score, 1e-9)
	assert.ElementsMatch(t,
		[]string{issueEmptyResponse, issueShortResponse, issueMissingPunctuation},
		coh.Issues)
}

func TestGoodResponseScoresFull(t *testing.T) {
	c := New()
	prompt := "Explain how photosynthesis converts sunlight into energy."
	response := "Photosynthesis converts sunlight into chemical energy stored in glucose."

	inst := c.InstructionFollowing(prompt, response)
	assert.Equal(t, 1.0, inst.Score)
	assert.Empty(t, inst.Issues)
	assert.Equal(t, dimension.InstructionFollowing, inst.Dimension)

	coh := c.Coherence(prompt, response)
	assert.Equal(t, 1.0, coh.Score)
	assert.Empty(t, coh.Issues)
}

func TestShortResponsePenalty(t *testing.T) {
	c := New()

	coh := c.Coherence("Describe the weather.", "Sunny.")
	assert.InDelta(t, 0.8, coh.Score, 1e-9)
	assert.Equal(t, []string{issueShortResponse}, coh.Issues)
}

func TestMissingPunctuationOnlyAffectsCoherence(t *testing.T) {
	c := New()
	prompt := "Describe the weather in Paris today."
	response := "the weather in Paris today is sunny and warm"

	inst := c.InstructionFollowing(prompt, response)
	assert.Equal(t, 1.0, inst.Score)

	coh := c.Coherence(prompt, response)
	assert.InDelta(t, 0.85, coh.Score, 1e-9)
	assert.Equal(t, []string{issueMissingPunctuation}, coh.Issues)
}

func TestLowOverlapOnlyAffectsInstructionFollowing(t *testing.T) {
	c := New()
	prompt := "Explain quantum entanglement in simple terms."
	response := "Bananas are an excellent source of potassium for athletes."

	inst := c.InstructionFollowing(prompt, response)
	assert.InDelta(t, 0.9, inst.Score, 1e-9)
	assert.Equal(t, []string{issueLowKeywordOverlap}, inst.Issues)

	coh := c.Coherence(prompt, response)
	assert.Equal(t, 1.0, coh.Score)
}

func TestDeterminism(t *testing.T) {
	c := New()
	prompt := "Summarize the meeting notes."
	response := "short"

	first := c.Check(prompt, response)
	for i := 0; i < 10; i++ {
		again := c.Check(prompt, response)
		for dim, want := range first {
			require.Contains(t, again, dim)
			assert.Equal(t, want.Score, again[dim].Score)
			assert.Equal(t, want.Issues, again[dim].Issues)
		}
	}
}

func TestScoreWithinRange(t *testing.T) {
	c := New()
	cases := []struct{ prompt, response string }{
		{"", ""},
		{"a", "b"},
		{"Explain gravity.", "Gravity pulls objects together."},
		{"???", "!!!"},
	}
	for _, tc := range cases {
		for _, s := range c.Check(tc.prompt, tc.response) {
			assert.GreaterOrEqual(t, s.Score, 0.0)
			assert.LessOrEqual(t, s.Score, 1.0)
		}
	}
}
