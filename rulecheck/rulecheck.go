//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package rulecheck scores agent responses on the instruction-following and
// coherence dimensions with deterministic lexical rules. It performs no I/O
// and produces bit-exact reproducible scores, which makes it the anchor the
// rest of the pipeline can always fall back on.
package rulecheck

import (
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	itoken "trpc.group/trpc-go/trpc-agent-judge/internal/token"
)

// Penalty weights of the rule-based scoring model. Scores start at 1.0 and
// each triggered rule subtracts its penalty, floored at 0.
const (
	penaltyEmptyResponse      = 0.3
	penaltyShortResponse      = 0.2
	penaltyMissingPunctuation = 0.15
	penaltyLowKeywordOverlap  = 0.1
)

const (
	minResponseLength   = 10
	minKeywordOverlap   = 0.2
	sentencePunctuation = ".!?"
)

// Issue names reported alongside penalized scores.
const (
	issueEmptyResponse      = "empty_response"
	issueShortResponse      = "short_response"
	issueMissingPunctuation = "missing_punctuation"
	issueLowKeywordOverlap  = "low_keyword_overlap"
)

// Checker scores responses with the deterministic penalty model.
// The zero value is ready to use.
type Checker struct{}

// New creates a rule-based checker.
func New() *Checker {
	return &Checker{}
}

// Check scores both rule-based dimensions for the given prompt and response.
func (c *Checker) Check(prompt, response string) map[dimension.Dimension]*dimension.Score {
	return map[dimension.Dimension]*dimension.Score{
		dimension.InstructionFollowing: c.InstructionFollowing(prompt, response),
		dimension.Coherence:            c.Coherence(prompt, response),
	}
}

// InstructionFollowing scores how well the response follows the prompt.
// Penalties: empty response, short response and low keyword overlap with
// the prompt.
func (c *Checker) InstructionFollowing(prompt, response string) *dimension.Score {
	score, issues := baseResponsePenalties(response)
	if itoken.OverlapRatio(itoken.Keywords(prompt), itoken.Keywords(response)) < minKeywordOverlap {
		score -= penaltyLowKeywordOverlap
		issues = append(issues, issueLowKeywordOverlap)
	}
	return newScore(dimension.InstructionFollowing, score, issues)
}

// Coherence scores whether the response reads as complete prose. Penalties:
// empty response, short response and missing sentence-ending punctuation.
func (c *Checker) Coherence(_, response string) *dimension.Score {
	score, issues := baseResponsePenalties(response)
	if !strings.ContainsAny(response, sentencePunctuation) {
		score -= penaltyMissingPunctuation
		issues = append(issues, issueMissingPunctuation)
	}
	return newScore(dimension.Coherence, score, issues)
}

// baseResponsePenalties applies the length penalties shared by both
// dimensions. The empty and short penalties stack.
func baseResponsePenalties(response string) (float64, []string) {
	score := 1.0
	var issues []string
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		score -= penaltyEmptyResponse
		issues = append(issues, issueEmptyResponse)
	}
	if len(trimmed) < minResponseLength {
		score -= penaltyShortResponse
		issues = append(issues, issueShortResponse)
	}
	return score, issues
}

func newScore(dim dimension.Dimension, score float64, issues []string) *dimension.Score {
	reason := "all rule checks passed"
	if len(issues) > 0 {
		reason = fmt.Sprintf("rule checks failed: %s", strings.Join(issues, ", "))
	}
	return &dimension.Score{
		Dimension: dim,
		Score:     dimension.Clamp(score),
		Reason:    reason,
		Issues:    issues,
	}
}
