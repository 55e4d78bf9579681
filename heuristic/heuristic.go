//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package heuristic scores agent responses on the hallucination-prevention,
// assumption-prevention and accuracy dimensions with deterministic lexical
// rules. It substitutes for the LLM judge whenever no provider is configured
// or the judge call fails, so its scores must be reproducible.
package heuristic

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/internal/rouge"
	itoken "trpc.group/trpc-go/trpc-agent-judge/internal/token"
)

const (
	phrasePenalty        = 0.15
	neutralAccuracyScore = 0.7
)

// hedgePhrases signal uncertain or speculative statements; each occurrence
// penalizes the hallucination-prevention score.
var hedgePhrases = []string{"maybe", "probably", "i think", "might be", "possibly"}

// assumptionPhrases signal unstated premises; each occurrence penalizes the
// assumption-prevention score.
var assumptionPhrases = []string{"assuming", "if we assume", "presumably"}

// Fallback scores responses with deterministic lexical heuristics.
type Fallback struct {
	opts options
}

// New creates a heuristic fallback scorer.
func New(opt ...Option) *Fallback {
	return &Fallback{opts: *newOptions(opt...)}
}

// Score evaluates the three judge dimensions for a response. The reference
// is optional; without it accuracy receives a fixed neutral score because
// correctness cannot be judged without ground truth.
func (f *Fallback) Score(ctx context.Context, response, reference string) map[dimension.Dimension]*dimension.Score {
	return map[dimension.Dimension]*dimension.Score{
		dimension.HallucinationPrevention: f.hallucinationPrevention(response),
		dimension.AssumptionPrevention:    f.assumptionPrevention(response),
		dimension.Accuracy:                f.accuracy(ctx, response, reference),
	}
}

func (f *Fallback) hallucinationPrevention(response string) *dimension.Score {
	return phrasePenaltyScore(dimension.HallucinationPrevention, response, hedgePhrases, "hedge phrase")
}

func (f *Fallback) assumptionPrevention(response string) *dimension.Score {
	return phrasePenaltyScore(dimension.AssumptionPrevention, response, assumptionPhrases, "assumption phrase")
}

func (f *Fallback) accuracy(ctx context.Context, response, reference string) *dimension.Score {
	if strings.TrimSpace(reference) == "" {
		return &dimension.Score{
			Dimension: dimension.Accuracy,
			Score:     neutralAccuracyScore,
			Reason:    "no reference provided, accuracy cannot be judged without ground truth",
		}
	}
	score, reason := f.referenceSimilarity(ctx, response, reference)
	return &dimension.Score{
		Dimension: dimension.Accuracy,
		Score:     dimension.Clamp(score),
		Reason:    reason,
	}
}

// referenceSimilarity measures how much of the reference the response covers.
func (f *Fallback) referenceSimilarity(ctx context.Context, response, reference string) (float64, string) {
	if f.opts.rougeAccuracy {
		scores, err := rouge.Compute(ctx, reference, response, rouge.WithRougeTypes(rougeAccuracyType))
		if err == nil {
			if s, ok := scores[rougeAccuracyType]; ok {
				return s.Recall, fmt.Sprintf("%s recall against reference: %.2f", rougeAccuracyType, s.Recall)
			}
		}
		// Fall through to token overlap on ROUGE failure to stay deterministic.
	}
	ratio := itoken.OverlapRatio(itoken.Keywords(reference), itoken.Keywords(response))
	return ratio, fmt.Sprintf("token overlap with reference: %.2f", ratio)
}

func phrasePenaltyScore(dim dimension.Dimension, response string, phrases []string, label string) *dimension.Score {
	lowered := strings.ToLower(response)
	score := 1.0
	var issues []string
	for _, phrase := range phrases {
		count := strings.Count(lowered, phrase)
		if count == 0 {
			continue
		}
		score -= phrasePenalty * float64(count)
		issues = append(issues, fmt.Sprintf("%s %q x%d", label, phrase, count))
	}
	reason := fmt.Sprintf("no %ss detected", label)
	if len(issues) > 0 {
		reason = fmt.Sprintf("%ss detected: %s", label, strings.Join(issues, "; "))
	}
	return &dimension.Score{
		Dimension: dim,
		Score:     dimension.Clamp(score),
		Reason:    reason,
		Issues:    issues,
	}
}
