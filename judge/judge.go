//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package judge scores agent responses on the hallucination-prevention,
// assumption-prevention and accuracy dimensions by asking an LLM provider
// for a structured verdict. Any provider or parse failure is absorbed by
// substituting the deterministic heuristic fallback; callers never observe
// an LLM failure as a pipeline failure.
package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/log"
)

// ErrNoProvider marks verdicts produced without any configured LLM backend.
var ErrNoProvider = errors.New("no llm provider configured")

// Judge produces LLM-based verdicts with heuristic fallback.
type Judge struct {
	opts options
}

// Verdict carries the three judge dimension scores. Fallback reports
// whether the heuristic produced them instead of the LLM, with Cause
// recording why; the distinction is for observability only and never
// changes the pipeline outcome.
type Verdict struct {
	Scores   map[dimension.Dimension]*dimension.Score
	Fallback bool
	Cause    error
}

// New creates a judge.
func New(opt ...Option) *Judge {
	return &Judge{opts: *newOptions(opt...)}
}

// Score evaluates a response on the three judge dimensions. The reference
// is optional and only informs the accuracy dimension.
func (j *Judge) Score(ctx context.Context, prompt, response, reference string) *Verdict {
	if j.opts.provider == nil {
		return j.fallbackVerdict(ctx, response, reference, ErrNoProvider)
	}
	callCtx, cancel := context.WithTimeout(ctx, j.opts.timeout)
	defer cancel()
	raw, err := j.opts.provider.Generate(callCtx, buildPrompt(prompt, response, reference))
	if err != nil {
		return j.fallbackVerdict(ctx, response, reference, fmt.Errorf("provider %s: %w", j.opts.provider.Name(), err))
	}
	scores, err := parseScores(raw)
	if err != nil {
		return j.fallbackVerdict(ctx, response, reference, fmt.Errorf("provider %s: %w", j.opts.provider.Name(), err))
	}
	return &Verdict{Scores: scores}
}

func (j *Judge) fallbackVerdict(ctx context.Context, response, reference string, cause error) *Verdict {
	log.Warnf("judge: falling back to heuristic scoring: %v", cause)
	return &Verdict{
		Scores:   j.opts.fallback.Score(ctx, response, reference),
		Fallback: true,
		Cause:    cause,
	}
}

// judgeResponse mirrors the JSON object the judge prompt requests. Score
// fields are pointers so a missing field is distinguishable from zero.
type judgeResponse struct {
	HallucinationPrevention       *float64 `json:"hallucination_prevention"`
	AssumptionPrevention          *float64 `json:"assumption_prevention"`
	Accuracy                      *float64 `json:"accuracy"`
	HallucinationPreventionReason string   `json:"hallucination_prevention_reason"`
	AssumptionPreventionReason    string   `json:"assumption_prevention_reason"`
	AccuracyReason                string   `json:"accuracy_reason"`
}

// parseScores extracts the three dimension scores from raw provider output.
// It tolerates markdown code fences and surrounding prose, but every score
// field must be present and numeric. Out-of-range values are clamped.
func parseScores(raw string) (map[dimension.Dimension]*dimension.Score, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}
	var resp judgeResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("parse judge response: %w", err)
	}
	fields := []struct {
		dim    dimension.Dimension
		score  *float64
		reason string
	}{
		{dimension.HallucinationPrevention, resp.HallucinationPrevention, resp.HallucinationPreventionReason},
		{dimension.AssumptionPrevention, resp.AssumptionPrevention, resp.AssumptionPreventionReason},
		{dimension.Accuracy, resp.Accuracy, resp.AccuracyReason},
	}
	scores := make(map[dimension.Dimension]*dimension.Score, len(fields))
	for _, f := range fields {
		if f.score == nil {
			return nil, fmt.Errorf("judge response missing field %s", f.dim)
		}
		scores[f.dim] = &dimension.Score{
			Dimension: f.dim,
			Score:     dimension.Clamp(*f.score),
			Reason:    f.reason,
		}
	}
	return scores, nil
}

// extractJSONObject strips markdown code fences and surrounding prose,
// returning the outermost JSON object in the text.
func extractJSONObject(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return "", errors.New("judge response contains no JSON object")
	}
	return trimmed[start : end+1], nil
}
