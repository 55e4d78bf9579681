//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package pipeline runs the full five-dimension evaluation for a single
// input: rule-based checks for instruction-following and coherence, the LLM
// judge (or its heuristic fallback) for the remaining three dimensions, and
// score aggregation.
package pipeline

import (
	"context"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/epochtime"
	"trpc.group/trpc-go/trpc-agent-judge/evalinput"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
)

// Pipeline evaluates one input across all five dimensions.
type Pipeline struct {
	opts options
}

// New creates a pipeline. Without options it uses the default rule checker,
// a judge with no provider (heuristic scoring only) and weighted
// aggregation with the default weights.
func New(opt ...Option) *Pipeline {
	return &Pipeline{opts: *newOptions(opt...)}
}

// Evaluate scores one input. Identity fields (request id, input index) are
// left for the caller to stamp. Individual judge failures are absorbed by
// the fallback path, so evaluation itself cannot fail once the input has
// passed validation.
func (p *Pipeline) Evaluate(ctx context.Context, input *evalinput.Input) *evalresult.Result {
	scores := make(map[dimension.Dimension]*dimension.Score, len(dimension.All()))
	for dim, s := range p.opts.checker.Check(input.Prompt, input.AgentResponse) {
		scores[dim] = s
	}
	verdict := p.opts.judge.Score(ctx, input.Prompt, input.AgentResponse, input.Reference)
	for dim, s := range verdict.Scores {
		scores[dim] = s
	}
	return &evalresult.Result{
		DimensionScores:   scores,
		Score:             p.opts.aggregator.Aggregate(scores),
		CreationTimestamp: epochtime.Now(),
	}
}
