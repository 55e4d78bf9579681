//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides evaluation result types and their persistence contract.
package evalresult

import (
	"context"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/epochtime"
)

// Result is the evaluation outcome for a single input.
type Result struct {
	// RequestID identifies the evaluation request that produced this result.
	RequestID string `json:"requestId,omitempty"`
	// InputIndex is the position of the input within the request.
	InputIndex int `json:"inputIndex"`
	// ModelName labels the agent model under evaluation.
	ModelName string `json:"modelName,omitempty"`
	// DimensionScores maps each dimension to its score.
	DimensionScores map[dimension.Dimension]*dimension.Score `json:"dimensionScores,omitempty"`
	// Score is the aggregate scalar score in [0, 1].
	Score float64 `json:"score"`
	// CreationTimestamp records when this result was produced.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// Distribution counts per-input aggregate scores by quality bucket.
type Distribution struct {
	// Excellent counts scores >= 0.90.
	Excellent int `json:"excellent"`
	// Good counts scores in [0.70, 0.90).
	Good int `json:"good"`
	// Fair counts scores in [0.50, 0.70).
	Fair int `json:"fair"`
	// Poor counts scores < 0.50.
	Poor int `json:"poor"`
}

// Total returns the sum of all bucket counts.
func (d *Distribution) Total() int {
	return d.Excellent + d.Good + d.Fair + d.Poor
}

// Add places one aggregate score into its bucket.
func (d *Distribution) Add(score float64) {
	switch {
	case score >= 0.90:
		d.Excellent++
	case score >= 0.70:
		d.Good++
	case score >= 0.50:
		d.Fair++
	default:
		d.Poor++
	}
}

// BatchSummary aggregates the results of a completed batch.
type BatchSummary struct {
	// BatchID identifies the batch.
	BatchID string `json:"batchId,omitempty"`
	// ModelName labels the agent model under evaluation.
	ModelName string `json:"modelName,omitempty"`
	// TotalEvaluated is the number of inputs evaluated.
	TotalEvaluated int `json:"totalEvaluated"`
	// AverageScore is the mean of per-input aggregate scores.
	AverageScore float64 `json:"averageScore"`
	// DimensionAverages holds the mean score per dimension across all inputs.
	DimensionAverages map[dimension.Dimension]float64 `json:"dimensionAverages,omitempty"`
	// ScoreDistribution buckets per-input aggregate scores by quality.
	ScoreDistribution *Distribution `json:"scoreDistribution,omitempty"`
	// Results holds the individual per-input results.
	Results []*Result `json:"results,omitempty"`
	// Summary is a human-readable one-line description of the batch outcome.
	Summary string `json:"summary,omitempty"`
}

// Manager defines the interface for persisting evaluation results.
// The pipeline hands results off and never blocks on persistence success.
type Manager interface {
	// Save stores a single per-input result keyed by request id and input index.
	Save(ctx context.Context, result *Result) error
	// Get retrieves a stored result by request id and input index.
	Get(ctx context.Context, requestID string, inputIndex int) (*Result, error)
	// List returns all stored results for a request in input order.
	List(ctx context.Context, requestID string) ([]*Result, error)
}
