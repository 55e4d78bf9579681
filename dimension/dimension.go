//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package dimension defines the fixed evaluation dimensions and their scores.
package dimension

// Dimension identifies one of the five fixed evaluation axes.
type Dimension string

const (
	// InstructionFollowing measures how well the response follows the prompt.
	InstructionFollowing Dimension = "instruction_following"
	// HallucinationPrevention measures whether the response avoids speculative or made-up content.
	HallucinationPrevention Dimension = "hallucination_prevention"
	// AssumptionPrevention measures whether the response avoids unnecessary assumptions.
	AssumptionPrevention Dimension = "assumption_prevention"
	// Coherence measures whether the response is logically structured.
	Coherence Dimension = "coherence"
	// Accuracy measures how correctly the response answers the prompt.
	Accuracy Dimension = "accuracy"
)

// All returns the five dimensions in canonical order.
func All() []Dimension {
	return []Dimension{
		InstructionFollowing,
		HallucinationPrevention,
		AssumptionPrevention,
		Coherence,
		Accuracy,
	}
}

// Valid reports whether d is one of the five fixed dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case InstructionFollowing, HallucinationPrevention, AssumptionPrevention, Coherence, Accuracy:
		return true
	default:
		return false
	}
}

// Score holds the outcome of scoring a single dimension.
// A Score is produced once and never mutated afterward.
type Score struct {
	// Dimension identifies the scored dimension.
	Dimension Dimension `json:"dimension"`
	// Score is the numeric score in [0, 1].
	Score float64 `json:"score"`
	// Reason optionally explains the score.
	Reason string `json:"reason,omitempty"`
	// Issues lists the names of triggered checks that lowered the score.
	Issues []string `json:"issues,omitempty"`
}

// WeightConfig maps dimensions to non-negative aggregation weights.
// Weights need not sum to 1; the aggregator normalizes by their sum.
type WeightConfig map[Dimension]float64

// DefaultWeights returns the default weighted-aggregation configuration.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		InstructionFollowing:    0.20,
		HallucinationPrevention: 0.25,
		AssumptionPrevention:    0.15,
		Coherence:               0.15,
		Accuracy:                0.25,
	}
}

// Clamp constrains score to the [0, 1] range.
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
