//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"fmt"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
)

// Summarize builds a BatchSummary from per-input results.
// Inputs are weighted equally regardless of individual dimension counts.
func Summarize(batchID, modelName string, results []*Result) *BatchSummary {
	summary := &BatchSummary{
		BatchID:           batchID,
		ModelName:         modelName,
		TotalEvaluated:    len(results),
		ScoreDistribution: &Distribution{},
		Results:           results,
	}
	if len(results) == 0 {
		summary.Summary = "Evaluated 0 responses."
		return summary
	}

	var totalScore float64
	dimensionTotals := make(map[dimension.Dimension]float64)
	dimensionCounts := make(map[dimension.Dimension]int)
	for _, result := range results {
		totalScore += result.Score
		summary.ScoreDistribution.Add(result.Score)
		for dim, score := range result.DimensionScores {
			if score == nil {
				continue
			}
			dimensionTotals[dim] += score.Score
			dimensionCounts[dim]++
		}
	}
	summary.AverageScore = totalScore / float64(len(results))

	summary.DimensionAverages = make(map[dimension.Dimension]float64, len(dimensionTotals))
	for dim, total := range dimensionTotals {
		summary.DimensionAverages[dim] = total / float64(dimensionCounts[dim])
	}
	summary.Summary = fmt.Sprintf("Evaluated %d responses. Avg score: %.2f%%",
		len(results), summary.AverageScore*100)
	return summary
}
