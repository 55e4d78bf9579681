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
	"fmt"
	"strings"
)

const judgePromptHeader = `You are an expert evaluator of AI agent responses.
Evaluate the agent response below on three dimensions, each scored from 0.0 to 1.0:
- hallucination_prevention: 1.0 means no fabricated or unsupported claims.
- assumption_prevention: 1.0 means no unstated premises are taken for granted.
- accuracy: 1.0 means the response is factually correct.`

const judgePromptReference = `Judge accuracy against the reference answer provided below.`

const judgePromptNoReference = `No reference answer is available. Judge accuracy by internal plausibility rather than ground truth.`

const judgePromptFooter = `Respond with ONLY a JSON object in exactly this form, no other text:
{
  "hallucination_prevention": <number>,
  "assumption_prevention": <number>,
  "accuracy": <number>,
  "hallucination_prevention_reason": "<short justification>",
  "assumption_prevention_reason": "<short justification>",
  "accuracy_reason": "<short justification>"
}`

// buildPrompt assembles the judge prompt. The reference section is included
// only when a reference is present.
func buildPrompt(prompt, response, reference string) string {
	var sb strings.Builder
	sb.WriteString(judgePromptHeader)
	sb.WriteString("\n\n")
	if strings.TrimSpace(reference) != "" {
		sb.WriteString(judgePromptReference)
	} else {
		sb.WriteString(judgePromptNoReference)
	}
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "User prompt:\n%s\n\n", prompt)
	fmt.Fprintf(&sb, "Agent response:\n%s\n\n", response)
	if strings.TrimSpace(reference) != "" {
		fmt.Fprintf(&sb, "Reference answer:\n%s\n\n", reference)
	}
	sb.WriteString(judgePromptFooter)
	return sb.String()
}
