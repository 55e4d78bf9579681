//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package evalinput defines evaluation requests and their validation.
package evalinput

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned before any processing starts.
var (
	// ErrNilRequest indicates the request itself is nil.
	ErrNilRequest = errors.New("request is nil")
	// ErrEmptyInputs indicates the request contains no inputs.
	ErrEmptyInputs = errors.New("request contains no inputs")
	// ErrNilInput indicates an input entry is nil.
	ErrNilInput = errors.New("input is nil")
	// ErrMissingPrompt indicates an input lacks a prompt.
	ErrMissingPrompt = errors.New("input prompt is required")
	// ErrMissingAgentResponse indicates an input lacks the agent response under evaluation.
	ErrMissingAgentResponse = errors.New("input agent response is required")
)

// Input is a single prompt/response pair to evaluate.
type Input struct {
	// Prompt is the instruction given to the agent.
	Prompt string `json:"prompt"`
	// AgentResponse is the agent output being judged.
	AgentResponse string `json:"agentResponse"`
	// Reference optionally carries ground truth used by the accuracy dimension.
	Reference string `json:"reference,omitempty"`
}

// Validate checks the required fields of a single input.
// An absent agent response is a validation error, not a zero score.
func (i *Input) Validate() error {
	if i == nil {
		return ErrNilInput
	}
	if strings.TrimSpace(i.Prompt) == "" {
		return ErrMissingPrompt
	}
	if i.AgentResponse == "" {
		return ErrMissingAgentResponse
	}
	return nil
}

// Request is an ordered batch of inputs submitted for evaluation.
// A request is immutable once accepted.
type Request struct {
	// ID is the caller-supplied identifier used for idempotent result lookup.
	ID string `json:"id,omitempty"`
	// ModelName labels the agent model under evaluation. It is not validated against a registry.
	ModelName string `json:"modelName,omitempty"`
	// Inputs is the ordered list of prompt/response pairs.
	Inputs []*Input `json:"inputs"`
}

// Validate checks the request and every input, rejecting before any processing.
func (r *Request) Validate() error {
	if r == nil {
		return ErrNilRequest
	}
	if len(r.Inputs) == 0 {
		return ErrEmptyInputs
	}
	for i, input := range r.Inputs {
		if err := input.Validate(); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}
	return nil
}
