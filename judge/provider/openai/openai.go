//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-backed judge provider.
package openai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// ProviderName identifies this backend in the provider registry.
const ProviderName = "openai"

const defaultModelName = "gpt-4o-mini"

type options struct {
	modelName string
	apiKey    string
	baseURL   string
}

// Option configures the OpenAI provider.
type Option func(*options)

// WithModelName sets the model used for judging.
func WithModelName(name string) Option {
	return func(o *options) {
		o.modelName = name
	}
}

// WithAPIKey sets the API key. When unset the SDK falls back to the
// OPENAI_API_KEY environment variable.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// Provider sends judge prompts to the OpenAI chat completions API.
type Provider struct {
	client openai.Client
	model  string
}

// New creates an OpenAI judge provider.
func New(opt ...Option) *Provider {
	o := options{modelName: defaultModelName}
	for _, fn := range opt {
		fn(&o)
	}
	var clientOpts []option.RequestOption
	if o.apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(o.apiKey))
	}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.baseURL))
	}
	return &Provider{
		client: openai.NewClient(clientOpts...),
		model:  o.modelName,
	}
}

// Name implements the provider interface.
func (p *Provider) Name() string {
	return ProviderName
}

// Generate sends the prompt as a single user message and returns the raw
// completion text.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
