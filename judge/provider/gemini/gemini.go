//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package gemini provides a Gemini-backed judge provider.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ProviderName identifies this backend in the provider registry.
const ProviderName = "gemini"

const defaultModelName = "gemini-2.0-flash"

type options struct {
	modelName    string
	clientConfig *genai.ClientConfig
}

// Option configures the Gemini provider.
type Option func(*options)

// WithModelName sets the model used for judging.
func WithModelName(name string) Option {
	return func(o *options) {
		o.modelName = name
	}
}

// WithAPIKey sets the API key. When unset the SDK falls back to the
// GEMINI_API_KEY / GOOGLE_API_KEY environment variables.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.clientConfig.APIKey = key
	}
}

// WithClientConfig replaces the GenAI client config entirely, for Vertex AI
// or custom HTTP settings.
func WithClientConfig(config *genai.ClientConfig) Option {
	return func(o *options) {
		o.clientConfig = config
	}
}

// Provider sends judge prompts to the Gemini GenerateContent API.
type Provider struct {
	client Client
	model  string
}

// New creates a Gemini judge provider.
func New(ctx context.Context, opt ...Option) (*Provider, error) {
	o := options{
		modelName:    defaultModelName,
		clientConfig: &genai.ClientConfig{Backend: genai.BackendGeminiAPI},
	}
	for _, fn := range opt {
		fn(&o)
	}
	client, err := genai.NewClient(ctx, o.clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Provider{
		client: &clientWrapper{client: client},
		model:  o.modelName,
	}, nil
}

// Name implements the provider interface.
func (p *Provider) Name() string {
	return ProviderName
}

// Generate sends the prompt and returns the concatenated text parts of the
// first candidate.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models().GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini response contained no text")
	}
	return text, nil
}
