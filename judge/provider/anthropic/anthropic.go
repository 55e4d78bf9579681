//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package anthropic provides an Anthropic-backed judge provider.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ProviderName identifies this backend in the provider registry.
const ProviderName = "anthropic"

const (
	defaultModelName = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
)

type options struct {
	modelName string
	apiKey    string
	baseURL   string
	maxTokens int64
}

// Option configures the Anthropic provider.
type Option func(*options)

// WithModelName sets the model used for judging.
func WithModelName(name string) Option {
	return func(o *options) {
		o.modelName = name
	}
}

// WithAPIKey sets the API key. When unset the SDK falls back to the
// ANTHROPIC_API_KEY environment variable.
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

// WithMaxTokens bounds the judge response length.
func WithMaxTokens(maxTokens int64) Option {
	return func(o *options) {
		o.maxTokens = maxTokens
	}
}

// Provider sends judge prompts to the Anthropic messages API.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// New creates an Anthropic judge provider.
func New(opt ...Option) *Provider {
	o := options{modelName: defaultModelName, maxTokens: defaultMaxTokens}
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
		client:    anthropic.NewClient(clientOpts...),
		model:     o.modelName,
		maxTokens: o.maxTokens,
	}
}

// Name implements the provider interface.
func (p *Provider) Name() string {
	return ProviderName
}

// Generate sends the prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}
	var sb strings.Builder
	for _, content := range message.Content {
		if block, ok := content.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic message contained no text")
	}
	return sb.String(), nil
}
