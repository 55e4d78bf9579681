//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package provider provides a unified interface for constructing judge
// backends from different LLM vendors.
package provider

import (
	"context"
	"fmt"
	"sync"

	"trpc.group/trpc-go/trpc-agent-judge/judge/provider/anthropic"
	"trpc.group/trpc-go/trpc-agent-judge/judge/provider/gemini"
	"trpc.group/trpc-go/trpc-agent-judge/judge/provider/openai"
)

func init() {
	Register("openai", openaiProvider)
	Register("anthropic", anthropicProvider)
	Register("gemini", geminiProvider)
}

// Provider is the capability a judge backend exposes: send one prompt,
// receive raw text. Selection between backends is static configuration;
// nothing else in the pipeline branches on the backend name.
type Provider interface {
	// Name identifies the backend.
	Name() string
	// Generate sends the prompt and returns the raw model output.
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	_ Provider = (*openai.Provider)(nil)
	_ Provider = (*anthropic.Provider)(nil)
	_ Provider = (*gemini.Provider)(nil)
)

// Factory builds a Provider instance.
type Factory func(ctx context.Context, opts *Options) (Provider, error)

var (
	factoriesMu sync.RWMutex               // factoriesMu guards factories access.
	factories   = make(map[string]Factory) // factories stores factory name to factory mappings.
)

// Register registers a provider factory by name.
func Register(name string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = factory
}

// Get returns the factory by name or false if not found.
func Get(name string) (Factory, bool) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	factory, ok := factories[name]
	return factory, ok
}

// New constructs a Provider with the given backend name and options.
func New(ctx context.Context, name string, opt ...Option) (Provider, error) {
	opts := &Options{}
	for _, o := range opt {
		o(opts)
	}
	factory, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	return factory(ctx, opts)
}

func openaiProvider(_ context.Context, opts *Options) (Provider, error) {
	var res []openai.Option
	if opts.ModelName != "" {
		res = append(res, openai.WithModelName(opts.ModelName))
	}
	if opts.APIKey != "" {
		res = append(res, openai.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		res = append(res, openai.WithBaseURL(opts.BaseURL))
	}
	return openai.New(res...), nil
}

func anthropicProvider(_ context.Context, opts *Options) (Provider, error) {
	var res []anthropic.Option
	if opts.ModelName != "" {
		res = append(res, anthropic.WithModelName(opts.ModelName))
	}
	if opts.APIKey != "" {
		res = append(res, anthropic.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		res = append(res, anthropic.WithBaseURL(opts.BaseURL))
	}
	return anthropic.New(res...), nil
}

func geminiProvider(ctx context.Context, opts *Options) (Provider, error) {
	var res []gemini.Option
	if opts.ModelName != "" {
		res = append(res, gemini.WithModelName(opts.ModelName))
	}
	if opts.APIKey != "" {
		res = append(res, gemini.WithAPIKey(opts.APIKey))
	}
	return gemini.New(ctx, res...)
}
