//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package provider

// Options holds the resolved configuration passed to a provider factory.
type Options struct {
	// ModelName selects the backend model; each backend has its own default.
	ModelName string
	// APIKey authenticates against the backend. When empty, each backend
	// falls back to its conventional environment variable.
	APIKey string
	// BaseURL overrides the backend endpoint for proxies and gateways.
	BaseURL string
}

// Option configures provider construction.
type Option func(*Options)

// WithModelName sets the backend model name.
func WithModelName(name string) Option {
	return func(o *Options) {
		o.ModelName = name
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.APIKey = key
	}
}

// WithBaseURL sets the backend endpoint.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}
