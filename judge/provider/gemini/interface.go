//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package gemini

import (
	"context"

	"google.golang.org/genai"
)

// Client is the GenAI client surface used by the provider. It exists so
// tests can substitute a fake transport.
type Client interface {
	Models() Models
}

// Models provides access to the GenAI language models.
type Models interface {
	// GenerateContent generates content for the given model, contents and configuration.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// clientWrapper implements Client over the real SDK client.
type clientWrapper struct {
	client *genai.Client
}

// Models implements Client.
func (c *clientWrapper) Models() Models {
	return &modelsWrapper{models: c.client.Models}
}

// modelsWrapper implements Models over the real SDK models service.
type modelsWrapper struct {
	models *genai.Models
}

// GenerateContent implements Models.
func (m *modelsWrapper) GenerateContent(ctx context.Context, model string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return m.models.GenerateContent(ctx, model, contents, config)
}
