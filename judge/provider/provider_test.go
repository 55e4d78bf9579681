//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	name string
}

func (s *staticProvider) Name() string { return s.name }

func (s *staticProvider) Generate(context.Context, string) (string, error) {
	return "{}", nil
}

func TestRegisterAndNew(t *testing.T) {
	Register("static", func(_ context.Context, opts *Options) (Provider, error) {
		return &staticProvider{name: opts.ModelName}, nil
	})

	p, err := New(context.Background(), "static", WithModelName("static-model"))
	require.NoError(t, err)
	assert.Equal(t, "static-model", p.Name())
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), "nonexistent")
	assert.Error(t, err)
}

func TestBuiltinFactoriesRegistered(t *testing.T) {
	for _, name := range []string{"openai", "anthropic", "gemini"} {
		_, ok := Get(name)
		assert.True(t, ok, name)
	}
}

func TestNewOpenAI(t *testing.T) {
	p, err := New(context.Background(), "openai",
		WithModelName("gpt-test"), WithAPIKey("key"), WithBaseURL("http://localhost:1"))
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestNewAnthropic(t *testing.T) {
	p, err := New(context.Background(), "anthropic", WithAPIKey("key"))
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
}
