//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"trpc.group/trpc-go/trpc-agent-judge/internal/token"
)

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// tokenizer normalizes text the way google-research/rouge does, without stemming.
type tokenizer struct{}

// newTokenizer creates the default tokenizer.
func newTokenizer() *tokenizer {
	return &tokenizer{}
}

// Tokenize lowercases, normalizes punctuation, and splits on whitespace.
func (t *tokenizer) Tokenize(text string) []string {
	return token.Tokenize(text)
}
