//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package token provides lexical tokenization and overlap helpers for scoring.
package token

import (
	"regexp"
	"strings"
)

var (
	// nonAlphaNumRE matches one or more non-alphanumeric characters for normalization.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// spacesRE matches one or more whitespace characters for token splitting.
	spacesRE = regexp.MustCompile(`\s+`)
	// validTokenRE matches a token consisting only of lowercase ASCII letters and digits.
	validTokenRE = regexp.MustCompile(`^[a-z0-9]+$`)
)

// stopWords holds common English words excluded from keyword comparisons.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"was": {}, "were": {}, "will": {}, "with": {},
}

// Tokenize lowercases, normalizes punctuation, and splits text into tokens.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonAlphaNumRE.ReplaceAllString(text, " ")

	parts := spacesRE.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if token == "" || !validTokenRE.MatchString(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Keywords tokenizes text and drops stop words.
func Keywords(text string) []string {
	tokens := Tokenize(text)
	keywords := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopWords[token]; ok {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// OverlapRatio returns |base ∩ other| / max(1, |base|) over unique tokens.
// The base token set is the denominator, so the ratio measures how much of
// base is covered by other.
func OverlapRatio(base, other []string) float64 {
	baseSet := make(map[string]struct{}, len(base))
	for _, token := range base {
		baseSet[token] = struct{}{}
	}
	otherSet := make(map[string]struct{}, len(other))
	for _, token := range other {
		otherSet[token] = struct{}{}
	}
	var intersection int
	for token := range baseSet {
		if _, ok := otherSet[token]; ok {
			intersection++
		}
	}
	denominator := len(baseSet)
	if denominator < 1 {
		denominator = 1
	}
	return float64(intersection) / float64(denominator)
}
