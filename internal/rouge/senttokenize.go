//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// englishSentenceTokenizerOnce ensures the Punkt model is loaded once.
	englishSentenceTokenizerOnce sync.Once
	// englishSentenceTokenizer holds the initialized sentence tokenizer instance.
	englishSentenceTokenizer *sentences.DefaultSentenceTokenizer
	// englishSentenceTokenizerErr caches any initialization error.
	englishSentenceTokenizerErr error
)

// sentTokenizeEnglish splits English text into sentences using Punkt training data.
func sentTokenizeEnglish(text string) ([]string, error) {
	englishSentenceTokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			englishSentenceTokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			englishSentenceTokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		englishSentenceTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if englishSentenceTokenizerErr != nil {
		return nil, englishSentenceTokenizerErr
	}
	if englishSentenceTokenizer == nil {
		return nil, fmt.Errorf("english sentence tokenizer is nil")
	}

	raw := englishSentenceTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
