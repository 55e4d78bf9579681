//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package evalresult

// Options holds configuration shared by file-backed result managers.
type Options struct {
	// BaseDir is the directory used to store result files.
	BaseDir string
}

// NewOptions applies functional options on top of the defaults.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		BaseDir: "evaluation_results",
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a result manager.
type Option func(*Options)

// WithBaseDir overrides the default base directory used to store results.
func WithBaseDir(dir string) Option {
	return func(m *Options) {
		m.BaseDir = dir
	}
}
