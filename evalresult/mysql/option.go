//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package mysql

import "time"

const (
	defaultTablePrefix = "judge_"
	defaultInitTimeout = 10 * time.Second
)

type options struct {
	dsn         string
	tablePrefix string
	skipDBInit  bool
	initTimeout time.Duration
}

// Option configures the MySQL evaluation result manager.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{
		tablePrefix: defaultTablePrefix,
		initTimeout: defaultInitTimeout,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithDSN sets the MySQL data source name used to open the connection.
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithTablePrefix sets the prefix prepended to the result table name.
func WithTablePrefix(prefix string) Option {
	return func(o *options) {
		o.tablePrefix = prefix
	}
}

// WithSkipDBInit skips schema creation on startup. Use it when the table
// is managed externally.
func WithSkipDBInit(skip bool) Option {
	return func(o *options) {
		o.skipDBInit = skip
	}
}

// WithInitTimeout bounds the schema creation performed on startup.
func WithInitTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.initTimeout = timeout
	}
}
