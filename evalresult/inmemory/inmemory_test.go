//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
)

func TestSaveGetList(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, &evalresult.Result{RequestID: "req-1", InputIndex: 1, Score: 0.5}))
	require.NoError(t, m.Save(ctx, &evalresult.Result{RequestID: "req-1", InputIndex: 0, Score: 0.9}))

	got, err := m.Get(ctx, "req-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.Score)

	results, err := m.List(ctx, "req-1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	// List returns input order regardless of save order.
	assert.Equal(t, 0, results[0].InputIndex)
	assert.Equal(t, 1, results[1].InputIndex)
}

func TestSaveOverwrites(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, &evalresult.Result{RequestID: "req-1", InputIndex: 0, Score: 0.1}))
	require.NoError(t, m.Save(ctx, &evalresult.Result{RequestID: "req-1", InputIndex: 0, Score: 0.2}))

	got, err := m.Get(ctx, "req-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.2, got.Score)
}

func TestSaveInvalid(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	assert.Error(t, m.Save(ctx, nil))
	assert.Error(t, m.Save(ctx, &evalresult.Result{InputIndex: 0}))
}

func TestGetUnknown(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	_, err := m.Get(ctx, "missing", 0)
	assert.Error(t, err)

	require.NoError(t, m.Save(ctx, &evalresult.Result{RequestID: "req-1", InputIndex: 0}))
	_, err = m.Get(ctx, "req-1", 7)
	assert.Error(t, err)
}

func TestListUnknownReturnsEmpty(t *testing.T) {
	m := NewManager()
	results, err := m.List(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, results)
}
