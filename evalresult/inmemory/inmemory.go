//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for evaluation results.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
)

var _ evalresult.Manager = (*Manager)(nil)

// Manager implements the evalresult.Manager interface using in-memory storage.
type Manager struct {
	mu sync.RWMutex
	// results maps request id to input index to result.
	results map[string]map[int]*evalresult.Result
}

// NewManager creates a new in-memory evaluation result manager.
func NewManager() *Manager {
	return &Manager{results: make(map[string]map[int]*evalresult.Result)}
}

// Save stores an evaluation result in memory, overwriting any previous entry
// for the same request id and input index.
func (m *Manager) Save(ctx context.Context, result *evalresult.Result) error {
	_ = ctx
	if result == nil {
		return errors.New("result is nil")
	}
	if result.RequestID == "" {
		return errors.New("result request id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	byIndex, ok := m.results[result.RequestID]
	if !ok {
		byIndex = make(map[int]*evalresult.Result)
		m.results[result.RequestID] = byIndex
	}
	byIndex[result.InputIndex] = result
	return nil
}

// Get retrieves a stored result by request id and input index.
func (m *Manager) Get(ctx context.Context, requestID string, inputIndex int) (*evalresult.Result, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	byIndex, ok := m.results[requestID]
	if !ok {
		return nil, fmt.Errorf("no results for request %s", requestID)
	}
	result, ok := byIndex[inputIndex]
	if !ok {
		return nil, fmt.Errorf("no result for request %s input %d", requestID, inputIndex)
	}
	return result, nil
}

// List returns all stored results for a request ordered by input index.
func (m *Manager) List(ctx context.Context, requestID string) ([]*evalresult.Result, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	byIndex, ok := m.results[requestID]
	if !ok {
		return []*evalresult.Result{}, nil
	}
	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	results := make([]*evalresult.Result, 0, len(indexes))
	for _, idx := range indexes {
		results = append(results, byIndex[idx])
	}
	return results, nil
}
