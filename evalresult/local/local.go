//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file storage implementation for evaluation results.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
)

const resultFileSuffix = ".result.json"

var _ evalresult.Manager = (*manager)(nil)

// manager implements the evalresult.Manager interface using local file storage.
type manager struct {
	baseDir string
	mu      sync.Mutex
}

// NewManager creates a new local file evaluation result manager.
// Use functional options (see evalresult option.go) to override the default directory.
func NewManager(opt ...evalresult.Option) evalresult.Manager {
	opts := evalresult.NewOptions(opt...)
	return &manager{baseDir: opts.BaseDir}
}

// Save stores an evaluation result to a local file using an atomic rename.
func (m *manager) Save(ctx context.Context, result *evalresult.Result) error {
	_ = ctx
	if result == nil {
		return errors.New("result is nil")
	}
	if result.RequestID == "" {
		return errors.New("result request id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	dir := m.requestDir(result.RequestID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := m.resultPath(result.RequestID, result.InputIndex)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// Get retrieves an evaluation result by request id and input index from a local file.
func (m *manager) Get(ctx context.Context, requestID string, inputIndex int) (*evalresult.Result, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(requestID, inputIndex)
}

// List returns all stored results for a request ordered by input index.
func (m *manager) List(ctx context.Context, requestID string) ([]*evalresult.Result, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, err := os.ReadDir(m.requestDir(requestID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*evalresult.Result{}, nil
		}
		return nil, err
	}
	indexes := make([]int, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, resultFileSuffix) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSuffix(name, resultFileSuffix))
		if err != nil {
			continue
		}
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	results := make([]*evalresult.Result, 0, len(indexes))
	for _, idx := range indexes {
		res, err := m.load(requestID, idx)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (m *manager) requestDir(requestID string) string {
	return filepath.Join(m.baseDir, requestID)
}

func (m *manager) resultPath(requestID string, inputIndex int) string {
	filename := fmt.Sprintf("%d%s", inputIndex, resultFileSuffix)
	return filepath.Join(m.requestDir(requestID), filename)
}

func (m *manager) load(requestID string, inputIndex int) (*evalresult.Result, error) {
	path := m.resultPath(requestID, inputIndex)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var res evalresult.Result
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
