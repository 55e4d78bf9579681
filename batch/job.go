//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"sync"
	"sync/atomic"

	"trpc.group/trpc-go/trpc-agent-judge/epochtime"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
)

// job is the in-memory state of one submitted batch. Workers mutate it
// through index-addressed result writes and an atomic processed counter;
// status transitions take the mutex.
type job struct {
	id        string
	modelName string
	total     int

	processed atomic.Int64

	// results is preallocated to total and written once per index, so
	// concurrent workers never contend or duplicate entries.
	results []*evalresult.Result

	mu        sync.RWMutex
	status    Status
	err       error
	summary   *evalresult.BatchSummary
	createdAt *epochtime.EpochTime
	updatedAt *epochtime.EpochTime
}

func newJob(id, modelName string, total int) *job {
	now := epochtime.Now()
	return &job{
		id:        id,
		modelName: modelName,
		total:     total,
		results:   make([]*evalresult.Result, total),
		status:    StatusQueued,
		createdAt: now,
		updatedAt: now,
	}
}

// Progress is the externally visible snapshot of a batch job.
type Progress struct {
	BatchID   string `json:"batch_id"`
	Status    Status `json:"status"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Error     string `json:"error,omitempty"`
}

func (j *job) snapshot() *Progress {
	j.mu.RLock()
	defer j.mu.RUnlock()
	p := &Progress{
		BatchID:   j.id,
		Status:    j.status,
		Total:     j.total,
		Processed: int(j.processed.Load()),
	}
	if j.err != nil {
		p.Error = j.err.Error()
	}
	return p
}

// setResult records the result for one input and bumps the progress
// counter. Each index is written exactly once.
func (j *job) setResult(index int, result *evalresult.Result) {
	j.results[index] = result
	j.processed.Add(1)
}

func (j *job) setStatus(status Status) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status.Terminal() {
		return
	}
	j.status = status
	j.updatedAt = epochtime.Now()
}

func (j *job) complete(summary *evalresult.BatchSummary) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status.Terminal() {
		return
	}
	j.status = StatusCompleted
	j.summary = summary
	j.updatedAt = epochtime.Now()
}

func (j *job) fail(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status.Terminal() {
		return
	}
	j.status = StatusFailed
	j.err = err
	j.updatedAt = epochtime.Now()
}

// result returns the completed summary, or the current status when the
// batch is not yet (or never will be) completed.
func (j *job) result() (*evalresult.BatchSummary, Status, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.summary, j.status, j.err
}
