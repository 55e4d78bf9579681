//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package batch drives the evaluation pipeline over many inputs with a
// bounded worker pool, tracks per-batch progress and classifies each run
// into a terminal state.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-agent-judge/evalinput"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
	"trpc.group/trpc-go/trpc-agent-judge/log"
)

var (
	// ErrNotFound is returned when a batch id is unknown.
	ErrNotFound = errors.New("batch not found")
	// ErrNotReady is returned when a batch result is requested before the
	// batch completed.
	ErrNotReady = errors.New("batch not completed")
)

// Coordinator accepts batch submissions and processes them in the
// background. Progress is observable only by polling; there is no push
// channel and no cancellation of an in-flight batch.
type Coordinator struct {
	opts options
	pool *ants.PoolWithFunc

	mu   sync.RWMutex
	jobs map[string]*job
}

// New creates a batch coordinator with a running worker pool.
func New(opt ...Option) (*Coordinator, error) {
	opts := newOptions(opt...)
	pool, err := createChunkPool(opts.concurrency)
	if err != nil {
		return nil, err
	}
	return &Coordinator{
		opts: *opts,
		pool: pool,
		jobs: make(map[string]*job),
	}, nil
}

// Submit validates the request, registers a queued job and returns its
// snapshot immediately. Validation failures are reported to the caller
// before any job exists; a rejected request never gets a batch id.
func (c *Coordinator) Submit(ctx context.Context, req *evalinput.Request) (*Progress, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	batchID := req.ID
	if batchID == "" {
		batchID = uuid.NewString()
	}
	j := newJob(batchID, req.ModelName, len(req.Inputs))
	c.mu.Lock()
	if _, ok := c.jobs[batchID]; ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("batch %s already exists", batchID)
	}
	c.jobs[batchID] = j
	c.mu.Unlock()

	// Snapshot before the background run starts so the caller always
	// observes the queued state it submitted into.
	snapshot := j.snapshot()
	go c.run(j, req.Inputs)
	return snapshot, nil
}

// Status returns the progress snapshot for a batch.
func (c *Coordinator) Status(batchID string) (*Progress, error) {
	j, err := c.lookup(batchID)
	if err != nil {
		return nil, err
	}
	return j.snapshot(), nil
}

// Result returns the summary of a completed batch. It fails with
// ErrNotReady while the batch is queued or processing, and with the
// recorded batch error when the batch failed.
func (c *Coordinator) Result(batchID string) (*evalresult.BatchSummary, error) {
	j, err := c.lookup(batchID)
	if err != nil {
		return nil, err
	}
	summary, status, jobErr := j.result()
	switch status {
	case StatusCompleted:
		return summary, nil
	case StatusFailed:
		return nil, fmt.Errorf("batch %s failed: %w", batchID, jobErr)
	default:
		return nil, fmt.Errorf("batch %s is %s: %w", batchID, status, ErrNotReady)
	}
}

// Close releases the worker pool. In-flight batches run to completion on
// their submitting goroutines only if already past pool submission;
// callers should drain batches before closing.
func (c *Coordinator) Close() error {
	c.pool.Release()
	return nil
}

func (c *Coordinator) lookup(batchID string) (*job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	j, ok := c.jobs[batchID]
	if !ok {
		return nil, fmt.Errorf("batch %s: %w", batchID, ErrNotFound)
	}
	return j, nil
}

// run partitions the inputs into chunks and fans them out to the worker
// pool, then finalizes the job. It executes on a background goroutine
// decoupled from the submitting caller.
func (c *Coordinator) run(j *job, inputs []*evalinput.Input) {
	ctx := context.Background()
	j.setStatus(StatusProcessing)

	var wg sync.WaitGroup
	for offset := 0; offset < len(inputs); offset += c.opts.chunkSize {
		end := offset + c.opts.chunkSize
		if end > len(inputs) {
			end = len(inputs)
		}
		wg.Add(1)
		param := chunkParamPool.Get().(*chunkParam)
		param.ctx = ctx
		param.coordinator = c
		param.job = j
		param.inputs = inputs[offset:end]
		param.offset = offset
		param.wg = &wg
		if err := c.pool.Invoke(param); err != nil {
			// Pool rejection is not an item failure; process the chunk
			// inline so the batch still yields one result per input.
			log.Warnf("batch %s: pool rejected chunk at offset %d, processing inline: %v", j.id, offset, err)
			c.processChunk(ctx, j, inputs[offset:end], offset)
			wg.Done()
			param.reset()
			chunkParamPool.Put(param)
		}
	}
	wg.Wait()

	if int(j.processed.Load()) != j.total {
		j.fail(fmt.Errorf("batch %s: processed %d of %d inputs", j.id, j.processed.Load(), j.total))
		return
	}
	j.complete(evalresult.Summarize(j.id, j.modelName, j.results))
	log.Infof("batch %s completed: %d inputs evaluated", j.id, j.total)
}

// processChunk evaluates a contiguous slice of inputs. Each result is
// written to its own index, so workers on different chunks never conflict.
func (c *Coordinator) processChunk(ctx context.Context, j *job, inputs []*evalinput.Input, offset int) {
	for i, input := range inputs {
		result := c.opts.pipeline.Evaluate(ctx, input)
		result.RequestID = j.id
		result.InputIndex = offset + i
		result.ModelName = j.modelName
		j.setResult(offset+i, result)
		c.persist(result)
	}
}

// persist hands a result to storage without blocking the processing path.
func (c *Coordinator) persist(result *evalresult.Result) {
	if c.opts.manager == nil {
		return
	}
	go func() {
		if err := c.opts.manager.Save(context.Background(), result); err != nil {
			log.Errorf("batch %s: persist result %d: %v", result.RequestID, result.InputIndex, err)
		}
	}()
}
