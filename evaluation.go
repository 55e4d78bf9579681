//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package evaluation scores AI agent responses across five fixed
// dimensions. Instruction-following and coherence come from deterministic
// rule-based checks; hallucination-prevention, assumption-prevention and
// accuracy come from an LLM judge that silently degrades to deterministic
// heuristics when no provider is available or a call fails. Single requests
// evaluate synchronously; batches run on a bounded worker pool and are
// observed by polling.
package evaluation

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"trpc.group/trpc-go/trpc-agent-judge/aggregator"
	"trpc.group/trpc-go/trpc-agent-judge/batch"
	"trpc.group/trpc-go/trpc-agent-judge/evalinput"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
	"trpc.group/trpc-go/trpc-agent-judge/heuristic"
	"trpc.group/trpc-go/trpc-agent-judge/judge"
	"trpc.group/trpc-go/trpc-agent-judge/judge/provider"
	"trpc.group/trpc-go/trpc-agent-judge/log"
	"trpc.group/trpc-go/trpc-agent-judge/pipeline"
	"trpc.group/trpc-go/trpc-agent-judge/rulecheck"
)

// Evaluator is the public surface of the evaluation pipeline.
type Evaluator interface {
	// Evaluate scores every input synchronously, returning one result per
	// input in input order.
	Evaluate(ctx context.Context, req *evalinput.Request) ([]*evalresult.Result, error)
	// SubmitBatch validates the request and registers it for background
	// processing, returning the queued job snapshot immediately.
	SubmitBatch(ctx context.Context, req *evalinput.Request) (*batch.Progress, error)
	// BatchStatus returns the progress snapshot of a batch.
	BatchStatus(batchID string) (*batch.Progress, error)
	// BatchResult returns the summary of a completed batch.
	BatchResult(batchID string) (*evalresult.BatchSummary, error)
	// Close releases the worker pool and any storage connections.
	Close() error
}

type evaluator struct {
	opts        options
	pipeline    *pipeline.Pipeline
	coordinator *batch.Coordinator
}

var _ Evaluator = (*evaluator)(nil)

// New creates an evaluator. The context is only used to construct the judge
// provider when one is configured by name.
func New(ctx context.Context, opt ...Option) (Evaluator, error) {
	opts := newOptions(opt...)

	p := opts.provider
	if p == nil && opts.providerName != "" {
		var err error
		p, err = provider.New(ctx, opts.providerName, opts.providerOptions...)
		if err != nil {
			return nil, fmt.Errorf("create judge provider: %w", err)
		}
	}

	judgeOpts := []judge.Option{
		judge.WithFallback(heuristic.New(opts.heuristicOpts...)),
	}
	if p != nil {
		judgeOpts = append(judgeOpts, judge.WithProvider(p))
	}
	if opts.judgeTimeout > 0 {
		judgeOpts = append(judgeOpts, judge.WithTimeout(opts.judgeTimeout))
	}

	var agg *aggregator.Aggregator
	if opts.simpleAverage {
		agg = aggregator.New()
	} else {
		agg = aggregator.New(aggregator.WithWeights(opts.weights))
	}

	pipe := pipeline.New(
		pipeline.WithChecker(rulecheck.New()),
		pipeline.WithJudge(judge.New(judgeOpts...)),
		pipeline.WithAggregator(agg),
	)

	batchOpts := []batch.Option{batch.WithPipeline(pipe)}
	if opts.chunkSize > 0 {
		batchOpts = append(batchOpts, batch.WithChunkSize(opts.chunkSize))
	}
	if opts.concurrency > 0 {
		batchOpts = append(batchOpts, batch.WithConcurrency(opts.concurrency))
	}
	if opts.manager != nil {
		batchOpts = append(batchOpts, batch.WithResultManager(opts.manager))
	}
	coordinator, err := batch.New(batchOpts...)
	if err != nil {
		return nil, fmt.Errorf("create batch coordinator: %w", err)
	}

	return &evaluator{
		opts:        *opts,
		pipeline:    pipe,
		coordinator: coordinator,
	}, nil
}

// Evaluate implements Evaluator.
func (e *evaluator) Evaluate(ctx context.Context, req *evalinput.Request) ([]*evalresult.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	results := make([]*evalresult.Result, len(req.Inputs))
	for i, input := range req.Inputs {
		result := e.pipeline.Evaluate(ctx, input)
		result.RequestID = req.ID
		result.InputIndex = i
		result.ModelName = req.ModelName
		results[i] = result
		e.persist(result)
	}
	return results, nil
}

// SubmitBatch implements Evaluator.
func (e *evaluator) SubmitBatch(ctx context.Context, req *evalinput.Request) (*batch.Progress, error) {
	return e.coordinator.Submit(ctx, req)
}

// BatchStatus implements Evaluator.
func (e *evaluator) BatchStatus(batchID string) (*batch.Progress, error) {
	return e.coordinator.Status(batchID)
}

// BatchResult implements Evaluator.
func (e *evaluator) BatchResult(batchID string) (*evalresult.BatchSummary, error) {
	return e.coordinator.Result(batchID)
}

// Close implements Evaluator.
func (e *evaluator) Close() error {
	var errs *multierror.Error
	if err := e.coordinator.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("close batch coordinator: %w", err))
	}
	if closer, ok := e.opts.manager.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("close result manager: %w", err))
		}
	}
	return errs.ErrorOrNil()
}

// persist hands a result to storage without blocking the caller.
func (e *evaluator) persist(result *evalresult.Result) {
	if e.opts.manager == nil || result.RequestID == "" {
		return
	}
	go func() {
		if err := e.opts.manager.Save(context.Background(), result); err != nil {
			log.Errorf("evaluation: persist result %s.%d: %v", result.RequestID, result.InputIndex, err)
		}
	}()
}
