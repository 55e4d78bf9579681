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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-agent-judge/evalinput"
)

type chunkParam struct {
	ctx         context.Context
	coordinator *Coordinator
	job         *job
	inputs      []*evalinput.Input
	offset      int
	wg          *sync.WaitGroup
}

func (p *chunkParam) reset() {
	p.ctx = nil
	p.coordinator = nil
	p.job = nil
	p.inputs = nil
	p.offset = 0
	p.wg = nil
}

var chunkParamPool = &sync.Pool{
	New: func() any { return new(chunkParam) },
}

func createChunkPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*chunkParam)
		if !ok {
			panic("batch chunk pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			chunkParamPool.Put(param)
		}()
		param.coordinator.processChunk(param.ctx, param.job, param.inputs, param.offset)
	})
	if err != nil {
		return nil, fmt.Errorf("create batch chunk pool: %w", err)
	}
	return pool, nil
}
