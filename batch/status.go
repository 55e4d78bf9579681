//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package batch

// Status is the lifecycle state of a batch job. Jobs move
// queued -> processing -> completed or failed; terminal states are final.
type Status string

const (
	// StatusQueued means the batch passed validation and awaits workers.
	StatusQueued Status = "queued"
	// StatusProcessing means at least one worker has started.
	StatusProcessing Status = "processing"
	// StatusCompleted means every input produced a result.
	StatusCompleted Status = "completed"
	// StatusFailed means a whole-batch fault prevented processing.
	// Individual input failures never fail a batch; they are absorbed by
	// the fallback scoring paths.
	StatusFailed Status = "failed"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
