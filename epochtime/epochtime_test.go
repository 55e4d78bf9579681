//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

package epochtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochTimeRoundTrip(t *testing.T) {
	orig := EpochTime{Time: time.Unix(1735689600, 500000000).UTC()}
	b, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded EpochTime
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.WithinDuration(t, orig.Time, decoded.Time, time.Millisecond)
}

func TestEpochTimeZeroValue(t *testing.T) {
	b, err := json.Marshal(EpochTime{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))
}

func TestEpochTimeUnmarshalInvalid(t *testing.T) {
	var decoded EpochTime
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &decoded))
}
