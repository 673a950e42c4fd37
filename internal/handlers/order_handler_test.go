package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogCheckoutFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	defer zap.ReplaceGlobals(prev)

	logCheckoutFailure("a2f6c3d1", errors.New("gateway timeout"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "checkout preference failed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "a2f6c3d1", fields["order"])
	assert.Equal(t, "gateway timeout", fields["error"])
}
