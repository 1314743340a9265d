package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNow_InvokesSave(t *testing.T) {
	var calls atomic.Int32
	job := NewAutoSave("@every 5m", func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, nil)

	job.RunNow(context.Background())
	assert.Equal(t, int32(1), calls.Load())
}

func TestRunNow_SwallowsSaveError(t *testing.T) {
	job := NewAutoSave("@every 5m", func(ctx context.Context) error {
		return errors.New("mongo down")
	}, nil)

	// A failed save is logged and waited out; it must not panic or retry.
	job.RunNow(context.Background())
}

func TestStart_RejectsBadInterval(t *testing.T) {
	job := NewAutoSave("every five minutes", func(ctx context.Context) error { return nil }, nil)
	assert.Error(t, job.Start())
}

func TestStartStop(t *testing.T) {
	job := NewAutoSave("@every 1h", func(ctx context.Context) error { return nil }, nil)
	require.NoError(t, job.Start())
	job.Stop()
}
