package closer_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inventory-hub/go-backend/pkg/closer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFOOrder(t *testing.T) {
	cl := closer.New(time.Second)

	var order []string
	cl.Add("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	cl.Add("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, cl.Close(context.Background()))
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	cl := closer.New(time.Second)

	cl.Add("db", func(context.Context) error { return errors.New("close failed") })
	cl.Add("server", func(context.Context) error { return nil })

	err := cl.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
	assert.Contains(t, err.Error(), "close failed")
}

func TestCloser_ForcedCloseOnCanceledContext(t *testing.T) {
	cl := closer.New(100 * time.Millisecond)

	slowDone := make(chan struct{})
	cl.Add("slow", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			close(slowDone)
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := cl.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")

	select {
	case <-slowDone:
	case <-time.After(time.Second):
		t.Fatal("forced close did not cancel the slow resource")
	}
}

func TestCloser_InFlightResourceClosedOnce(t *testing.T) {
	cl := closer.New(500 * time.Millisecond)

	var calls atomic.Int32
	cl.Add("slow", func(ctx context.Context) error {
		calls.Add(1)
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := cl.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")
	assert.Equal(t, int32(1), calls.Load())
}

func TestCloser_CloseIsIdempotent(t *testing.T) {
	cl := closer.New(time.Second)

	var calls int
	cl.Add("res", func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, cl.Close(context.Background()))
	require.NoError(t, cl.Close(context.Background()))
	assert.Equal(t, 1, calls)
}
