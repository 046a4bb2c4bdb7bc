package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepeater_DefaultInterval(t *testing.T) {
	r := NewRepeater(nil, func(time.Time) bool { return true })
	assert.Equal(t, DefaultInterval, r.Interval())
	assert.Equal(t, DefaultInterval, NewRepeater(&Config{}, nil).Interval())
	assert.Nil(t, r.Done())
	assert.False(t, r.Running())
}

func TestRepeater_ActionEndsRun(t *testing.T) {
	var calls int32
	r := NewRepeater(&Config{Interval: time.Millisecond}, func(time.Time) bool {
		return atomic.AddInt32(&calls, 1) < 5
	})

	require.NoError(t, r.Start(context.Background()))

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("repeater did not finish")
	}
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
	assert.False(t, r.Running())
}

func TestRepeater_ContextCancel(t *testing.T) {
	r := NewRepeater(&Config{Interval: 5 * time.Millisecond}, func(time.Time) bool { return true })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.NoError(t, r.Start(ctx))

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("repeater did not stop on context cancellation")
	}
}

func TestRepeater_NoActionAfterStop(t *testing.T) {
	var calls int32
	r := NewRepeater(&Config{Interval: time.Millisecond}, func(time.Time) bool {
		atomic.AddInt32(&calls, 1)
		return true
	})

	for i := 0; i < 20; i++ {
		require.NoError(t, r.Start(context.Background()))
		time.Sleep(3 * time.Millisecond)
		r.Stop()

		after := atomic.LoadInt32(&calls)
		time.Sleep(5 * time.Millisecond)
		assert.Equal(t, after, atomic.LoadInt32(&calls), "action ran after Stop (round %d)", i)
	}
}

func TestRepeater_StartWhileRunning(t *testing.T) {
	r := NewRepeater(&Config{Interval: time.Hour}, func(time.Time) bool { return true })
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	assert.True(t, r.Running())
	assert.ErrorIs(t, r.Start(context.Background()), ErrAlreadyRunning)
}

func TestRepeater_StopIsIdempotent(t *testing.T) {
	r := NewRepeater(&Config{Interval: time.Hour}, func(time.Time) bool { return true })
	r.Stop()

	require.NoError(t, r.Start(context.Background()))
	r.Stop()
	r.Stop()
	assert.False(t, r.Running())

	// A stopped repeater can be started again.
	require.NoError(t, r.Start(context.Background()))
	assert.True(t, r.Running())
	r.Stop()
}
