package asset

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingLifecycle(t *testing.T) {
	h := NewPending[int]("answer")
	assert.Equal(t, StatePending, h.State())
	assert.False(t, h.Ready())
	assert.ErrorIs(t, h.Err(), ErrNotReady)

	v, ok := h.Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	require.NoError(t, h.Resolve(42))
	v, ok = h.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.NoError(t, h.Err())

	assert.ErrorIs(t, h.Resolve(7), ErrAlreadySettled)
	assert.ErrorIs(t, h.Fail(errors.New("late")), ErrAlreadySettled)
	v, _ = h.Get()
	assert.Equal(t, 42, v)
}

func TestFail(t *testing.T) {
	boom := errors.New("boom")
	h := NewPending[string]("tex")
	require.NoError(t, h.Fail(boom))

	assert.Equal(t, StateFailed, h.State())
	assert.ErrorIs(t, h.Err(), boom)
	assert.Contains(t, h.Err().Error(), "tex")
	_, ok := h.Get()
	assert.False(t, ok)
}

func TestLoaded(t *testing.T) {
	h := Loaded("cfg", 3.5)
	assert.True(t, h.Ready())
	assert.Equal(t, "cfg", h.Name())
}

func TestLoadWithoutPool(t *testing.T) {
	release := make(chan struct{})
	h := Load[int](nil, "slow", func() (int, error) {
		<-release
		return 9, nil
	})
	assert.Equal(t, StatePending, h.State())

	close(release)
	assert.Eventually(t, h.Ready, time.Second, time.Millisecond)
	v, _ := h.Get()
	assert.Equal(t, 9, v)
}

func TestLoadOnPool(t *testing.T) {
	pool := worker.NewDynamicWorkerPool(2, 16, time.Second)

	ok := Load(pool, "ok", func() (string, error) { return "done", nil })
	bad := Load(pool, "bad", func() (string, error) { return "", errors.New("missing file") })

	assert.Eventually(t, ok.Ready, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool { return bad.State() == StateFailed }, time.Second, time.Millisecond)
	assert.ErrorContains(t, bad.Err(), "missing file")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "loaded", StateLoaded.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "State(9)", State(9).String())
}
