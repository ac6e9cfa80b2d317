package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willow-ren/larkcard/internal/model"
)

type stub struct {
	calls int
	err   error
}

func (s *stub) Deliver(_ context.Context, _ model.Message) error {
	s.calls++
	return s.err
}

func TestDeliverFansOut(t *testing.T) {
	a, b := &stub{}, &stub{}
	m := New(a, b)

	require.NoError(t, m.Deliver(context.Background(), model.Message{}))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestDeliverContinuesPastFailure(t *testing.T) {
	boom := errors.New("boom")
	a, b := &stub{err: boom}, &stub{}
	m := New(a, b)

	err := m.Deliver(context.Background(), model.Message{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, b.calls, "later deliverers still run after a failure")
}

func TestDeliverJoinsErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	m := New(&stub{err: errA}, &stub{err: errB})

	err := m.Deliver(context.Background(), model.Message{})
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))
}
