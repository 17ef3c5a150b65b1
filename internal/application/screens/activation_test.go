package screens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type ctxKey struct{}

func TestActivation_BindKeepsValuesAndFollowsEnd(t *testing.T) {
	a := newActivation()

	parent, cancelParent := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "v"))
	ctx, done := a.Bind(parent)
	defer done()

	// The request context ending does not abort screen work
	cancelParent()
	assert.NoError(t, ctx.Err())
	assert.Equal(t, "v", ctx.Value(ctxKey{}))

	a.End()
	assert.False(t, a.Live())
	assert.Eventually(t, func() bool { return ctx.Err() != nil }, time.Second, time.Millisecond)

	assert.NotPanics(t, a.End)
}
