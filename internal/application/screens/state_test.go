package screens

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_SingleFlight(t *testing.T) {
	var a Action
	assert.Equal(t, ActionIdle, a.State().Phase)

	assert.True(t, a.Begin())
	assert.False(t, a.Begin())
	assert.True(t, a.Submitting())

	a.Settle(errors.New("boom"))
	assert.Equal(t, ActionState{Phase: ActionSettled, Outcome: OutcomeFailure}, a.State())

	assert.True(t, a.Begin())
	a.Settle(nil)
	assert.Equal(t, ActionState{Phase: ActionSettled, Outcome: OutcomeSuccess}, a.State())
}

func TestCollection_ItemsReturnsCopy(t *testing.T) {
	var c Collection[string]
	assert.Equal(t, PhaseIdle, c.Phase())

	assert.True(t, c.begin())
	assert.False(t, c.begin())
	c.succeed([]string{"b", "a"})

	items := c.Items()
	items[0] = "mutated"

	assert.Equal(t, []string{"b", "a"}, c.Items())
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestCollection_FailClearsItems(t *testing.T) {
	var c Collection[int]
	c.begin()
	c.succeed([]int{1, 2})
	c.begin()
	c.fail()

	assert.Empty(t, c.Items())
	assert.Equal(t, PhaseError, c.Phase())
}
