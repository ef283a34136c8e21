package tetris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for action := ActionTick; action <= ActionRestart; action++ {
		parsed, err := ParseAction(action.String())
		require.NoError(t, err)
		assert.Equal(t, action, parsed)
		assert.True(t, action.Valid())
	}
}

func TestParseActionUnknown(t *testing.T) {
	_, err := ParseAction("teleport")
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.False(t, Action(42).Valid())
	assert.Equal(t, "Action(42)", Action(42).String())
}
