package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDeduplicates(t *testing.T) {
	a := &ActiveAlarms{}
	assert.True(t, a.Add("Warning: Pipe needs replacement!"))
	assert.False(t, a.Add("Warning: Pipe needs replacement!"))
	assert.Equal(t, []string{"Warning: Pipe needs replacement!"}, a.Active())
}

func TestClear(t *testing.T) {
	a := &ActiveAlarms{}
	assert.False(t, a.Clear())
	a.Add("Warning: Pipe needs replacement!")
	assert.True(t, a.Clear())
	assert.Empty(t, a.Active())
	assert.False(t, a.Clear())
}
