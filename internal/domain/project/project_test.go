package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	t.Run("valid project", func(t *testing.T) {
		p, err := NewProject("P100", "Line expansion")
		require.NoError(t, err)
		assert.Equal(t, "P100", p.NoProject)
		assert.Equal(t, ProjectStatusActive, p.Status)
		assert.True(t, p.IsActive())
	})

	t.Run("empty project number", func(t *testing.T) {
		_, err := NewProject("", "anything")
		assert.Error(t, err)
	})
}

func TestProjectClose(t *testing.T) {
	p, err := NewProject("P100", "")
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.Equal(t, ProjectStatusClosed, p.Status)
	assert.False(t, p.IsActive())

	assert.Error(t, p.Close())
}
