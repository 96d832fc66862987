package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpImageCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewNoOpImageCache(quietLogger())

	require.NoError(t, c.SetImagePaths(ctx, 1, 1, []string{"a.jpg"}))

	paths, ok, err := c.GetImagePaths(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, paths)

	assert.NoError(t, c.Invalidate(ctx, 1))
}
