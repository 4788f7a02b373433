package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryndalv/skein/internal/cache/mocks"
)

func TestContextNoCacheConfigured(t *testing.T) {
	t.Parallel()

	// WHEN
	cch := Ctx(context.Background())

	// THEN
	require.NotNil(t, cch)
	assert.IsType(t, noopCache{}, cch)
}

func TestContextCacheConfigured(t *testing.T) {
	t.Parallel()

	// GIVEN
	ctx := WithContext(context.Background(), &mocks.CacheMock{})

	// WHEN
	cch := Ctx(ctx)

	// THEN
	require.NotNil(t, cch)
	assert.IsType(t, &mocks.CacheMock{}, cch)
}

func TestContextCacheIsNotConfiguredTwice(t *testing.T) {
	t.Parallel()

	// GIVEN
	cch1 := &mocks.CacheMock{}
	cch2 := &mocks.CacheMock{}

	ctx := context.Background()

	// WHEN
	ctx1 := WithContext(ctx, cch1)
	ctx2 := WithContext(ctx1, cch1)
	ctx3 := WithContext(ctx2, cch2)

	// THEN
	assert.Equal(t, ctx1, ctx2)
	assert.NotEqual(t, ctx2, ctx3)

	assert.Same(t, cch1, Ctx(ctx1))
	assert.Same(t, cch1, Ctx(ctx2))
	assert.Same(t, cch2, Ctx(ctx3))
}
