package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityIdEncoding(t *testing.T) {
	id := ecs.NewEntityId(67890, 12345)

	assert.Equal(t, uint32(67890), id.Index())
	assert.Equal(t, uint32(12345), id.Generation())
}

func TestEntityIdEdgeCases(t *testing.T) {
	tests := []struct {
		index      uint32
		generation uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,generation=%d", tt.index, tt.generation), func(t *testing.T) {
			id := ecs.NewEntityId(tt.index, tt.generation)
			assert.Equal(t, tt.index, id.Index())
			assert.Equal(t, tt.generation, id.Generation())
		})
	}
}

func TestEntityIdEquality(t *testing.T) {
	assert.Equal(t, ecs.NewEntityId(3, 1), ecs.NewEntityId(3, 1))
	assert.NotEqual(t, ecs.NewEntityId(3, 1), ecs.NewEntityId(3, 2))
	assert.NotEqual(t, ecs.NewEntityId(3, 1), ecs.NewEntityId(4, 1))
}

func TestEntityPoolCreate(t *testing.T) {
	pool := ecs.NewEntityPool()

	a := pool.Create()
	b := pool.Create()

	assert.Equal(t, uint32(0), a.Index())
	assert.Equal(t, uint32(1), b.Index())
	assert.True(t, pool.Alive(a))
	assert.True(t, pool.Alive(b))
	assert.Equal(t, 2, pool.Len())
}

func TestEntityPoolRecyclesWithNewGeneration(t *testing.T) {
	pool := ecs.NewEntityPool()

	a := pool.Create()
	assert.True(t, pool.Destroy(a))
	assert.False(t, pool.Alive(a))
	assert.Equal(t, 0, pool.Len())

	b := pool.Create()
	assert.Equal(t, a.Index(), b.Index())
	assert.Equal(t, a.Generation()+1, b.Generation())
	assert.NotEqual(t, a, b)
	assert.False(t, pool.Alive(a))
	assert.True(t, pool.Alive(b))
}

func TestEntityPoolDestroyStale(t *testing.T) {
	pool := ecs.NewEntityPool()

	a := pool.Create()
	assert.True(t, pool.Destroy(a))
	assert.False(t, pool.Destroy(a))

	b := pool.Create()
	assert.False(t, pool.Destroy(a))
	assert.True(t, pool.Alive(b))

	assert.False(t, pool.Destroy(ecs.NewEntityId(99, 0)))
}
