package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	a := storage.Spawn()
	b := storage.Spawn()
	ecs.Components[Position](storage).Insert(a, Position{})
	ecs.Components[Position](storage).Insert(b, Position{})

	cmds := ecs.NewCommands()
	cmds.Delete(a)
	cmds.Delete(a)
	assert.Equal(t, 2, cmds.Len())

	require.NoError(t, cmds.Flush(storage))
	assert.False(t, storage.Alive(a))
	assert.True(t, storage.Alive(b))
	assert.Equal(t, 1, ecs.Components[Position](storage).Len())
	assert.Equal(t, 0, cmds.Len())
}

func TestCommandsDeleteStale(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn()
	require.NoError(t, storage.Delete(id))

	cmds := ecs.NewCommands()
	cmds.Delete(id)
	assert.NoError(t, cmds.Flush(storage))
}

func TestCommandsInsertAndRemove(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn()
	velocities := ecs.Components[Velocity](storage)
	velocities.Insert(id, Velocity{DX: 1})

	cmds := ecs.NewCommands()
	ecs.QueueInsert(cmds, id, Health{Current: 5, Max: 10})
	ecs.QueueRemove[Velocity](cmds, id)

	// Nothing is applied before Flush
	assert.True(t, velocities.Contains(id))
	assert.False(t, ecs.Components[Health](storage).Contains(id))

	require.NoError(t, cmds.Flush(storage))
	assert.False(t, velocities.Contains(id))
	h, err := ecs.Components[Health](storage).Get(id)
	require.NoError(t, err)
	assert.Equal(t, Health{Current: 5, Max: 10}, h)
}

func TestCommandsDuringIteration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	healths := ecs.Components[Health](storage)
	for i := 0; i < 6; i++ {
		healths.Insert(storage.Spawn(), Health{Current: i % 2, Max: 1})
	}

	cmds := ecs.NewCommands()
	for id, h := range healths.All() {
		if h.Current == 0 {
			cmds.Delete(id)
		}
	}
	require.NoError(t, cmds.Flush(storage))

	assert.Equal(t, 3, storage.Len())
	assert.Equal(t, 3, healths.Len())
	for h := range healths.Iter().All() {
		assert.Equal(t, 1, h.Current)
	}
}

func TestCommandsSkipDeletedEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn()

	cmds := ecs.NewCommands()
	ecs.QueueInsert(cmds, id, Position{X: 1})
	cmds.Delete(id)
	require.NoError(t, cmds.Flush(storage))

	recycled := storage.Spawn()
	require.Equal(t, id.Index(), recycled.Index())
	assert.False(t, ecs.Components[Position](storage).Contains(recycled))
}

func TestCommandsShareErrors(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	owner := storage.Spawn()
	target := storage.Spawn()
	other := storage.Spawn()
	ecs.Components[Team](storage).Insert(owner, Team{Color: "red"})
	ecs.Components[Team](storage).Insert(target, Team{Color: "blue"})

	cmds := ecs.NewCommands()
	ecs.QueueShare[Team](cmds, owner, target)
	ecs.QueueUnshare[Team](cmds, other)
	ecs.QueueShare[Team](cmds, owner, other)

	err := cmds.Flush(storage)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecs.ErrShareConflict)
	assert.ErrorIs(t, err, ecs.ErrUnshareConflict)

	// The failing commands did not stop the one after them
	team, err := ecs.Components[Team](storage).Get(other)
	require.NoError(t, err)
	assert.Equal(t, "red", team.Color)
}

func TestCommandsUnshare(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	owner := storage.Spawn()
	member := storage.Spawn()
	teams := ecs.Components[Team](storage)
	teams.Insert(owner, Team{})
	require.NoError(t, teams.Share(owner, member))

	cmds := ecs.NewCommands()
	ecs.QueueUnshare[Team](cmds, member)
	require.NoError(t, cmds.Flush(storage))
	assert.False(t, teams.Contains(member))
}

func TestCommandsDeferRunsLast(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn()

	var aliveInDefer bool
	cmds := ecs.NewCommands()
	cmds.Defer(func() { aliveInDefer = storage.Alive(id) })
	cmds.Delete(id)
	require.NoError(t, cmds.Flush(storage))

	assert.False(t, aliveInDefer)
}

func TestCommandsDeleteBorrowed(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn()

	view, err := ecs.ReadView[Position](storage)
	require.NoError(t, err)
	defer view.Release()

	cmds := ecs.NewCommands()
	cmds.Delete(id)
	assert.ErrorIs(t, cmds.Flush(storage), ecs.ErrBorrowConflict)
	assert.True(t, storage.Alive(id))
}
