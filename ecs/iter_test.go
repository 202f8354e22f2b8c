package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIter1(t *testing.T) {
	ids := spawnN(4)
	scores := ecs.NewSparseSet[Score]()
	for i, id := range ids {
		scores.Insert(id, Score(i*10))
	}

	it := scores.Iter()
	lower, upper := it.SizeHint()
	assert.Equal(t, 4, lower)
	assert.Equal(t, 4, upper)

	var got []Score
	for v := range it.All() {
		got = append(got, *v)
	}
	assert.Equal(t, []Score{0, 10, 20, 30}, got)

	lower, upper = it.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 0, upper)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIter1SizeHintDoesNotAdvance(t *testing.T) {
	ids := spawnN(2)
	scores := ecs.NewSparseSet[Score]()
	scores.Insert(ids[0], 1)
	scores.Insert(ids[1], 2)

	it := scores.Iter()
	it.SizeHint()
	it.SizeHint()
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, Score(1), *v)
}

func TestIter1Mutation(t *testing.T) {
	ids := spawnN(3)
	healths := ecs.NewSparseSet[Health]()
	for _, id := range ids {
		healths.Insert(id, Health{Current: 10, Max: 10})
	}

	for h := range healths.Iter().All() {
		h.Current -= 3
	}

	for _, id := range ids {
		h, err := healths.Get(id)
		require.NoError(t, err)
		assert.Equal(t, 7, h.Current)
	}
}

func TestIter1WithIdAndFilter(t *testing.T) {
	ids := spawnN(5)
	scores := ecs.NewSparseSet[Score]()
	for i, id := range ids {
		scores.Insert(id, Score(i))
	}

	seen := map[ecs.EntityId]Score{}
	for id, v := range scores.Iter().WithId().All() {
		seen[id] = *v
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, Score(3), seen[ids[3]])

	even := scores.Iter().Filtered(func(s *Score) bool { return *s%2 == 0 })
	lower, upper := even.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 5, upper)

	var got []Score
	for v := range even.All() {
		got = append(got, *v)
	}
	assert.Equal(t, []Score{0, 2, 4}, got)
}

func TestIter2Intersection(t *testing.T) {
	ids := spawnN(6)
	positions := ecs.NewSparseSet[Position]()
	velocities := ecs.NewSparseSet[Velocity]()
	for i, id := range ids {
		positions.Insert(id, Position{X: float32(i)})
		if i%2 == 1 {
			velocities.Insert(id, Velocity{DX: 1})
		}
	}

	it := ecs.Iter2(positions, velocities)
	lower, upper := it.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 3, upper, "velocities is the smaller storage and drives")

	var xs []float32
	for tup := range it.All() {
		pos, vel := tup.Values()
		pos.X += vel.DX
		xs = append(xs, pos.X)
	}
	assert.ElementsMatch(t, []float32{2, 4, 6}, xs)

	p, err := positions.Get(ids[1])
	require.NoError(t, err)
	assert.Equal(t, float32(2), p.X)
	p, err = positions.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, float32(0), p.X)
}

func TestIter2DrivingTieGoesToFirst(t *testing.T) {
	ids := spawnN(3)
	positions := ecs.NewSparseSet[Position]()
	velocities := ecs.NewSparseSet[Velocity]()
	// Same length, different dense order
	for i, id := range ids {
		positions.Insert(id, Position{X: float32(i)})
		velocities.Insert(ids[len(ids)-1-i], Velocity{})
	}

	var order []ecs.EntityId
	for id := range ecs.Iter2(positions, velocities).WithId().All() {
		order = append(order, id)
	}
	assert.Equal(t, ids, order)
}

func TestIter2SharedInNonDriving(t *testing.T) {
	ids := spawnN(7)
	owner, a, b, lonely := ids[0], ids[1], ids[2], ids[3]

	positions := ecs.NewSparseSet[Position]()
	teams := ecs.NewSparseSet[Team]()
	positions.Insert(a, Position{X: 1})
	positions.Insert(b, Position{X: 2})
	positions.Insert(lonely, Position{X: 3})

	teams.Insert(owner, Team{Color: "red"})
	for _, id := range ids[4:] {
		teams.Insert(id, Team{Color: "blue"})
	}
	require.NoError(t, teams.Share(owner, a))
	require.NoError(t, teams.Share(owner, b))

	// positions has fewer owned values, so it drives in either argument order
	want := map[ecs.EntityId]string{a: "red", b: "red"}

	got := map[ecs.EntityId]string{}
	for id, tup := range ecs.Iter2(positions, teams).WithId().All() {
		got[id] = tup.V2.Color
	}
	assert.Equal(t, want, got)

	got = map[ecs.EntityId]string{}
	for id, tup := range ecs.Iter2(teams, positions).WithId().All() {
		got[id] = tup.V1.Color
	}
	assert.Equal(t, want, got)

	// Both sharers see the same value
	for tup := range ecs.Iter2(positions, teams).All() {
		tup.V2.Color = "green"
	}
	team, err := teams.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, "green", team.Color)
}

func TestIter2SharedDrivingNotVisited(t *testing.T) {
	ids := spawnN(3)
	owner, sharer := ids[0], ids[1]

	scores := ecs.NewSparseSet[Score]()
	tags := ecs.NewSparseSet[Tag]()
	scores.Insert(owner, 1)
	require.NoError(t, scores.Share(owner, sharer))
	for _, id := range ids {
		tags.Insert(id, Tag("t"))
	}

	// scores drives with one owned value; sharer is only reachable as a probe
	var visited []ecs.EntityId
	for id := range ecs.Iter2(scores, tags).WithId().All() {
		visited = append(visited, id)
	}
	assert.Equal(t, []ecs.EntityId{owner}, visited)
}

func TestIter2Filtered(t *testing.T) {
	ids := spawnN(4)
	healths := ecs.NewSparseSet[Health]()
	names := ecs.NewSparseSet[Name]()
	for i, id := range ids {
		healths.Insert(id, Health{Current: i, Max: 3})
		names.Insert(id, Name{Value: string(rune('a' + i))})
	}

	it := ecs.Iter2(healths, names).Filtered(func(tup ecs.Tuple2[Health, Name]) bool {
		return tup.V1.Current >= 2
	})
	lower, upper := it.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 4, upper)

	var got []string
	for tup := range it.All() {
		got = append(got, tup.V2.Value)
	}
	assert.Equal(t, []string{"c", "d"}, got)
}

func TestIter3SkipsIncompleteTuples(t *testing.T) {
	ids := spawnN(5)
	positions := ecs.NewSparseSet[Position]()
	velocities := ecs.NewSparseSet[Velocity]()
	healths := ecs.NewSparseSet[Health]()

	for _, id := range ids {
		positions.Insert(id, Position{})
	}
	velocities.Insert(ids[1], Velocity{DX: 1})
	velocities.Insert(ids[2], Velocity{DX: 2})
	velocities.Insert(ids[4], Velocity{DX: 4})
	healths.Insert(ids[2], Health{Current: 2})
	healths.Insert(ids[3], Health{Current: 3})
	healths.Insert(ids[4], Health{Current: 4})

	var got []ecs.EntityId
	it := ecs.Iter3(positions, velocities, healths).WithId()
	for {
		id, tup, ok := it.Next()
		if !ok {
			break
		}
		_, vel, health := tup.Values()
		assert.Equal(t, float32(health.Current), vel.DX)
		got = append(got, id)
	}
	assert.ElementsMatch(t, []ecs.EntityId{ids[2], ids[4]}, got)

	// Exhausted iterators stay exhausted
	_, _, ok := it.Next()
	assert.False(t, ok)
}

func TestIter10(t *testing.T) {
	ids := spawnN(3)
	s1 := ecs.NewSparseSet[int8]()
	s2 := ecs.NewSparseSet[int16]()
	s3 := ecs.NewSparseSet[int32]()
	s4 := ecs.NewSparseSet[int64]()
	s5 := ecs.NewSparseSet[uint8]()
	s6 := ecs.NewSparseSet[uint16]()
	s7 := ecs.NewSparseSet[uint32]()
	s8 := ecs.NewSparseSet[uint64]()
	s9 := ecs.NewSparseSet[float32]()
	s10 := ecs.NewSparseSet[float64]()

	for i, id := range ids {
		s1.Insert(id, int8(i))
		s2.Insert(id, int16(i))
		s3.Insert(id, int32(i))
		s4.Insert(id, int64(i))
		s5.Insert(id, uint8(i))
		s6.Insert(id, uint16(i))
		s7.Insert(id, uint32(i))
		s8.Insert(id, uint64(i))
		s9.Insert(id, float32(i))
		if i != 1 {
			s10.Insert(id, float64(i))
		}
	}

	var sum float64
	count := 0
	for tup := range ecs.Iter10(s1, s2, s3, s4, s5, s6, s7, s8, s9, s10).All() {
		assert.Equal(t, float64(*tup.V1), *tup.V10)
		sum += *tup.V10
		count++
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, float64(2), sum)
}

func TestIterEmptyStorage(t *testing.T) {
	ids := spawnN(2)
	positions := ecs.NewSparseSet[Position]()
	velocities := ecs.NewSparseSet[Velocity]()
	positions.Insert(ids[0], Position{})
	positions.Insert(ids[1], Position{})

	it := ecs.Iter2(positions, velocities)
	_, upper := it.SizeHint()
	assert.Equal(t, 0, upper)
	_, ok := it.Next()
	assert.False(t, ok)
}
