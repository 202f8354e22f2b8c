package ecs_test

import (
	"fmt"

	"github.com/plus3/sparsecs/ecs"
)

// ExampleWriteView demonstrates borrowing storages for a movement pass.
// Any number of readers may hold a storage at once, but a writer needs it
// to itself.
func ExampleWriteView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	for i := 0; i < 3; i++ {
		id := storage.Spawn()
		ecs.Components[Position](storage).Insert(id, Position{X: float32(i * 10)})
		if i > 0 {
			ecs.Components[Velocity](storage).Insert(id, Velocity{DX: 1, DY: 2})
		}
	}

	positions, _ := ecs.WriteView[Position](storage)
	velocities, _ := ecs.ReadView[Velocity](storage)

	for tup := range ecs.Iter2(positions.Set(), velocities.Set()).All() {
		pos, vel := tup.Values()
		pos.X += vel.DX
		pos.Y += vel.DY
	}

	_, err := ecs.ReadView[Position](storage)
	fmt.Println("read while writing:", err != nil)

	velocities.Release()
	positions.Release()

	for id, pos := range ecs.Components[Position](storage).All() {
		fmt.Printf("entity %d at (%.0f, %.0f)\n", id.Index(), pos.X, pos.Y)
	}

	// Output:
	// read while writing: true
	// entity 0 at (0, 0)
	// entity 1 at (11, 2)
	// entity 2 at (21, 2)
}

// ExampleNonPacked2_Filtered iterates two storages and keeps only the
// entities that match a predicate.
func ExampleNonPacked2_Filtered() {
	pool := ecs.NewEntityPool()
	healths := ecs.NewSparseSet[Health]()
	names := ecs.NewSparseSet[Name]()

	for i, name := range []string{"orc", "elf", "imp"} {
		id := pool.Create()
		healths.Insert(id, Health{Current: i * 40, Max: 100})
		names.Insert(id, Name{Value: name})
	}

	wounded := ecs.Iter2(healths, names).Filtered(func(t ecs.Tuple2[Health, Name]) bool {
		return t.V1.Current < t.V1.Max/2
	})
	for t := range wounded.All() {
		fmt.Printf("%s: %d/%d\n", t.V2.Value, t.V1.Current, t.V1.Max)
	}

	// Output:
	// orc: 0/100
	// elf: 40/100
}

// ExampleSparseSet_ChunkExact processes components in fixed-size batches.
func ExampleSparseSet_ChunkExact() {
	pool := ecs.NewEntityPool()
	scores := ecs.NewSparseSet[Score]()
	for i := 1; i <= 7; i++ {
		scores.Insert(pool.Create(), Score(i))
	}

	chunks := scores.ChunkExact(3)
	for chunk := range chunks.All() {
		fmt.Println("chunk:", chunk)
	}
	fmt.Println("remainder:", chunks.Remainder())
	fmt.Println("again:", chunks.Remainder())

	// Output:
	// chunk: [1 2 3]
	// chunk: [4 5 6]
	// remainder: [7]
	// again: []
}
