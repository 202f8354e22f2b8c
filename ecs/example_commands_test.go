package ecs_test

import (
	"fmt"

	"github.com/plus3/sparsecs/ecs"
)

// ExampleCommands demonstrates using command buffers to defer entity mutations.
// Storages must not change shape while an iterator over them is live, so the
// loop queues its deletes and inserts and applies them after iteration with
// Flush.
func ExampleCommands() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)

	for _, hp := range []int{0, 50, 100} {
		id := storage.Spawn()
		ecs.Components[Position](storage).Insert(id, Position{})
		ecs.Components[Health](storage).Insert(id, Health{Current: hp, Max: 100})
	}

	cmds := ecs.NewCommands()
	deadCount := 0
	for id, health := range ecs.Components[Health](storage).All() {
		if health.Current <= 0 {
			cmds.Delete(id)
			deadCount++
			continue
		}
		ecs.QueueInsert(cmds, id, Position{X: float32(health.Current)})
	}
	fmt.Printf("Queued %d dead entities for deletion\n", deadCount)
	cmds.Defer(func() { fmt.Println("Flushed") })

	if err := cmds.Flush(storage); err != nil {
		fmt.Println("flush failed:", err)
	}
	fmt.Printf("Remaining entities: %d\n", storage.Len())

	// Output:
	// Queued 1 dead entities for deletion
	// Flushed
	// Remaining entities: 2
}
