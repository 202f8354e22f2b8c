package ecs_test

import (
	"fmt"
	"reflect"

	"github.com/plus3/sparsecs/ecs"
)

// ExampleStorage demonstrates the basic API for managing entities and components.
// Storage owns the entity pool and keeps one sparse set per component type;
// an entity's components are looked up by its key in each of them.
func ExampleStorage() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)

	player := storage.Spawn()
	ecs.Components[Position](storage).Insert(player, Position{X: 10, Y: 20})
	ecs.Components[Health](storage).Insert(player, Health{Current: 100, Max: 100})

	pos, _ := ecs.Components[Position](storage).GetMut(player)
	fmt.Printf("Player spawned at (%.0f, %.0f)\n", pos.X, pos.Y)

	pos.X = 15
	pos.Y = 25
	fmt.Printf("Player moved to (%.0f, %.0f)\n", pos.X, pos.Y)

	hasVel := storage.HasComponent(player, reflect.TypeFor[Velocity]())
	fmt.Printf("Has velocity: %v\n", hasVel)

	if err := storage.Delete(player); err == nil {
		fmt.Println("Player deleted")
	}
	fmt.Printf("Alive: %v\n", storage.Alive(player))

	// Output:
	// Player spawned at (10, 20)
	// Player moved to (15, 25)
	// Has velocity: false
	// Player deleted
	// Alive: false
}

// ExampleSparseSet_Remove shows what Remove reports for owned and shared slots.
func ExampleSparseSet_Remove() {
	pool := ecs.NewEntityPool()
	owner := pool.Create()
	sharer := pool.Create()

	scores := ecs.NewSparseSet[Score]()
	scores.Insert(owner, 42)
	_ = scores.Share(owner, sharer)

	old, _ := scores.Remove(sharer)
	fmt.Println("sharer was shared:", old.Kind == ecs.WasShared)

	old, _ = scores.Remove(owner)
	fmt.Println("owner was owned:", old.Kind == ecs.WasOwned, old.Value)

	// Output:
	// sharer was shared: true
	// owner was owned: true 42
}
