package ecs_test

import (
	"errors"
	"fmt"

	"github.com/plus3/sparsecs/ecs"
)

// ExampleSparseSet_Share shows that share links are followed on every
// lookup. Re-pointing one link changes what every entity behind it sees.
func ExampleSparseSet_Share() {
	pool := ecs.NewEntityPool()
	o1, o2, s1, s2 := pool.Create(), pool.Create(), pool.Create(), pool.Create()

	values := ecs.NewSparseSet[uint32]()
	values.Insert(o1, 1)
	values.Insert(o2, 2)

	_ = values.Share(o1, s1)
	_ = values.Share(s1, s2)
	v, _ := values.Get(s2)
	fmt.Println("s2:", v)

	_ = values.Unshare(s1)
	_, err := values.Get(s2)
	fmt.Println("s2 after unshare:", errors.Is(err, ecs.ErrNotFound))

	_ = values.Share(o2, s1)
	v1, _ := values.Get(s1)
	v2, _ := values.Get(s2)
	fmt.Println("s1:", v1, "s2:", v2)

	// Output:
	// s2: 1
	// s2 after unshare: true
	// s1: 2 s2: 2
}
