package ecs

import (
	"github.com/kamstrup/intmap"
	"go.uber.org/multierr"
)

// Commands provides a buffer for deferred structural changes that are applied
// once iteration is over. Storages must not be mutated while an iterator over
// them is live, so loops queue their changes here instead.
type Commands struct {
	deletes []EntityId
	ops     []componentCommand
	defers  []deferCommand
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type componentCommand struct {
	entity EntityId
	apply  func(*Storage) error
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// QueueInsert queues an Insert of value on entity's T storage.
func QueueInsert[T any](c *Commands, entity EntityId, value T) {
	c.ops = append(c.ops, componentCommand{
		entity: entity,
		apply: func(s *Storage) error {
			Components[T](s).Insert(entity, value)
			return nil
		},
	})
}

// QueueRemove queues a Remove on entity's T storage.
func QueueRemove[T any](c *Commands, entity EntityId) {
	c.ops = append(c.ops, componentCommand{
		entity: entity,
		apply: func(s *Storage) error {
			Components[T](s).Remove(entity)
			return nil
		},
	})
}

// QueueShare queues target sharing owner's T component.
func QueueShare[T any](c *Commands, owner, target EntityId) {
	c.ops = append(c.ops, componentCommand{
		entity: target,
		apply: func(s *Storage) error {
			return Components[T](s).Share(owner, target)
		},
	})
}

// QueueUnshare queues dropping target's T share link.
func QueueUnshare[T any](c *Commands, target EntityId) {
	c.ops = append(c.ops, componentCommand{
		entity: target,
		apply: func(s *Storage) error {
			return Components[T](s).Unshare(target)
		},
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.deletes) + len(c.ops) + len(c.defers)
}

// Flush applies all commands to the provided storage, resetting the buffer state.
// Deletes run first; component operations on deleted entities are dropped.
// Errors from individual operations are combined and returned after every
// command has been attempted.
func (c *Commands) Flush(storage *Storage) error {
	var errs error
	deleted := intmap.NewSet[EntityId](len(c.deletes))

	for _, id := range c.deletes {
		if deleted.Has(id) || !storage.Alive(id) {
			continue
		}
		deleted.Add(id)
		errs = multierr.Append(errs, storage.Delete(id))
	}

	for _, op := range c.ops {
		if deleted.Has(op.entity) {
			continue
		}
		errs = multierr.Append(errs, op.apply(storage))
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.deletes = c.deletes[:0]
	c.ops = c.ops[:0]
	c.defers = c.defers[:0]
	return errs
}
