package main

import (
	"context"
	"math/rand"

	"github.com/plus3/sparsecs/ecs"
	"github.com/plus3/sparsecs/par"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

// Team is owned by a leader entity and shared by every member, so a score
// written through any member lands on the leader.
type Team struct {
	ID    int
	Score int
}

type movement = ecs.Tuple2[Position, Velocity]

// FrameStats counts what happened during one Step.
type FrameStats struct {
	Moved     int
	Deaths    int
	Respawns  int
	Defectors int
}

type World struct {
	cfg     *Config
	log     *zap.Logger
	rng     *rand.Rand
	storage *ecs.Storage
	cmds    *ecs.Commands
	leaders []ecs.EntityId
}

func NewWorld(cfg *Config, log *zap.Logger) *World {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Team](registry)

	w := &World{
		cfg:     cfg,
		log:     log,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		storage: ecs.NewStorage(registry),
		cmds:    ecs.NewCommands(),
	}

	// Leaders own the team data and never move
	teams := ecs.Components[Team](w.storage)
	for i := 0; i < cfg.Teams; i++ {
		leader := w.storage.Spawn()
		teams.Insert(leader, Team{ID: i})
		w.leaders = append(w.leaders, leader)
	}
	return w
}

// Populate spawns n members, each joined to a random team.
func (w *World) Populate(n int) error {
	for i := 0; i < n; i++ {
		if err := w.spawnMember(); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) spawnMember() error {
	id := w.storage.Spawn()
	ecs.Components[Position](w.storage).Insert(id, Position{
		X: w.rng.Float32() * 1000,
		Y: w.rng.Float32() * 1000,
	})
	// Some members stand still
	if w.rng.Intn(10) < 7 {
		ecs.Components[Velocity](w.storage).Insert(id, Velocity{
			DX: w.rng.Float32()*2 - 1,
			DY: w.rng.Float32()*2 - 1,
		})
	}
	maxHealth := w.rng.Intn(100) + 1
	ecs.Components[Health](w.storage).Insert(id, Health{Current: maxHealth, Max: maxHealth})

	leader := w.leaders[w.rng.Intn(len(w.leaders))]
	return ecs.Components[Team](w.storage).Share(leader, id)
}

// Step runs one frame: movement, damage, scoring and the deferred structural
// changes queued by them.
func (w *World) Step(ctx context.Context) (FrameStats, error) {
	var stats FrameStats

	moved, err := w.move(ctx)
	if err != nil {
		return stats, err
	}
	stats.Moved = moved

	if err := w.damage(); err != nil {
		return stats, err
	}

	if err := w.score(&stats); err != nil {
		return stats, err
	}

	if err := w.cmds.Flush(w.storage); err != nil {
		return stats, eris.Wrap(err, "flush frame commands")
	}
	return stats, nil
}

func (w *World) move(ctx context.Context) (int, error) {
	positions, err := ecs.WriteView[Position](w.storage)
	if err != nil {
		return 0, err
	}
	defer positions.Release()
	velocities, err := ecs.ReadView[Velocity](w.storage)
	if err != nil {
		return 0, err
	}
	defer velocities.Release()

	apply := func(t movement) {
		t.V1.X += t.V2.DX
		t.V1.Y += t.V2.DY
	}

	if !w.cfg.Parallel {
		n := 0
		for t := range ecs.Iter2(positions.Set(), velocities.Set()).All() {
			apply(t)
			n++
		}
		return n, nil
	}

	if err := par.ForEach[movement](ctx, ecs.Iter2(positions.Set(), velocities.Set()), apply); err != nil {
		return 0, eris.Wrap(err, "parallel movement")
	}
	return par.Count[movement](ctx, ecs.Iter2(positions.Set(), velocities.Set()))
}

// damage wears down every health value in fixed-size batches.
func (w *World) damage() error {
	healths, err := ecs.WriteView[Health](w.storage)
	if err != nil {
		return err
	}
	defer healths.Release()

	hit := func(chunk []Health) {
		for i := range chunk {
			chunk[i].Current -= w.rng.Intn(3)
		}
	}

	chunks := healths.ChunkExact(w.cfg.ChunkSize)
	for chunk := range chunks.All() {
		hit(chunk)
	}
	hit(chunks.Remainder())
	return nil
}

// score credits each living member's team, queues the dead for respawn and
// lets some of the wounded switch teams.
func (w *World) score(stats *FrameStats) error {
	healths, err := ecs.ReadView[Health](w.storage)
	if err != nil {
		return err
	}
	defer healths.Release()
	teams, err := ecs.WriteView[Team](w.storage)
	if err != nil {
		return err
	}
	defer teams.Release()
	positions, err := ecs.ReadView[Position](w.storage)
	if err != nil {
		return err
	}
	defer positions.Release()

	// Team is owned only by leaders, so it is looked up per member rather
	// than iterated; iterating it would only ever visit the leaders.
	for id, t := range ecs.Iter2(positions.Set(), healths.Set()).WithId().All() {
		health := t.V2
		if health.Current <= 0 {
			w.cmds.Delete(id)
			w.cmds.Defer(w.respawn)
			stats.Deaths++
			continue
		}

		team, err := teams.GetMut(id)
		if err != nil {
			continue
		}
		team.Score++

		if health.Current*4 < health.Max && w.rng.Float64() < w.cfg.DefectChance {
			leader := w.leaders[w.rng.Intn(len(w.leaders))]
			ecs.QueueUnshare[Team](w.cmds, id)
			ecs.QueueShare[Team](w.cmds, leader, id)
			stats.Defectors++
		}
	}
	stats.Respawns = stats.Deaths
	return nil
}

func (w *World) respawn() {
	if err := w.spawnMember(); err != nil {
		w.log.Warn("respawn failed", zap.Error(err))
	}
}

// TeamScores returns each team's score, indexed by team ID.
func (w *World) TeamScores() []int {
	scores := make([]int, len(w.leaders))
	for team := range ecs.Components[Team](w.storage).Iter().All() {
		scores[team.ID] = team.Score
	}
	return scores
}

func (w *World) Len() int {
	return w.storage.Len()
}
