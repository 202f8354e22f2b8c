package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testWorld(t *testing.T, parallel bool) *World {
	t.Helper()
	cfg := defaultConfig()
	cfg.Entities = 300
	cfg.Teams = 4
	cfg.ChunkSize = 7
	cfg.DefectChance = 1
	cfg.Parallel = parallel

	w := NewWorld(cfg, zap.NewNop())
	require.NoError(t, w.Populate(cfg.Entities))
	return w
}

func TestWorldPopulate(t *testing.T) {
	w := testWorld(t, false)
	assert.Equal(t, 304, w.Len())
	assert.Equal(t, 300, ecs.Components[Position](w.storage).Len())
	assert.Equal(t, 4, ecs.Components[Team](w.storage).Len(), "only leaders own team data")

	members := 0
	for id := range ecs.Components[Position](w.storage).All() {
		assert.True(t, ecs.Components[Team](w.storage).IsShared(id))
		members++
	}
	assert.Equal(t, 300, members)
}

func TestWorldStepKeepsPopulation(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		w := testWorld(t, parallel)

		var deaths int
		for i := 0; i < 200; i++ {
			stats, err := w.Step(context.Background())
			require.NoError(t, err)
			assert.Equal(t, stats.Deaths, stats.Respawns)
			assert.Positive(t, stats.Moved)
			deaths += stats.Deaths
		}

		assert.Positive(t, deaths, "damage should kill someone within 200 frames")
		assert.Equal(t, 304, w.Len(), "every death is respawned")

		total := 0
		for _, s := range w.TeamScores() {
			total += s
		}
		assert.Positive(t, total)
	}
}

func TestWorldMoveMatchesSequential(t *testing.T) {
	seq := testWorld(t, false)
	parl := testWorld(t, true)

	n1, err := seq.move(context.Background())
	require.NoError(t, err)
	n2, err := parl.move(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n1, n2)

	assert.Equal(t,
		ecs.Components[Position](seq.storage).Values(),
		ecs.Components[Position](parl.storage).Values(),
	)
}

func TestWorldStepReleasesViews(t *testing.T) {
	w := testWorld(t, true)
	_, err := w.Step(context.Background())
	require.NoError(t, err)

	v, err := ecs.WriteView[Team](w.storage)
	require.NoError(t, err)
	v.Release()
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Teams: 2, TeamScores: []int{5, 7}}
	r.Add(FrameStats{Moved: 3, Deaths: 1, Respawns: 1})
	r.Add(FrameStats{Moved: 2})

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "**Total Updates:** 2")
	assert.Contains(t, buf.String(), "**Moves Applied:** 5")
	assert.Contains(t, buf.String(), "Team 1: 7")
	assert.NotContains(t, buf.String(), "GC Pause")
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{5, 1, 3, 2, 4}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.P50)
	assert.Equal(t, time.Duration(4), s.P99)
	assert.Equal(t, time.Duration(5), s.Max)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Max)
}
