package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Entities  int
	Teams     int
	ChunkSize int
	Parallel  bool

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Moved          int64
	Deaths         int64
	Respawns       int64
	Defectors      int64
	FinalEntities  int
	TeamScores     []int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Add accumulates one frame's counters.
func (r *Report) Add(frame FrameStats) {
	r.TotalUpdates++
	r.Moved += int64(frame.Moved)
	r.Deaths += int64(frame.Deaths)
	r.Respawns += int64(frame.Respawns)
	r.Defectors += int64(frame.Defectors)
}

// Stats summarizes frame durations. Samples is sorted by Finalize.
type Stats struct {
	Min     time.Duration
	P50     time.Duration
	P99     time.Duration
	Max     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	n := len(s.Samples)
	if n == 0 {
		return
	}
	slices.Sort(s.Samples)
	s.Min = s.Samples[0]
	s.P50 = s.Samples[n/2]
	s.P99 = s.Samples[(n-1)*99/100]
	s.Max = s.Samples[n-1]
}

const reportTemplate = `
# ECS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Teams:** {{.Teams}}
- **Chunk Size:** {{.ChunkSize}}
- **Parallel Movement:** {{.Parallel}}

## Frames
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:** min {{.UpdateTime.Min}} / p50 {{.UpdateTime.P50}} / p99 {{.UpdateTime.P99}} / max {{.UpdateTime.Max}}

## Simulation
- **Moves Applied:** {{.Moved}}
- **Deaths:** {{.Deaths}}
- **Respawns:** {{.Respawns}}
- **Team Switches:** {{.Defectors}}
- **Final Entities:** {{.FinalEntities}}
- **Team Scores:**{{range $i, $s := .TeamScores}}
  - Team {{$i}}: {{$s}}{{end}}

## Memory
- **Heap Delta:** {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} bytes
- **GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{- if .GCPauseMetrics}}
- **GC Pause:** {{nsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs}}
{{- end}}
`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 { return int64(a) - int64(b) },
	"usub": func(a, b uint32) uint32 { return a - b },
	"nsub": func(a, b uint64) time.Duration { return time.Duration(a - b) },
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
