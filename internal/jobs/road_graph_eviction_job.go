package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultEvictionSchedule runs the eviction at the start of every tenth minute.
const DefaultEvictionSchedule = "0 */10 * * * *"

// GraphCache drops road graphs whose time to live has passed.
type GraphCache interface {
	EvictExpired() int
}

// EvictionRecorder is told how many graphs each run dropped.
type EvictionRecorder interface {
	RecordRoadGraphsEvicted(count int)
}

// RoadGraphEvictionJob frees road graphs that outlived their time to live so
// the cache does not hold every area ever planned.
type RoadGraphEvictionJob struct {
	cache    GraphCache
	recorder EvictionRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRoadGraphEvictionJob creates the eviction job. An empty schedule uses
// DefaultEvictionSchedule; recorder may be nil.
func NewRoadGraphEvictionJob(
	cache GraphCache,
	recorder EvictionRecorder,
	schedule string,
	logger *slog.Logger,
) *RoadGraphEvictionJob {
	if schedule == "" {
		schedule = DefaultEvictionSchedule
	}
	return &RoadGraphEvictionJob{
		cache:    cache,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "road_graph_eviction_job"),
	}
}

// Start schedules the eviction.
func (j *RoadGraphEvictionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Road graph eviction job started", "schedule", j.schedule)
	return nil
}

// Run evicts expired graphs once.
func (j *RoadGraphEvictionJob) Run() {
	evicted := j.cache.EvictExpired()
	if j.recorder != nil {
		j.recorder.RecordRoadGraphsEvicted(evicted)
	}
	if evicted > 0 {
		j.logger.InfoContext(context.Background(), "Road graphs evicted", "count", evicted)
	}
}

// Stop stops the eviction job and waits for a running eviction to finish.
func (j *RoadGraphEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Road graph eviction job stopped")
}
