package jobs

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGraphCache struct{ mock.Mock }

func (m *MockGraphCache) EvictExpired() int {
	return m.Called().Int(0)
}

type MockEvictionRecorder struct{ mock.Mock }

func (m *MockEvictionRecorder) RecordRoadGraphsEvicted(count int) {
	m.Called(count)
}

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j *fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.log = append(*j.log, "start "+j.name)
	return nil
}

func (j *fakeJob) Stop() {
	*j.log = append(*j.log, "stop "+j.name)
}

func TestRoadGraphEvictionJob_Run(t *testing.T) {
	t.Run("should report evicted graphs", func(t *testing.T) {
		cache := &MockGraphCache{}
		recorder := &MockEvictionRecorder{}
		cache.On("EvictExpired").Return(3).Once()
		recorder.On("RecordRoadGraphsEvicted", 3).Once()

		job := NewRoadGraphEvictionJob(cache, recorder, "", slog.New(slog.DiscardHandler))
		job.Run()

		cache.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("should run without a recorder", func(t *testing.T) {
		cache := &MockGraphCache{}
		cache.On("EvictExpired").Return(0).Once()

		job := NewRoadGraphEvictionJob(cache, nil, "", slog.New(slog.DiscardHandler))

		assert.NotPanics(t, job.Run)
		cache.AssertExpectations(t)
	})
}

func TestRoadGraphEvictionJob_Start(t *testing.T) {
	t.Run("should default the schedule", func(t *testing.T) {
		job := NewRoadGraphEvictionJob(&MockGraphCache{}, nil, "", slog.New(slog.DiscardHandler))

		assert.Equal(t, DefaultEvictionSchedule, job.schedule)
		require.NoError(t, job.Start())
		job.Stop()
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := NewRoadGraphEvictionJob(&MockGraphCache{}, nil, "every now and then", slog.New(slog.DiscardHandler))

		require.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should stop jobs in reverse order", func(t *testing.T) {
		var log []string
		jm := NewJobManager(&fakeJob{name: "a", log: &log}, &fakeJob{name: "b", log: &log})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
	})

	t.Run("should stop started jobs when one fails to start", func(t *testing.T) {
		var log []string
		boom := errors.New("boom")
		jm := NewJobManager(&fakeJob{name: "a", log: &log}, &fakeJob{name: "b", startErr: boom, log: &log})

		err := jm.StartAll()

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"start a", "stop a"}, log)
	})
}
