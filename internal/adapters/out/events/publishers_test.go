package events_test

import (
	"context"
	"errors"
	"testing"

	"attendance/internal/adapters/out/events"
	"attendance/internal/core/domain/model/assignment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingPublisher struct {
	got []assignment.DomainEvent
	err error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...assignment.DomainEvent) error {
	p.got = append(p.got, events...)
	return p.err
}

func TestFanOut_PublishesToAllAndJoinsErrors(t *testing.T) {
	_, changes := trackedShift(t)
	failing := &recordingPublisher{err: errors.New("hub closed")}
	healthy := &recordingPublisher{}

	err := events.FanOut{failing, healthy}.Publish(t.Context(), changes...)

	require.ErrorContains(t, err, "hub closed")
	assert.Len(t, failing.got, 2)
	assert.Len(t, healthy.got, 2)
}

func TestFanOut_NothingToPublish(t *testing.T) {
	p := &recordingPublisher{err: errors.New("unused")}

	require.NoError(t, events.FanOut{p}.Publish(t.Context()))
	assert.Empty(t, p.got)
}

func TestLogPublisher_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	publisher := events.NewLogPublisher(zap.New(core))
	a, changes := trackedShift(t)

	require.NoError(t, publisher.Publish(t.Context(), changes[0], breach(t, a)))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, assignment.EventStatusChanged, entries[0].ContextMap()["event"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, assignment.EventGeofenceBreached, entries[1].ContextMap()["event"])
}
