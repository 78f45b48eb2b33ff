package event

import (
	"context"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*Service, context.Context) {
	t.Helper()
	service := NewService(NewRepositoryStub(), event_bus.NewEventBus())
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "u-1"})
	return service, ctx
}

func validEvent(eventType EventType, start time.Time) SubEvent {
	return SubEvent{
		WeddingId: 1,
		Type:      eventType,
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
	}
}

func TestService_AddEvent(t *testing.T) {
	s, ctx := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	created, err := s.AddEvent(ctx, validEvent(Haldi, start))
	require.NoError(t, err)
	assert.NotZero(t, created.Id)

	found, err := s.GetEvent(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, Haldi, found.Type)
}

func TestService_AddEvent_Validation(t *testing.T) {
	s, ctx := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		event SubEvent
	}{
		{"missing wedding id", SubEvent{Type: Haldi, StartTime: start, EndTime: start.Add(time.Hour)}},
		{"unknown type", SubEvent{WeddingId: 1, Type: "brunch", StartTime: start, EndTime: start.Add(time.Hour)}},
		{"end before start", SubEvent{WeddingId: 1, Type: Haldi, StartTime: start, EndTime: start.Add(-time.Hour)}},
		{"end equals start", SubEvent{WeddingId: 1, Type: Haldi, StartTime: start, EndTime: start}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddEvent(ctx, tc.event)
			assert.ErrorIs(t, err, ErrEventDataInvalid)
		})
	}
}

func TestService_AddEvents_Atomic(t *testing.T) {
	s, ctx := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	created, err := s.AddEvents(ctx, []SubEvent{
		validEvent(Mehendi, start),
		validEvent(Sangeet, start.Add(24*time.Hour)),
		validEvent(Wedding, start.Add(48*time.Hour)),
	})
	require.NoError(t, err)
	assert.Len(t, created, 3)

	all, err := s.GetEvents(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestService_AddEvents_RejectsBatchWithInvalidEvent(t *testing.T) {
	s, ctx := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	_, err := s.AddEvents(ctx, []SubEvent{
		validEvent(Mehendi, start),
		{WeddingId: 1, Type: Sangeet, StartTime: start, EndTime: start}, // malformed
	})
	assert.ErrorIs(t, err, ErrEventDataInvalid)

	all, err := s.GetEvents(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, all, "nothing should be stored when the batch is rejected")
}

func TestService_GetEventsWithStatus(t *testing.T) {
	s, ctx := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 14, 0, 0, 0, time.UTC)

	a := validEvent(Mehendi, start)
	a.Venue.Name = "Lawn"
	b := validEvent(Sangeet, start.Add(2*time.Hour))
	b.Venue.Name = "Lawn"

	_, err := s.AddEvents(ctx, []SubEvent{a, b})
	require.NoError(t, err)

	withStatus, err := s.GetEventsWithStatus(ctx, 1)
	require.NoError(t, err)
	require.Len(t, withStatus, 2)
	for _, e := range withStatus {
		assert.Equal(t, StatusConflict, e.Status, "both overlapping events at the same venue must be in conflict")
		assert.Len(t, e.Conflicts, 2)
	}
}

func TestService_RequiresUser(t *testing.T) {
	s, _ := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	_, err := s.AddEvent(context.Background(), validEvent(Haldi, start))
	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestService_DeleteEvent(t *testing.T) {
	s, ctx := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	created, err := s.AddEvent(ctx, validEvent(Haldi, start))
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ctx, created.Id))

	_, err = s.GetEvent(ctx, created.Id)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestService_DeleteEvent_OtherUsersEventHidden(t *testing.T) {
	s, ctx := setupServiceTest(t)
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	created, err := s.AddEvent(ctx, validEvent(Haldi, start))
	require.NoError(t, err)

	otherCtx := user.WithUser(context.Background(), user.User{Id: 2, Uid: "u-2"})
	err = s.DeleteEvent(otherCtx, created.Id)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
