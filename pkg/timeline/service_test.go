package timeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/event"
	"github.com/Bhavesh-Anc/eventkaro/pkg/payment"
	"github.com/Bhavesh-Anc/eventkaro/pkg/task"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var svcNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	timeline *Service
	events   *event.Service
	tasks    *task.Service
	payments *payment.Service
	ctx      context.Context
}

func setupServiceTest(t *testing.T) serviceFixture {
	t.Helper()
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: svcNow}

	events := event.NewService(event.NewRepositoryStub(), bus)
	tasks := task.NewService(task.NewRepositoryStub(), bus, clock)
	payments := payment.NewService(payment.NewRepositoryStub(), bus, clock)

	ctx := user.WithUser(context.Background(), user.User{
		Id:  1,
		Uid: "u-1",
		Settings: user.Settings{
			Timezone: "Asia/Kolkata",
		},
	})
	return serviceFixture{
		timeline: NewService(events, tasks, payments, clock),
		events:   events,
		tasks:    tasks,
		payments: payments,
		ctx:      ctx,
	}
}

func TestService_GetTimeline_MergesAllSources(t *testing.T) {
	f := setupServiceTest(t)

	_, err := f.events.AddEvent(f.ctx, event.SubEvent{
		WeddingId: 1,
		Type:      event.Mehendi,
		StartTime: svcNow.AddDate(0, 0, 1),
		EndTime:   svcNow.AddDate(0, 0, 1).Add(4 * time.Hour),
		Venue:     event.Venue{Name: "Lawn"},
	})
	require.NoError(t, err)
	_, err = f.tasks.AddTask(f.ctx, task.Task{
		WeddingId: 1, Title: "Send invitations", DueDate: svcNow.AddDate(0, 0, 2),
	})
	require.NoError(t, err)
	due := svcNow.AddDate(0, 0, 3)
	_, err = f.payments.AddInstallment(f.ctx, payment.Installment{
		WeddingId: 1, VendorName: "Royal Caterers", Amount: 100, DueDate: &due,
	})
	require.NoError(t, err)

	view, err := f.timeline.GetTimeline(f.ctx, 1, Options{})
	require.NoError(t, err)

	items := collectItems(view.Upcoming)
	require.Len(t, items, 3)
	assert.Equal(t, "event-1", items[0].Id)
	assert.Equal(t, "Mehendi", items[0].Title)
	// The sub-event has a venue but no guests, vendors, or budget yet.
	assert.Equal(t, "attention", items[0].Status)
	assert.Equal(t, "task-1", items[1].Id)
	assert.Equal(t, "payment-1", items[2].Id)
}

func TestService_GetTimeline_RejectsUnknownFilter(t *testing.T) {
	f := setupServiceTest(t)

	_, err := f.timeline.GetTimeline(f.ctx, 1, Options{Filter: "guests"})
	assert.ErrorIs(t, err, ErrFilterInvalid)
}

func TestService_GetTimeline_RequiresUser(t *testing.T) {
	f := setupServiceTest(t)

	_, err := f.timeline.GetTimeline(context.Background(), 1, Options{})
	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestService_ExportRunSheet(t *testing.T) {
	f := setupServiceTest(t)

	_, err := f.events.AddEvent(f.ctx, event.SubEvent{
		WeddingId: 1,
		Type:      event.Sangeet,
		StartTime: svcNow.AddDate(0, 0, 1),
		EndTime:   svcNow.AddDate(0, 0, 1).Add(4 * time.Hour),
		Venue:     event.Venue{Name: "Lawn", City: "Jaipur"},
	})
	require.NoError(t, err)

	serialized, err := f.timeline.ExportRunSheet(f.ctx, 1)
	require.NoError(t, err)
	assert.True(t, strings.Contains(serialized, "BEGIN:VCALENDAR"))
	assert.True(t, strings.Contains(serialized, "SUMMARY:Sangeet"))
	assert.True(t, strings.Contains(serialized, "Lawn"))
}
