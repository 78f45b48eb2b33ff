package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func setupServiceTest(t *testing.T) (*Service, *utils.MockClock, context.Context) {
	t.Helper()
	clock := &utils.MockClock{FixedNow: testNow}
	service := NewService(NewRepositoryStub(), clock)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "u-1"})
	return service, clock, ctx
}

func TestService_AddReminder_Validation(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	_, err := s.AddReminder(ctx, Reminder{Title: "x", RemindAt: testNow})
	assert.ErrorIs(t, err, ErrReminderDataInvalid)
	_, err = s.AddReminder(ctx, Reminder{WeddingId: 1, RemindAt: testNow})
	assert.ErrorIs(t, err, ErrReminderDataInvalid)
	_, err = s.AddReminder(ctx, Reminder{WeddingId: 1, Title: "x"})
	assert.ErrorIs(t, err, ErrReminderDataInvalid)
	_, err = s.AddReminder(ctx, Reminder{WeddingId: 1, Title: "x", RemindAt: testNow, Kind: "vendor"})
	assert.ErrorIs(t, err, ErrReminderDataInvalid)
	_, err = s.AddReminder(ctx, Reminder{WeddingId: 1, Title: "x", RemindAt: testNow, Channel: "fax"})
	assert.ErrorIs(t, err, ErrReminderDataInvalid)
}

func TestService_AddReminder_DefaultsToPushChannel(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	created, err := s.AddReminder(ctx, Reminder{WeddingId: 1, Title: "Call decorator", RemindAt: testNow})

	require.NoError(t, err)
	assert.Equal(t, ChannelPush, created.Channel)
}

func TestService_DispatchDue(t *testing.T) {
	s, clock, ctx := setupServiceTest(t)

	_, err := s.AddReminder(ctx, Reminder{
		WeddingId: 1, Title: "Confirm caterer", RemindAt: testNow.Add(-time.Hour),
	})
	require.NoError(t, err)
	_, err = s.AddReminder(ctx, Reminder{
		WeddingId: 1, Title: "Pick up lehenga", RemindAt: testNow.Add(time.Hour),
	})
	require.NoError(t, err)

	dispatched, err := s.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)

	// Already-sent reminders are not dispatched again.
	dispatched, err = s.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, dispatched)

	// The second reminder fires once its time arrives.
	clock.SetNow(testNow.Add(2 * time.Hour))
	dispatched, err = s.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)

	reminders, err := s.GetReminders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	for _, r := range reminders {
		assert.True(t, r.Sent)
		assert.NotNil(t, r.SentAt)
	}
}

func TestService_SubscribeToBus_SchedulesInstallmentReminder(t *testing.T) {
	s, _, ctx := setupServiceTest(t)
	bus := event_bus.NewEventBus()
	s.SubscribeToBus(bus)

	due := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	err := bus.Publish(event_bus.NewEvent(ctx, event_bus.InstallmentScheduled, event_bus.InstallmentChanged{
		ID: 7, WeddingID: 1, VendorName: "Royal Caterers", Amount: 50000_00, DueDate: due,
	}))
	require.NoError(t, err)

	reminders, err := s.GetReminders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "Payment due: Royal Caterers", reminders[0].Title)
	assert.Equal(t, KindPayment, reminders[0].Kind)
	assert.Equal(t, 7, reminders[0].RefId)
	assert.True(t, reminders[0].RemindAt.Equal(due.AddDate(0, 0, -3)))
	assert.False(t, reminders[0].Sent)
}

func TestNewScheduler_RejectsBadSchedule(t *testing.T) {
	s, _, _ := setupServiceTest(t)

	_, err := NewScheduler(s, "not a schedule")
	assert.Error(t, err)

	scheduler, err := NewScheduler(s, "*/5 * * * *")
	require.NoError(t, err)
	scheduler.Start()
	scheduler.Stop()
}
