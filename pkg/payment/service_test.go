package payment

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

func setupServiceTest(t *testing.T) (*Service, *event_bus.EventBus, context.Context) {
	t.Helper()
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: testNow}
	service := NewService(NewRepositoryStub(), bus, clock)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "u-1"})
	return service, bus, ctx
}

func TestService_AddInstallment_Defaults(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	created, err := s.AddInstallment(ctx, Installment{
		WeddingId:  1,
		VendorName: "Royal Caterers",
		Amount:     50000_00,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, created.Status)
	assert.Nil(t, created.DueDate)
	assert.Nil(t, created.PaidAt)
}

func TestService_AddInstallment_Validation(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	cases := []struct {
		name        string
		installment Installment
	}{
		{"missing wedding", Installment{VendorName: "Royal Caterers", Amount: 100}},
		{"missing vendor name", Installment{WeddingId: 1, Amount: 100}},
		{"zero amount", Installment{WeddingId: 1, VendorName: "Royal Caterers"}},
		{"negative amount", Installment{WeddingId: 1, VendorName: "Royal Caterers", Amount: -5}},
		{"unknown status", Installment{WeddingId: 1, VendorName: "Royal Caterers", Amount: 100, Status: "refunded"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddInstallment(ctx, tc.installment)
			assert.ErrorIs(t, err, ErrInstallmentDataInvalid)
		})
	}
}

func TestService_AddInstallment_PublishesWhenDueDateSet(t *testing.T) {
	s, bus, ctx := setupServiceTest(t)

	var published []event_bus.InstallmentChanged
	event_bus.SubscribeTyped(bus, event_bus.InstallmentScheduled,
		func(e event_bus.EventT[event_bus.InstallmentChanged]) error {
			published = append(published, e.Data)
			return nil
		})

	due := testNow.AddDate(0, 0, 14)
	_, err := s.AddInstallment(ctx, Installment{
		WeddingId: 1, VendorName: "Royal Caterers", Amount: 100, DueDate: &due,
	})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Royal Caterers", published[0].VendorName)
	assert.True(t, published[0].DueDate.Equal(due))

	// No due date, nothing to schedule a reminder for.
	_, err = s.AddInstallment(ctx, Installment{WeddingId: 1, VendorName: "Dhol Beats", Amount: 100})
	require.NoError(t, err)
	assert.Len(t, published, 1)
}

func TestService_MarkPaid(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	created, err := s.AddInstallment(ctx, Installment{
		WeddingId: 1, VendorName: "Royal Caterers", Amount: 100,
	})
	require.NoError(t, err)

	paid, err := s.MarkPaid(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.True(t, paid.PaidAt.Equal(testNow))
}

func TestService_MarkPaid_IsIdempotent(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	created, err := s.AddInstallment(ctx, Installment{
		WeddingId: 1, VendorName: "Royal Caterers", Amount: 100,
	})
	require.NoError(t, err)

	first, err := s.MarkPaid(ctx, created.Id)
	require.NoError(t, err)
	again, err := s.MarkPaid(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, again.PaidAt.Equal(*first.PaidAt))
}

func TestService_GetDueInstallments(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	soon := testNow.AddDate(0, 0, 2)
	later := testNow.AddDate(0, 0, 30)
	seed := []Installment{
		{WeddingId: 1, VendorName: "Royal Caterers", Amount: 100, DueDate: &soon},
		{WeddingId: 1, VendorName: "Dhol Beats", Amount: 100, DueDate: &later},
		{WeddingId: 1, VendorName: "Shutter Stories", Amount: 100},
	}
	for _, i := range seed {
		_, err := s.AddInstallment(ctx, i)
		require.NoError(t, err)
	}

	paid, err := s.AddInstallment(ctx, Installment{
		WeddingId: 1, VendorName: "Floral Decor", Amount: 100, DueDate: &soon,
	})
	require.NoError(t, err)
	_, err = s.MarkPaid(ctx, paid.Id)
	require.NoError(t, err)

	due, err := s.GetDueInstallments(ctx, 1, 7)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Royal Caterers", due[0].VendorName)
}

func TestService_Installments_ScopedToUser(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	created, err := s.AddInstallment(ctx, Installment{
		WeddingId: 1, VendorName: "Royal Caterers", Amount: 100,
	})
	require.NoError(t, err)

	otherCtx := user.WithUser(context.Background(), user.User{Id: 2, Uid: "u-2"})
	_, err = s.GetInstallment(otherCtx, created.Id)
	assert.ErrorIs(t, err, ErrInstallmentNotFound)

	_, err = s.AddInstallment(context.Background(), Installment{
		WeddingId: 1, VendorName: "Royal Caterers", Amount: 100,
	})
	assert.ErrorIs(t, err, user.ErrNoUser)
}
