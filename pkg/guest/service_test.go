package guest

import (
	"context"
	"testing"

	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*Service, context.Context) {
	t.Helper()
	service := NewService(NewRepositoryStub())
	ctx := user.WithUser(context.Background(), user.User{
		Id:  1,
		Uid: "u-1",
		Settings: user.Settings{
			PhoneRegion: "IN",
		},
	})
	return service, ctx
}

func TestService_AddGuest_NormalizesPhone(t *testing.T) {
	s, ctx := setupServiceTest(t)

	created, err := s.AddGuest(ctx, Guest{
		WeddingId: 1,
		Name:      "Priya Sharma",
		Phone:     "098765 43210",
	})
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", created.Phone)
	assert.Equal(t, RSVPPending, created.RSVP)
	assert.Equal(t, SideBoth, created.Side)
}

func TestService_AddGuest_RejectsInvalidPhone(t *testing.T) {
	s, ctx := setupServiceTest(t)

	_, err := s.AddGuest(ctx, Guest{WeddingId: 1, Name: "Priya", Phone: "not-a-number"})
	assert.ErrorIs(t, err, ErrGuestDataInvalid)
}

func TestService_AddGuest_RequiresName(t *testing.T) {
	s, ctx := setupServiceTest(t)

	_, err := s.AddGuest(ctx, Guest{WeddingId: 1})
	assert.ErrorIs(t, err, ErrGuestDataInvalid)
}

func TestService_SetRSVP(t *testing.T) {
	s, ctx := setupServiceTest(t)

	created, err := s.AddGuest(ctx, Guest{WeddingId: 1, Name: "Rahul"})
	require.NoError(t, err)

	updated, err := s.SetRSVP(ctx, created.Id, RSVPAccepted)
	require.NoError(t, err)
	assert.Equal(t, RSVPAccepted, updated.RSVP)

	_, err = s.SetRSVP(ctx, created.Id, "maybe")
	assert.ErrorIs(t, err, ErrGuestDataInvalid)
}

func TestService_GetSummary(t *testing.T) {
	s, ctx := setupServiceTest(t)

	seed := []Guest{
		{WeddingId: 1, Name: "A", RSVP: RSVPAccepted, PlusOnes: 2},
		{WeddingId: 1, Name: "B", RSVP: RSVPAccepted},
		{WeddingId: 1, Name: "C", RSVP: RSVPDeclined},
		{WeddingId: 1, Name: "D"},
		{WeddingId: 2, Name: "E", RSVP: RSVPAccepted}, // different wedding
	}
	for _, g := range seed {
		_, err := s.AddGuest(ctx, g)
		require.NoError(t, err)
	}

	summary, err := s.GetSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Total:     4,
		Accepted:  2,
		Declined:  1,
		Pending:   1,
		Headcount: 4, // A + two plus-ones + B
	}, summary)
}

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name    string
		phone   string
		region  string
		want    string
		wantErr bool
	}{
		{"local format with region", "9876543210", "IN", "+919876543210", false},
		{"already E.164", "+919876543210", "IN", "+919876543210", false},
		{"foreign prefix kept", "+14155552671", "IN", "+14155552671", false},
		{"garbage", "hello", "IN", "", true},
		{"too short", "12345", "IN", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.phone, tc.region)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
