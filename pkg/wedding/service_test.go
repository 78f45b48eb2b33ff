package wedding

import (
	"context"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*Service, context.Context) {
	service := NewService(NewRepositoryStub())
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Username: "tester"})
	return service, ctx
}

func TestService_CreateWedding(t *testing.T) {
	// given
	service, ctx := setupServiceTest(t)

	// when
	created, err := service.CreateWedding(ctx, Wedding{
		BrideName:   "Priya",
		GroomName:   "Rahul",
		WeddingDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		City:        "Jaipur",
		TotalBudget: 2_000_000_00,
	})

	// then
	assert.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.Id)

	found, err := service.GetWedding(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Priya", found.BrideName)
	assert.Equal(t, int64(2_000_000_00), found.TotalBudget)
}

func TestService_CreateWedding_Validation(t *testing.T) {
	service, ctx := setupServiceTest(t)
	weddingDate := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		wedding Wedding
	}{
		{"no partner names", Wedding{WeddingDate: weddingDate}},
		{"no wedding date", Wedding{BrideName: "Priya", GroomName: "Rahul"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateWedding(ctx, tt.wedding)
			assert.ErrorIs(t, err, ErrWeddingDataInvalid)
		})
	}
}

func TestService_CreateWedding_SinglePartnerNameIsEnough(t *testing.T) {
	service, ctx := setupServiceTest(t)

	created, err := service.CreateWedding(ctx, Wedding{
		BrideName:   "Priya",
		WeddingDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestService_GetWeddings_ScopedToUser(t *testing.T) {
	// given
	service, ctx := setupServiceTest(t)
	otherCtx := user.WithUser(context.Background(), user.User{Id: 2, Username: "other"})
	_, err := service.CreateWedding(ctx, Wedding{
		BrideName:   "Priya",
		WeddingDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// when
	weddings, err := service.GetWeddings(otherCtx)

	// then
	assert.NoError(t, err)
	assert.Empty(t, weddings)
}

func TestService_RequiresUser(t *testing.T) {
	service, _ := setupServiceTest(t)

	_, err := service.GetWeddings(context.Background())

	assert.Error(t, err)
}
