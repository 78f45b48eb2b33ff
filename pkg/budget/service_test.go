package budget

import (
	"context"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/Bhavesh-Anc/eventkaro/pkg/wedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*Service, *wedding.Service, context.Context) {
	t.Helper()
	weddings := wedding.NewService(wedding.NewRepositoryStub())
	service := NewService(NewRepositoryStub(), weddings)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "u-1"})
	return service, weddings, ctx
}

func createWedding(t *testing.T, weddings *wedding.Service, ctx context.Context, totalBudget int64) int {
	t.Helper()
	w, err := weddings.CreateWedding(ctx, wedding.Wedding{
		BrideName:   "Priya",
		GroomName:   "Rahul",
		WeddingDate: time.Date(2026, 11, 24, 0, 0, 0, 0, time.UTC),
		City:        "Jaipur",
		TotalBudget: totalBudget,
	})
	require.NoError(t, err)
	return w.Id
}

func TestService_AddCategory_Validation(t *testing.T) {
	s, weddings, ctx := setupServiceTest(t)
	weddingId := createWedding(t, weddings, ctx, 2000000_00)

	_, err := s.AddCategory(ctx, Category{WeddingId: weddingId})
	assert.ErrorIs(t, err, ErrCategoryDataInvalid)

	_, err = s.AddCategory(ctx, Category{WeddingId: weddingId, Name: "Catering", Allocated: -1})
	assert.ErrorIs(t, err, ErrCategoryDataInvalid)
}

func TestService_GetSummary(t *testing.T) {
	s, weddings, ctx := setupServiceTest(t)
	weddingId := createWedding(t, weddings, ctx, 2000000_00)

	seed := []Category{
		{WeddingId: weddingId, Name: "Catering", Allocated: 800000_00, Committed: 500000_00, Spent: 100000_00},
		{WeddingId: weddingId, Name: "Decor", Allocated: 400000_00, Spent: 50000_00},
	}
	for _, c := range seed {
		_, err := s.AddCategory(ctx, c)
		require.NoError(t, err)
	}

	summary, err := s.GetSummary(ctx, weddingId)
	require.NoError(t, err)
	assert.Equal(t, int64(2000000_00), summary.TotalBudget)
	assert.Equal(t, int64(1200000_00), summary.TotalAllocated)
	assert.Equal(t, int64(500000_00), summary.TotalCommitted)
	assert.Equal(t, int64(150000_00), summary.TotalSpent)
	assert.Equal(t, int64(800000_00), summary.Unallocated)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, int64(200000_00), summary.Categories[0].Remaining())
}

func TestService_GetSummary_UnknownWedding(t *testing.T) {
	s, _, ctx := setupServiceTest(t)

	_, err := s.GetSummary(ctx, 99)
	assert.ErrorIs(t, err, wedding.ErrWeddingNotFound)
}

func TestService_Categories_ScopedToUser(t *testing.T) {
	s, weddings, ctx := setupServiceTest(t)
	weddingId := createWedding(t, weddings, ctx, 100)

	created, err := s.AddCategory(ctx, Category{WeddingId: weddingId, Name: "Decor"})
	require.NoError(t, err)

	otherCtx := user.WithUser(context.Background(), user.User{Id: 2, Uid: "u-2"})
	err = s.DeleteCategory(otherCtx, created.Id)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
