package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func setupServiceTest(t *testing.T) (*Service, context.Context) {
	t.Helper()
	clock := &utils.MockClock{FixedNow: testNow}
	service := NewService(NewRepositoryStub(), clock)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "u-1"})
	return service, ctx
}

func TestService_AddPhoto(t *testing.T) {
	s, ctx := setupServiceTest(t)

	created, err := s.AddPhoto(ctx, Photo{
		WeddingId: 1,
		Url:       "https://cdn.example.com/photos/mehendi-01.jpg",
		Caption:   "Mehendi ceremony",
	})
	require.NoError(t, err)
	assert.True(t, created.UploadedAt.Equal(testNow))
}

func TestService_AddPhoto_Validation(t *testing.T) {
	s, ctx := setupServiceTest(t)

	_, err := s.AddPhoto(ctx, Photo{Url: "https://cdn.example.com/p.jpg"})
	assert.ErrorIs(t, err, ErrPhotoDataInvalid)

	_, err = s.AddPhoto(ctx, Photo{WeddingId: 1, Url: "not a url"})
	assert.ErrorIs(t, err, ErrPhotoDataInvalid)
}

func TestService_ModifyPhoto_KeepsUrlAndUploadTime(t *testing.T) {
	s, ctx := setupServiceTest(t)

	created, err := s.AddPhoto(ctx, Photo{
		WeddingId: 1,
		Url:       "https://cdn.example.com/photos/mehendi-01.jpg",
	})
	require.NoError(t, err)

	_, err = s.ModifyPhoto(ctx, Photo{Id: created.Id, Caption: "Haldi morning", SubEventId: 3})
	require.NoError(t, err)

	photos, err := s.GetPhotos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "Haldi morning", photos[0].Caption)
	assert.Equal(t, 3, photos[0].SubEventId)
	assert.Equal(t, "https://cdn.example.com/photos/mehendi-01.jpg", photos[0].Url)
	assert.True(t, photos[0].UploadedAt.Equal(testNow))
}

func TestService_Photos_ScopedToUser(t *testing.T) {
	s, ctx := setupServiceTest(t)

	created, err := s.AddPhoto(ctx, Photo{
		WeddingId: 1,
		Url:       "https://cdn.example.com/photos/mehendi-01.jpg",
	})
	require.NoError(t, err)

	otherCtx := user.WithUser(context.Background(), user.User{Id: 2, Uid: "u-2"})
	err = s.DeletePhoto(otherCtx, created.Id)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}
