package application_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashisrivastavaa/Blog-App/internal/application"
	"github.com/ashisrivastavaa/Blog-App/internal/testutil"
)

func newPostService() (*application.PostService, *testutil.FakePostRepo) {
	posts := testutil.NewFakePostRepo()
	users := testutil.NewFakeUserRepo(posts)
	svc := application.NewPostService(posts, users, logrus.New(), nil, "")
	return svc, posts
}

func TestCreatePost(t *testing.T) {
	svc, posts := newPostService()

	p, err := svc.Create(context.Background(), "user-1", "hello")
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	stored, err := posts.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "hello", stored.Content)
	assert.Empty(t, stored.Likes)
}

func TestToggleLikeAddsThenRemoves(t *testing.T) {
	svc, posts := newPostService()
	p, err := svc.Create(context.Background(), "user-1", "hello")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleLike(context.Background(), p.ID, "user-2"))
	stored, _ := posts.GetByID(p.ID)
	assert.Equal(t, []string{"user-2"}, stored.Likes)

	// Second toggle is the inverse of the first.
	require.NoError(t, svc.ToggleLike(context.Background(), p.ID, "user-2"))
	stored, _ = posts.GetByID(p.ID)
	assert.Empty(t, stored.Likes)
}

func TestToggleLikeKeepsOtherLikers(t *testing.T) {
	svc, posts := newPostService()
	p, err := svc.Create(context.Background(), "user-1", "hello")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleLike(context.Background(), p.ID, "user-2"))
	require.NoError(t, svc.ToggleLike(context.Background(), p.ID, "user-3"))
	require.NoError(t, svc.ToggleLike(context.Background(), p.ID, "user-2"))

	stored, _ := posts.GetByID(p.ID)
	assert.Equal(t, []string{"user-3"}, stored.Likes)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _ := newPostService()
	err := svc.ToggleLike(context.Background(), "missing", "user-2")
	assert.ErrorIs(t, err, application.ErrPostNotFound)
}

func TestUpdateContent(t *testing.T) {
	svc, posts := newPostService()
	p, err := svc.Create(context.Background(), "user-1", "before")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateContent(context.Background(), p.ID, "after"))
	stored, _ := posts.GetByID(p.ID)
	assert.Equal(t, "after", stored.Content)
}

func TestUpdateContentUnknownPost(t *testing.T) {
	svc, _ := newPostService()
	err := svc.UpdateContent(context.Background(), "missing", "x")
	assert.ErrorIs(t, err, application.ErrPostNotFound)
}
