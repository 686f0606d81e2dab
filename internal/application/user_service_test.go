package application_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashisrivastavaa/Blog-App/internal/application"
	"github.com/ashisrivastavaa/Blog-App/internal/testutil"
	"github.com/ashisrivastavaa/Blog-App/pkg/helpers"
)

func newUserService() (*application.UserService, *testutil.FakeUserRepo) {
	posts := testutil.NewFakePostRepo()
	users := testutil.NewFakeUserRepo(posts)
	session := helpers.NewSessionManager("svc-secret", 0)
	logger := logrus.New()
	svc := application.NewUserService(users, session, nil, "", logger, nil, "blog-app", false)
	return svc, users
}

func register(t *testing.T, svc *application.UserService, email string) string {
	t.Helper()
	u, token, err := svc.Register(context.Background(), application.RegisterInput{
		Email:    email,
		Password: "pw",
		Username: "alice",
		Name:     "Alice",
		Age:      30,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return u.ID
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newUserService()

	u, token, err := svc.Register(context.Background(), application.RegisterInput{
		Email:    "a@x.com",
		Password: "pw",
		Username: "alice",
		Name:     "Alice",
		Age:      30,
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	claims, err := svc.Session.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()
	register(t, svc, "a@x.com")

	_, _, err := svc.Register(context.Background(), application.RegisterInput{
		Email:    "a@x.com",
		Password: "other",
		Username: "bob",
		Name:     "Bob",
		Age:      25,
	})
	assert.ErrorIs(t, err, application.ErrAlreadyRegistered)
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	svc, users := newUserService()
	id := register(t, svc, "a@x.com")

	stored, err := users.GetByID(id)
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "pw"))
}

func TestLoginErrorDoesNotDistinguishCause(t *testing.T) {
	svc, _ := newUserService()
	register(t, svc, "a@x.com")

	_, _, unknownErr := svc.Login(context.Background(), "nobody@x.com", "pw")
	_, _, wrongPwErr := svc.Login(context.Background(), "a@x.com", "wrong")

	assert.ErrorIs(t, unknownErr, application.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, application.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPwErr)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newUserService()
	id := register(t, svc, "a@x.com")

	u, token, err := svc.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	claims, err := svc.Session.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
}

func TestGetProfileEmptyPostList(t *testing.T) {
	svc, _ := newUserService()
	register(t, svc, "a@x.com")

	u, err := svc.GetProfile("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Empty(t, u.Posts)
}

func TestUploadProfilePictureWithoutStorage(t *testing.T) {
	svc, _ := newUserService()
	id := register(t, svc, "a@x.com")

	_, err := svc.UploadProfilePicture(context.Background(), id, nil, "me.png", "image/png")
	assert.Error(t, err)
}
