package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashisrivastavaa/Blog-App/internal/application"
	handlers "github.com/ashisrivastavaa/Blog-App/internal/interface/http"
	"github.com/ashisrivastavaa/Blog-App/internal/router"
	"github.com/ashisrivastavaa/Blog-App/internal/router/modules"
	"github.com/ashisrivastavaa/Blog-App/internal/testutil"
	"github.com/ashisrivastavaa/Blog-App/pkg/helpers"
	"github.com/ashisrivastavaa/Blog-App/pkg/validation"
	"github.com/ashisrivastavaa/Blog-App/web"
)

type app struct {
	engine  *gin.Engine
	session *helpers.SessionManager
	users   *testutil.FakeUserRepo
	posts   *testutil.FakePostRepo
	userSvc *application.UserService
	postSvc *application.PostService
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	posts := testutil.NewFakePostRepo()
	users := testutil.NewFakeUserRepo(posts)
	session := helpers.NewSessionManager("handler-secret", 0)
	logger := logrus.New()

	userSvc := application.NewUserService(users, session, nil, "", logger, nil, "blog-app", false)
	postSvc := application.NewPostService(posts, users, logger, nil, "")

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	reg := router.NewRegistry(r)
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger, "localhost", false, 0), session))
	reg.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), session))
	reg.RegisterAll()

	return &app{engine: r, session: session, users: users, posts: posts, userSvc: userSvc, postSvc: postSvc}
}

// registerAlice creates alice through the service and returns her id and a
// valid session token.
func (a *app) registerAlice(t *testing.T) (string, string) {
	t.Helper()
	u, token, err := a.userSvc.Register(context.Background(), application.RegisterInput{
		Email:    "a@x.com",
		Password: "pw",
		Username: "alice",
		Name:     "Alice",
		Age:      30,
	})
	require.NoError(t, err)
	return u.ID, token
}

func (a *app) postForm(t *testing.T, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *app) get(t *testing.T, path, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func TestRegisterSetsCookieAndRedirects(t *testing.T) {
	a := newApp(t)

	apitest.New().
		Handler(a.engine).
		Post("/register").
		FormData("email", "a@x.com").
		FormData("password", "pw").
		FormData("username", "alice").
		FormData("name", "Alice").
		FormData("age", "30").
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/profile").
		CookiePresent(helpers.TokenCookie).
		End()
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := newApp(t)
	a.registerAlice(t)

	apitest.New().
		Handler(a.engine).
		Post("/register").
		FormData("email", "a@x.com").
		FormData("password", "other").
		FormData("username", "alice2").
		Expect(t).
		Status(http.StatusInternalServerError).
		Body("User already registered").
		End()
}

func TestLoginFailureIsGeneric(t *testing.T) {
	a := newApp(t)
	a.registerAlice(t)

	for _, form := range []url.Values{
		{"email": {"nobody@x.com"}, "password": {"pw"}},
		{"email": {"a@x.com"}, "password": {"wrong"}},
	} {
		w := a.postForm(t, "/login", form, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email or Password is Wrong", w.Body.String())
	}
}

func TestLoginThenProfileScenario(t *testing.T) {
	a := newApp(t)
	a.registerAlice(t)

	w := a.postForm(t, "/login", url.Values{"email": {"a@x.com"}, "password": {"pw"}}, "")
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/profile", w.Header().Get("Location"))

	var token string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == helpers.TokenCookie {
			token = ck.Value
		}
	}
	require.NotEmpty(t, token)

	p := a.get(t, "/profile", token)
	assert.Equal(t, http.StatusOK, p.Code)
	assert.Contains(t, p.Body.String(), "Alice")
	assert.Contains(t, p.Body.String(), "No posts yet.")
}

func TestProfileWithoutCookieRedirects(t *testing.T) {
	a := newApp(t)

	w := a.get(t, "/profile", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestCreatePostShowsOnProfile(t *testing.T) {
	a := newApp(t)
	_, token := a.registerAlice(t)

	w := a.postForm(t, "/profile", url.Values{"content": {"hello"}}, token)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/profile", w.Header().Get("Location"))

	p := a.get(t, "/profile", token)
	assert.Equal(t, http.StatusOK, p.Code)
	assert.Contains(t, p.Body.String(), "hello")
}

func TestToggleLikeTwiceRestoresLikeSet(t *testing.T) {
	a := newApp(t)
	aliceID, _ := a.registerAlice(t)

	post, err := a.postSvc.Create(context.Background(), aliceID, "hello")
	require.NoError(t, err)

	bobToken, err := a.session.Issue("b@x.com", "user-bob")
	require.NoError(t, err)

	w := a.get(t, "/like/"+post.ID, bobToken)
	require.Equal(t, http.StatusFound, w.Code)
	stored, err := a.posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-bob"}, stored.Likes)

	w = a.get(t, "/like/"+post.ID, bobToken)
	require.Equal(t, http.StatusFound, w.Code)
	stored, err = a.posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Likes)
}

func TestLikeUnknownPost(t *testing.T) {
	a := newApp(t)
	_, token := a.registerAlice(t)

	w := a.get(t, "/like/missing", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", w.Body.String())
}

func TestEditPageRendersPost(t *testing.T) {
	a := newApp(t)
	aliceID, token := a.registerAlice(t)

	post, err := a.postSvc.Create(context.Background(), aliceID, "editable")
	require.NoError(t, err)

	w := a.get(t, "/edit/"+post.ID, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "editable")
}

func TestUpdatePostByNonOwnerSucceeds(t *testing.T) {
	a := newApp(t)
	aliceID, _ := a.registerAlice(t)

	post, err := a.postSvc.Create(context.Background(), aliceID, "original")
	require.NoError(t, err)

	bobToken, err := a.session.Issue("b@x.com", "user-bob")
	require.NoError(t, err)

	w := a.postForm(t, "/update/"+post.ID, url.Values{"content": {"overwritten"}}, bobToken)
	require.Equal(t, http.StatusFound, w.Code)

	stored, err := a.posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "overwritten", stored.Content)
}

func TestUploadWithoutFile(t *testing.T) {
	a := newApp(t)
	_, token := a.registerAlice(t)

	w := a.postForm(t, "/upload", url.Values{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", w.Body.String())
}

func TestInvalidTokenGetsVisibleFailure(t *testing.T) {
	a := newApp(t)

	w := a.get(t, "/profile", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token, please login again", w.Body.String())
}

func TestLogoutClearsCookie(t *testing.T) {
	a := newApp(t)

	w := a.get(t, "/logout", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == helpers.TokenCookie {
			cleared = ck.Value == "" && ck.MaxAge < 0
		}
	}
	assert.True(t, cleared, "token cookie must be emptied")
}
