package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ashisrivastavaa/Blog-App/internal/application"
	"github.com/ashisrivastavaa/Blog-App/internal/interface/middleware"
	"github.com/ashisrivastavaa/Blog-App/pkg/helpers"
	"github.com/ashisrivastavaa/Blog-App/pkg/response"
	"github.com/ashisrivastavaa/Blog-App/pkg/validation"
)

type UserHandler struct {
	Svc        *application.UserService
	Logger     *logrus.Logger
	Cookies    *helpers.CookieManager
	SessionTTL time.Duration
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{
		Svc:        svc,
		Logger:     logger,
		Cookies:    helpers.NewCookie(cookieDomain, cookieSecure),
		SessionTTL: sessionTTL,
	}
}

type registerForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Age      int    `form:"age" binding:"omitempty,gte=0,lte=150"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Landing GET / and GET /register
func (h *UserHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// LoginPage GET /login
func (h *UserHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Register POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.Logger.WithFields(logrus.Fields{"details": validation.ToDetails(err)}).Debug("register form invalid")
		response.Fail(c, http.StatusBadRequest, "Invalid form")
		return
	}

	_, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    form.Email,
		Password: form.Password,
		Username: form.Username,
		Name:     form.Name,
		Age:      form.Age,
	})
	if err == application.ErrAlreadyRegistered {
		response.Fail(c, http.StatusInternalServerError, "User already registered")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("register failed")
		response.Fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.setSession(c, token)
	response.Redirect(c, "/profile")
}

// Login POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		// Same message as a failed credential check; the form shape leaks
		// nothing the error page wouldn't.
		response.Fail(c, http.StatusBadRequest, "Email or Password is Wrong")
		return
	}

	_, token, err := h.Svc.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Email or Password is Wrong")
		return
	}

	h.setSession(c, token)
	response.Redirect(c, "/profile")
}

// Logout GET /logout clears the cookie only; the token itself stays valid
// until expiry or secret rotation.
func (h *UserHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Redirect(c, "/login")
}

// Profile GET /profile
func (h *UserHandler) Profile(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	u, err := h.Svc.GetProfile(email)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":     u,
		"ViewerID": c.GetString(middleware.CtxUserIDKey),
	})
}

// UploadPage GET /profile/upload
func (h *UserHandler) UploadPage(c *gin.Context) {
	c.HTML(http.StatusOK, "profileupload.html", nil)
}

// Upload POST /upload
func (h *UserHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.Logger.WithError(err).Error("open uploaded file failed")
		response.Fail(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer func() { _ = f.Close() }()

	uid := c.GetString(middleware.CtxUserIDKey)
	contentType := fh.Header.Get("Content-Type")
	if _, err := h.Svc.UploadProfilePicture(c.Request.Context(), uid, f, fh.Filename, contentType); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("profile picture upload failed")
		response.Fail(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	response.Redirect(c, "/profile")
}

func (h *UserHandler) setSession(c *gin.Context, token string) {
	var exp time.Time
	if h.SessionTTL > 0 {
		exp = time.Now().Add(h.SessionTTL)
	}
	h.Cookies.SetToken(c, token, exp)
}
