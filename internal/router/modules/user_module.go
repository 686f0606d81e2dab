package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashisrivastavaa/Blog-App/internal/container"
	handlers "github.com/ashisrivastavaa/Blog-App/internal/interface/http"
	"github.com/ashisrivastavaa/Blog-App/internal/interface/middleware"
	"github.com/ashisrivastavaa/Blog-App/pkg/helpers"
)

// UserModule wires account and session routes.
// Public: GET /, GET+POST /register, GET+POST /login, GET /logout
// Protected: GET /profile, GET /profile/upload, POST /upload

type UserModule struct {
	Handler *handlers.UserHandler
	Session *helpers.SessionManager
}

func NewUserModule(h *handlers.UserHandler, session *helpers.SessionManager) *UserModule {
	return &UserModule{Handler: h, Session: session}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/", m.Handler.Landing)
	rg.GET("/register", m.Handler.Landing)
	rg.POST("/register", signupLimiter, m.Handler.Register)
	rg.GET("/login", m.Handler.LoginPage)
	rg.POST("/login", signupLimiter, m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.RequireLogin(m.Session))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile", m.Handler.Profile)
		auth.GET("/profile/upload", m.Handler.UploadPage)
		auth.POST("/upload", m.Handler.Upload)
	}
}
