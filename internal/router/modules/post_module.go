package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashisrivastavaa/Blog-App/internal/container"
	handlers "github.com/ashisrivastavaa/Blog-App/internal/interface/http"
	"github.com/ashisrivastavaa/Blog-App/internal/interface/middleware"
	"github.com/ashisrivastavaa/Blog-App/pkg/helpers"
)

// PostModule wires post routes; everything here requires a session.
// POST /profile, GET /like/:id, GET /edit/:id, POST /update/:id, GET /search

type PostModule struct {
	Handler *handlers.PostHandler
	Session *helpers.SessionManager
}

func NewPostModule(h *handlers.PostHandler, session *helpers.SessionManager) *PostModule {
	return &PostModule{Handler: h, Session: session}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireLogin(m.Session))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/profile", m.Handler.Create)
		auth.GET("/like/:id", m.Handler.Like)
		auth.GET("/edit/:id", m.Handler.EditPage)
		auth.POST("/update/:id", m.Handler.Update)
		auth.GET("/search", m.Handler.Search)
	}
}
