package router

import (
	"github.com/ashisrivastavaa/Blog-App/internal/application"
	"github.com/ashisrivastavaa/Blog-App/internal/container"
	pginfra "github.com/ashisrivastavaa/Blog-App/internal/infrastructure/postgres"
	handlers "github.com/ashisrivastavaa/Blog-App/internal/interface/http"
	"github.com/ashisrivastavaa/Blog-App/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	postRepo := pginfra.NewPostRepository(container.GetPGPool())

	userSvc := application.NewUserService(
		userRepo,
		container.GetSession(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetLogger(),
		container.GetRabbitPub(),
		cfg.AppName,
		cfg.MailSendEnabled,
	)
	postSvc := application.NewPostService(
		postRepo,
		userRepo,
		container.GetLogger(),
		container.GetES(),
		cfg.ESPostsIndex,
	)

	userHandler := handlers.NewUserHandler(userSvc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure, cfg.SessionTTL)
	postHandler := handlers.NewPostHandler(postSvc, container.GetLogger())

	r.Add(modules.NewUserModule(userHandler, container.GetSession()))
	r.Add(modules.NewPostModule(postHandler, container.GetSession()))
}
