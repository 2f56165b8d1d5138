package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gonuboard/gonuboard/app/controllers"
	"github.com/gonuboard/gonuboard/internal/pkg/constants"
	"github.com/gonuboard/gonuboard/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Social OAuth. These stay outside the CSRF group: the provider
	// round-trip carries its own state token and the callback query string
	// must reach the handler untouched.
	app.Get(constants.SocialLoginRoute, controllers.HandleSocialLogin)
	app.Get(constants.SocialCallbackRoute, controllers.HandleSocialCallback)
	app.Get("/social/link", middleware.RequireLogin, controllers.HandleSocialLink)

	// Auth
	app.Get("/logout", middleware.RequireLogin, controllers.HandleAuthLogout)
}
