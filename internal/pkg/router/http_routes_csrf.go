package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/google/uuid"

	"github.com/gonuboard/gonuboard/app/controllers"
	"github.com/gonuboard/gonuboard/internal/pkg/constants"
	"github.com/gonuboard/gonuboard/internal/pkg/env"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		KeyGenerator:   uuid.NewString,
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get(constants.HomeRoute, loggedInMiddleware, controllers.HandleStart)
	group.Get(constants.LoginRoute, loggedInMiddleware, controllers.HandleAuthLogin)
	group.Post(constants.LoginRoute, loggedInMiddleware, controllers.HandleAuthLogin)
	group.Get(constants.SocialRegisterRoute, loggedInMiddleware, controllers.HandleSocialRegisterForm)
	group.Post(constants.SocialRegisterRoute, loggedInMiddleware, controllers.HandleSocialRegister)
}
