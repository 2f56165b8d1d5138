package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/google/uuid"

	"github.com/gonuboard/gonuboard/app/controllers"
	"github.com/gonuboard/gonuboard/internal/pkg/env"
	"github.com/gonuboard/gonuboard/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		KeyGenerator:   uuid.NewString,
	}

	adminGroup := app.Group("/admin", csrf.New(csrfConf), middleware.RequireAdmin)
	adminGroup.Get("/member_list", controllers.HandleAdminMemberList)
	adminGroup.Get("/member_form", controllers.HandleAdminMemberFormAdd)
	adminGroup.Get("/member_form/:mb_id", controllers.HandleAdminMemberFormEdit)
	adminGroup.Post("/member_form_update", controllers.HandleAdminMemberUpdate)
}
