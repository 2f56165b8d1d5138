package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gonuboard/gonuboard/app/controllers"
	"github.com/gonuboard/gonuboard/app/repository"
	"github.com/gonuboard/gonuboard/internal/pkg/database"
	"github.com/gonuboard/gonuboard/internal/pkg/middleware"
	"github.com/gonuboard/gonuboard/internal/pkg/oauth"
	"github.com/gonuboard/gonuboard/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth session storage
	oauth.Setup()

	// Apply MemberContext middleware globally as first middleware
	app.Use(middleware.MemberContextMiddleware)

	// Initialize repositories and the admin member controller
	repository.InitializeFactory(database.GetDB())
	controllers.InitializeAdminMemberController()

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// MemberContextMiddleware already set all member context; this hook
	// stays as the place for per-page concerns.
	return c.Next()
}
