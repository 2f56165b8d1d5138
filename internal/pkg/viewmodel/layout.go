package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout is the common bind data for every rendered page
type Layout struct {
	Title      string
	SiteTitle  string
	IsLoggedIn bool
	IsAdmin    bool
	Nick       string
	Msg        fiber.Map
}
