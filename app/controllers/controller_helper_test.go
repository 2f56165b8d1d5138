package controllers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackNickname(t *testing.T) {
	tests := []struct {
		socialID string
		want     string
	}{
		{"naver_968d08f6", "968d08f6"},
		{"kakao_1a2b3c4d", "1a2b3c4d"},
		// A second underscore belongs to the hash part, not the prefix.
		{"twitter_ab_cd", "ab_cd"},
		// Degenerate ids fall back to the full value.
		{"plainid", "plainid"},
		{"trailing_", "trailing_"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fallbackNickname(tt.socialID), tt.socialID)
	}
}

func TestFormInt(t *testing.T) {
	app := fiber.New()
	app.Post("/form", func(c *fiber.Ctx) error {
		assert.Equal(t, 7, formInt(c, "mb_level"))
		assert.Equal(t, 3, formInt(c, "padded"))
		assert.Equal(t, 0, formInt(c, "not_a_number"))
		assert.Equal(t, 0, formInt(c, "missing"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	form := url.Values{}
	form.Set("mb_level", "7")
	form.Set("padded", " 3 ")
	form.Set("not_a_number", "seven")

	req := httptest.NewRequest(fiber.MethodPost, "/form", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
