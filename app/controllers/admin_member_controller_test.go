package controllers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonuboard/gonuboard/app/models"
)

func TestUpdateLevel(t *testing.T) {
	cfg := &models.BoardConfig{RegisterLevel: 2}

	// A missing or zero level on update falls back to the registration
	// level; any explicit level passes through.
	assert.Equal(t, 2, updateLevel(0, cfg))
	assert.Equal(t, 5, updateLevel(5, cfg))
	assert.Equal(t, 1, updateLevel(1, cfg))

	assert.Equal(t, 0, updateLevel(0, nil))
}

func TestApplyAddress_ZipSplit(t *testing.T) {
	tests := []struct {
		zip      string
		wantZip1 string
		wantZip2 string
	}{
		{"12345", "123", "45"},
		{"123", "123", ""},
		{"12", "12", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		app := fiber.New()
		app.Post("/form", func(c *fiber.Ctx) error {
			var member models.Member
			applyAddress(c, &member)
			assert.Equal(t, tt.wantZip1, member.MbZip1, tt.zip)
			assert.Equal(t, tt.wantZip2, member.MbZip2, tt.zip)
			return c.SendStatus(fiber.StatusNoContent)
		})

		form := url.Values{}
		form.Set("mb_zip", tt.zip)

		req := httptest.NewRequest(fiber.MethodPost, "/form", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
}

func TestApplyStatusDates(t *testing.T) {
	// Both the insert and update branches accept the block and leave dates.
	app := fiber.New()
	app.Post("/form", func(c *fiber.Ctx) error {
		var member models.Member
		applyStatusDates(c, &member)
		assert.Equal(t, "20240301", member.MbInterceptDate)
		assert.Equal(t, "20240401", member.MbLeaveDate)
		return c.SendStatus(fiber.StatusNoContent)
	})

	form := url.Values{}
	form.Set("mb_intercept_date", "20240301")
	form.Set("mb_leave_date", "20240401")

	req := httptest.NewRequest(fiber.MethodPost, "/form", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestApplyCertify(t *testing.T) {
	run := func(form url.Values, check func(t *testing.T, m *models.Member)) {
		app := fiber.New()
		app.Post("/form", func(c *fiber.Ctx) error {
			member := &models.Member{MbCertify: "stale", MbAdult: 1}
			applyCertify(c, member)
			check(t, member)
			return c.SendStatus(fiber.StatusNoContent)
		})

		req := httptest.NewRequest(fiber.MethodPost, "/form", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	certified := url.Values{}
	certified.Set("mb_certify_case", "hp")
	certified.Set("mb_certify", "1")
	certified.Set("mb_adult", "1")
	run(certified, func(t *testing.T, m *models.Member) {
		assert.Equal(t, "hp", m.MbCertify)
		assert.Equal(t, 1, m.MbAdult)
	})

	// Clearing the certified flag clears both fields.
	uncertified := url.Values{}
	uncertified.Set("mb_certify_case", "hp")
	run(uncertified, func(t *testing.T, m *models.Member) {
		assert.Equal(t, "", m.MbCertify)
		assert.Equal(t, 0, m.MbAdult)
	})
}
