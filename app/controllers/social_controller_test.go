package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonuboard/gonuboard/app/models"
)

func TestHandleSocialCallback_ConfigUnavailable(t *testing.T) {
	// The board configuration can be absent when the settings table was
	// unreachable at startup. The callback must answer with the usual alert
	// redirect, not touch the provider adapter.
	require.Nil(t, models.GetBoardConfig())

	app := fiber.New()
	app.Get("/social/login/callback", HandleSocialCallback)

	req := httptest.NewRequest(fiber.MethodGet, "/social/login/callback?provider=naver", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestHandleSocialCallback_MissingProvider(t *testing.T) {
	app := fiber.New()
	app.Get("/social/login/callback", HandleSocialCallback)

	req := httptest.NewRequest(fiber.MethodGet, "/social/login/callback", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestHasProviderLink(t *testing.T) {
	profiles := []models.MemberSocialProfile{
		{MbID: "member1", Provider: "naver", Identifier: "naver_968d08f6"},
		{MbID: "member1", Provider: "kakao", Identifier: "kakao_1a2b3c4d"},
	}

	// A member with an existing naver link may not attach a second naver
	// account, even one with a different identifier.
	assert.True(t, hasProviderLink(profiles, "naver"))
	assert.True(t, hasProviderLink(profiles, "kakao"))
	assert.False(t, hasProviderLink(profiles, "google"))
	assert.False(t, hasProviderLink(nil, "naver"))
}

func TestRegisterConflictMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"email collision",
			errors.New("Error 1062 (23000): Duplicate entry 'u@x.com' for key 'members.uniq_members_mb_email'"),
			"이미 존재하는 이메일 입니다.",
		},
		{
			"nick collision",
			errors.New("Error 1062 (23000): Duplicate entry 'nick' for key 'members.uniq_members_mb_nick'"),
			"이미 존재하는 닉네임 입니다.",
		},
		{
			"id collision",
			errors.New("Error 1062 (23000): Duplicate entry 'naver_968d08f6' for key 'members.PRIMARY'"),
			"이미 소셜로그인으로 가입된 회원아이디 입니다.",
		},
		{
			"profile collision",
			errors.New("Error 1062 (23000): Duplicate entry 'naver-naver_968d08f6' for key 'member_social_profiles.idx_provider_identifier'"),
			"이미 소셜로그인으로 가입된 회원아이디 입니다.",
		},
		{
			"unrelated failure",
			errors.New("driver: bad connection"),
			"회원가입 처리 중 오류가 발생했습니다. 잠시후에 다시 시도해 주세요.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registerConflictMessage(tt.err))
		})
	}
}
