package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceList(t *testing.T) {
	cfg := &BoardConfig{SocialServiceList: "naver, kakao ,google"}
	assert.Equal(t, []string{"naver", "kakao", "google"}, cfg.ServiceList())

	empty := &BoardConfig{SocialServiceList: "  "}
	assert.Nil(t, empty.ServiceList())

	var nilCfg *BoardConfig
	assert.Nil(t, nilCfg.ServiceList())
}

func TestIsServiceEnabled(t *testing.T) {
	cfg := &BoardConfig{SocialServiceList: "naver,kakao"}

	assert.True(t, cfg.IsServiceEnabled("naver"))
	assert.True(t, cfg.IsServiceEnabled("kakao"))
	assert.False(t, cfg.IsServiceEnabled("google"))
	assert.False(t, cfg.IsServiceEnabled(""))
}
