package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/internal/pkg/database"
	"github.com/gonuboard/gonuboard/internal/pkg/mail"
	"github.com/gonuboard/gonuboard/internal/pkg/point"
	"github.com/gonuboard/gonuboard/internal/pkg/security"
	"github.com/gonuboard/gonuboard/internal/pkg/session"
	"github.com/gonuboard/gonuboard/internal/pkg/socialauth"
	"github.com/gonuboard/gonuboard/internal/pkg/validate"
)

// HandleSocialLogin validates the requested provider against the live board
// configuration, installs its credentials and hands off to the provider's
// authorization endpoint.
func HandleSocialLogin(c *fiber.Ctx) error {
	cfg := models.GetBoardConfig()
	providerName := c.Query("provider")
	if providerName == "" {
		return alert(c, "사용하지 않는 서비스 입니다.", "/login")
	}

	if cfg == nil || !cfg.SocialLoginUse || !cfg.IsServiceEnabled(providerName) {
		return alert(c, "사용하지 않는 서비스 입니다. 관리자에게 문의하십시오.", "/login")
	}

	provider, ok := socialauth.Lookup(providerName)
	if !ok {
		return alert(c, "사용하지 않는 서비스 입니다.", "/login")
	}

	// Credentials are registered per request: the configuration is
	// hot-reloadable and must take effect without a restart.
	if err := provider.Register(cfg); err != nil {
		return alert(c, "사용하지 않는 서비스 입니다. 관리자에게 문의하십시오.", "/login")
	}

	return gothfiber.BeginAuthHandler(c)
}

// HandleSocialCallback completes the provider flow. Exactly one of three
// outcomes applies, in priority order: an existing link logs the member in,
// a pending link intent attaches the profile to the signed-in member, and
// anything else proceeds to the registration form.
func HandleSocialCallback(c *fiber.Ctx) error {
	cfg := models.GetBoardConfig()
	providerName := c.Query("provider")
	if providerName == "" {
		return alert(c, "사용하지 않는 서비스 입니다.", "/login")
	}

	// The configuration may have been reloaded (or failed to load) between
	// the begin and callback legs; re-check it like the begin handler does.
	if cfg == nil || !cfg.SocialLoginUse || !cfg.IsServiceEnabled(providerName) {
		return alert(c, "사용하지 않는 서비스 입니다. 관리자에게 문의하십시오.", "/login")
	}

	provider, ok := socialauth.Lookup(providerName)
	if !ok {
		return alert(c, "사용하지 않는 서비스 입니다.", "/login")
	}
	if err := provider.Register(cfg); err != nil {
		return alert(c, "사용하지 않는 서비스 입니다. 관리자에게 문의하십시오.", "/login")
	}

	user, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return alert(c, "잠시후에 다시 시도해 주세요.", "/login")
	}

	email, profile, err := provider.ConvertProfile(user)
	if err != nil {
		return criticalAlert(c,
			fmt.Sprintf("social login identifier is empty, profile convert parsing error. provider: %s, user: %s", providerName, user.UserID),
			"/login")
	}

	service := socialauth.NewService()
	mbID, err := service.GetMemberBySocialID(profile.Identifier, providerName)
	if err != nil {
		return alert(c, "잠시후에 다시 시도해 주세요.", "/login")
	}

	// Already linked: log in.
	if mbID != "" {
		var member models.Member
		if err := database.GetDB().Where("mb_id = ?", mbID).First(&member).Error; err != nil {
			return alert(c, "유효하지 않은 요청입니다.", "/login")
		}
		if err := establishMemberSession(c, &member); err != nil {
			return alert(c, fmt.Sprintf("something went wrong: %s", err), "/login")
		}
		return c.Redirect("/", fiber.StatusFound)
	}

	// Link intent from a signed-in member: attach the profile. One profile
	// per provider per member; a second account on an already linked
	// provider is rejected, not stacked.
	if linked, member := pendingLinkMember(c); linked {
		var current []models.MemberSocialProfile
		if err := database.GetDB().Where("mb_id = ?", member.MbID).Find(&current).Error; err != nil {
			return alert(c, "잠시후에 다시 시도해 주세요.", "/")
		}
		if hasProviderLink(current, providerName) {
			session.DeleteSessionValue(c, SessSocialLink)
			return alert(c, "이미 해당 서비스와 연결된 계정이 있습니다.", "/")
		}

		profile.MbID = member.MbID
		if err := database.GetDB().Create(&profile).Error; err != nil {
			// The unique indexes reject a second link in a race.
			return alert(c, "이미 연결된 소셜 계정입니다.", "/")
		}
		session.DeleteSessionValue(c, SessSocialLink)
		return c.Redirect("/", fiber.StatusFound)
	}

	// New identity: stash the pending signup state and collect the rest on
	// the registration form. The marshaled provider session is kept so the
	// profile can be re-fetched server side on submit.
	sessionData, err := gothfiber.GetFromSession(providerName, c)
	if err != nil {
		return alert(c, "잠시후에 다시 시도해 주세요.", "/login")
	}
	if err := session.SetPendingSocial(c, session.PendingSocialSignup{
		Provider:    providerName,
		SessionData: sessionData,
		Email:       email,
	}); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	return c.Redirect("/social/register", fiber.StatusFound)
}

// HandleSocialRegisterForm renders the registration form for a pending
// social signup. Read-only and idempotent; reloading never mutates state.
func HandleSocialRegisterForm(c *fiber.Ctx) error {
	cfg := models.GetBoardConfig()
	if cfg == nil || !cfg.SocialLoginUse {
		return alert(c, "소셜로그인을 사용하지 않습니다.", "/login")
	}

	pending := session.GetPendingSocial(c)
	if !pending.Valid() {
		return alert(c, "먼저 소셜로그인을 하셔야됩니다.", "/login")
	}

	layout := layoutFor(c, " | 소셜 회원가입")
	return c.Render("social_register", fiber.Map{
		"Layout":    layout,
		"Provider":  pending.Provider,
		"Email":     pending.Email,
		"HasEmail":  pending.Email != "",
		"CSRFToken": csrfToken(c),
		"ActionURL": "/social/register",
	}, "layouts/main")
}

// HandleSocialRegister commits a pending social signup. The profile is
// re-fetched with the stored provider session; identity fields submitted by
// the client are never trusted.
func HandleSocialRegister(c *fiber.Ctx) error {
	cfg := models.GetBoardConfig()
	if cfg == nil || !cfg.SocialLoginUse {
		return alert(c, "소셜로그인을 사용하지 않습니다.", "/login")
	}

	pending := session.GetPendingSocial(c)
	if !pending.Valid() {
		return alert(c, "유효하지 않은 요청입니다. 관리자에게 문의하십시오.", "/login")
	}

	provider, ok := socialauth.Lookup(pending.Provider)
	if !ok {
		return alert(c, "사용하지 않는 서비스 입니다.", "/login")
	}
	if err := provider.Register(cfg); err != nil {
		return alert(c, "사용하지 않는 서비스 입니다. 관리자에게 문의하십시오.", "/login")
	}

	gothProvider, gothSession, err := socialauth.SessionFromMarshal(pending.Provider, pending.SessionData)
	if err != nil {
		return alert(c, "유효하지 않은 요청입니다. 관리자에게 문의하십시오.", "/login")
	}
	user, err := gothProvider.FetchUser(gothSession)
	if err != nil {
		return alert(c, "잠시후에 다시 시도해 주세요.", "/login")
	}

	_, profile, err := provider.ConvertProfile(user)
	if err != nil {
		return criticalAlert(c,
			fmt.Sprintf("social register identifier is empty, profile convert parsing error. provider: %s, user: %s", pending.Provider, user.UserID),
			"/login")
	}
	socialID := profile.Identifier

	// Validation runs in fixed order; the first failing check aborts before
	// anything is written.
	var existing models.Member
	if err := database.GetDB().Where("mb_id = ?", socialID).First(&existing).Error; err == nil {
		return alert(c, "이미 소셜로그인으로 가입된 회원아이디 입니다.", "/login")
	}

	if err := validate.MemberID(socialID, cfg.ProhibitWords); err != nil {
		return alert(c, err.Error(), "/social/register")
	}

	mbEmail := c.FormValue("mb_email")
	if !validate.Email(mbEmail) {
		return alert(c, "이메일 양식이 올바르지 않습니다.", "/social/register")
	}

	if err := database.GetDB().Where("mb_email = ?", mbEmail).First(&existing).Error; err == nil {
		return alert(c, "이미 존재하는 이메일 입니다.", "/social/register")
	}

	mbNick := c.FormValue("mb_nick")
	if mbNick == "" {
		mbNick = fallbackNickname(socialID)
	} else if err := validate.Nickname(mbNick, cfg.ProhibitWords); err != nil {
		return alert(c, err.Error(), "/social/register")
	}

	now := time.Now()
	// OAuth-only account: the stored hash is a hash of a hash of an
	// unpredictable seed, never usable on the password login form.
	password, err := models.OAuthOnlyPassword(models.MicrosecondSeed(now))
	if err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	member := models.Member{
		MbID:         socialID,
		MbPassword:   password,
		MbName:       mbNick,
		MbNick:       mbNick,
		MbNickDate:   now.Format("20060102"),
		MbEmail:      mbEmail,
		MbLevel:      cfg.RegisterLevel,
		MbTodayLogin: now,
		MbDatetime:   now,
	}

	profile.MbID = socialID
	profile.Nickname = mbNick
	profile.ObjectSHA = "" // unused legacy column
	profile.MpRegisterDay = now

	// One transaction for both rows; a concurrent duplicate registration
	// loses at the unique constraints, never by silent double insert.
	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return alert(c, registerConflictMessage(err), "/login")
	}

	// Registration side effects after commit: signup bonus and admin mail.
	if err := point.RecordPoint(database.GetDB(), member.MbID, cfg.RegisterPoint,
		now.Format("2006-01-02 15:04:05")+" 첫로그인", "@login", member.MbID, "회원가입"); err != nil {
		fmt.Printf("register point failed for %s: %v\n", member.MbID, err)
	}
	go mail.NotifyAdminNewMember(cfg.AdminEmail, member.MbID, pending.Provider)

	session.ClearPendingSocial(c)
	if err := establishMemberSession(c, &member); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	return c.Redirect("/", fiber.StatusFound)
}

// HandleSocialLink flags the session so the next provider callback attaches
// the identity to the signed-in member instead of registering a new one.
func HandleSocialLink(c *fiber.Ctx) error {
	providerName := c.Query("provider")
	if providerName == "" {
		return alert(c, "사용하지 않는 서비스 입니다.", "/")
	}
	if err := session.SetSessionValue(c, SessSocialLink, "1"); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/")
	}
	return c.Redirect("/social/login?provider="+providerName, fiber.StatusFound)
}

// registerConflictMessage names the field behind a registration write
// failure. Validation already passed at this point, so the usual cause is a
// concurrent registration losing at a unique constraint; the duplicate-key
// error names the violated index.
func registerConflictMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "mb_email"):
		return "이미 존재하는 이메일 입니다."
	case strings.Contains(msg, "mb_nick"):
		return "이미 존재하는 닉네임 입니다."
	case strings.Contains(msg, "identifier") || strings.Contains(msg, "PRIMARY"):
		return "이미 소셜로그인으로 가입된 회원아이디 입니다."
	default:
		return "회원가입 처리 중 오류가 발생했습니다. 잠시후에 다시 시도해 주세요."
	}
}

// hasProviderLink reports whether one of the member's profiles already
// belongs to the given provider.
func hasProviderLink(profiles []models.MemberSocialProfile, provider string) bool {
	for _, p := range profiles {
		if p.Provider == provider {
			return true
		}
	}
	return false
}

// pendingLinkMember reports whether the session carries a link intent flag
// together with a verified signed-in member.
func pendingLinkMember(c *fiber.Ctx) (bool, *models.Member) {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return false, nil
	}
	if flag, _ := sess.Get(SessSocialLink).(string); flag != "1" {
		return false, nil
	}
	mbID, _ := sess.Get(SessMbID).(string)
	if mbID == "" {
		return false, nil
	}

	var member models.Member
	if err := database.GetDB().Where("mb_id = ?", mbID).First(&member).Error; err != nil {
		return false, nil
	}
	key, _ := sess.Get(SessMbKey).(string)
	if key == "" || key != security.SessionMemberKey(member.MbID, member.MbDatetime, c.Get("User-Agent")) {
		return false, nil
	}
	return true, &member
}
