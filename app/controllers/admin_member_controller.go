package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/app/repository"
	"github.com/gonuboard/gonuboard/internal/pkg/env"
	"github.com/gonuboard/gonuboard/internal/pkg/security"
	"github.com/gonuboard/gonuboard/internal/pkg/session"
	"github.com/gonuboard/gonuboard/internal/pkg/statistics"
)

const memberListPageSize = 20

// AdminMemberController handles the admin member management pages
type AdminMemberController struct {
	repos *repository.Repositories
}

var adminMemberController *AdminMemberController

// InitializeAdminMemberController sets up the controller with its repositories
func InitializeAdminMemberController() {
	adminMemberController = &AdminMemberController{
		repos: repository.GetGlobalRepositories(),
	}
}

func getAdminMemberController() *AdminMemberController {
	if adminMemberController == nil {
		InitializeAdminMemberController()
	}
	return adminMemberController
}

func formTokenSecret() string {
	return env.GetEnv("APP_SECRET", "insecure-dev-secret")
}

// HandleAdminMemberList renders the paginated member list with the cached
// member statistics in the header.
func HandleAdminMemberList(c *fiber.Ctx) error {
	ctrl := getAdminMemberController()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	search := strings.TrimSpace(c.Query("search"))

	var (
		members []models.Member
		total   int64
		err     error
	)
	if search != "" {
		members, err = ctrl.repos.Member.Search(search)
		total = int64(len(members))
	} else {
		total, err = ctrl.repos.Member.Count()
		if err == nil {
			members, err = ctrl.repos.Member.List((page-1)*memberListPageSize, memberListPageSize)
		}
	}
	if err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/")
	}

	statistics.UpdateCacheIfNeeded()
	stats := statistics.GetMemberStatistics()

	totalPages := int((total + memberListPageSize - 1) / memberListPageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	layout := layoutFor(c, " | 회원관리")
	return c.Render("admin/member_list", fiber.Map{
		"Layout":     layout,
		"Members":    members,
		"Stats":      stats,
		"Search":     search,
		"Page":       page,
		"PrevPage":   page - 1,
		"NextPage":   page + 1,
		"TotalPages": totalPages,
		"Total":      total,
	}, "layouts/main")
}

// HandleAdminMemberFormAdd renders the empty member form. The form carries a
// keyed token bound to an empty target id; submitting it takes the insert path.
func HandleAdminMemberFormAdd(c *fiber.Ctx) error {
	if err := session.SetSessionValue(c, SessMemberFormID, ""); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_list")
	}

	token, err := security.GenerateFormToken("", formTokenSecret())
	if err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_list")
	}

	layout := layoutFor(c, " | 회원추가")
	return c.Render("admin/member_form", fiber.Map{
		"Layout":    layout,
		"Member":    &models.Member{MbLevel: 1},
		"IsUpdate":  false,
		"Token":     token,
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

// HandleAdminMemberFormEdit renders the form prefilled with an existing
// member. The token is bound to that member's id; the edited id is also kept
// server side so the update path never trusts the submitted identity.
func HandleAdminMemberFormEdit(c *fiber.Ctx) error {
	ctrl := getAdminMemberController()

	mbID := c.Params("mb_id")
	member, err := ctrl.repos.Member.GetByID(mbID)
	if err != nil {
		return alert(c, fmt.Sprintf("%s : 회원아이디가 존재하지 않습니다.", mbID), "/admin/member_list")
	}

	if err := session.SetSessionValue(c, SessMemberFormID, member.MbID); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_list")
	}

	token, err := security.GenerateFormToken(member.MbID, formTokenSecret())
	if err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_list")
	}

	layout := layoutFor(c, " | 회원수정")
	return c.Render("admin/member_form", fiber.Map{
		"Layout":    layout,
		"Member":    member,
		"IsUpdate":  true,
		"Token":     token,
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

// HandleAdminMemberUpdate processes the member form. The branch is decided by
// the form token alone: a token valid for the submitted id means update, any
// other token means insert. A tampered token therefore falls through to the
// insert branch and fails on the duplicate id check.
func HandleAdminMemberUpdate(c *fiber.Ctx) error {
	ctrl := getAdminMemberController()

	mbID := strings.TrimSpace(c.FormValue("mb_id"))
	token := c.FormValue("token")

	if !security.VerifyFormToken(token, mbID, formTokenSecret()) {
		return ctrl.insertMember(c, mbID)
	}
	return ctrl.updateMember(c, mbID)
}

func (ctrl *AdminMemberController) insertMember(c *fiber.Ctx, mbID string) error {
	if _, err := ctrl.repos.Member.GetByID(mbID); err == nil {
		return alert(c, fmt.Sprintf("%s : 회원아이디가 이미 존재합니다.", mbID), "/admin/member_form")
	}

	mbNick := strings.TrimSpace(c.FormValue("mb_nick"))
	if owner, err := ctrl.repos.Member.GetByNick(mbNick); err == nil {
		return alert(c, fmt.Sprintf("%s : 닉네임이 이미 존재합니다. (%s)", mbNick, owner.MbID), "/admin/member_form")
	}

	mbEmail := strings.TrimSpace(c.FormValue("mb_email"))
	if owner, err := ctrl.repos.Member.GetByEmail(mbEmail); err == nil {
		return alert(c, fmt.Sprintf("%s : 이메일이 이미 존재합니다. (%s)", mbEmail, owner.MbID), "/admin/member_form")
	}

	now := time.Now()

	// A blank password still yields a usable account: the admin form may
	// create members who will only ever log in through a social provider.
	passwordSource := c.FormValue("mb_password")
	if passwordSource == "" {
		passwordSource = now.Format("2006-01-02 15:04:05")
	}
	password, err := models.HashPassword(passwordSource)
	if err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_form")
	}

	member := models.Member{
		MbID:         mbID,
		MbPassword:   password,
		MbName:       c.FormValue("mb_name"),
		MbNick:       mbNick,
		MbNickDate:   now.Format("20060102"),
		MbEmail:      mbEmail,
		MbHomepage:   c.FormValue("mb_homepage"),
		MbLevel:      formInt(c, "mb_level"),
		MbHP:         c.FormValue("mb_hp"),
		MbTel:        c.FormValue("mb_tel"),
		MbMailling:   formInt(c, "mb_mailling"),
		MbSMS:        formInt(c, "mb_sms"),
		MbOpen:       formInt(c, "mb_open"),
		MbSignature:  c.FormValue("mb_signature"),
		MbProfile:    c.FormValue("mb_profile"),
		MbMemo:       c.FormValue("mb_memo"),
		MbTodayLogin: now,
		MbDatetime:   now,
	}
	applyCertify(c, &member)
	applyAddress(c, &member)
	applyStatusDates(c, &member)
	applyExtraFields(c, &member)

	if err := ctrl.repos.Member.Create(&member); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_form")
	}

	return c.Redirect("/admin/member_form/"+member.MbID, fiber.StatusFound)
}

func (ctrl *AdminMemberController) updateMember(c *fiber.Ctx, formMbID string) error {
	// The id under edit comes from the session, never from the form.
	ssMbID := session.GetSessionValue(c, SessMemberFormID)
	if ssMbID == "" {
		return alert(c, "유효하지 않은 요청입니다.", "/admin/member_list")
	}

	mbNick := strings.TrimSpace(c.FormValue("mb_nick"))
	if mbNick != "" {
		if owner, err := ctrl.repos.Member.GetByNickExcluding(mbNick, ssMbID); err == nil {
			return alert(c, fmt.Sprintf("%s : 닉네임이 이미 존재합니다. (%s)", mbNick, owner.MbID), "/admin/member_list")
		}
	}

	mbEmail := strings.TrimSpace(c.FormValue("mb_email"))
	if mbEmail != "" {
		if owner, err := ctrl.repos.Member.GetByEmailExcluding(mbEmail, ssMbID); err == nil {
			return alert(c, fmt.Sprintf("%s : 이메일이 이미 존재합니다. (%s)", mbEmail, owner.MbID), "/admin/member_list")
		}
	}

	member, err := ctrl.repos.Member.GetByID(ssMbID)
	if err != nil {
		return alert(c, fmt.Sprintf("%s : 회원아이디가 존재하지 않습니다.", ssMbID), "/admin/member_list")
	}

	if pw := c.FormValue("mb_password"); pw != "" {
		if err := member.SetPassword(pw); err != nil {
			return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_list")
		}
	}

	member.MbName = c.FormValue("mb_name")
	member.MbNick = mbNick
	if mbNick != "" {
		member.MbNickDate = time.Now().Format("20060102")
	} else {
		member.MbNickDate = ""
	}
	member.MbEmail = mbEmail
	member.MbHomepage = c.FormValue("mb_homepage")

	member.MbLevel = updateLevel(formInt(c, "mb_level"), models.GetBoardConfig())

	member.MbHP = c.FormValue("mb_hp")
	member.MbTel = c.FormValue("mb_tel")
	member.MbMailling = formInt(c, "mb_mailling")
	member.MbSMS = formInt(c, "mb_sms")
	member.MbOpen = formInt(c, "mb_open")
	member.MbSignature = c.FormValue("mb_signature")
	member.MbProfile = c.FormValue("mb_profile")
	member.MbMemo = c.FormValue("mb_memo")
	applyCertify(c, member)
	applyAddress(c, member)
	applyStatusDates(c, member)
	applyExtraFields(c, member)

	if err := ctrl.repos.Member.Update(member); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/admin/member_list")
	}

	return c.Redirect("/admin/member_form/"+member.MbID, fiber.StatusFound)
}

// updateLevel resolves the member level on the update branch. Absent optional
// fields reset to their zero value there, but the level is the one exception:
// a missing level falls back to the configured registration level instead of
// zero. The insert branch takes the submitted value as is.
func updateLevel(submitted int, cfg *models.BoardConfig) int {
	if submitted == 0 && cfg != nil {
		return cfg.RegisterLevel
	}
	return submitted
}

// applyCertify keeps the certification method only while the certified flag
// stays set; clearing the flag clears both.
func applyCertify(c *fiber.Ctx, member *models.Member) {
	certifyCase := c.FormValue("mb_certify_case")
	if certifyCase != "" && formInt(c, "mb_certify") == 1 {
		member.MbCertify = certifyCase
		member.MbAdult = formInt(c, "mb_adult")
		return
	}
	member.MbCertify = ""
	member.MbAdult = 0
}

// applyAddress splits a combined postal code into the two legacy zip columns.
func applyAddress(c *fiber.Ctx, member *models.Member) {
	zip := strings.TrimSpace(c.FormValue("mb_zip"))
	if len(zip) >= 3 {
		member.MbZip1 = zip[:3]
		member.MbZip2 = zip[3:]
	} else {
		member.MbZip1 = zip
		member.MbZip2 = ""
	}
	member.MbAddr1 = c.FormValue("mb_addr1")
	member.MbAddr2 = c.FormValue("mb_addr2")
	member.MbAddr3 = c.FormValue("mb_addr3")
}

// applyStatusDates copies the block and leave dates; both branches of the
// member form accept them.
func applyStatusDates(c *fiber.Ctx, member *models.Member) {
	member.MbInterceptDate = c.FormValue("mb_intercept_date")
	member.MbLeaveDate = c.FormValue("mb_leave_date")
}

func applyExtraFields(c *fiber.Ctx, member *models.Member) {
	member.Mb1 = c.FormValue("mb_1")
	member.Mb2 = c.FormValue("mb_2")
	member.Mb3 = c.FormValue("mb_3")
	member.Mb4 = c.FormValue("mb_4")
	member.Mb5 = c.FormValue("mb_5")
	member.Mb6 = c.FormValue("mb_6")
	member.Mb7 = c.FormValue("mb_7")
	member.Mb8 = c.FormValue("mb_8")
	member.Mb9 = c.FormValue("mb_9")
	member.Mb10 = c.FormValue("mb_10")
}
