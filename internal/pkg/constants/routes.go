package constants

// Static route constants
const (
	HomeRoute           = "/"
	LoginRoute          = "/login"
	SocialLoginRoute    = "/social/login"
	SocialCallbackRoute = "/social/login/callback"
	SocialRegisterRoute = "/social/register"
	AdminMemberList     = "/admin/member_list"
	AdminMemberForm     = "/admin/member_form"
)
