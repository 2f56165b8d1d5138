package usercontext

// Locals keys shared between middleware and controllers
const (
	KeyMemberContext = "MEMBER_CONTEXT"
	KeyFromProtected = "from_protected"
	KeyIsAdmin       = "isAdmin"
)
