package models

// Role is the authorization role attached to an authenticated session.
//
// Only the local credential table distinguishes roles; the remote providers
// report RoleNone for unauthenticated and RoleUser once authenticated.
type Role int

const (
	RoleNone Role = iota
	RoleUser
	RoleAdmin
)

// ParseRole maps a config-level role name to a Role. Unknown names map to RoleNone.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleNone
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "none"
	}
}

// Session represents the current authentication status.
//
// Role is only meaningful when Authenticated is true.
type Session struct {
	Authenticated bool
	Role          Role
}

// Unauthenticated is the zero session every page of the client starts from.
func Unauthenticated() Session {
	return Session{}
}

// Authenticated returns a session for the given role.
func Authenticated(role Role) Session {
	return Session{Authenticated: true, Role: role}
}

// FileSelection represents the two user-chosen input files.
//
// A submission may proceed only when both are present.
type FileSelection struct {
	HTMLPath  string
	HTMLData  []byte
	ExcelPath string
	ExcelData []byte
}

// Complete reports whether both files have been selected.
func (s FileSelection) Complete() bool {
	return len(s.HTMLData) > 0 && len(s.ExcelData) > 0
}

// ResultState enumerates the lifecycle of a submission attempt.
type ResultState int

const (
	ResultIdle ResultState = iota
	ResultLoading
	ResultSuccess
	ResultError
)

func (s ResultState) String() string {
	switch s {
	case ResultLoading:
		return "loading"
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	default:
		return "idle"
	}
}

// SubmissionResult represents the outcome of a processing request.
//
// ArtifactRef, when set, points at an in-memory artifact valid only for the
// lifetime of the run; Message carries the user-facing error text.
type SubmissionResult struct {
	State       ResultState
	Message     string
	ArtifactRef string
}
