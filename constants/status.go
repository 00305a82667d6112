package constants

// User roles
const (
	RoleGuest = 0
	RoleHost  = 1
	RoleStaff = 2
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"
