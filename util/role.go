package util

const (
	AdminRole    = "admin"
	StaffRole    = "staff"
	DriverRole   = "driver"
	ResidentRole = "resident"
)

// IsSupportedRole returns true if the role is supported
func IsSupportedRole(role string) bool {
	switch role {
	case AdminRole, StaffRole, DriverRole, ResidentRole:
		return true
	}
	return false
}

// HasRole checks if the user's role matches any of the allowed roles
func HasRole(userRole string, allowedRoles ...string) bool {
	for _, role := range allowedRoles {
		if userRole == role {
			return true
		}
	}
	return false
}
