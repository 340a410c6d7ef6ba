package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

var roleLevel = map[Role]int{
	RoleGuest: 1,
	RoleStaff: 2,
	RoleAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r grants every permission of min.
func (r Role) AtLeast(min Role) bool {
	have, ok1 := roleLevel[r]
	want, ok2 := roleLevel[min]
	return ok1 && ok2 && have >= want
}

// IsStaff is true for staff and admin, who may act on bookings they do not own.
func (r Role) IsStaff() bool {
	return r.AtLeast(RoleStaff)
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
