package auth

import (
	entity "github.com/acharyaarish/Inventory-Management/model/entity"
)

// Authorize checks an exact role match. There is no role hierarchy: every
// gated operation names the one role allowed to run it, and anything else is
// denied. Read-only operations are never passed through here.
func Authorize(user *entity.User, required entity.Role) error {
	if user.Role == required {
		return nil
	}
	return &entity.AccessDeniedError{ActualRole: user.Role, RequiredRole: required}
}
