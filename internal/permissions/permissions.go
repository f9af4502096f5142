// Package permissions holds the access-control predicates used by the
// HTTP handlers. Each check is a pure function of the requesting
// principal and, where relevant, the target object, and fails closed
// when the principal is missing.
package permissions

import (
	"github.com/google/uuid"

	"github.com/elisoft-engineer/todo-api/internal/models"
)

// StaffOnly passes only for authenticated staff accounts.
func StaffOnly(principal *models.User) bool {
	return principal != nil && principal.IsStaff
}

// OwnerOnly passes only when the target object is owned by the
// principal. Staff status grants nothing here.
func OwnerOnly(principal *models.User, ownerID uuid.UUID) bool {
	return principal != nil && ownerID == principal.ID
}

// SelfOrStaff passes when the target object is the principal's own
// account, or when the principal is staff.
func SelfOrStaff(principal *models.User, targetID uuid.UUID) bool {
	if principal == nil {
		return false
	}
	return targetID == principal.ID || principal.IsStaff
}
