package permissions

import (
	"testing"

	"github.com/google/uuid"

	"github.com/elisoft-engineer/todo-api/internal/models"
)

func TestStaffOnly(t *testing.T) {
	tests := []struct {
		name      string
		principal *models.User
		want      bool
	}{
		{name: "nil principal denied", principal: nil, want: false},
		{name: "regular user denied", principal: &models.User{ID: uuid.New()}, want: false},
		{name: "staff user allowed", principal: &models.User{ID: uuid.New(), IsStaff: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StaffOnly(tt.principal); got != tt.want {
				t.Errorf("StaffOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOwnerOnly(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name      string
		principal *models.User
		ownerID   uuid.UUID
		want      bool
	}{
		{name: "nil principal denied", principal: nil, ownerID: ownerID, want: false},
		{name: "owner allowed", principal: &models.User{ID: ownerID}, ownerID: ownerID, want: true},
		{name: "non-owner denied", principal: &models.User{ID: otherID}, ownerID: ownerID, want: false},
		// Staff get no special treatment on owned objects.
		{name: "staff non-owner denied", principal: &models.User{ID: otherID, IsStaff: true}, ownerID: ownerID, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OwnerOnly(tt.principal, tt.ownerID); got != tt.want {
				t.Errorf("OwnerOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelfOrStaff(t *testing.T) {
	selfID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name      string
		principal *models.User
		targetID  uuid.UUID
		want      bool
	}{
		{name: "nil principal denied", principal: nil, targetID: selfID, want: false},
		{name: "self allowed", principal: &models.User{ID: selfID}, targetID: selfID, want: true},
		{name: "other user denied", principal: &models.User{ID: otherID}, targetID: selfID, want: false},
		{name: "staff allowed on any target", principal: &models.User{ID: otherID, IsStaff: true}, targetID: selfID, want: true},
		{name: "staff allowed on self", principal: &models.User{ID: selfID, IsStaff: true}, targetID: selfID, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelfOrStaff(tt.principal, tt.targetID); got != tt.want {
				t.Errorf("SelfOrStaff() = %v, want %v", got, tt.want)
			}
		})
	}
}
