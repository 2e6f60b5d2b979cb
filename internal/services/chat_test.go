package services

import (
	"testing"

	"github.com/invayl-academya/Ai-chatbot/internal/models"
)

func TestOwnerFilter(t *testing.T) {
	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	regular := &models.User{ID: 2, Role: "user"}

	tests := []struct {
		name   string
		user   *models.User
		owner  string
		wantID *int64
	}{
		{"admin default sees all owners", admin, "", nil},
		{"admin with owner=all sees all owners", admin, "all", nil},
		{"admin with owner=me pinned to self", admin, "me", &admin.ID},
		{"regular user pinned to self", regular, "", &regular.ID},
		{"regular user cannot widen with owner=all", regular, "all", &regular.ID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ownerFilter(tc.user, tc.owner)
			if tc.wantID == nil {
				if got != nil {
					t.Fatalf("Expected no owner filter, got %d", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected owner filter %d, got none", *tc.wantID)
			}
			if *got != *tc.wantID {
				t.Errorf("Expected owner filter %d, got %d", *tc.wantID, *got)
			}
		})
	}
}
