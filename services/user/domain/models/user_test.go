package models

import "testing"

func strPtr(s string) *string { return &s }

func TestUser_Merge(t *testing.T) {
	base := User{ID: 1, Name: "Alexej", Email: "alexej@example.com"}

	tests := []struct {
		name      string
		patch     UserPatch
		wantName  string
		wantEmail string
	}{
		{"empty patch keeps everything", UserPatch{}, "Alexej", "alexej@example.com"},
		{"name only", UserPatch{Name: strPtr("Anna")}, "Anna", "alexej@example.com"},
		{"email only", UserPatch{Email: strPtr("anna@example.com")}, "Alexej", "anna@example.com"},
		{
			"both fields",
			UserPatch{Name: strPtr("Anna"), Email: strPtr("anna@example.com")},
			"Anna", "anna@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Merge(tt.patch)
			if got.Name != tt.wantName || got.Email != tt.wantEmail {
				t.Fatalf("expected %q/%q, got %q/%q", tt.wantName, tt.wantEmail, got.Name, got.Email)
			}
			if got.ID != base.ID {
				t.Fatalf("merge must not change the id, got %d", got.ID)
			}
		})
	}
}

func TestUser_MergeDoesNotMutateReceiver(t *testing.T) {
	base := User{ID: 1, Name: "Alexej", Email: "alexej@example.com"}
	_ = base.Merge(UserPatch{Name: strPtr("Anna")})

	if base.Name != "Alexej" {
		t.Fatalf("receiver mutated: %q", base.Name)
	}
}
