package auth

import (
	"errors"
	"testing"
)

func TestIdentityFromClaims(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		claims  map[string]any
		want    *Identity
		wantErr bool
	}{
		{
			name:    "full profile",
			subject: "1234",
			claims: map[string]any{
				"email":          " Ada@Example.com ",
				"email_verified": true,
				"name":           "Ada",
				"picture":        "https://example.com/a.png",
			},
			want: &Identity{Subject: "1234", Email: "ada@example.com", Name: "Ada", Picture: "https://example.com/a.png"},
		},
		{
			name:    "missing verification flag is accepted",
			subject: "1234",
			claims:  map[string]any{"email": "ada@example.com"},
			want:    &Identity{Subject: "1234", Email: "ada@example.com"},
		},
		{
			name:    "unverified email",
			subject: "1234",
			claims:  map[string]any{"email": "ada@example.com", "email_verified": false},
			wantErr: true,
		},
		{
			name:    "missing email",
			subject: "1234",
			claims:  map[string]any{},
			wantErr: true,
		},
		{
			name:    "missing subject",
			claims:  map[string]any{"email": "ada@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identityFromClaims(tt.subject, tt.claims)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIdentity) {
					t.Fatalf("expected ErrInvalidIdentity, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != *tt.want {
				t.Errorf("identity = %+v, want %+v", got, tt.want)
			}
		})
	}
}
