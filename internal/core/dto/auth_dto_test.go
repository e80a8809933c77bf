package dto

import "testing"

func TestLoginUserDTO_Validate(t *testing.T) {
	cases := []struct {
		name    string
		in      LoginUserDTO
		wantErr int
	}{
		{"clean", LoginUserDTO{Email: "alice@fcg.com", Password: "Senha@123"}, 0},
		{"missing both", LoginUserDTO{}, 2},
		{"bad email", LoginUserDTO{Email: "nope", Password: "Senha@123"}, 1},
		{"missing password", LoginUserDTO{Email: "alice@fcg.com"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.in.Validate()
			if len(result.Errors) != tc.wantErr {
				t.Fatalf("expected %d errors, got %v", tc.wantErr, result.Errors)
			}
		})
	}
}

func TestLoginUserDTO_Validate_NoStrengthCheck(t *testing.T) {
	// Login must accept any non-empty password; strength is a registration
	// rule only.
	in := LoginUserDTO{Email: "alice@fcg.com", Password: "x"}
	if result := in.Validate(); result.HasError() {
		t.Fatalf("weak password rejected at login: %v", result.Errors)
	}
}
