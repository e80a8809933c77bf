package dto

import (
	"time"

	"github.com/fcg-platform/users-svc/internal/core/validation"
)

// RegisterUserDTO is the self-service registration payload. Shape,
// construction and validation rules are identical to administrative creation,
// so it shares the type.
type RegisterUserDTO = CreateUserDTO

// LoginUserDTO carries the credentials presented at login.
type LoginUserDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the login rules: both fields present, email RFC-shaped.
// Password strength is not re-checked here; the stored digest decides.
func (d LoginUserDTO) Validate() validation.Result {
	var result validation.Result

	if d.Email == "" {
		result.AddError("email is required")
	} else if !validation.IsValidEmail(d.Email) {
		result.AddError("email format is invalid")
	}

	if d.Password == "" {
		result.AddError("password is required")
	}

	return result
}

// AuthenticationToken is the issued session credential. It is constructed per
// login and never persisted.
type AuthenticationToken struct {
	Token     string          `json:"token"`
	ExpiresOn *time.Time      `json:"expiresOn,omitempty"`
	UserInfo  *UserProjection `json:"userInfo,omitempty"`
}
