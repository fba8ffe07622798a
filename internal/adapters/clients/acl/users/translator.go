package users

import (
	"strings"
	"time"

	"github.com/aladdinnow/forms-service/internal/domain/account"
)

// ToDomainUser converts a downstream UserDTO to an account User. Unknown
// roles fall back to [account.RoleUser]; an unparsable created_at yields
// the zero time.
func ToDomainUser(dto *UserDTO) account.User {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)

	role := account.Role(strings.ToLower(strings.TrimSpace(dto.Role)))
	if !role.IsValid() {
		role = account.RoleUser
	}

	return account.User{
		ID:        string(dto.ID),
		Email:     dto.Email,
		Name:      dto.Name,
		Role:      role,
		CreatedAt: createdAt,
	}
}

// ToLoginRequest converts sign-in credentials to the downstream body.
func ToLoginRequest(creds account.Credentials) LoginRequestDTO {
	return LoginRequestDTO{Email: creds.Email, Password: creds.Password}
}

// ToRegisterRequest converts sign-up credentials and role to the
// downstream body.
func ToRegisterRequest(creds account.Credentials, role account.Role) RegisterRequestDTO {
	return RegisterRequestDTO{Email: creds.Email, Password: creds.Password, Role: role.String()}
}
