package account

import "github.com/aladdinnow/forms-service/internal/domain/validation"

// SignUpForm is the account registration form.
type SignUpForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	Role            Role
}

// Normalize fills defaults the browser leaves out. An empty role means a
// buyer account.
func (f *SignUpForm) Normalize() {
	if f.Role == "" {
		f.Role = RoleUser
	}
}

// Check runs every sign-up rule and reports all fields, valid or not.
func (f *SignUpForm) Check() Report {
	role := validation.NewResult()
	if !f.Role.IsValid() {
		role = validation.NewResult(MsgRoleInvalid)
	}

	return Report{
		{Field: FieldEmail, Result: validation.Email(f.Email)},
		{Field: FieldPassword, Result: validation.Password(f.Password)},
		{Field: FieldConfirmPassword, Result: validation.PasswordMatch(f.Password, f.ConfirmPassword)},
		{Field: FieldRole, Result: role},
	}
}

// Validate returns a *FormError if any field fails, or nil.
func (f *SignUpForm) Validate() error {
	return check("signup", f.Check())
}

// Credentials returns the part of the form sent to the users API.
func (f *SignUpForm) Credentials() Credentials {
	return Credentials{Email: f.Email, Password: f.Password}
}
