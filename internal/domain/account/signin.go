package account

import "github.com/aladdinnow/forms-service/internal/domain/validation"

// SignInForm is the login form. Only presence is checked for the password;
// the policy applies when choosing one, not when typing it back.
type SignInForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// Check runs the sign-in rules.
func (f *SignInForm) Check() Report {
	password := validation.NewResult()
	if f.Password == "" {
		password = validation.NewResult(validation.MsgPasswordRequired)
	}

	return Report{
		{Field: FieldEmail, Result: validation.Email(f.Email)},
		{Field: FieldPassword, Result: password},
	}
}

// Validate returns a *FormError if any field fails, or nil.
func (f *SignInForm) Validate() error {
	return check("signin", f.Check())
}

// Credentials returns the part of the form sent to the users API.
func (f *SignInForm) Credentials() Credentials {
	return Credentials{Email: f.Email, Password: f.Password}
}
