package account

import "time"

// User is an account as reported by the users API. Passwords never appear
// here.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
}

// Credentials is what the users API needs to authenticate or register.
type Credentials struct {
	Email    string
	Password string
}
