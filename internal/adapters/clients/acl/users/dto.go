// Package users implements the Anti-Corruption Layer translators for the
// downstream users API.
package users

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// UserDTO matches the downstream user object nested under "user".
type UserDTO struct {
	ID        FlexibleID `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	Role      string     `json:"role"`
	CreatedAt string     `json:"created_at,omitempty"`
}

// UserEnvelopeDTO is the success body of both register and login.
type UserEnvelopeDTO struct {
	User *UserDTO `json:"user"`
}

// LoginRequestDTO is the body of POST /users/login.
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequestDTO is the body of POST /users/register.
type RegisterRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// FlexibleID accepts a JSON string or number. The downstream has served
// both numeric and UUID identifiers.
type FlexibleID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}
