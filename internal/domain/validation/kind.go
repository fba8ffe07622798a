package validation

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by Check for a field kind with no rule set.
var ErrUnknownKind = errors.New("unknown field kind")

// Kind names a rule set.
type Kind string

const (
	KindEmail                Kind = "email"
	KindPassword             Kind = "password"
	KindPasswordConfirmation Kind = "password_confirmation"
	KindBusinessName         Kind = "business_name"
	KindPhone                Kind = "phone"
)

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindEmail, KindPassword, KindPasswordConfirmation, KindBusinessName, KindPhone}
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindEmail, KindPassword, KindPasswordConfirmation, KindBusinessName, KindPhone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Check runs the rule set named by k against value. compareTo is only
// read for KindPasswordConfirmation, where it holds the original password.
func Check(k Kind, value, compareTo string) (Result, error) {
	switch k {
	case KindEmail:
		return Email(value), nil
	case KindPassword:
		return Password(value), nil
	case KindPasswordConfirmation:
		return PasswordMatch(compareTo, value), nil
	case KindBusinessName:
		return BusinessName(value), nil
	case KindPhone:
		return Phone(value), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}
