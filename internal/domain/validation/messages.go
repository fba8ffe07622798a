package validation

// User-facing violation messages. The front end renders these verbatim.
const (
	MsgEmailRequired         = "Email is required"
	MsgEmailInvalid          = "Please enter a valid email address"
	MsgEmailSuspiciousDomain = "Email domain looks suspicious. Please double-check."

	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
	MsgPasswordTooLong  = "Password must not exceed 128 characters"
	MsgPasswordNoLower  = "Password must contain at least one lowercase letter"
	MsgPasswordNoUpper  = "Password must contain at least one uppercase letter"
	MsgPasswordNoDigit  = "Password must contain at least one number"
	MsgPasswordNoSymbol = "Password must contain at least one special character"
	MsgPasswordCommon   = "This password is too common. Please choose a stronger password"
	MsgPasswordRepeated = `Password should not contain repeated characters (e.g., "aaa", "111")`

	MsgConfirmRequired  = "Please confirm your password"
	MsgPasswordMismatch = "Passwords do not match"

	MsgBusinessNameRequired = "Business name is required"
	MsgBusinessNameTooShort = "Business name must be at least 2 characters"
	MsgBusinessNameTooLong  = "Business name must not exceed 100 characters"

	MsgPhoneRequired = "Phone number is required"
	MsgPhoneInvalid  = "Please enter a valid phone number"
)

// Category classifies a violation.
type Category string

const (
	CategoryPresence    Category = "presence"
	CategoryFormat      Category = "format"
	CategoryPolicy      Category = "policy"
	CategoryConsistency Category = "consistency"
	CategoryAdvisory    Category = "advisory"
	CategoryUnknown     Category = "unknown"
)

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

var categories = map[string]Category{
	MsgEmailRequired:         CategoryPresence,
	MsgEmailInvalid:          CategoryFormat,
	MsgEmailSuspiciousDomain: CategoryAdvisory,

	MsgPasswordRequired: CategoryPresence,
	MsgPasswordTooShort: CategoryPolicy,
	MsgPasswordTooLong:  CategoryPolicy,
	MsgPasswordNoLower:  CategoryPolicy,
	MsgPasswordNoUpper:  CategoryPolicy,
	MsgPasswordNoDigit:  CategoryPolicy,
	MsgPasswordNoSymbol: CategoryPolicy,
	MsgPasswordCommon:   CategoryPolicy,
	MsgPasswordRepeated: CategoryPolicy,

	MsgConfirmRequired:  CategoryPresence,
	MsgPasswordMismatch: CategoryConsistency,

	MsgBusinessNameRequired: CategoryPresence,
	MsgBusinessNameTooShort: CategoryPolicy,
	MsgBusinessNameTooLong:  CategoryPolicy,

	MsgPhoneRequired: CategoryPresence,
	MsgPhoneInvalid:  CategoryFormat,
}

// CategoryOf returns the category of a message produced by this package,
// or CategoryUnknown for anything else.
func CategoryOf(msg string) Category {
	if c, ok := categories[msg]; ok {
		return c
	}
	return CategoryUnknown
}
