package validation

import (
	"regexp"
	"strings"
)

// phonePattern accepts 10 to 15 digits with no leading zero and an optional
// leading '+'.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

// Phone checks an international phone number. Whitespace, hyphens, and
// parentheses are ignored.
func Phone(phone string) Result {
	if phone == "" {
		return single(MsgPhoneRequired)
	}

	if !phonePattern.MatchString(cleanPhone(phone)) {
		return single(MsgPhoneInvalid)
	}
	return newResult(nil)
}

// cleanPhone strips the separators people type between digit groups.
func cleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '(' || r == ')' || isSpace(r) {
			return -1
		}
		return r
	}, phone)
}
