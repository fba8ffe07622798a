package validation

import "strings"

const (
	minPasswordLen = 8
	maxPasswordLen = 128

	// repeatRunLen is the run length of one character that counts as
	// "repeated".
	repeatRunLen = 3
)

// specialChars is the accepted set of special characters.
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// commonPasswords is matched case-insensitively against the whole password.
var commonPasswords = map[string]bool{
	"password":    true,
	"password123": true,
	"12345678":    true,
	"qwerty":      true,
	"abc123":      true,
	"password1":   true,
	"123456789":   true,
	"12345":       true,
	"1234567890":  true,
	"admin":       true,
}

// Password checks a new password against the account policy. An empty value
// short-circuits with MsgPasswordRequired. Every other rule is evaluated and
// all failures are reported in a fixed order: length, lowercase, uppercase,
// digit, special character, denylist, repetition.
func Password(password string) Result {
	if password == "" {
		return single(MsgPasswordRequired)
	}

	var errs []string
	n := codeUnits(password)

	if n < minPasswordLen {
		errs = append(errs, MsgPasswordTooShort)
	}
	if n > maxPasswordLen {
		errs = append(errs, MsgPasswordTooLong)
	}
	if !hasLower(password) {
		errs = append(errs, MsgPasswordNoLower)
	}
	if !hasUpper(password) {
		errs = append(errs, MsgPasswordNoUpper)
	}
	if !hasDigit(password) {
		errs = append(errs, MsgPasswordNoDigit)
	}
	if !hasSpecial(password) {
		errs = append(errs, MsgPasswordNoSymbol)
	}
	if commonPasswords[strings.ToLower(password)] {
		errs = append(errs, MsgPasswordCommon)
	}
	if hasRepeatedRun(password) {
		errs = append(errs, MsgPasswordRepeated)
	}

	return newResult(errs)
}

// PasswordMatch checks that the confirmation equals the password exactly,
// with no trimming or case folding. An empty confirmation short-circuits.
func PasswordMatch(password, confirm string) Result {
	if confirm == "" {
		return single(MsgConfirmRequired)
	}
	if password != confirm {
		return single(MsgPasswordMismatch)
	}
	return newResult(nil)
}

func hasLower(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' }) >= 0
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
}

func hasSpecial(s string) bool {
	return strings.ContainsAny(s, specialChars)
}

// hasRepeatedRun reports whether any character appears repeatRunLen or more
// times in a row. Line terminators never count, and neither do
// supplementary-plane runes, which the browser sees as alternating
// surrogate halves.
func hasRepeatedRun(s string) bool {
	var prev rune = -1
	run := 0
	for _, r := range s {
		if isLineTerminator(r) || r > 0xffff {
			prev, run = -1, 0
			continue
		}
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= repeatRunLen {
			return true
		}
	}
	return false
}
