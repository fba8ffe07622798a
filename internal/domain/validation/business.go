package validation

import "strings"

const (
	minBusinessNameLen = 2
	maxBusinessNameLen = 100
)

// BusinessName checks a supplier's trading name. Surrounding whitespace is
// ignored; a blank name short-circuits with MsgBusinessNameRequired.
func BusinessName(name string) Result {
	trimmed := strings.TrimFunc(name, isSpace)
	if trimmed == "" {
		return single(MsgBusinessNameRequired)
	}

	var errs []string
	n := codeUnits(trimmed)

	if n < minBusinessNameLen {
		errs = append(errs, MsgBusinessNameTooShort)
	}
	if n > maxBusinessNameLen {
		errs = append(errs, MsgBusinessNameTooLong)
	}

	return newResult(errs)
}
