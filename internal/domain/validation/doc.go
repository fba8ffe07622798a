// Package validation implements the marketplace form rules: presence,
// format, and policy checks for single field values, plus a password
// strength scorer used for UI feedback.
//
// Every function is pure. A call never fails; violations are returned as
// data in a [Result], in the order the rules are evaluated:
//
//	res := validation.Password(pw)
//	if !res.Valid {
//	    for _, msg := range res.Errors { ... }
//	}
//
// Lengths are counted in UTF-16 code units so the server agrees with the
// browser about where the 8/12/100/128 boundaries fall.
package validation
