package validation

import "unicode/utf8"

// jsSpaceClass is the body of a regexp character class matching the same
// code points as the ECMAScript \s escape. RE2's \s is ASCII-only.
const jsSpaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// isSpace reports whether r is whitespace or a line terminator in the
// ECMAScript sense. It is used for trimming and phone cleanup.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// isLineTerminator reports whether r is one of the code points an
// ECMAScript "." refuses to match.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}

// codeUnits returns the UTF-16 length of s. Supplementary-plane runes count
// twice; invalid bytes count once each as U+FFFD.
func codeUnits(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xffff && r <= utf8.MaxRune {
			n += 2
			continue
		}
		n++
	}
	return n
}
