package validation

import (
	"regexp"
	"strings"
)

// emailPattern requires local@domain.tld with no whitespace or extra '@'
// in any part.
var emailPattern = regexp.MustCompile(
	`^[^@` + jsSpaceClass + `]+@[^@` + jsSpaceClass + `]+\.[^@` + jsSpaceClass + `]+$`,
)

// knownMailDomains are exempt from the short-domain heuristic.
var knownMailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"outlook.com": true,
	"hotmail.com": true,
}

// minPlausibleDomainLen is the shortest domain not flagged as suspicious.
const minPlausibleDomainLen = 4

// Email checks an email address. An empty value short-circuits with
// MsgEmailRequired; the format and domain checks accumulate.
//
// The domain heuristic flags short unknown domains such as "a.b". It is
// advisory and produces false positives for real short domains.
func Email(email string) Result {
	if email == "" {
		return single(MsgEmailRequired)
	}

	var errs []string

	if !emailPattern.MatchString(email) {
		errs = append(errs, MsgEmailInvalid)
	}

	if domain := emailDomain(email); domain != "" &&
		!knownMailDomains[domain] &&
		codeUnits(domain) < minPlausibleDomainLen {
		errs = append(errs, MsgEmailSuspiciousDomain)
	}

	return newResult(errs)
}

// emailDomain returns the lowercased segment between the first '@' and the
// next one (or the end of the string). Returns "" when there is no '@'.
func emailDomain(email string) string {
	_, rest, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}
	domain, _, _ := strings.Cut(rest, "@")
	return strings.ToLower(domain)
}
