package validation

// MaxScore is the highest password strength score.
const MaxScore = 4

// strengthLengthBonus is the length that earns a second length point.
const strengthLengthBonus = 12

// Strength is a coarse password quality rating for UI feedback. It is not a
// policy decision; use Password for that.
type Strength struct {
	Score int
	Label string
	Color string
}

var strengthLevels = [MaxScore + 1]Strength{
	{Score: 0, Label: "Very Weak", Color: "#ef4444"},
	{Score: 1, Label: "Weak", Color: "#f97316"},
	{Score: 2, Label: "Fair", Color: "#eab308"},
	{Score: 3, Label: "Good", Color: "#84cc16"},
	{Score: 4, Label: "Strong", Color: "#22c55e"},
}

// PasswordStrength scores a password from 0 to MaxScore. One point each for
// reaching 8 and 12 characters, mixing lower and upper case, containing a
// digit, and containing a special character; the sum is clamped.
// Callers usually skip an empty password, which scores 0.
func PasswordStrength(password string) Strength {
	score := 0
	n := codeUnits(password)

	if n >= minPasswordLen {
		score++
	}
	if n >= strengthLengthBonus {
		score++
	}
	if hasLower(password) && hasUpper(password) {
		score++
	}
	if hasDigit(password) {
		score++
	}
	if hasSpecial(password) {
		score++
	}

	return strengthLevels[min(score, MaxScore)]
}
