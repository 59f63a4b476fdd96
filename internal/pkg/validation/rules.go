package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation rule settings
var (
	// PasswordMinLength is the minimum number of characters in an account password
	PasswordMinLength = 8

	// PasswordSpecialCharacters lists the characters that satisfy the special character rule
	PasswordSpecialCharacters = `!@#$%^&*(),.?":{}|<>`

	// EmailPattern is a loose shape check applied before the domain rule
	EmailPattern = `^[^@\s]+@[^@\s]+$`

	// CourseCodePattern accepts codes such as CS3401 or 20CS301
	CourseCodePattern = `^[A-Za-z0-9][A-Za-z0-9\-]*$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	CourseCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// NormalizeDomain strips a leading "@" and lower-cases the domain
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "@"))
}

// HasInstitutionDomain reports whether email is a well-formed address ending in @domain.
func HasInstitutionDomain(email, domain string) bool {
	email = strings.TrimSpace(email)
	if !CompiledPatterns.Email.MatchString(email) {
		return false
	}
	return strings.HasSuffix(strings.ToLower(email), "@"+NormalizeDomain(domain))
}

// IsStrongPassword checks the account password rule: at least PasswordMinLength
// characters, at least one letter or digit and at least one special character.
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < PasswordMinLength {
		return false
	}

	hasAlnum, hasSpecial := false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			hasAlnum = true
		case strings.ContainsRune(PasswordSpecialCharacters, r):
			hasSpecial = true
		}
	}
	return hasAlnum && hasSpecial
}

// IsCourseCode reports whether code looks like a catalog course code
func IsCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}
