package utils

import "unicode"

// MinPasswordLength is the shortest password the policy accepts, in characters.
const MinPasswordLength = 8

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// PolicyReason says which password rule failed.
type PolicyReason string

const (
	ReasonNone           PolicyReason = ""
	ReasonTooShort       PolicyReason = "too_short"
	ReasonTooLong        PolicyReason = "too_long"
	ReasonMissingUpper   PolicyReason = "missing_upper"
	ReasonMissingLower   PolicyReason = "missing_lower"
	ReasonMissingDigit   PolicyReason = "missing_digit"
	ReasonMissingSpecial PolicyReason = "missing_special"
)

var reasonMessages = map[PolicyReason]string{
	ReasonTooShort:       "password must be at least 8 characters long",
	ReasonTooLong:        "password must be at most 72 bytes long",
	ReasonMissingUpper:   "password must contain an uppercase letter",
	ReasonMissingLower:   "password must contain a lowercase letter",
	ReasonMissingDigit:   "password must contain a digit",
	ReasonMissingSpecial: "password must contain a special character",
}

// Message is a human readable description of the reason.
func (r PolicyReason) Message() string {
	return reasonMessages[r]
}

// PolicyResult is the outcome of CheckPasswordPolicy
type PolicyResult struct {
	Valid  bool
	Reason PolicyReason
}

// CheckPasswordPolicy reports whether password is strong enough.
// Rules are checked in order and the first failing one is returned.
func CheckPasswordPolicy(password string) PolicyResult {
	var length int
	var hasUpper, hasLower, hasDigit, hasSpecial bool

	for _, r := range password {
		length++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPrint(r) && !unicode.IsSpace(r) && !unicode.IsLetter(r):
			hasSpecial = true
		}
	}

	switch {
	case length < MinPasswordLength:
		return PolicyResult{Reason: ReasonTooShort}
	case len(password) > MaxPasswordBytes:
		return PolicyResult{Reason: ReasonTooLong}
	case !hasUpper:
		return PolicyResult{Reason: ReasonMissingUpper}
	case !hasLower:
		return PolicyResult{Reason: ReasonMissingLower}
	case !hasDigit:
		return PolicyResult{Reason: ReasonMissingDigit}
	case !hasSpecial:
		return PolicyResult{Reason: ReasonMissingSpecial}
	}
	return PolicyResult{Valid: true}
}
