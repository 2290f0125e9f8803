package hash

import (
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password CheckStrength accepts.
const MinPasswordLength = 8

// Strength is the outcome of CheckStrength. Reason is empty when Valid.
type Strength struct {
	Valid  bool
	Reason string
}

// CheckStrength applies the password policy: at least MinPasswordLength
// characters and at least three of the four classes upper case, lower case,
// digit and punctuation or symbol.
func CheckStrength(password string) Strength {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return Strength{Reason: "password must be at least 8 characters long"}
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	classes := 0
	for _, ok := range []bool{upper, lower, digit, symbol} {
		if ok {
			classes++
		}
	}

	if classes < 3 {
		return Strength{Reason: "password must mix at least three of upper case, lower case, digits and symbols"}
	}

	return Strength{Valid: true}
}
