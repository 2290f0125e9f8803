// Package otp generates one-time passcodes delivered out of band (email, SMS).
//
// Codes are fixed-length decimal strings drawn from crypto/rand. Leading
// zeros are kept, so "004211" is a valid six digit code.
package otp
