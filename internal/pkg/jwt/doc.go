// Package jwt issues and verifies the HS512 session tokens handed out after
// a completed OTP login, and carries verified claims through a context.
package jwt
