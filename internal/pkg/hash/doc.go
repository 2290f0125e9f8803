// Package hash provides one-way hashing for passwords and short secrets.
//
// Passwords go through an adaptive, salted algorithm (bcrypt or Argon2id) and
// are checked with Verify, which never fails loudly: a malformed stored value
// simply does not match. Short secrets that must be looked up by value, such
// as one-time codes, use the deterministic HMACSHA256 instead.
package hash
