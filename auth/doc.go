// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity generation and password hashing.

# Identities

Every entity (user, class, history record) gets a random UUID:

	id := auth.NewID()

Class join codes are derived the same way, truncated to six uppercase
characters:

	code := auth.GenerateJoinCode() // e.g. "3F9A1C"

# Passwords

Passwords are stored as bcrypt hashes and never compared in plaintext:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials for any mismatch.
*/
package auth
