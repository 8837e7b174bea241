package users

import "time"

// User is one registered identity. The username is unique and immutable;
// PasswordHash is a bcrypt hash carrying its own salt and cost parameters,
// never the plaintext password.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
