package models

import "time"

// User is a registered account. Usernames are unique and immutable after
// creation; the password digest never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
