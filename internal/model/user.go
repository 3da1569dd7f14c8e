package model

// User is the account the session belongs to.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
