package model

// User is a registered member. Email is unique.
type User struct {
	ID    int64
	Name  string
	Email string
}
