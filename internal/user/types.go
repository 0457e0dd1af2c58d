package user

// CreateUserInput is the signup payload.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput is a partial profile update: empty fields keep their value.
type UpdateUserInput struct {
	ID    int64
	Name  string
	Email string
}
