package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name  string
	Email string
}

// GetOneUserOptions filters a single User. Non-zero fields are ANDed.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

// UpdateUserOptions holds the full new state of a User.
type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
