package domain

type User struct {
	ID       int
	Username string `validate:"required,min=1,max=128"`
	Password string `validate:"required,min=6,max=128"`
	Email    string `validate:"omitempty,email,max=56"`
	Phone    string `validate:"omitempty,max=56"`
}

// Sanitized returns a copy with the password hash blanked out. The hash
// never leaves the service layer.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
