package request

type SignUpRequest struct {
	Username string `json:"username,omitempty" validate:"required,min=1,max=128"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=128"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=56"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=56"`
}

type LoginRequest struct {
	Username string `json:"username,omitempty" validate:"required,min=1,max=128"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=128"`
}

type TodoCreateRequest struct {
	Title string `json:"title,omitempty" validate:"required,min=1,max=128"`
}

// TodoUpdateRequest carries one or both of title and status; empty fields
// are left untouched.
type TodoUpdateRequest struct {
	Title  string `json:"title,omitempty" validate:"omitempty,min=1,max=128"`
	Status string `json:"status,omitempty" validate:"omitempty,max=128"`
}
