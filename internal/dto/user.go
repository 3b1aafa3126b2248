package dto

// RegisterRequest is the JSON body for POST /register.
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=1,max=120"`
	Password string  `json:"password" binding:"required,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
