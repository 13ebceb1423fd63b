package dto

// CreateUserRequest represents the admin payload for provisioning a user.
// When Password is empty a secure one is generated and returned once.
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password"`
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Role     string  `json:"role" binding:"required,oneof=viewer editor admin"`
}

// UpdateUserRoleRequest represents the admin payload for changing a user's role
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=viewer editor admin"`
}
