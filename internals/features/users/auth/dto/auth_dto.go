package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Admin     struct {
		AdminID  int    `json:"admin_id"`
		Username string `json:"username"`
		FullName string `json:"full_name"`
	} `json:"admin"`
}
