package types

type TokenLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenLoginResponse struct {
	AuthToken string `json:"auth_token"`
}
