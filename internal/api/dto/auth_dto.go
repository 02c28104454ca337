package dto

type RegisterDTO struct {
	Account  string `json:"account"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginDTO struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenInfo struct {
	Value     string `json:"value"`
	ExpiresIn int    `json:"expires_in"`
}

type UserDTO struct {
	ID      string `json:"id"`
	Account string `json:"account"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type LoginResponse struct {
	AccessToken  TokenInfo `json:"access_token"`
	RefreshToken TokenInfo `json:"refresh_token"`
	User         UserDTO   `json:"user"`
}
