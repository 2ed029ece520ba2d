package api

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInRequest is the body of POST /auth/login.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// OAuthRequest is the body of POST /auth/oauth. Provider is "google" or
// "facebook"; Token is whatever the provider issued.
type OAuthRequest struct {
	Provider string `json:"provider" validate:"required,oneof=google facebook"`
	Token    string `json:"token"    validate:"required"`
}

// AuthResponse is returned by every /auth endpoint.
type AuthResponse struct {
	Token string `json:"token"`
}
