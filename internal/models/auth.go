package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Optional home coordinate
	// example: 55.7558
	Latitude *float64 `json:"latitude,omitempty"`

	// example: 37.6173
	Longitude *float64 `json:"longitude,omitempty"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`

	User UserResponse `json:"user"`

	// example: JWT_ACCESS_TOKEN
	AccessToken string `json:"access_token"`

	// example: JWT_REFRESH_TOKEN
	RefreshToken string `json:"refresh_token"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// TokenPairResponse carries a freshly issued access/refresh pair
// swagger:model TokenPairResponse
type TokenPairResponse struct {
	// example: JWT_ACCESS_TOKEN
	AccessToken string `json:"access_token"`

	// example: JWT_REFRESH_TOKEN
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest represents the JSON body for token rotation
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token previously issued to the user
	// required: true
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest represents the JSON body for logout
// swagger:model LogoutRequest
type LogoutRequest struct {
	// Refresh token to revoke
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse is a generic success envelope
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Logout successful
	Message string `json:"message"`
}

// ErrorResponse is a generic error envelope
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid username or password
	Error string `json:"error"`
}
