package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name,omitempty"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Size       int  `json:"size,omitempty"`
	VsComputer bool `json:"vs_computer,omitempty"`
}

// MoveRequest is the request body for playing a stone
type MoveRequest struct {
	Col int `json:"col"`
	Row int `json:"row"`
}
