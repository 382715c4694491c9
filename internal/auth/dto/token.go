package dto

type TokenPair struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
