package dto

// RefreshInput carries the refresh token read from the refreshToken cookie.
type RefreshInput struct {
	RefreshToken string `json:"-"`
}

// VerifyInput carries the bearer access token and the refresh cookie.
type VerifyInput struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}
