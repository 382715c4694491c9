package dto

type RegisterInput struct {
	Email    string `json:"email" validate:"authemail"`
	Password string `json:"password" validate:"authpassword"`
	Name     string `json:"name" validate:"authname"`
}
