package dto

type LoginDTO struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	AccessToken string `json:"access_token"`
}
