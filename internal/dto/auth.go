package dto

type RegisterRequestDTO struct {
	Phone    string `json:"phone" validate:"required,e164" example:"+79991234567"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"s3cret-pass"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id" example:"1"`
}

type LoginRequestDTO struct {
	Phone    string `json:"phone" validate:"required,e164" example:"+79991234567"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
