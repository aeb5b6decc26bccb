package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" validate:"required,min=3,max=50"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	ReferralCode string `json:"referral_code,omitempty" validate:"omitempty,numeric" example:"79927398713"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	ReferralCode string `json:"referral_code" example:"4539578763"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type LinkTelegramRequestDTO struct {
	TelegramID int64 `json:"telegram_id" validate:"required,gt=0" example:"123456789"`
}
